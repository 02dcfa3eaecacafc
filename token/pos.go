package token

import (
	"fmt"
	"sort"
	"strconv"
)

// PosDoc is the document positions refer to. It indexes newlines so that
// offsets can be turned into lines and columns.
type PosDoc struct {
	d []byte
	n []int
}

func NewPosDoc(d []byte) *PosDoc {
	p := &PosDoc{d: d}
	for i, c := range d {
		if c == '\n' {
			p.n = append(p.n, i)
		}
	}
	return p
}

// LineCol returns the 0-based line and column (in bytes) of off.
func (p *PosDoc) LineCol(off int) (int, int) {
	di := sort.SearchInts(p.n, off)
	if di == 0 {
		return 0, off
	}
	return di, off - p.n[di-1] - 1
}

// Offset is the inverse of LineCol. Columns past the end of a line are
// clamped to the line's end.
func (p *PosDoc) Offset(line, col int) int {
	if line <= 0 {
		return min(max(col, 0), p.lineEnd(0))
	}
	if line > len(p.n) {
		return len(p.d)
	}
	start := p.n[line-1] + 1
	return min(start+max(col, 0), p.lineEnd(line))
}

func (p *PosDoc) lineEnd(line int) int {
	if line < len(p.n) {
		return p.n[line]
	}
	return len(p.d)
}

func (p *PosDoc) Pos(i int) *Pos {
	return &Pos{I: i, D: p}
}

func (p *PosDoc) End() *Pos {
	return &Pos{I: len(p.d), D: p}
}

type Pos struct {
	I int
	D *PosDoc
}

func (p *Pos) LineCol() (int, int) {
	return p.D.LineCol(p.I)
}

func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c
}

func (p Pos) String() string {
	if p.D == nil {
		return fmt.Sprintf("offset %d", p.I)
	}
	sample := string(p.D.d[max(0, p.I-5):min(p.I+5, len(p.D.d))])
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, p.Line(), p.Col())
}
