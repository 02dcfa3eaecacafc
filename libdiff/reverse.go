package libdiff

import diffpatch "github.com/sergi/go-diff/diffmatchpatch"

// Reverse returns the changes undoing changes: each change inverted, in
// reverse order.
func Reverse(changes []Change) []Change {
	res := make([]Change, len(changes))
	for i, c := range changes {
		r := Change{Path: c.Path, From: c.To, To: c.From}
		switch c.Op {
		case OpInsert:
			r.Op = OpDelete
		case OpDelete:
			r.Op = OpInsert
		default:
			r.Op = OpReplace
		}
		if c.Text != nil {
			r.Text = make([]diffpatch.Diff, len(c.Text))
			for j, td := range c.Text {
				switch td.Type {
				case diffpatch.DiffInsert:
					td.Type = diffpatch.DiffDelete
				case diffpatch.DiffDelete:
					td.Type = diffpatch.DiffInsert
				}
				r.Text[j] = td
			}
		}
		res[len(changes)-1-i] = r
	}
	return res
}
