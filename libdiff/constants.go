package libdiff

// Op is the kind of a Change.
type Op int

const (
	OpInsert Op = iota
	OpDelete
	OpReplace
)

func (o Op) String() string {
	switch o {
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	case OpReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// Sigil is the one character mark used for o in formatted output.
func (o Op) Sigil() string {
	switch o {
	case OpInsert:
		return "+"
	case OpDelete:
		return "-"
	default:
		return "~"
	}
}
