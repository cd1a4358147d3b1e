package source

import "fmt"

// Loc is a packed source location: {srcfile_id:20, line:20, col:12, width:12}.
// The zero value NoLoc means "unknown". Packing keeps every AST/type node's
// location to a single machine word instead of a Span-sized struct, which
// matters once every Node in the arena carries one.
type Loc uint64

// NoLoc is the "unknown location" sentinel (the all-zero packed value).
const NoLoc Loc = 0

const (
	locFileBits  = 20
	locLineBits  = 20
	locColBits   = 12
	locWidthBits = 12

	locFileMax  = 1<<locFileBits - 1
	locLineMax  = 1<<locLineBits - 1
	locColMax   = 1<<locColBits - 1
	locWidthMax = 1<<locWidthBits - 1

	locWidthShift = 0
	locColShift   = locWidthShift + locWidthBits
	locLineShift  = locColShift + locColBits
	locFileShift  = locLineShift + locLineBits
)

// MakeLoc packs a (file, line, col, width) tuple into a Loc. Fields that
// overflow their bit budget are clamped rather than silently wrapping, since
// a clamped-but-wrong location is safer for diagnostics than a corrupted one.
func MakeLoc(file FileID, line, col, width uint32) Loc {
	f := uint64(file)
	if f > locFileMax {
		f = locFileMax
	}
	l := uint64(line)
	if l > locLineMax {
		l = locLineMax
	}
	c := uint64(col)
	if c > locColMax {
		c = locColMax
	}
	w := uint64(width)
	if w > locWidthMax {
		w = locWidthMax
	}
	return Loc(f<<locFileShift | l<<locLineShift | c<<locColShift | w<<locWidthShift)
}

// File extracts the packed srcfile_id.
func (l Loc) File() FileID { return FileID((uint64(l) >> locFileShift) & locFileMax) }

// Line extracts the packed 1-based line number.
func (l Loc) Line() uint32 { return uint32((uint64(l) >> locLineShift) & locLineMax) }

// Col extracts the packed 1-based column.
func (l Loc) Col() uint32 { return uint32((uint64(l) >> locColShift) & locColMax) }

// Width extracts the packed span width in columns.
func (l Loc) Width() uint32 { return uint32((uint64(l) >> locWidthShift) & locWidthMax) }

// IsValid reports whether this is anything other than NoLoc.
func (l Loc) IsValid() bool { return l != NoLoc }

// WithWidth returns a copy of l with a different width, clamped as in MakeLoc.
func (l Loc) WithWidth(width uint32) Loc {
	return MakeLoc(l.File(), l.Line(), l.Col(), width)
}

func (l Loc) String() string {
	if l == NoLoc {
		return "<unknown>"
	}
	return fmt.Sprintf("%d:%d:%d", l.File(), l.Line(), l.Col())
}

// Cover returns the smallest Loc on the same file/line spanning both l and
// other; if the two disagree on file or line, l is returned unchanged (a
// cross-line cover can't be expressed in a single packed column range).
func (l Loc) Cover(other Loc) Loc {
	if l == NoLoc {
		return other
	}
	if other == NoLoc {
		return l
	}
	if l.File() != other.File() || l.Line() != other.Line() {
		return l
	}
	startA, startB := l.Col(), other.Col()
	endA, endB := startA+l.Width(), startB+other.Width()
	start := startA
	if startB < start {
		start = startB
	}
	end := endA
	if endB > end {
		end = endB
	}
	return MakeLoc(l.File(), l.Line(), start, end-start)
}
