package ihex

import "fmt"

// FaultKind identifies one failure mode of record or file checking. The
// per-record kinds are ordered by detection priority: a record is reported
// with the first kind that triggers, never more than one.
type FaultKind int

const (
	// Per-record faults, in detection order.
	MissingStartCode FaultKind = iota + 1
	MalformedFields
	InvalidRecordType
	ByteCountMismatch
	ChecksumMismatch

	// File-level faults, evaluated only after every record validates.
	MissingEOF
	EOFNotAtEnd
	DuplicateEOF
)

func (k FaultKind) String() string {
	switch k {
	case MissingStartCode:
		return "missing start code"
	case MalformedFields:
		return "malformed record fields"
	case InvalidRecordType:
		return "invalid record type"
	case ByteCountMismatch:
		return "byte count mismatch"
	case ChecksumMismatch:
		return "checksum mismatch"
	case MissingEOF:
		return "missing End-Of-File record"
	case EOFNotAtEnd:
		return "End-Of-File record not at end of file"
	case DuplicateEOF:
		return "more than one End-Of-File record"
	}
	return "unknown fault"
}

// Fault is a checking failure tied to a 1-based line number. Line is 0 for
// faults raised before a line position is known (single-record checks) and
// for MissingEOF, which has no originating line.
type Fault struct {
	Kind FaultKind
	Line int
}

func (f *Fault) Error() string {
	if f.Line == 0 {
		return f.Kind.String()
	}
	return fmt.Sprintf("line %d: %s", f.Line, f.Kind)
}

func newFault(kind FaultKind) *Fault {
	return &Fault{Kind: kind}
}

// at returns a copy of the fault positioned at the given line.
func (f *Fault) at(line int) *Fault {
	return &Fault{Kind: f.Kind, Line: line}
}
