package ihex

import "strings"

// AnalyzeLines checks every record of the file in order, stopping at the
// first invalid one. It returns nil when all lines hold valid records, or a
// *Fault carrying the failing check and its 1-based line number. Lines after
// the first fault are not examined.
func AnalyzeLines(lines []string) *Fault {
	for i, line := range lines {
		if err := CheckLine(line); err != nil {
			return err.(*Fault).at(i + 1)
		}
	}
	return nil
}

// CheckTerminalRecord scans the whole file for End-Of-File record placement.
// It must only be run on a file that already passed AnalyzeLines. It returns
// nil when exactly one End-Of-File record exists and it is the file's last
// line, and otherwise a *Fault of kind MissingEOF, EOFNotAtEnd (at the EOF
// record's line) or DuplicateEOF (at the first occurrence's line).
func CheckTerminalRecord(lines []string) *Fault {
	var (
		found     int
		firstLine int
		eofText   string
		lastText  string
	)
	for i, line := range lines {
		lastText = line
		if strings.HasPrefix(line, EOFLine) {
			if found == 0 {
				firstLine = i + 1
			}
			found++
			eofText = line
		}
	}

	switch {
	case found == 0:
		return newFault(MissingEOF)
	case found == 1:
		if lastText != eofText {
			return newFault(EOFNotAtEnd).at(firstLine)
		}
		return nil
	default:
		return newFault(DuplicateEOF).at(firstLine)
	}
}

// RecordInfo is one row of the presentation pass: a record's line, its
// decoded fields and its address resolution.
type RecordInfo struct {
	Line       int
	Text       string
	Record     *Record
	Resolution Resolution
}

// Inspect re-derives every record's decoded fields and absolute address for
// display, carrying addressing state across lines in file order. The file
// must already have passed AnalyzeLines and CheckTerminalRecord; Inspect
// skips lines that fail to decode rather than reporting them.
func Inspect(lines []string) []RecordInfo {
	ctx := NewAddressContext()
	infos := make([]RecordInfo, 0, len(lines))
	for i, line := range lines {
		r, err := Decode(line)
		if err != nil {
			continue
		}
		infos = append(infos, RecordInfo{
			Line:       i + 1,
			Text:       strings.TrimRight(line, "\r\n"),
			Record:     r,
			Resolution: Resolve(r, ctx),
		})
	}
	return infos
}
