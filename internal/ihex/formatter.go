package ihex

import (
	"fmt"
	"strings"

	"github.com/mabhi256/hexdiag/utils"
)

// faultMessage maps a fault to the analyzer's user-facing message.
func faultMessage(f *Fault) string {
	switch f.Kind {
	case MissingStartCode:
		return fmt.Sprintf("Error at line %d: there is no ':' character at the beginning of the line", f.Line)
	case MalformedFields:
		return fmt.Sprintf("Error at line %d: record format isn't valid", f.Line)
	case InvalidRecordType:
		return fmt.Sprintf("Error at line %d: record type isn't valid", f.Line)
	case ByteCountMismatch:
		return fmt.Sprintf("Error at line %d: the number of bytes of the data field and the record-length field aren't the same", f.Line)
	case ChecksumMismatch:
		return fmt.Sprintf("Error at line %d: checksum field doesn't match the actual calculation", f.Line)
	case MissingEOF:
		return "File error: file is missing the End-Of-File record"
	case EOFNotAtEnd:
		return fmt.Sprintf("Error at line %d: the End-Of-File record must be at the end of the file", f.Line)
	case DuplicateEOF:
		return fmt.Sprintf("Error at line %d: the file must not have more than one End-Of-File record", f.Line)
	}
	return f.Error()
}

// PrintVerdict prints the outcome of the validity and placement passes.
// It returns true when the file is fully valid.
func PrintVerdict(fault *Fault) bool {
	if fault != nil {
		fmt.Println(utils.CriticalStyle.Render("❌ " + faultMessage(fault)))
		return false
	}
	fmt.Println(utils.GoodStyle.Render("✅ Intel HEX file has correct format, without any errors"))
	return true
}

// PrintReport prints the per-record breakdown of an already-validated file,
// one section per record with its decoded fields and resolved address.
func PrintReport(infos []RecordInfo) {
	fmt.Println()
	fmt.Println(utils.TitleStyle.Render("🔍 Record Breakdown"))
	fmt.Println(strings.Repeat("═", 65))

	for _, info := range infos {
		r := info.Record
		res := info.Resolution

		fmt.Printf("\n%s\n", utils.InfoStyle.Render(
			fmt.Sprintf("Record %d: %s", info.Line, strings.ToUpper(r.Type.String())+" RECORD")))
		fmt.Println(utils.MutedStyle.Render(info.Text))
		fmt.Println(strings.Repeat("─", 35))

		fmt.Printf("Record-length field: %02X <=> %d bytes of data\n", r.ByteCount, r.ByteCount)
		fmt.Printf("Address field:       %04X\n", r.Address)
		fmt.Printf("HEX record type:     %02X\n", byte(r.Type))
		fmt.Printf("Data field:          %s\n", hexBytes(r.Data))
		fmt.Printf("Checksum field:      %02X\n", r.Checksum)

		if res.HasAbs {
			fmt.Printf("Address from the data record's address field: %04X\n", res.Base)
			fmt.Printf("Absolute memory address: %08X\n", res.Absolute)
		}
	}
	fmt.Println()
}

func hexBytes(data []byte) string {
	if len(data) == 0 {
		return "(none)"
	}
	var b strings.Builder
	for _, d := range data {
		fmt.Fprintf(&b, "%02X", d)
	}
	return b.String()
}
