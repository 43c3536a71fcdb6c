package ihex

import (
	"strconv"
	"strings"
)

// RecordType is the TT field of an Intel HEX record.
type RecordType byte

const (
	DataRecord            RecordType = 0x00
	EOFRecord             RecordType = 0x01
	ExtSegmentAddrRecord  RecordType = 0x02
	ExtLinearAddrRecord   RecordType = 0x04
	StartLinearAddrRecord RecordType = 0x05
)

// EOFLine is the fixed literal End-Of-File record.
const EOFLine = ":00000001FF"

// headerWidth is the character width of everything but the data field:
// start marker (1) + byte count (2) + address (4) + record type (2) +
// checksum (2).
const headerWidth = 11

func (t RecordType) String() string {
	switch t {
	case DataRecord:
		return "Data"
	case EOFRecord:
		return "End-Of-File"
	case ExtSegmentAddrRecord:
		return "Extended Segment Address"
	case ExtLinearAddrRecord:
		return "Extended Linear Address"
	case StartLinearAddrRecord:
		return "Start Linear Address"
	}
	return "Unknown"
}

func validRecordType(t RecordType) bool {
	switch t {
	case DataRecord, EOFRecord, ExtSegmentAddrRecord, ExtLinearAddrRecord, StartLinearAddrRecord:
		return true
	}
	return false
}

// Record is the decoded form of one Intel HEX line.
type Record struct {
	ByteCount int
	Address   uint16
	Type      RecordType
	Data      []byte
	Checksum  byte
}

// Decode parses one line of an Intel HEX file into a Record. It is a pure
// function of the line text; a trailing CR/LF is tolerated. On failure it
// returns a *Fault whose kind is the first failing check in the order:
// MissingStartCode, MalformedFields, InvalidRecordType, ByteCountMismatch.
func Decode(line string) (*Record, error) {
	line = strings.TrimRight(line, "\r\n")

	if len(line) == 0 || line[0] != ':' {
		return nil, newFault(MissingStartCode)
	}

	if len(line) < 1+8 {
		return nil, newFault(MalformedFields)
	}
	byteCount, err := strconv.ParseUint(line[1:3], 16, 8)
	if err != nil {
		return nil, newFault(MalformedFields)
	}
	address, err := strconv.ParseUint(line[3:7], 16, 16)
	if err != nil {
		return nil, newFault(MalformedFields)
	}
	recordType, err := strconv.ParseUint(line[7:9], 16, 8)
	if err != nil {
		return nil, newFault(MalformedFields)
	}

	if !validRecordType(RecordType(recordType)) {
		return nil, newFault(InvalidRecordType)
	}

	// Data-byte pairs actually present on the line, from its length. An
	// unpaired leftover character is a count mismatch too: the line must be
	// exactly marker + header + data pairs + checksum.
	observed := (len(line) - headerWidth) / 2
	if observed != int(byteCount) || (len(line)-headerWidth)%2 != 0 {
		return nil, newFault(ByteCountMismatch)
	}

	r := &Record{
		ByteCount: int(byteCount),
		Address:   uint16(address),
		Type:      RecordType(recordType),
		Data:      make([]byte, byteCount),
	}
	for i := 0; i < r.ByteCount; i++ {
		b, err := strconv.ParseUint(line[9+i*2:11+i*2], 16, 8)
		if err != nil {
			return nil, newFault(MalformedFields)
		}
		r.Data[i] = byte(b)
	}
	checksum, err := strconv.ParseUint(line[len(line)-2:], 16, 8)
	if err != nil {
		return nil, newFault(MalformedFields)
	}
	r.Checksum = byte(checksum)

	return r, nil
}
