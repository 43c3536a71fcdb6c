package ihex

import (
	"fmt"
	"reflect"
	"testing"
)

func TestDecodeDataRecord(t *testing.T) {
	r, err := Decode(":0300300002337A1E\n")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if r.ByteCount != 3 {
		t.Errorf("ByteCount = %d, want 3", r.ByteCount)
	}
	if r.Address != 0x0030 {
		t.Errorf("Address = %04X, want 0030", r.Address)
	}
	if r.Type != DataRecord {
		t.Errorf("Type = %v, want Data", r.Type)
	}
	if !reflect.DeepEqual(r.Data, []byte{0x02, 0x33, 0x7A}) {
		t.Errorf("Data = % X, want 02 33 7A", r.Data)
	}
	if r.Checksum != 0x1E {
		t.Errorf("Checksum = %02X, want 1E", r.Checksum)
	}
}

func TestDecodeFaults(t *testing.T) {
	tests := []struct {
		name string
		line string
		kind FaultKind
	}{
		{"empty line", "", MissingStartCode},
		{"no colon", "0300300002337A1E", MissingStartCode},
		{"colon mid line", " :0300300002337A1E", MissingStartCode},
		{"truncated header", ":0030", MalformedFields},
		{"non-hex byte count", ":XX00300002337A1E", MalformedFields},
		{"non-hex address", ":03G0300002337A1E", MalformedFields},
		{"non-hex record type", ":030030ZW02337A1E", MalformedFields},
		{"type 03", ":0300300302337A1B", InvalidRecordType},
		{"type 06", ":0300300602337A18", InvalidRecordType},
		{"type FF", ":030030FF02337A1F", InvalidRecordType},
		{"count larger than data", ":0400300002337A1D", ByteCountMismatch},
		{"count smaller than data", ":0200300002337A1F", ByteCountMismatch},
		{"trailing junk after checksum", ":00000001FFF", ByteCountMismatch},
		{"unpaired data character", ":0300300002337A1EE", ByteCountMismatch},
		{"header without checksum", ":00000001F", ByteCountMismatch},
		{"non-hex data byte", ":03003000GG337A1E", MalformedFields},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.line)
			if err == nil {
				t.Fatal("Decode succeeded, want fault")
			}
			f, ok := err.(*Fault)
			if !ok {
				t.Fatalf("error type %T, want *Fault", err)
			}
			if f.Kind != tt.kind {
				t.Errorf("fault = %v, want %v", f.Kind, tt.kind)
			}
		})
	}
}

func TestDecodeIsPure(t *testing.T) {
	const line = ":0300300002337A1E"
	a, err := Decode(line)
	if err != nil {
		t.Fatal(err)
	}
	a.Data[0] = 0xFF // mutating one result must not leak into the next

	b, err := Decode(line)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(b.Data, []byte{0x02, 0x33, 0x7A}) {
		t.Errorf("second Decode data = % X, want 02 33 7A", b.Data)
	}
}

// encode rebuilds the line a record came from; used to check decode/encode
// round-trips for well-formed synthetic records.
func encode(r *Record) string {
	line := fmt.Sprintf(":%02X%04X%02X", r.ByteCount, r.Address, byte(r.Type))
	for _, b := range r.Data {
		line += fmt.Sprintf("%02X", b)
	}
	return line + fmt.Sprintf("%02X", r.Checksum)
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	records := []*Record{
		{ByteCount: 0, Address: 0, Type: EOFRecord, Data: []byte{}},
		{ByteCount: 3, Address: 0x0030, Type: DataRecord, Data: []byte{0x02, 0x33, 0x7A}},
		{ByteCount: 2, Address: 0, Type: ExtSegmentAddrRecord, Data: []byte{0x12, 0x00}},
		{ByteCount: 2, Address: 0, Type: ExtLinearAddrRecord, Data: []byte{0x00, 0x01}},
		{ByteCount: 4, Address: 0, Type: StartLinearAddrRecord, Data: []byte{0x00, 0x00, 0x01, 0x00}},
	}
	for _, want := range records {
		want.Checksum = want.ComputeChecksum()
		got, err := Decode(encode(want))
		if err != nil {
			t.Fatalf("Decode(%q): %v", encode(want), err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("round trip of %q: got %+v, want %+v", encode(want), got, want)
		}
		if err := got.Validate(); err != nil {
			t.Errorf("Validate(%q): %v", encode(want), err)
		}
	}
}

func TestValidateChecksum(t *testing.T) {
	// Same fixture with the trailing byte toggled.
	if err := CheckLine(":0300300002337A1E"); err != nil {
		t.Errorf("valid checksum rejected: %v", err)
	}

	err := CheckLine(":0300300002337A1F")
	if err == nil {
		t.Fatal("bad checksum accepted")
	}
	if f := err.(*Fault); f.Kind != ChecksumMismatch {
		t.Errorf("fault = %v, want ChecksumMismatch", f.Kind)
	}

	// A stray character after the checksum must not shift the checksum
	// window onto valid hex and slip through.
	err = CheckLine(":00000001FFF")
	if err == nil {
		t.Fatal("EOF record with trailing character accepted")
	}
	if f := err.(*Fault); f.Kind != ByteCountMismatch {
		t.Errorf("fault = %v, want ByteCountMismatch", f.Kind)
	}
}

func TestComputeChecksum(t *testing.T) {
	tests := []struct {
		line string
		want byte
	}{
		{":0300300002337A1E", 0x1E},
		{":00000001FF", 0xFF},
		{":020000040001F9", 0xF9},
		{":020000021200EA", 0xEA},
	}
	for _, tt := range tests {
		r, err := Decode(tt.line)
		if err != nil {
			t.Fatalf("Decode(%q): %v", tt.line, err)
		}
		if got := r.ComputeChecksum(); got != tt.want {
			t.Errorf("ComputeChecksum(%q) = %02X, want %02X", tt.line, got, tt.want)
		}
	}
}
