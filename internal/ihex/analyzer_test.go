package ihex

import "testing"

func TestAnalyzeLinesValidFile(t *testing.T) {
	lines := []string{
		":0300300002337A1E",
		":020000040001F9",
		":00000001FF",
	}
	if fault := AnalyzeLines(lines); fault != nil {
		t.Errorf("AnalyzeLines = %v, want nil", fault)
	}
}

func TestAnalyzeLinesEmpty(t *testing.T) {
	if fault := AnalyzeLines(nil); fault != nil {
		t.Errorf("AnalyzeLines(nil) = %v, want nil", fault)
	}
}

func TestAnalyzeLinesFailFast(t *testing.T) {
	lines := []string{
		":0300300002337A1E",
		":0300300002337A1F", // checksum off by one
		"garbage",           // never examined
	}
	fault := AnalyzeLines(lines)
	if fault == nil {
		t.Fatal("AnalyzeLines = nil, want fault")
	}
	if fault.Kind != ChecksumMismatch {
		t.Errorf("Kind = %v, want ChecksumMismatch", fault.Kind)
	}
	if fault.Line != 2 {
		t.Errorf("Line = %d, want 2", fault.Line)
	}
}

func TestAnalyzeLinesReportsFirstKindOnly(t *testing.T) {
	tests := []struct {
		name string
		line string
		kind FaultKind
	}{
		{"missing colon", "0300300002337A1E", MissingStartCode},
		{"malformed", ":03XX300002337A1E", MalformedFields},
		{"bad type", ":0300300302337A1B", InvalidRecordType},
		{"count mismatch", ":0400300002337A1D", ByteCountMismatch},
		{"checksum", ":0300300002337A1F", ChecksumMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fault := AnalyzeLines([]string{tt.line})
			if fault == nil {
				t.Fatal("want fault, got nil")
			}
			if fault.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", fault.Kind, tt.kind)
			}
			if fault.Line != 1 {
				t.Errorf("Line = %d, want 1", fault.Line)
			}
		})
	}
}

func TestCheckTerminalRecord(t *testing.T) {
	data := ":0300300002337A1E"

	tests := []struct {
		name  string
		lines []string
		kind  FaultKind
		line  int
	}{
		{"single EOF at end", []string{data, EOFLine}, 0, 0},
		{"only EOF", []string{EOFLine}, 0, 0},
		{"no EOF", []string{data}, MissingEOF, 0},
		{"empty file", nil, MissingEOF, 0},
		{"EOF followed by record", []string{EOFLine, data}, EOFNotAtEnd, 1},
		{"EOF followed by blank line", []string{data, EOFLine, ""}, EOFNotAtEnd, 2},
		{"two EOFs", []string{data, EOFLine, EOFLine}, DuplicateEOF, 2},
		{"two EOFs reports first", []string{EOFLine, data, EOFLine}, DuplicateEOF, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fault := CheckTerminalRecord(tt.lines)
			if tt.kind == 0 {
				if fault != nil {
					t.Fatalf("fault = %v, want nil", fault)
				}
				return
			}
			if fault == nil {
				t.Fatalf("fault = nil, want %v", tt.kind)
			}
			if fault.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", fault.Kind, tt.kind)
			}
			if fault.Line != tt.line {
				t.Errorf("Line = %d, want %d", fault.Line, tt.line)
			}
		})
	}
}

func TestInspectCarriesAddressState(t *testing.T) {
	lines := []string{
		":0300300002337A1E",
		":020000040001F9",
		":00000001FF",
	}
	infos := Inspect(lines)
	if len(infos) != 3 {
		t.Fatalf("len(infos) = %d, want 3", len(infos))
	}

	if infos[0].Line != 1 || infos[0].Record.Type != DataRecord {
		t.Errorf("first row = line %d type %v, want line 1 Data", infos[0].Line, infos[0].Record.Type)
	}

	ela := infos[1].Resolution
	if !ela.HasAbs || ela.Absolute != 0x00010030 {
		t.Errorf("ELA resolution = %+v, want absolute 00010030", ela)
	}

	if !infos[2].Resolution.Terminal {
		t.Error("EOF row not terminal")
	}
}

func TestInspectSkipsUndecodableLines(t *testing.T) {
	infos := Inspect([]string{":0300300002337A1E", "", ":00000001FF"})
	if len(infos) != 2 {
		t.Fatalf("len(infos) = %d, want 2", len(infos))
	}
	if infos[1].Line != 3 {
		t.Errorf("second row line = %d, want 3", infos[1].Line)
	}
}
