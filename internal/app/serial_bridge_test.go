package app

import (
	"testing"
)

func TestParseTiltLine(t *testing.T) {
	testCases := []struct {
		name      string
		line      string
		wantRoll  float64
		wantPitch float64
		wantErr   bool
	}{
		{"plain", "0.1234,-0.5678", 0.1234, -0.5678, false},
		{"zeros", "0.0000,0.0000", 0, 0, false},
		{"crlf line ending", "0.5000,0.2500\r\n", 0.5, 0.25, false},
		{"leading whitespace", "  1.0000,-1.0000", 1.0, -1.0, false},
		{"single field", "1.0", 0, 0, true},
		{"three fields", "0.1,0.2,0.3", 0, 0, true},
		{"garbage fields", "a,b", 0, 0, true},
		{"empty", "", 0, 0, true},
		{"boot noise", "ADXL343 Initialized", 0, 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseTiltLine(tc.line)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("parseTiltLine(%q) succeeded, want error", tc.line)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseTiltLine(%q): %v", tc.line, err)
			}
			if got.Roll != tc.wantRoll || got.Pitch != tc.wantPitch {
				t.Errorf("parseTiltLine(%q) = %+v, want roll=%v pitch=%v",
					tc.line, got, tc.wantRoll, tc.wantPitch)
			}
		})
	}
}
