package trim

import "testing"

func TestParseTimeString(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"1:23.5", 83.5, true},
		{"1:23", 83, true},
		{"23.5", 23.5, true},
		{"23", 23, true},
		{"0:00.0", 0, true},
		{"0:59", 59, true},
		{"10:00", 600, true},
		{" 1:05 ", 65, true},

		{"", 0, false},
		{"1:60", 0, false},    // seconds must stay below 60
		{"1:5", 0, false},     // seconds must be two digits
		{"1:23.45", 0, false}, // single decimal only
		{"1.23.4", 0, false},
		{"-5", 0, false},
		{"abc", 0, false},
		{"1:23:45", 0, false}, // hours belong to ParseHHMMSS
	}
	for _, tt := range tests {
		got, ok := ParseTimeString(tt.in)
		if ok != tt.ok {
			t.Errorf("ParseTimeString(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("ParseTimeString(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0:00.0"},
		{0.3, "0:00.3"}, // tenth digit must not fall to float noise
		{29.9, "0:29.9"},
		{83.5, "1:23.5"},
		{600, "10:00.0"},
		{-1, "0:00.0"},
	}
	for _, tt := range tests {
		if got := FormatTime(tt.in); got != tt.want {
			t.Errorf("FormatTime(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	// every supported literal format round-trips to its canonical
	// rendering
	tests := []struct {
		in        string
		canonical string
	}{
		{"1:23.5", "1:23.5"},
		{"1:23", "1:23.0"},
		{"23.5", "0:23.5"},
		{"23", "0:23.0"},
		{"0:00", "0:00.0"},
	}
	for _, tt := range tests {
		secs, ok := ParseTimeString(tt.in)
		if !ok {
			t.Fatalf("ParseTimeString(%q) failed", tt.in)
		}
		if got := FormatTime(secs); got != tt.canonical {
			t.Errorf("round trip %q -> %v -> %q, want %q", tt.in, secs, got, tt.canonical)
		}
	}
}

func TestFormatHHMMSS(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "00:00:00"},
		{83.5, "00:01:23"},
		{3723, "01:02:03"},
		{-3, "00:00:00"},
	}
	for _, tt := range tests {
		if got := FormatHHMMSS(tt.in); got != tt.want {
			t.Errorf("FormatHHMMSS(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseHHMMSS(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"00:01:23", 83, true},
		{"01:02:03", 3723, true},
		{"0:00:00", 0, true},
		{"00:70:00", 0, false},
		{"1:23", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseHHMMSS(tt.in)
		if ok != tt.ok {
			t.Errorf("ParseHHMMSS(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("ParseHHMMSS(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
