package ffmpeg

import "testing"

func TestParseLength(t *testing.T) {
	tests := []struct {
		name   string
		stdout string
		want   float64
		ok     bool
	}{
		{"plain", "183.446000\n", 183.446, true},
		{"no newline", "30.5", 30.5, true},
		{"windows newline", "212.040000\r\n", 212.04, true},
		{"empty", "", 0, false},
		{"not a number", "N/A\n", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseLength([]byte(tt.stdout))
			if tt.ok != (err == nil) {
				t.Fatalf("err = %v, want ok=%v", err, tt.ok)
			}
			if tt.ok && got != tt.want {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}
