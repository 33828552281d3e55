package shift

import (
	"encoding/json"
	"testing"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{"00:00", NewTimeOfDay(0, 0), false},
		{"09:00", NewTimeOfDay(9, 0), false},
		{"09:30", NewTimeOfDay(9, 30), false},
		{"23:59", NewTimeOfDay(23, 59), false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"-1:00", 0, true},
		{"9", 0, true},
		{"", 0, true},
		{"ab:cd", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseTimeOfDay(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseTimeOfDay(%q): expected error, got %v", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTimeOfDay(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTimeOfDay(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTimeOfDayString(t *testing.T) {
	if got := NewTimeOfDay(9, 5).String(); got != "09:05" {
		t.Errorf("String() = %q, want %q", got, "09:05")
	}
	if got := NewTimeOfDay(0, 0).String(); got != "00:00" {
		t.Errorf("String() = %q, want %q", got, "00:00")
	}
	if got := NewTimeOfDay(23, 59).String(); got != "23:59" {
		t.Errorf("String() = %q, want %q", got, "23:59")
	}
}

func TestTimeOfDayJSONRoundTrip(t *testing.T) {
	orig := NewTimeOfDay(14, 30)

	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"14:30"` {
		t.Errorf("marshal = %s, want %q", data, `"14:30"`)
	}

	var back TimeOfDay
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != orig {
		t.Errorf("round trip = %v, want %v", back, orig)
	}
}

func TestTimeOfDayUnmarshalRejectsBadInput(t *testing.T) {
	var tod TimeOfDay
	for _, in := range []string{`"25:00"`, `"12:99"`, `"noon"`, `1230`} {
		if err := json.Unmarshal([]byte(in), &tod); err == nil {
			t.Errorf("unmarshal %s: expected error", in)
		}
	}
}
