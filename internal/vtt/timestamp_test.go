package vtt

import "testing"

func TestTimestamp_Bounds(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		wantMs uint64
		wantOk bool
	}{
		{"zero offset", "00:00:00.000", 0, true},
		{"maximal in-range value", "23:59:59.999", 86_399_999, true},
		{"one millisecond", "00:00:00.001", 1, true},
		{"minutes at limit", "00:59:00.000", 59 * msPerMinute, true},
		{"minutes out of range", "00:60:00.000", 0, false},
		{"seconds out of range", "00:00:60.000", 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := parser{src: tc.in}
			ts, ok := p.timestamp()
			if ok != tc.wantOk {
				t.Fatalf("timestamp(%q) ok = %v; want %v", tc.in, ok, tc.wantOk)
			}
			if !tc.wantOk {
				if p.pos != 0 {
					t.Errorf("failed timestamp consumed input: pos = %d", p.pos)
				}
				return
			}
			if ts.Milliseconds() != tc.wantMs {
				t.Errorf("timestamp(%q) = %d ms; want %d", tc.in, ts.Milliseconds(), tc.wantMs)
			}
		})
	}
}

func TestTimestamp_String(t *testing.T) {
	tests := []struct {
		ms   uint64
		want string
	}{
		{0, "00:00:00.000"},
		{1, "00:00:00.001"},
		{2000, "00:00:02.000"},
		{86_399_999, "23:59:59.999"},
		{3_661_042, "01:01:01.042"},
	}

	for _, tc := range tests {
		if got := Timestamp(tc.ms).String(); got != tc.want {
			t.Errorf("Timestamp(%d).String() = %q; want %q", tc.ms, got, tc.want)
		}
	}
}

func TestTimestamp_Before(t *testing.T) {
	if !Timestamp(0).Before(Timestamp(1)) {
		t.Error("0 should be before 1")
	}
	if Timestamp(5).Before(Timestamp(5)) {
		t.Error("a timestamp is not before itself")
	}
	if Timestamp(2).Before(Timestamp(1)) {
		t.Error("2 should not be before 1")
	}
}
