package tables

import (
	"strconv"
	"testing"
	"time"
)

// ─── Dates ─────────────────────────────────────────────────────────

func TestDecodeDate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    time.Time
		wantErr bool
	}{
		{"normal date", "20240131", time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), false},
		{"epoch", "20000101", time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), false},
		{"too short", "2024011", time.Time{}, true},
		{"not a date", "notadate", time.Time{}, true},
		{"month out of range", "20241301", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeDate(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("decodeDate(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("decodeDate(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestEncodeDate(t *testing.T) {
	got := encodeDate(time.Date(2024, 1, 31, 15, 4, 5, 0, time.UTC))
	if got != "20240131" {
		t.Errorf("encodeDate() = %q, want %q", got, "20240131")
	}
}

func TestDateRoundTrip(t *testing.T) {
	raw := "20261224"
	decoded, err := decodeDate(raw)
	if err != nil {
		t.Fatalf("decodeDate() error = %v", err)
	}
	if got := encodeDate(decoded); got != raw {
		t.Errorf("round trip = %q, want %q", got, raw)
	}
}

// ─── Packed timestamps ─────────────────────────────────────────────

func TestDecodeCTime(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    time.Time
		wantErr bool
	}{
		{"epoch", "0", time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), false},
		{"one day in", "86400", time.Date(2000, 1, 2, 0, 0, 0, 0, time.UTC), false},
		{"one month in", "2678400", time.Date(2000, 2, 1, 0, 0, 0, 0, time.UTC), false},
		{"one year in", "32140800", time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC), false},
		{"with clock", "90061", time.Date(2000, 1, 2, 1, 1, 1, 0, time.UTC), false},
		{"negative", "-5", time.Time{}, true},
		{"garbage", "x", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeCTime(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("decodeCTime(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("decodeCTime(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestEncodeCTime(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want int64
	}{
		{"epoch", time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), 0},
		{"one day in", time.Date(2000, 1, 2, 0, 0, 0, 0, time.UTC), 86400},
		{"one month in", time.Date(2000, 2, 1, 0, 0, 0, 0, time.UTC), 2678400},
		{"one year in", time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC), 32140800},
		{"with clock", time.Date(2000, 1, 2, 1, 1, 1, 0, time.UTC), 90061},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := encodeCTime(tt.in); got != tt.want {
				t.Errorf("encodeCTime(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestCTimeRoundTrip(t *testing.T) {
	in := time.Date(2026, 8, 29, 13, 37, 21, 0, time.UTC)
	n := encodeCTime(in)
	out, err := decodeCTime(intToString(n))
	if err != nil {
		t.Fatalf("decodeCTime() error = %v", err)
	}
	if !out.Equal(in) {
		t.Errorf("round trip = %v, want %v", out, in)
	}
}

// ─── Time ranges ───────────────────────────────────────────────────

func TestDecodeTimeRange(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantFrom string
		wantTo   string
		wantErr  bool
	}{
		// 830<<16 | 1745
		{"working hours", "54396625", "08:30", "17:45", false},
		{"all day", "2359", "00:00", "23:59", false},
		{"zero", "0", "00:00", "00:00", false},
		{"bad start clock", "163840000", "", "", true}, // 2500<<16
		{"bad end clock", "2475", "", "", true},
		{"garbage", "range", "", "", true},
		{"negative", "-1", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeTimeRange(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("decodeTimeRange(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			from := got.From.Format("15:04")
			to := got.To.Format("15:04")
			if from != tt.wantFrom || to != tt.wantTo {
				t.Errorf("decodeTimeRange(%q) = %s-%s, want %s-%s", tt.raw, from, to, tt.wantFrom, tt.wantTo)
			}
		})
	}
}

func TestEncodeTimeRange(t *testing.T) {
	tr := TimeRange{
		From: time.Date(0, 1, 1, 8, 30, 0, 0, time.UTC),
		To:   time.Date(0, 1, 1, 17, 45, 0, 0, time.UTC),
	}
	if got := encodeTimeRange(tr); got != 54396625 {
		t.Errorf("encodeTimeRange() = %d, want 54396625", got)
	}

	// Full timestamps are accepted; only the wall clock matters.
	tr = TimeRange{
		From: time.Date(2026, 8, 29, 8, 30, 0, 0, time.UTC),
		To:   time.Date(2026, 8, 29, 17, 45, 0, 0, time.UTC),
	}
	if got := encodeTimeRange(tr); got != 54396625 {
		t.Errorf("encodeTimeRange(timestamps) = %d, want 54396625", got)
	}
}

func TestTimeRangeRoundTrip(t *testing.T) {
	in := TimeRange{
		From: time.Date(0, 1, 1, 6, 15, 0, 0, time.UTC),
		To:   time.Date(0, 1, 1, 22, 0, 0, 0, time.UTC),
	}
	out, err := decodeTimeRange(intToString(int64(encodeTimeRange(in))))
	if err != nil {
		t.Fatalf("decodeTimeRange() error = %v", err)
	}
	if out.String() != in.String() {
		t.Errorf("round trip = %v, want %v", out, in)
	}
}

// ─── Door sets ─────────────────────────────────────────────────────

func TestEncodeDoors(t *testing.T) {
	tests := []struct {
		name  string
		doors []bool
		want  int
	}{
		{"door 1 only", []bool{true, false, false, false}, 1},
		{"doors 1 and 3", []bool{true, false, true, false}, 5},
		{"all doors", []bool{true, true, true, true}, 15},
		{"no doors", []bool{false, false, false, false}, 0},
		{"door 4 only", []bool{false, false, false, true}, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := encodeDoors(tt.doors); got != tt.want {
				t.Errorf("encodeDoors(%v) = %d, want %d", tt.doors, got, tt.want)
			}
		})
	}
}

func TestDecodeDoors(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []bool
		wantErr bool
	}{
		{"door 1 only", "1", []bool{true, false, false, false}, false},
		{"doors 1 and 3", "5", []bool{true, false, true, false}, false},
		{"all doors", "15", []bool{true, true, true, true}, false},
		{"no doors", "0", []bool{false, false, false, false}, false},
		{"too large", "16", nil, true},
		{"negative", "-1", nil, true},
		{"garbage", "doors", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeDoors(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("decodeDoors(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("decodeDoors(%q) length = %d, want %d", tt.raw, len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("decodeDoors(%q)[%d] = %v, want %v", tt.raw, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDoorsRoundTrip(t *testing.T) {
	in := []bool{true, false, false, false}
	out, err := decodeDoors(intToString(int64(encodeDoors(in))))
	if err != nil {
		t.Fatalf("decodeDoors() error = %v", err)
	}
	for i := range in {
		if out[i] != in[i] {
			t.Fatalf("round trip = %v, want %v", out, in)
		}
	}
}

// intToString keeps the round-trip fixtures readable.
func intToString(n int64) string {
	return strconv.FormatInt(n, 10)
}
