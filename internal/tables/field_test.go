package tables

import (
	"errors"
	"reflect"
	"strconv"
	"testing"
	"time"
)

// ─── Decode contract ───────────────────────────────────────────────

func TestFieldDecodeRaw(t *testing.T) {
	tests := []struct {
		name    string
		field   Field
		raw     string
		want    any
		wantErr error
	}{
		{"string passthrough", StringField("card", "CardNo"), "123456", "123456", nil},
		{"int coercion", IntField("door", "DoorID"), "3", 3, nil},
		{"int garbage", IntField("door", "DoorID"), "three", nil, ErrConversion},
		{"bool zero", BoolField("super", "SuperAuthorize"), "0", false, nil},
		{"bool nonzero", BoolField("super", "SuperAuthorize"), "15", true, nil},
		{"bool garbage", BoolField("super", "SuperAuthorize"), "yes", nil, ErrConversion},
		{"enum", EnumField[HolidayLoop]("loop", "Loop"), "1", LoopRepeat, nil},
		{"enum garbage", EnumField[HolidayLoop]("loop", "Loop"), "loop", nil, ErrConversion},
		{"lookup inside domain", LookupField[EventCode]("event", "EventType", EventTypes), "27", EventCode(27), nil},
		{"lookup outside domain", LookupField[EventCode]("event", "EventType", EventTypes), "9999", nil, ErrConversion},
		{"date", DateField("start", "StartTime"), "20240131", time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), nil},
		{"date garbage", DateField("start", "StartTime"), "31/01/2024", nil, ErrConversion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.field.DecodeRaw(tt.raw)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("DecodeRaw(%q) error = %v, want %v", tt.raw, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeRaw(%q) error = %v", tt.raw, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DecodeRaw(%q) = %#v, want %#v", tt.raw, got, tt.want)
			}
		})
	}
}

// ─── Encode contract ───────────────────────────────────────────────

func TestFieldEncodeValue(t *testing.T) {
	tests := []struct {
		name    string
		field   Field
		value   any
		want    string
		wantErr error
	}{
		{"string", StringField("card", "CardNo"), "123456", "123456", nil},
		{"int", IntField("door", "DoorID"), 3, "3", nil},
		{"type mismatch", IntField("door", "DoorID"), "3", "", ErrTypeMismatch},
		{"bool true", BoolField("super", "SuperAuthorize"), true, "1", nil},
		{"bool false", BoolField("super", "SuperAuthorize"), false, "0", nil},
		{"enum unwraps", EnumField[HolidayLoop]("loop", "Loop"), LoopRepeat, "1", nil},
		{"enum wrong type", EnumField[HolidayLoop]("loop", "Loop"), 1, "", ErrTypeMismatch},
		{"lookup inside domain", LookupField[EventCode]("event", "EventType", EventTypes), EventCode(27), "27", nil},
		{"lookup outside domain", LookupField[EventCode]("event", "EventType", EventTypes), EventCode(9999), "", ErrValidation},
		{"date", DateField("start", "StartTime"), time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), "20240131", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.field.EncodeValue(tt.value)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("EncodeValue(%v) error = %v, want %v", tt.value, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("EncodeValue(%v) error = %v", tt.value, err)
			}
			if got != tt.want {
				t.Errorf("EncodeValue(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestFieldValidationHook(t *testing.T) {
	f := IntField("holiday_type", "HolidayType").WithValidate(func(v any) bool {
		n := v.(int)
		return n >= 1 && n <= 3
	})

	if _, err := f.EncodeValue(2); err != nil {
		t.Errorf("EncodeValue(2) error = %v, want nil", err)
	}
	if _, err := f.EncodeValue(0); !errors.Is(err, ErrValidation) {
		t.Errorf("EncodeValue(0) error = %v, want ErrValidation", err)
	}
	if _, err := f.EncodeValue(4); !errors.Is(err, ErrValidation) {
		t.Errorf("EncodeValue(4) error = %v, want ErrValidation", err)
	}
}

func TestWithValidateCopies(t *testing.T) {
	base := IntField("n", "N")
	restricted := base.WithValidate(func(any) bool { return false })

	if _, err := base.EncodeValue(7); err != nil {
		t.Errorf("base descriptor affected by WithValidate: %v", err)
	}
	if _, err := restricted.EncodeValue(7); !errors.Is(err, ErrValidation) {
		t.Errorf("restricted EncodeValue error = %v, want ErrValidation", err)
	}
}

// ─── Doors field (spec fixtures) ───────────────────────────────────

func TestDoorsFieldFixtures(t *testing.T) {
	f := DoorsField("doors", "AuthorizeDoorId")

	// (true, false, false, false) must encode and decode back exactly.
	raw, err := f.EncodeValue([]bool{true, false, false, false})
	if err != nil {
		t.Fatalf("EncodeValue() error = %v", err)
	}
	if raw != "1" {
		t.Errorf("EncodeValue(door 1 only) = %q, want %q", raw, "1")
	}
	back, err := f.DecodeRaw(raw)
	if err != nil {
		t.Fatalf("DecodeRaw(%q) error = %v", raw, err)
	}
	want := []bool{true, false, false, false}
	if !reflect.DeepEqual(back, want) {
		t.Errorf("DecodeRaw(%q) = %v, want %v", raw, back, want)
	}

	// (true, false, true, false) packs bits 0 and 2.
	raw, err = f.EncodeValue([]bool{true, false, true, false})
	if err != nil {
		t.Fatalf("EncodeValue() error = %v", err)
	}
	if raw != strconv.Itoa(0b0101) {
		t.Errorf("EncodeValue(doors 1,3) = %q, want %q", raw, "5")
	}

	// Wrong tuple lengths fail validation, right length succeeds.
	if _, err := f.EncodeValue([]bool{true, false, true}); !errors.Is(err, ErrValidation) {
		t.Errorf("EncodeValue(3 doors) error = %v, want ErrValidation", err)
	}
	if _, err := f.EncodeValue([]bool{true, false, true, false, true}); !errors.Is(err, ErrValidation) {
		t.Errorf("EncodeValue(5 doors) error = %v, want ErrValidation", err)
	}
	if _, err := f.EncodeValue([]bool{false, false, false, false}); err != nil {
		t.Errorf("EncodeValue(4 doors) error = %v, want nil", err)
	}
}

// ─── Round trips ───────────────────────────────────────────────────

func TestFieldRoundTrips(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		value any
	}{
		{"string", StringField("card", "CardNo"), "007"},
		{"int", IntField("door", "DoorID"), 4},
		{"bool", BoolField("super", "SuperAuthorize"), true},
		{"enum", EnumField[PassageDirection]("dir", "InOutState"), DirectionExit},
		{"lookup", LookupField[InputIndex]("in", "InAddr", InputPoints), InputIndex(5)},
		{"date", DateField("start", "StartTime"), time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC)},
		{"datetime", DateTimeField("time", "Time_second"), time.Date(2026, 8, 29, 10, 11, 12, 0, time.UTC)},
		{"doors", DoorsField("doors", "AuthorizeDoorId"), []bool{false, true, true, false}},
		{"timerange", TimeRangeField("mon", "MonTime1"), TimeRange{
			From: time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC),
			To:   time.Date(0, 1, 1, 18, 30, 0, 0, time.UTC),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := tt.field.EncodeValue(tt.value)
			if err != nil {
				t.Fatalf("EncodeValue(%v) error = %v", tt.value, err)
			}
			decoded, err := tt.field.DecodeRaw(raw)
			if err != nil {
				t.Fatalf("DecodeRaw(%q) error = %v", raw, err)
			}
			if !reflect.DeepEqual(decoded, tt.value) {
				t.Errorf("decode(encode(%v)) = %#v", tt.value, decoded)
			}

			// And back out: encoding the decoded value reproduces the raw.
			again, err := tt.field.EncodeValue(decoded)
			if err != nil {
				t.Fatalf("EncodeValue(decoded) error = %v", err)
			}
			if again != raw {
				t.Errorf("encode(decode(%q)) = %q", raw, again)
			}
		})
	}
}
