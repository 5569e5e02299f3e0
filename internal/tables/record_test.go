package tables

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// fakeConn records the three-step protocol calls made against it.
type fakeConn struct {
	beginErr  error
	sendErr   error
	commitErr error

	writes  []fakeOp
	deletes []fakeOp
}

type fakeOp struct {
	table string
	row   map[string]string
}

type fakeSession struct {
	conn   *fakeConn
	table  string
	delete bool
	row    map[string]string
}

func (c *fakeConn) BeginWrite(_ context.Context, table string) (Session, error) {
	if c.beginErr != nil {
		return nil, c.beginErr
	}
	return &fakeSession{conn: c, table: table}, nil
}

func (c *fakeConn) BeginDelete(_ context.Context, table string) (Session, error) {
	if c.beginErr != nil {
		return nil, c.beginErr
	}
	return &fakeSession{conn: c, table: table, delete: true}, nil
}

func (s *fakeSession) Send(_ context.Context, row map[string]string) error {
	if s.conn.sendErr != nil {
		return s.conn.sendErr
	}
	s.row = row
	return nil
}

func (s *fakeSession) Commit(_ context.Context) error {
	if s.conn.commitErr != nil {
		return s.conn.commitErr
	}
	op := fakeOp{table: s.table, row: s.row}
	if s.delete {
		s.conn.deletes = append(s.conn.deletes, op)
	} else {
		s.conn.writes = append(s.conn.writes, op)
	}
	return nil
}

// ─── Construction ──────────────────────────────────────────────────

func TestNewRecord(t *testing.T) {
	rec, err := New(HolidaySchema, map[string]any{
		"holiday":      "0101",
		"holiday_type": 2,
		"loop":         LoopRepeat,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if !rec.Dirty() {
		t.Error("Dirty() = false on a record built from values, want true")
	}

	want := map[string]string{"Holiday": "0101", "HolidayType": "2", "Loop": "1"}
	got := rec.RawView()
	for k, v := range want {
		if got[k] != v {
			t.Errorf("RawView()[%q] = %q, want %q", k, got[k], v)
		}
	}
}

func TestNewRecordUnknownField(t *testing.T) {
	_, err := New(HolidaySchema, map[string]any{
		"holiday": "0101",
		"nope":    1,
	})
	if !errors.Is(err, ErrUnknownField) {
		t.Fatalf("New() error = %v, want ErrUnknownField", err)
	}
}

func TestNewRecordEncodeFailureLeavesNothing(t *testing.T) {
	_, err := New(HolidaySchema, map[string]any{
		"holiday":      "0101",
		"holiday_type": 9, // outside 1..3
	})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("New() error = %v, want ErrValidation", err)
	}
}

func TestFromRaw(t *testing.T) {
	rec, err := FromRaw(HolidaySchema, map[string]string{"Holiday": "0101"}, false)
	if err != nil {
		t.Fatalf("FromRaw() error = %v", err)
	}
	if rec.Dirty() {
		t.Error("Dirty() = true on a clean loaded record, want false")
	}

	// Raw keys outside the schema are rejected.
	_, err = FromRaw(HolidaySchema, map[string]string{"Bogus": "1"}, false)
	if !errors.Is(err, ErrUnknownField) {
		t.Errorf("FromRaw(bogus key) error = %v, want ErrUnknownField", err)
	}
}

func TestFromRawCopiesInput(t *testing.T) {
	raw := map[string]string{"Holiday": "0101"}
	rec, err := FromRaw(HolidaySchema, raw, false)
	if err != nil {
		t.Fatalf("FromRaw() error = %v", err)
	}
	raw["Holiday"] = "tampered"

	v, err := rec.Get("holiday")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if v != "0101" {
		t.Errorf("Get(holiday) = %v after caller mutation, want %q", v, "0101")
	}
}

// ─── Field access ──────────────────────────────────────────────────

func TestRecordAbsentFieldReadsAsAbsent(t *testing.T) {
	rec, err := New(HolidaySchema, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	v, err := rec.Get("holiday")
	if err != nil {
		t.Fatalf("Get(absent) error = %v, want nil", err)
	}
	if v != nil {
		t.Errorf("Get(absent) = %v, want nil", v)
	}

	s, ok, err := Get[string](rec, "holiday")
	if err != nil || ok || s != "" {
		t.Errorf("Get[string](absent) = %q, %v, %v; want zero, false, nil", s, ok, err)
	}
}

func TestRecordSetAndGet(t *testing.T) {
	rec, err := FromRaw(HolidaySchema, nil, false)
	if err != nil {
		t.Fatalf("FromRaw() error = %v", err)
	}

	if err := rec.Set("loop", LoopOnce); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if !rec.Dirty() {
		t.Error("Dirty() = false after Set, want true")
	}

	loop, ok, err := Get[HolidayLoop](rec, "loop")
	if err != nil || !ok {
		t.Fatalf("Get[HolidayLoop]() = %v, %v", ok, err)
	}
	if loop != LoopOnce {
		t.Errorf("Get[HolidayLoop]() = %v, want %v", loop, LoopOnce)
	}
}

func TestRecordSetUnknownField(t *testing.T) {
	rec, _ := New(HolidaySchema, nil)
	if err := rec.Set("nope", 1); !errors.Is(err, ErrUnknownField) {
		t.Errorf("Set(nope) error = %v, want ErrUnknownField", err)
	}
}

func TestRecordSetNilDeletes(t *testing.T) {
	rec, err := New(HolidaySchema, map[string]any{"holiday": "0101"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := rec.Set("holiday", nil); err != nil {
		t.Fatalf("Set(nil) error = %v", err)
	}
	if v, _ := rec.Get("holiday"); v != nil {
		t.Errorf("Get() after Set(nil) = %v, want nil", v)
	}
}

func TestRecordUnsetDirtiesOnlyOnRemoval(t *testing.T) {
	rec, err := FromRaw(HolidaySchema, map[string]string{"Holiday": "0101"}, false)
	if err != nil {
		t.Fatalf("FromRaw() error = %v", err)
	}

	// Unsetting an absent field is a no-op.
	if err := rec.Unset("loop"); err != nil {
		t.Fatalf("Unset(absent) error = %v", err)
	}
	if rec.Dirty() {
		t.Error("Dirty() = true after no-op Unset, want false")
	}

	if err := rec.Unset("holiday"); err != nil {
		t.Fatalf("Unset() error = %v", err)
	}
	if !rec.Dirty() {
		t.Error("Dirty() = false after removing a field, want true")
	}
}

func TestRecordFailedWriteKeepsState(t *testing.T) {
	rec, err := New(HolidaySchema, map[string]any{"holiday_type": 2})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := rec.Set("holiday_type", 9); !errors.Is(err, ErrValidation) {
		t.Fatalf("Set(9) error = %v, want ErrValidation", err)
	}

	n, ok, err := Get[int](rec, "holiday_type")
	if err != nil || !ok || n != 2 {
		t.Errorf("holiday_type after failed write = %v, %v, %v; want 2, true, nil", n, ok, err)
	}
}

func TestGetWrongType(t *testing.T) {
	rec, _ := New(HolidaySchema, map[string]any{"holiday": "0101"})
	if _, _, err := Get[int](rec, "holiday"); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("Get[int](string field) error = %v, want ErrTypeMismatch", err)
	}
}

func TestRecordData(t *testing.T) {
	rec, err := New(HolidaySchema, map[string]any{
		"holiday": "0101",
		"loop":    LoopRepeat,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	data, err := rec.Data()
	if err != nil {
		t.Fatalf("Data() error = %v", err)
	}
	if data["holiday"] != "0101" || data["loop"] != LoopRepeat {
		t.Errorf("Data() = %v", data)
	}
	if _, present := data["holiday_type"]; present {
		t.Error("Data() contains absent field holiday_type")
	}
}

func TestRecordDataSurfacesConversionFailure(t *testing.T) {
	rec, err := FromRaw(HolidaySchema, map[string]string{"Loop": "junk"}, false)
	if err != nil {
		t.Fatalf("FromRaw() error = %v", err)
	}
	if _, err := rec.Data(); !errors.Is(err, ErrConversion) {
		t.Errorf("Data() error = %v, want ErrConversion", err)
	}
}

// ─── Persistence ───────────────────────────────────────────────────

func TestRecordSaveDetached(t *testing.T) {
	rec, _ := New(HolidaySchema, map[string]any{"holiday": "0101"})

	if err := rec.Save(context.Background()); !errors.Is(err, ErrDetached) {
		t.Errorf("Save() error = %v, want ErrDetached", err)
	}
	if err := rec.Delete(context.Background()); !errors.Is(err, ErrDetached) {
		t.Errorf("Delete() error = %v, want ErrDetached", err)
	}
}

func TestRecordSave(t *testing.T) {
	conn := &fakeConn{}
	rec, _ := New(HolidaySchema, map[string]any{"holiday": "0101"})
	rec.WithConn(conn)

	if err := rec.Save(context.Background()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if rec.Dirty() {
		t.Error("Dirty() = true after successful save, want false")
	}
	if len(conn.writes) != 1 {
		t.Fatalf("writes = %d, want 1", len(conn.writes))
	}
	if conn.writes[0].table != "holiday" {
		t.Errorf("written table = %q, want %q", conn.writes[0].table, "holiday")
	}
	if conn.writes[0].row["Holiday"] != "0101" {
		t.Errorf("written row = %v", conn.writes[0].row)
	}
}

func TestRecordDeleteMarksStale(t *testing.T) {
	conn := &fakeConn{}
	rec, err := FromRaw(HolidaySchema, map[string]string{"Holiday": "0101"}, false)
	if err != nil {
		t.Fatalf("FromRaw() error = %v", err)
	}
	rec.WithConn(conn)

	if err := rec.Delete(context.Background()); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if !rec.Dirty() {
		t.Error("Dirty() = false after delete, want true (stale marker)")
	}
	if len(conn.deletes) != 1 {
		t.Fatalf("deletes = %d, want 1", len(conn.deletes))
	}
}

func TestRecordSaveBackendFailures(t *testing.T) {
	backendErr := errors.New("channel fault")

	tests := []struct {
		name string
		conn *fakeConn
	}{
		{"begin fails", &fakeConn{beginErr: backendErr}},
		{"send fails", &fakeConn{sendErr: backendErr}},
		{"commit fails", &fakeConn{commitErr: backendErr}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, _ := New(HolidaySchema, map[string]any{"holiday": "0101"})
			rec.WithConn(tt.conn)

			err := rec.Save(context.Background())
			if !errors.Is(err, backendErr) {
				t.Fatalf("Save() error = %v, want wrapped backend error", err)
			}
			if !rec.Dirty() {
				t.Error("Dirty() = false after failed save, want true")
			}
		})
	}
}

// ─── Display ───────────────────────────────────────────────────────

func TestRecordString(t *testing.T) {
	rec, err := New(HolidaySchema, map[string]any{
		"holiday": "0101",
		"loop":    LoopRepeat,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	s := rec.String()
	if !strings.HasPrefix(s, "*holiday(") {
		t.Errorf("String() = %q, want dirty marker and table name prefix", s)
	}
	for _, piece := range []string{"holiday=0101", "holiday_type=<absent>", "loop=repeat"} {
		if !strings.Contains(s, piece) {
			t.Errorf("String() = %q, missing %q", s, piece)
		}
	}

	clean, _ := FromRaw(HolidaySchema, nil, false)
	if strings.HasPrefix(clean.String(), "*") {
		t.Errorf("String() = %q carries dirty marker on clean record", clean.String())
	}
}
