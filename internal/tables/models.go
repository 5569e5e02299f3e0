package tables

import (
	"fmt"
	"time"
)

// Built-in schemas for the panel's data tables. Each table gets a thin
// wrapper type embedding *Record with typed accessors per field; the
// descriptors carry the actual codec knowledge.

// RegisterBuiltin registers every built-in panel schema with the given
// registry. It is applied to the package default at init; embedders
// with isolated registries call it explicitly.
func RegisterBuiltin(r *Registry) error {
	for _, s := range []*Schema{
		UserSchema, UserAuthorizeSchema, HolidaySchema, TimezoneSchema,
		TransactionSchema, FirstCardSchema, MultiCardSchema,
		InOutFunSchema, TemplateV10Schema,
	} {
		if err := r.Register(s); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	if err := RegisterBuiltin(defaultRegistry); err != nil {
		panic(err)
	}
}

// ─── user ──────────────────────────────────────────────────────────

// UserSchema describes the card number information table.
var UserSchema = MustSchema("user",
	StringField("card", "CardNo"),
	StringField("pin", "Pin"),
	StringField("password", "Password"),
	StringField("group", "Group"),
	DateField("start_time", "StartTime"),
	DateField("end_time", "EndTime"),
	BoolField("super_authorize", "SuperAuthorize"),
)

// User is one row of the card number information table.
type User struct{ *Record }

// NewUser builds a bare user record from typed field values.
func NewUser(values map[string]any) (*User, error) {
	rec, err := New(UserSchema, values)
	if err != nil {
		return nil, err
	}
	return &User{rec}, nil
}

// AsUser wraps a generic record loaded from the user table.
func AsUser(r *Record) (*User, error) {
	if r.Schema() != UserSchema {
		return nil, fmt.Errorf("%w: record is %q, not %q", ErrTypeMismatch, r.Schema().TableName(), UserSchema.TableName())
	}
	return &User{r}, nil
}

func (u *User) Card() (string, bool, error)     { return Get[string](u.Record, "card") }
func (u *User) SetCard(v string) error          { return u.Set("card", v) }
func (u *User) Pin() (string, bool, error)      { return Get[string](u.Record, "pin") }
func (u *User) SetPin(v string) error           { return u.Set("pin", v) }
func (u *User) Password() (string, bool, error) { return Get[string](u.Record, "password") }
func (u *User) SetPassword(v string) error      { return u.Set("password", v) }
func (u *User) Group() (string, bool, error)    { return Get[string](u.Record, "group") }
func (u *User) SetGroup(v string) error         { return u.Set("group", v) }

func (u *User) StartTime() (time.Time, bool, error) { return Get[time.Time](u.Record, "start_time") }
func (u *User) SetStartTime(v time.Time) error      { return u.Set("start_time", v) }
func (u *User) EndTime() (time.Time, bool, error)   { return Get[time.Time](u.Record, "end_time") }
func (u *User) SetEndTime(v time.Time) error        { return u.Set("end_time", v) }

func (u *User) SuperAuthorize() (bool, bool, error) { return Get[bool](u.Record, "super_authorize") }
func (u *User) SetSuperAuthorize(v bool) error      { return u.Set("super_authorize", v) }

// ─── userauthorize ─────────────────────────────────────────────────

// UserAuthorizeSchema describes the access privilege list.
var UserAuthorizeSchema = MustSchema("userauthorize",
	StringField("pin", "Pin"),
	IntField("timezone_id", "AuthorizeTimezoneId"),
	DoorsField("doors", "AuthorizeDoorId"),
)

// UserAuthorize is one row of the access privilege list.
type UserAuthorize struct{ *Record }

// NewUserAuthorize builds a bare privilege record from typed values.
func NewUserAuthorize(values map[string]any) (*UserAuthorize, error) {
	rec, err := New(UserAuthorizeSchema, values)
	if err != nil {
		return nil, err
	}
	return &UserAuthorize{rec}, nil
}

// AsUserAuthorize wraps a generic record loaded from the privilege list.
func AsUserAuthorize(r *Record) (*UserAuthorize, error) {
	if r.Schema() != UserAuthorizeSchema {
		return nil, fmt.Errorf("%w: record is %q, not %q", ErrTypeMismatch, r.Schema().TableName(), UserAuthorizeSchema.TableName())
	}
	return &UserAuthorize{r}, nil
}

func (a *UserAuthorize) Pin() (string, bool, error)   { return Get[string](a.Record, "pin") }
func (a *UserAuthorize) SetPin(v string) error        { return a.Set("pin", v) }
func (a *UserAuthorize) TimezoneID() (int, bool, error) {
	return Get[int](a.Record, "timezone_id")
}
func (a *UserAuthorize) SetTimezoneID(v int) error { return a.Set("timezone_id", v) }

// Doors returns the four-door permission set, door 1 first.
func (a *UserAuthorize) Doors() ([]bool, bool, error) { return Get[[]bool](a.Record, "doors") }
func (a *UserAuthorize) SetDoors(v []bool) error      { return a.Set("doors", v) }

// ─── holiday ───────────────────────────────────────────────────────

// HolidaySchema describes the holiday table.
var HolidaySchema = MustSchema("holiday",
	StringField("holiday", "Holiday"),
	IntField("holiday_type", "HolidayType").WithValidate(func(v any) bool {
		n := v.(int)
		return n >= 1 && n <= 3
	}),
	EnumField[HolidayLoop]("loop", "Loop"),
)

// Holiday is one row of the holiday table.
type Holiday struct{ *Record }

// NewHoliday builds a bare holiday record from typed values.
func NewHoliday(values map[string]any) (*Holiday, error) {
	rec, err := New(HolidaySchema, values)
	if err != nil {
		return nil, err
	}
	return &Holiday{rec}, nil
}

// AsHoliday wraps a generic record loaded from the holiday table.
func AsHoliday(r *Record) (*Holiday, error) {
	if r.Schema() != HolidaySchema {
		return nil, fmt.Errorf("%w: record is %q, not %q", ErrTypeMismatch, r.Schema().TableName(), HolidaySchema.TableName())
	}
	return &Holiday{r}, nil
}

func (h *Holiday) Holiday() (string, bool, error) { return Get[string](h.Record, "holiday") }
func (h *Holiday) SetHoliday(v string) error      { return h.Set("holiday", v) }

// HolidayType is the holiday class, 1 to 3.
func (h *Holiday) HolidayType() (int, bool, error) { return Get[int](h.Record, "holiday_type") }
func (h *Holiday) SetHolidayType(v int) error      { return h.Set("holiday_type", v) }

func (h *Holiday) Loop() (HolidayLoop, bool, error) { return Get[HolidayLoop](h.Record, "loop") }
func (h *Holiday) SetLoop(v HolidayLoop) error      { return h.Set("loop", v) }

// ─── timezone ──────────────────────────────────────────────────────

// timezoneSlots are the ten daily rows of a timezone grid: the seven
// weekdays plus the three holiday classes.
var timezoneSlots = []string{
	"sun", "mon", "tue", "wed", "thu", "fri", "sat", "hol1", "hol2", "hol3",
}

// timezoneSegments is the number of time segments per daily row.
const timezoneSegments = 3

// timezoneFields declares the full segment grid: SunTime1..Hol3Time3.
func timezoneFields() []Field {
	fields := []Field{StringField("timezone_id", "TimezoneId")}
	for segment := 1; segment <= timezoneSegments; segment++ {
		for _, slot := range timezoneSlots {
			name := fmt.Sprintf("%s_time%d", slot, segment)
			rawKey := fmt.Sprintf("%sTime%d", rawSlotName(slot), segment)
			fields = append(fields, TimeRangeField(name, rawKey))
		}
	}
	return fields
}

// rawSlotName maps a slot identifier to its raw-key spelling.
func rawSlotName(slot string) string {
	switch slot {
	case "hol1", "hol2", "hol3":
		return "Hol" + slot[3:]
	}
	return string(slot[0]-'a'+'A') + slot[1:]
}

// TimezoneSchema describes the time zone table: one segment grid of
// ten daily rows by three segments.
var TimezoneSchema = MustSchema("timezone", timezoneFields()...)

// Timezone is one row of the time zone table. Rather than thirty
// accessor pairs it exposes the segment grid by weekday or holiday
// class plus segment number.
type Timezone struct{ *Record }

// NewTimezone builds a bare timezone record from typed values.
func NewTimezone(values map[string]any) (*Timezone, error) {
	rec, err := New(TimezoneSchema, values)
	if err != nil {
		return nil, err
	}
	return &Timezone{rec}, nil
}

// AsTimezone wraps a generic record loaded from the timezone table.
func AsTimezone(r *Record) (*Timezone, error) {
	if r.Schema() != TimezoneSchema {
		return nil, fmt.Errorf("%w: record is %q, not %q", ErrTypeMismatch, r.Schema().TableName(), TimezoneSchema.TableName())
	}
	return &Timezone{r}, nil
}

func (t *Timezone) TimezoneID() (string, bool, error) { return Get[string](t.Record, "timezone_id") }
func (t *Timezone) SetTimezoneID(v string) error      { return t.Set("timezone_id", v) }

// daySlot maps a weekday to its slot identifier.
func daySlot(day time.Weekday) string {
	return timezoneSlots[int(day)%7]
}

// DayTime returns the time range of one weekday segment (1 to 3).
func (t *Timezone) DayTime(day time.Weekday, segment int) (TimeRange, bool, error) {
	return Get[TimeRange](t.Record, fmt.Sprintf("%s_time%d", daySlot(day), segment))
}

// SetDayTime sets the time range of one weekday segment (1 to 3).
func (t *Timezone) SetDayTime(day time.Weekday, segment int, v TimeRange) error {
	return t.Set(fmt.Sprintf("%s_time%d", daySlot(day), segment), v)
}

// HolidayTime returns the time range of one holiday-class segment.
// Class and segment both run 1 to 3.
func (t *Timezone) HolidayTime(class, segment int) (TimeRange, bool, error) {
	return Get[TimeRange](t.Record, fmt.Sprintf("hol%d_time%d", class, segment))
}

// SetHolidayTime sets the time range of one holiday-class segment.
func (t *Timezone) SetHolidayTime(class, segment int, v TimeRange) error {
	return t.Set(fmt.Sprintf("hol%d_time%d", class, segment), v)
}

// ─── transaction ───────────────────────────────────────────────────

// TransactionSchema describes the access event record table.
var TransactionSchema = MustSchema("transaction",
	StringField("card", "Cardno"),
	StringField("pin", "Pin"),
	EnumField[VerifyMode]("verify_mode", "Verified"),
	IntField("door", "DoorID"),
	LookupField[EventCode]("event_type", "EventType", EventTypes),
	EnumField[PassageDirection]("entry_exit", "InOutState"),
	DateTimeField("time", "Time_second"),
)

// Transaction is one row of the access event record table.
type Transaction struct{ *Record }

// NewTransaction builds a bare transaction record from typed values.
func NewTransaction(values map[string]any) (*Transaction, error) {
	rec, err := New(TransactionSchema, values)
	if err != nil {
		return nil, err
	}
	return &Transaction{rec}, nil
}

// AsTransaction wraps a generic record loaded from the transaction table.
func AsTransaction(r *Record) (*Transaction, error) {
	if r.Schema() != TransactionSchema {
		return nil, fmt.Errorf("%w: record is %q, not %q", ErrTypeMismatch, r.Schema().TableName(), TransactionSchema.TableName())
	}
	return &Transaction{r}, nil
}

func (t *Transaction) Card() (string, bool, error) { return Get[string](t.Record, "card") }
func (t *Transaction) SetCard(v string) error      { return t.Set("card", v) }
func (t *Transaction) Pin() (string, bool, error)  { return Get[string](t.Record, "pin") }
func (t *Transaction) SetPin(v string) error       { return t.Set("pin", v) }

func (t *Transaction) VerifyMode() (VerifyMode, bool, error) {
	return Get[VerifyMode](t.Record, "verify_mode")
}
func (t *Transaction) SetVerifyMode(v VerifyMode) error { return t.Set("verify_mode", v) }

func (t *Transaction) Door() (int, bool, error) { return Get[int](t.Record, "door") }
func (t *Transaction) SetDoor(v int) error      { return t.Set("door", v) }

func (t *Transaction) EventType() (EventCode, bool, error) {
	return Get[EventCode](t.Record, "event_type")
}
func (t *Transaction) SetEventType(v EventCode) error { return t.Set("event_type", v) }

func (t *Transaction) EntryExit() (PassageDirection, bool, error) {
	return Get[PassageDirection](t.Record, "entry_exit")
}
func (t *Transaction) SetEntryExit(v PassageDirection) error { return t.Set("entry_exit", v) }

func (t *Transaction) Time() (time.Time, bool, error) { return Get[time.Time](t.Record, "time") }
func (t *Transaction) SetTime(v time.Time) error      { return t.Set("time", v) }

// ─── firstcard ─────────────────────────────────────────────────────

// FirstCardSchema describes the first-card door opening table.
var FirstCardSchema = MustSchema("firstcard",
	IntField("door", "DoorID"),
	StringField("pin", "Pin"),
	IntField("timezone_id", "TimezoneID"),
)

// FirstCard is one row of the first-card door opening table.
type FirstCard struct{ *Record }

// NewFirstCard builds a bare first-card record from typed values.
func NewFirstCard(values map[string]any) (*FirstCard, error) {
	rec, err := New(FirstCardSchema, values)
	if err != nil {
		return nil, err
	}
	return &FirstCard{rec}, nil
}

// AsFirstCard wraps a generic record loaded from the first-card table.
func AsFirstCard(r *Record) (*FirstCard, error) {
	if r.Schema() != FirstCardSchema {
		return nil, fmt.Errorf("%w: record is %q, not %q", ErrTypeMismatch, r.Schema().TableName(), FirstCardSchema.TableName())
	}
	return &FirstCard{r}, nil
}

func (f *FirstCard) Door() (int, bool, error)       { return Get[int](f.Record, "door") }
func (f *FirstCard) SetDoor(v int) error            { return f.Set("door", v) }
func (f *FirstCard) Pin() (string, bool, error)     { return Get[string](f.Record, "pin") }
func (f *FirstCard) SetPin(v string) error          { return f.Set("pin", v) }
func (f *FirstCard) TimezoneID() (int, bool, error) { return Get[int](f.Record, "timezone_id") }
func (f *FirstCard) SetTimezoneID(v int) error      { return f.Set("timezone_id", v) }

// ─── multimcard ────────────────────────────────────────────────────

// MultiCardSchema describes the multi-card door opening table.
// The table name really is "multimcard" on the device.
var MultiCardSchema = MustSchema("multimcard",
	StringField("index", "Index"),
	IntField("door", "DoorId"),
	StringField("group1", "Group1"),
	StringField("group2", "Group2"),
	StringField("group3", "Group3"),
	StringField("group4", "Group4"),
	StringField("group5", "Group5"),
)

// MultiCard is one row of the multi-card door opening table.
type MultiCard struct{ *Record }

// NewMultiCard builds a bare multi-card record from typed values.
func NewMultiCard(values map[string]any) (*MultiCard, error) {
	rec, err := New(MultiCardSchema, values)
	if err != nil {
		return nil, err
	}
	return &MultiCard{rec}, nil
}

// AsMultiCard wraps a generic record loaded from the multi-card table.
func AsMultiCard(r *Record) (*MultiCard, error) {
	if r.Schema() != MultiCardSchema {
		return nil, fmt.Errorf("%w: record is %q, not %q", ErrTypeMismatch, r.Schema().TableName(), MultiCardSchema.TableName())
	}
	return &MultiCard{r}, nil
}

func (m *MultiCard) Index() (string, bool, error) { return Get[string](m.Record, "index") }
func (m *MultiCard) SetIndex(v string) error      { return m.Set("index", v) }
func (m *MultiCard) Door() (int, bool, error)     { return Get[int](m.Record, "door") }
func (m *MultiCard) SetDoor(v int) error          { return m.Set("door", v) }

// Group returns one of the five card groups (1 to 5).
func (m *MultiCard) Group(n int) (string, bool, error) {
	return Get[string](m.Record, fmt.Sprintf("group%d", n))
}

// SetGroup sets one of the five card groups (1 to 5).
func (m *MultiCard) SetGroup(n int, v string) error {
	return m.Set(fmt.Sprintf("group%d", n), v)
}

// ─── inoutfun ──────────────────────────────────────────────────────

// InOutFunSchema describes the linkage control I/O table.
var InOutFunSchema = MustSchema("inoutfun",
	StringField("index", "Index"),
	LookupField[EventCode]("event_type", "EventType", EventTypes),
	LookupField[InputIndex]("input_index", "InAddr", InputPoints),
	EnumField[RelayGroup]("is_output", "OutType"),
	LookupField[OutputIndex]("output_index", "OutAddr", OutputPoints),
	StringField("time", "OutTime"),
	StringField("reserved", "Reserved"),
)

// InOutFun is one row of the linkage control I/O table.
type InOutFun struct{ *Record }

// NewInOutFun builds a bare linkage record from typed values.
func NewInOutFun(values map[string]any) (*InOutFun, error) {
	rec, err := New(InOutFunSchema, values)
	if err != nil {
		return nil, err
	}
	return &InOutFun{rec}, nil
}

// AsInOutFun wraps a generic record loaded from the linkage table.
func AsInOutFun(r *Record) (*InOutFun, error) {
	if r.Schema() != InOutFunSchema {
		return nil, fmt.Errorf("%w: record is %q, not %q", ErrTypeMismatch, r.Schema().TableName(), InOutFunSchema.TableName())
	}
	return &InOutFun{r}, nil
}

func (f *InOutFun) Index() (string, bool, error) { return Get[string](f.Record, "index") }
func (f *InOutFun) SetIndex(v string) error      { return f.Set("index", v) }

func (f *InOutFun) EventType() (EventCode, bool, error) {
	return Get[EventCode](f.Record, "event_type")
}
func (f *InOutFun) SetEventType(v EventCode) error { return f.Set("event_type", v) }

func (f *InOutFun) InputIndex() (InputIndex, bool, error) {
	return Get[InputIndex](f.Record, "input_index")
}
func (f *InOutFun) SetInputIndex(v InputIndex) error { return f.Set("input_index", v) }

func (f *InOutFun) IsOutput() (RelayGroup, bool, error) {
	return Get[RelayGroup](f.Record, "is_output")
}
func (f *InOutFun) SetIsOutput(v RelayGroup) error { return f.Set("is_output", v) }

func (f *InOutFun) OutputIndex() (OutputIndex, bool, error) {
	return Get[OutputIndex](f.Record, "output_index")
}
func (f *InOutFun) SetOutputIndex(v OutputIndex) error { return f.Set("output_index", v) }

func (f *InOutFun) Time() (string, bool, error)     { return Get[string](f.Record, "time") }
func (f *InOutFun) SetTime(v string) error          { return f.Set("time", v) }
func (f *InOutFun) Reserved() (string, bool, error) { return Get[string](f.Record, "reserved") }
func (f *InOutFun) SetReserved(v string) error      { return f.Set("reserved", v) }

// ─── templatev10 ───────────────────────────────────────────────────

// TemplateV10Schema describes the fingerprint template table.
var TemplateV10Schema = MustSchema("templatev10",
	StringField("size", "Size"),
	StringField("uid", "UID"),
	StringField("pin", "Pin"),
	StringField("finger_id", "FingerID"),
	StringField("valid", "Valid"),
	StringField("template", "Template"),
	StringField("resverd", "Resverd"),
	StringField("end_tag", "EndTag"),
)

// TemplateV10 is one row of the fingerprint template table.
type TemplateV10 struct{ *Record }

// NewTemplateV10 builds a bare template record from typed values.
func NewTemplateV10(values map[string]any) (*TemplateV10, error) {
	rec, err := New(TemplateV10Schema, values)
	if err != nil {
		return nil, err
	}
	return &TemplateV10{rec}, nil
}

// AsTemplateV10 wraps a generic record loaded from the template table.
func AsTemplateV10(r *Record) (*TemplateV10, error) {
	if r.Schema() != TemplateV10Schema {
		return nil, fmt.Errorf("%w: record is %q, not %q", ErrTypeMismatch, r.Schema().TableName(), TemplateV10Schema.TableName())
	}
	return &TemplateV10{r}, nil
}

func (t *TemplateV10) Size() (string, bool, error)     { return Get[string](t.Record, "size") }
func (t *TemplateV10) SetSize(v string) error          { return t.Set("size", v) }
func (t *TemplateV10) UID() (string, bool, error)      { return Get[string](t.Record, "uid") }
func (t *TemplateV10) SetUID(v string) error           { return t.Set("uid", v) }
func (t *TemplateV10) Pin() (string, bool, error)      { return Get[string](t.Record, "pin") }
func (t *TemplateV10) SetPin(v string) error           { return t.Set("pin", v) }
func (t *TemplateV10) FingerID() (string, bool, error) { return Get[string](t.Record, "finger_id") }
func (t *TemplateV10) SetFingerID(v string) error      { return t.Set("finger_id", v) }
func (t *TemplateV10) Valid() (string, bool, error)    { return Get[string](t.Record, "valid") }
func (t *TemplateV10) SetValid(v string) error         { return t.Set("valid", v) }
func (t *TemplateV10) Template() (string, bool, error) { return Get[string](t.Record, "template") }
func (t *TemplateV10) SetTemplate(v string) error      { return t.Set("template", v) }
func (t *TemplateV10) Resverd() (string, bool, error)  { return Get[string](t.Record, "resverd") }
func (t *TemplateV10) SetResverd(v string) error       { return t.Set("resverd", v) }
func (t *TemplateV10) EndTag() (string, bool, error)   { return Get[string](t.Record, "end_tag") }
func (t *TemplateV10) SetEndTag(v string) error        { return t.Set("end_tag", v) }
