package tables

import (
	"context"
	"fmt"
	"strings"
)

// Conn is the persistence handle into the panel communication layer.
// It models the channel's three-step handshake: a begin call announcing
// the table, a payload send, and a commit. Implementations live outside
// this package (see internal/panel); records only hold a non-owning
// reference and never manage the connection's lifetime.
type Conn interface {
	// BeginWrite opens a single-use write session for one row of the
	// named table.
	BeginWrite(ctx context.Context, tableName string) (Session, error)

	// BeginDelete opens a single-use delete session for one row of the
	// named table.
	BeginDelete(ctx context.Context, tableName string) (Session, error)
}

// Session is one in-flight write or delete interaction with the panel.
type Session interface {
	// Send transmits the record's raw view as the operation payload.
	Send(ctx context.Context, row map[string]string) error

	// Commit signals end-of-input; the backend performs the actual
	// device operation. A session is spent after Commit.
	Commit(ctx context.Context) error
}

// Record is one in-memory row of a device data table. The raw
// string-keyed map is the authoritative state; typed access decodes and
// encodes through the schema's field descriptors on every call.
//
// A Record is not safe for concurrent mutation. It is either built bare
// (no connection; Save and Delete fail with ErrDetached) or attached to
// a connection by the backend that loaded it.
type Record struct {
	schema *Schema
	raw    map[string]string
	dirty  bool
	conn   Conn
}

// New builds a record from typed field values. Every supplied field is
// encoded through its descriptor; a logical name outside the schema
// fails with ErrUnknownField and no partial state is created. The new
// record is dirty.
func New(schema *Schema, values map[string]any) (*Record, error) {
	raw := make(map[string]string, len(values))
	for name, value := range values {
		field, ok := schema.Field(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q in table %q", ErrUnknownField, name, schema.tableName)
		}
		encoded, err := field.EncodeValue(value)
		if err != nil {
			return nil, err
		}
		raw[field.rawKey] = encoded
	}

	return &Record{schema: schema, raw: raw, dirty: true}, nil
}

// FromRaw builds a record directly from a raw device row, with a
// caller-specified dirty flag. Raw keys outside the schema are
// rejected; field values are not validated here — decoding is deferred
// to individual field access.
func FromRaw(schema *Schema, raw map[string]string, dirty bool) (*Record, error) {
	own := make(map[string]string, len(raw))
	for key, value := range raw {
		if !schema.HasRawKey(key) {
			return nil, fmt.Errorf("%w: raw key %q in table %q", ErrUnknownField, key, schema.tableName)
		}
		own[key] = value
	}

	return &Record{schema: schema, raw: own, dirty: dirty}, nil
}

// WithConn attaches the persistence handle and returns the record, for
// builder-style chaining by backends.
func (r *Record) WithConn(conn Conn) *Record {
	r.conn = conn
	return r
}

// Schema returns the record's schema.
func (r *Record) Schema() *Schema { return r.schema }

// Dirty reports whether the record has local changes not yet persisted.
func (r *Record) Dirty() bool { return r.dirty }

// Get reads a logical field. A field never written reads as absent:
// (nil, nil). Decode failures wrap ErrConversion.
func (r *Record) Get(name string) (any, error) {
	field, ok := r.schema.Field(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q in table %q", ErrUnknownField, name, r.schema.tableName)
	}
	raw, present := r.raw[field.rawKey]
	if !present {
		return nil, nil
	}
	return field.DecodeRaw(raw)
}

// Get reads a logical field as a concrete type. The second result is
// false when the field is absent.
func Get[T any](r *Record, name string) (T, bool, error) {
	var zero T
	value, err := r.Get(name)
	if err != nil {
		return zero, false, err
	}
	if value == nil {
		return zero, false, nil
	}
	typed, ok := value.(T)
	if !ok {
		return zero, false, fmt.Errorf("%w: field %q holds %T, not %T", ErrTypeMismatch, name, value, zero)
	}
	return typed, true, nil
}

// Set writes a logical field through its descriptor's encode contract
// and marks the record dirty. A nil value is equivalent to Unset. An
// encode failure aborts only this write; the record keeps its previous
// state.
func (r *Record) Set(name string, value any) error {
	if value == nil {
		return r.Unset(name)
	}

	field, ok := r.schema.Field(name)
	if !ok {
		return fmt.Errorf("%w: %q in table %q", ErrUnknownField, name, r.schema.tableName)
	}
	encoded, err := field.EncodeValue(value)
	if err != nil {
		return err
	}

	r.raw[field.rawKey] = encoded
	r.dirty = true
	return nil
}

// Unset removes a logical field's raw value. The record is marked dirty
// only when something was actually removed.
func (r *Record) Unset(name string) error {
	field, ok := r.schema.Field(name)
	if !ok {
		return fmt.Errorf("%w: %q in table %q", ErrUnknownField, name, r.schema.tableName)
	}
	if _, present := r.raw[field.rawKey]; present {
		delete(r.raw, field.rawKey)
		r.dirty = true
	}
	return nil
}

// Data returns the typed view: every present field decoded, keyed by
// logical name. Absent fields are omitted rather than erroring.
func (r *Record) Data() (map[string]any, error) {
	out := make(map[string]any, len(r.raw))
	for _, field := range r.schema.fields {
		raw, present := r.raw[field.rawKey]
		if !present {
			continue
		}
		value, err := field.DecodeRaw(raw)
		if err != nil {
			return nil, err
		}
		out[field.name] = value
	}
	return out, nil
}

// RawView returns a copy of the raw key/string row as stored on the
// device. It is the payload of the persist protocol.
func (r *Record) RawView() map[string]string {
	out := make(map[string]string, len(r.raw))
	for k, v := range r.raw {
		out[k] = v
	}
	return out
}

// Save persists the whole raw view through the connection's three-step
// protocol and clears the dirty flag on success. A record without a
// connection fails with ErrDetached. Backend failures propagate as-is;
// there is no retry and no partial commit.
func (r *Record) Save(ctx context.Context) error {
	if r.conn == nil {
		return fmt.Errorf("%w: cannot save %q record", ErrDetached, r.schema.tableName)
	}

	session, err := r.conn.BeginWrite(ctx, r.schema.tableName)
	if err != nil {
		return fmt.Errorf("beginning write to %q: %w", r.schema.tableName, err)
	}
	if err := session.Send(ctx, r.RawView()); err != nil {
		return fmt.Errorf("sending %q row: %w", r.schema.tableName, err)
	}
	if err := session.Commit(ctx); err != nil {
		return fmt.Errorf("committing %q row: %w", r.schema.tableName, err)
	}

	r.dirty = false
	return nil
}

// Delete removes the record from the device through the three-step
// protocol. On success the dirty flag is set: the instance is no longer
// a faithful live copy and callers should discard it.
func (r *Record) Delete(ctx context.Context) error {
	if r.conn == nil {
		return fmt.Errorf("%w: cannot delete %q record", ErrDetached, r.schema.tableName)
	}

	session, err := r.conn.BeginDelete(ctx, r.schema.tableName)
	if err != nil {
		return fmt.Errorf("beginning delete from %q: %w", r.schema.tableName, err)
	}
	if err := session.Send(ctx, r.RawView()); err != nil {
		return fmt.Errorf("sending %q row: %w", r.schema.tableName, err)
	}
	if err := session.Commit(ctx); err != nil {
		return fmt.Errorf("committing %q delete: %w", r.schema.tableName, err)
	}

	r.dirty = true
	return nil
}

// String renders the record for diagnostics: a dirty marker, the table
// name, and every declared field with its typed value. Absent fields
// render as <absent>; values that fail to decode render raw.
func (r *Record) String() string {
	var b strings.Builder
	if r.dirty {
		b.WriteByte('*')
	}
	b.WriteString(r.schema.tableName)
	b.WriteByte('(')

	for i, field := range r.schema.fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(field.name)
		b.WriteByte('=')

		raw, present := r.raw[field.rawKey]
		if !present {
			b.WriteString("<absent>")
			continue
		}
		value, err := field.DecodeRaw(raw)
		if err != nil {
			fmt.Fprintf(&b, "%s", raw)
			continue
		}
		fmt.Fprintf(&b, "%v", value)
	}

	b.WriteByte(')')
	return b.String()
}
