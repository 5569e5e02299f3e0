package tables

import "fmt"

// Schema describes one device data table: its name on the panel and its
// declared fields, in declaration order.
//
// A Schema is built exactly once, at startup, by an explicit NewSchema
// call. It is immutable afterwards and safe to share between any number
// of records.
type Schema struct {
	tableName string
	fields    []Field
	byName    map[string]int
	rawKeys   map[string]struct{}
}

// NewSchema builds a schema from an explicit field list. Logical field
// names must be unique within a schema; raw keys may repeat (some panel
// tables alias segments onto the same raw column).
func NewSchema(tableName string, fields ...Field) (*Schema, error) {
	if tableName == "" {
		return nil, fmt.Errorf("tables: schema needs a table name")
	}

	s := &Schema{
		tableName: tableName,
		fields:    make([]Field, len(fields)),
		byName:    make(map[string]int, len(fields)),
		rawKeys:   make(map[string]struct{}, len(fields)),
	}
	copy(s.fields, fields)

	for i, f := range s.fields {
		if f.name == "" || f.rawKey == "" {
			return nil, fmt.Errorf("tables: schema %q: field %d needs a name and a raw key", tableName, i)
		}
		if _, dup := s.byName[f.name]; dup {
			return nil, fmt.Errorf("tables: schema %q: duplicate field %q", tableName, f.name)
		}
		s.byName[f.name] = i
		s.rawKeys[f.rawKey] = struct{}{}
	}

	return s, nil
}

// MustSchema is NewSchema for static declarations; it panics on error.
func MustSchema(tableName string, fields ...Field) *Schema {
	s, err := NewSchema(tableName, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// TableName returns the table's name on the panel.
func (s *Schema) TableName() string { return s.tableName }

// Field returns the descriptor for a logical field name.
func (s *Schema) Field(name string) (Field, bool) {
	i, ok := s.byName[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// FieldNames returns the logical field names in declaration order.
func (s *Schema) FieldNames() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.name
	}
	return names
}

// FieldsMapping returns a fresh logical-name-to-raw-key mapping, used by
// backends to understand rows fetched off the device.
func (s *Schema) FieldsMapping() map[string]string {
	m := make(map[string]string, len(s.fields))
	for _, f := range s.fields {
		m[f.name] = f.rawKey
	}
	return m
}

// HasRawKey reports whether the raw key belongs to this schema.
func (s *Schema) HasRawKey(key string) bool {
	_, ok := s.rawKeys[key]
	return ok
}
