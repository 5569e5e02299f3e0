package tables

import (
	"fmt"
	"reflect"
	"strconv"
	"time"
)

// DecodeFunc converts a raw device string into an intermediate value.
// The result is coerced to the field's datatype if it is not one already.
type DecodeFunc func(raw string) (any, error)

// EncodeFunc converts a typed value into the value actually serialised
// to the device. It runs after the type check and validation.
type EncodeFunc func(value any) (any, error)

// ValidateFunc reports whether a typed value meets the field's semantic
// constraints. It runs before encoding.
type ValidateFunc func(value any) bool

// Field describes one logical field of a device data table: its raw key
// in the device row, its Go datatype, and optional decode, encode and
// validation hooks.
//
// A Field is stateless and immutable after declaration. The same
// descriptor is shared by every record of its table; it holds no
// per-record data.
//
// Read path (DecodeRaw):
//  1. If the raw value is absent, the field reads as absent.
//  2. The decode hook, if set, turns the raw string into an
//     intermediate value.
//  3. If the intermediate value is not of the declared datatype it is
//     coerced to it. Coercion failures surface as ErrConversion.
//
// Write path (EncodeValue):
//  1. The value must be of the declared datatype, else ErrTypeMismatch.
//  2. The validation hook, if set, must accept it, else ErrValidation.
//  3. Named integer constants are reduced to their underlying value.
//  4. The encode hook, if set, produces the value to serialise.
//  5. The result is converted to its canonical string form.
type Field struct {
	name     string
	rawKey   string
	datatype reflect.Type
	decode   DecodeFunc
	encode   EncodeFunc
	validate ValidateFunc
}

// NewField creates a field descriptor with explicit hooks. Most schemas
// use the typed constructors below; NewField is the escape hatch for
// encodings none of them cover.
func NewField(name, rawKey string, datatype reflect.Type, decode DecodeFunc, encode EncodeFunc, validate ValidateFunc) Field {
	return Field{
		name:     name,
		rawKey:   rawKey,
		datatype: datatype,
		decode:   decode,
		encode:   encode,
		validate: validate,
	}
}

// StringField declares a plain string field with no conversion.
func StringField(name, rawKey string) Field {
	return Field{name: name, rawKey: rawKey, datatype: reflect.TypeOf("")}
}

// IntField declares a plain integer field.
func IntField(name, rawKey string) Field {
	return Field{name: name, rawKey: rawKey, datatype: reflect.TypeOf(int(0))}
}

// BoolField declares a boolean field stored as "0"/"1" on the device.
func BoolField(name, rawKey string) Field {
	return Field{
		name:     name,
		rawKey:   rawKey,
		datatype: reflect.TypeOf(false),
		decode: func(raw string) (any, error) {
			n, err := strconv.Atoi(raw)
			if err != nil {
				return nil, err
			}
			return n != 0, nil
		},
		encode: func(value any) (any, error) {
			if value.(bool) {
				return 1, nil
			}
			return 0, nil
		},
	}
}

// DateField declares a calendar date field in the device's YYYYMMDD form.
func DateField(name, rawKey string) Field {
	return Field{
		name:     name,
		rawKey:   rawKey,
		datatype: reflect.TypeOf(time.Time{}),
		decode: func(raw string) (any, error) {
			return decodeDate(raw)
		},
		encode: func(value any) (any, error) {
			return encodeDate(value.(time.Time)), nil
		},
	}
}

// DateTimeField declares a timestamp field in the device's packed
// seconds-count form.
func DateTimeField(name, rawKey string) Field {
	return Field{
		name:     name,
		rawKey:   rawKey,
		datatype: reflect.TypeOf(time.Time{}),
		decode: func(raw string) (any, error) {
			return decodeCTime(raw)
		},
		encode: func(value any) (any, error) {
			return encodeCTime(value.(time.Time)), nil
		},
	}
}

// TimeRangeField declares a daily start/end pair packed into the
// device's 32-bit time-range form.
func TimeRangeField(name, rawKey string) Field {
	return Field{
		name:     name,
		rawKey:   rawKey,
		datatype: reflect.TypeOf(TimeRange{}),
		decode: func(raw string) (any, error) {
			return decodeTimeRange(raw)
		},
		encode: func(value any) (any, error) {
			return encodeTimeRange(value.(TimeRange)), nil
		},
	}
}

// DoorsField declares a four-door boolean set bit-packed into a single
// integer, LSB first. Validation requires exactly four elements.
func DoorsField(name, rawKey string) Field {
	return Field{
		name:     name,
		rawKey:   rawKey,
		datatype: reflect.TypeOf([]bool(nil)),
		decode: func(raw string) (any, error) {
			return decodeDoors(raw)
		},
		encode: func(value any) (any, error) {
			return encodeDoors(value.([]bool)), nil
		},
		validate: func(value any) bool {
			return len(value.([]bool)) == doorCount
		},
	}
}

// EnumField declares a field whose value is a named integer constant
// that round-trips through its underlying integer, with no table
// indirection.
func EnumField[E ~int](name, rawKey string) Field {
	return Field{
		name:     name,
		rawKey:   rawKey,
		datatype: reflect.TypeOf(E(0)),
		decode: func(raw string) (any, error) {
			n, err := strconv.Atoi(raw)
			if err != nil {
				return nil, err
			}
			return E(n), nil
		},
	}
}

// LookupField declares a field whose raw integer is an index into a
// fixed lookup table. Decoding fails closed when the index is outside
// the table's domain; validation applies the same check on encode.
func LookupField[E ~int](name, rawKey string, table LookupTable) Field {
	return Field{
		name:     name,
		rawKey:   rawKey,
		datatype: reflect.TypeOf(E(0)),
		decode: func(raw string) (any, error) {
			n, err := strconv.Atoi(raw)
			if err != nil {
				return nil, err
			}
			if !table.Contains(n) {
				return nil, fmt.Errorf("index %d outside %s domain", n, table.Name())
			}
			return E(n), nil
		},
		validate: func(value any) bool {
			return table.Contains(int(value.(E)))
		},
	}
}

// WithValidate returns a copy of the field with the given validation
// hook. The original descriptor is not modified.
func (f Field) WithValidate(fn ValidateFunc) Field {
	f.validate = fn
	return f
}

// Name returns the logical field name used by callers.
func (f Field) Name() string { return f.name }

// RawKey returns the field's key in the device table row.
func (f Field) RawKey() string { return f.rawKey }

// Datatype returns the field's declared Go type.
func (f Field) Datatype() reflect.Type { return f.datatype }

// DecodeRaw converts a stored raw string into a value of the field's
// datatype. Failures wrap ErrConversion.
func (f Field) DecodeRaw(raw string) (any, error) {
	var value any = raw
	if f.decode != nil {
		decoded, err := f.decode(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: field %q: %v", ErrConversion, f.name, err)
		}
		value = decoded
	}
	if reflect.TypeOf(value) != f.datatype {
		coerced, err := coerce(value, f.datatype)
		if err != nil {
			return nil, fmt.Errorf("%w: field %q: %v", ErrConversion, f.name, err)
		}
		value = coerced
	}
	return value, nil
}

// EncodeValue converts a typed value into its raw string form. It is a
// pure function of the value and the descriptor's fixed hooks.
func (f Field) EncodeValue(value any) (string, error) {
	if reflect.TypeOf(value) != f.datatype {
		return "", fmt.Errorf("%w: field %q wants %s, got %T", ErrTypeMismatch, f.name, f.datatype, value)
	}
	if f.validate != nil && !f.validate(value) {
		return "", fmt.Errorf("%w: field %q rejects %v", ErrValidation, f.name, value)
	}

	out := unwrapEnum(value)
	if f.encode != nil {
		encoded, err := f.encode(out)
		if err != nil {
			return "", fmt.Errorf("%w: field %q: %v", ErrValidation, f.name, err)
		}
		out = encoded
	}
	return fmt.Sprint(out), nil
}

// coerce converts a decoded intermediate value to the target datatype.
// It covers the conversions the device encodings actually need: raw
// strings to integers, booleans and floats, and numeric widening to
// named integer types.
func coerce(value any, target reflect.Type) (any, error) {
	rv := reflect.ValueOf(value)
	if rv.Type() == target {
		return value, nil
	}

	if rv.Kind() == reflect.String {
		s := rv.String()
		switch target.Kind() {
		case reflect.String:
			return rv.Convert(target).Interface(), nil
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			n, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("parsing %q as %s: %w", s, target, err)
			}
			return reflect.ValueOf(n).Convert(target).Interface(), nil
		case reflect.Bool:
			n, err := strconv.Atoi(s)
			if err != nil {
				return nil, fmt.Errorf("parsing %q as %s: %w", s, target, err)
			}
			return n != 0, nil
		case reflect.Float32, reflect.Float64:
			fl, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("parsing %q as %s: %w", s, target, err)
			}
			return reflect.ValueOf(fl).Convert(target).Interface(), nil
		}
		return nil, fmt.Errorf("cannot convert string %q to %s", s, target)
	}

	if isNumericKind(rv.Kind()) && isNumericKind(target.Kind()) {
		return rv.Convert(target).Interface(), nil
	}

	return nil, fmt.Errorf("cannot convert %T to %s", value, target)
}

// unwrapEnum reduces a named integer constant to its underlying integer
// so it serialises as a plain number rather than via its String method.
func unwrapEnum(value any) any {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if _, plain := value.(int); !plain {
			return int(rv.Int())
		}
	}
	return value
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
