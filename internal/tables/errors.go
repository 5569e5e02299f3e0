package tables

import "errors"

// Domain errors for the tables package.
//
// These errors can be checked using errors.Is() for error handling:
//
//	if errors.Is(err, tables.ErrValidation) {
//	    // reject the value, keep the record as it was
//	}
var (
	// ErrUnknownField is returned when a logical field name is not part
	// of the record's schema.
	ErrUnknownField = errors.New("tables: unknown field")

	// ErrTypeMismatch is returned when a value supplied for encoding is
	// not of the field's declared datatype.
	ErrTypeMismatch = errors.New("tables: type mismatch")

	// ErrValidation is returned when a value has the right type but
	// fails the field's semantic constraint (wrong element count,
	// out-of-range lookup index, and so on).
	ErrValidation = errors.New("tables: validation failed")

	// ErrConversion is returned when a stored raw string cannot be
	// decoded into the field's declared datatype.
	ErrConversion = errors.New("tables: conversion failed")

	// ErrDetached is returned when Save or Delete is called on a record
	// that has no panel connection attached.
	ErrDetached = errors.New("tables: record not attached to a connection")

	// ErrSchemaExists is returned when registering a schema under a
	// table name that is already taken.
	ErrSchemaExists = errors.New("tables: schema already registered")
)
