// Package tables maps the access panel's native data tables onto typed
// records.
//
// Every row the panel stores or transmits is a flat map of raw string
// keys to string values. This package layers a declarative schema over
// that representation: each logical field is described once by a Field
// descriptor carrying its raw key, datatype and codec hooks, and a
// Record gives typed, validated access to one row while keeping the raw
// map as the authoritative state.
//
// # Key Types
//
//   - Field: one logical field — raw key, datatype, decode/encode/
//     validation hooks
//   - Schema: one table — name plus ordered field declarations
//   - Registry: table name → schema resolution for backends
//   - Record: one in-memory row — raw map, dirty flag, optional
//     connection handle
//   - Conn/Session: the panel channel's three-step persist protocol
//
// # Usage
//
//	user, err := tables.NewUser(map[string]any{
//	    "card": "123456",
//	    "pin":  "1",
//	})
//	if err != nil {
//	    return err
//	}
//	_ = user.SetSuperAuthorize(true)
//
//	// Records loaded by a backend arrive attached and clean:
//	recs, _ := store.Query(ctx, "user")
//	u, _ := tables.AsUser(recs[0])
//	card, ok, err := u.Card()
//
// Encodings are reproduced bit-for-bit from the panel protocol: dates as
// YYYYMMDD, timestamps as a packed seconds count in a 31-day-month
// calendar, daily time ranges as hour*100+minute halves of a 32-bit
// integer, and door sets as LSB-first bit packs. See codec.go.
//
// # Concurrency
//
// Schemas, fields, lookup tables and registries are immutable after
// startup and safe to share. A Record has no internal synchronisation
// and must not be mutated concurrently; decoding is not cached, every
// read re-decodes from the raw string.
package tables
