// Package panel persists device data table rows for Gray Access Core.
//
// The Store mirrors the access panel's tables in SQLite: every row is
// kept in its raw string-keyed form, exactly as it travels on the
// wire, and typed interpretation happens in the tables package. Store
// implements tables.Conn, so a record loaded through Query carries the
// connection it needs to Save or Delete itself:
//
//	store := panel.NewStore(db, tables.DefaultRegistry(), logger)
//
//	records, err := store.Query(ctx, "user")
//	if err != nil {
//	    return err
//	}
//	for _, r := range records {
//	    user, _ := tables.AsUser(r)
//	    // ...
//	}
//
// Writes and deletes follow the panel's session handshake: BeginWrite
// or BeginDelete opens a single-use session, Send stages the row, and
// Commit applies it. Deletes remove every stored row whose fields
// include all key/value pairs of the sent payload.
//
// # Thread Safety
//
// Store methods are safe for concurrent use once configured; sessions
// are single-goroutine, matching their single-use contract.
package panel
