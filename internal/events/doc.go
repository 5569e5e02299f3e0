// Package events fans committed device data rows out to external
// sinks.
//
// The panel store invokes the Monitor for every committed write or
// delete. Each row is published on its MQTT event topic, counted in
// the InfluxDB history, and - for transaction rows - decoded into a
// typed access event that lands in both the history bucket and the
// local access_events journal.
//
// Sink failures are logged and never propagate: the row was already
// committed, so fan-out is best effort by contract.
package events
