package influxdb

import (
	"strconv"
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// AccessEvent is one access decision from the panel's transaction
// table, flattened into the shape the history bucket stores.
type AccessEvent struct {
	// Card and Pin identify who the panel matched, when known.
	Card string
	Pin  string

	// Door is the door number the event happened at.
	Door int

	// EventType is the panel event code (see tables.EventTypes).
	EventType int

	// VerifyMode and EntryExit are the panel's verification mode and
	// passage direction codes.
	VerifyMode int
	EntryExit  int

	// Time is when the panel recorded the event. Zero means unknown;
	// the write falls back to the current time.
	Time time.Time
}

// WriteAccessEvent records one access event in the history bucket.
//
// The write is non-blocking; points are batched and sent
// asynchronously. Tags carry the low-cardinality dimensions used for
// filtering (door, event_type), fields carry the rest.
func (c *Client) WriteAccessEvent(ev AccessEvent) {
	if !c.IsConnected() {
		return
	}

	ts := ev.Time
	if ts.IsZero() {
		ts = time.Now()
	}

	point := write.NewPoint(
		"access_event",
		map[string]string{
			"door":       strconv.Itoa(ev.Door),
			"event_type": strconv.Itoa(ev.EventType),
		},
		map[string]interface{}{
			"card":        ev.Card,
			"pin":         ev.Pin,
			"verify_mode": ev.VerifyMode,
			"entry_exit":  ev.EntryExit,
		},
		ts,
	)

	c.writeAPI.WritePoint(point)
}

// WriteRowEvent records a committed row of any device data table.
// Used for the generic audit trail alongside the access-specific
// measurement.
func (c *Client) WriteRowEvent(table, op string, fieldCount int) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(
		"row_event",
		map[string]string{
			"table": table,
			"op":    op,
		},
		map[string]interface{}{
			"fields": fieldCount,
		},
		time.Now(),
	)

	c.writeAPI.WritePoint(point)
}

// WritePointWithTime writes a custom point with a specific timestamp,
// for measurements that don't fit the helpers above.
func (c *Client) WritePointWithTime(measurement string, tags map[string]string, fields map[string]interface{}, timestamp time.Time) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(measurement, tags, fields, timestamp)
	c.writeAPI.WritePoint(point)
}
