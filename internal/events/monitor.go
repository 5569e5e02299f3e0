package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nerrad567/gray-access-core/internal/infrastructure/database"
	"github.com/nerrad567/gray-access-core/internal/infrastructure/influxdb"
	"github.com/nerrad567/gray-access-core/internal/infrastructure/logging"
	"github.com/nerrad567/gray-access-core/internal/infrastructure/mqtt"
	"github.com/nerrad567/gray-access-core/internal/panel"
	"github.com/nerrad567/gray-access-core/internal/tables"
)

// journalTimeout bounds each access journal insert.
const journalTimeout = 5 * time.Second

// Publisher is the MQTT surface the monitor needs. Satisfied by
// *mqtt.Client.
type Publisher interface {
	PublishEvent(topic string, payload []byte) error
}

// History is the InfluxDB surface the monitor needs. Satisfied by
// *influxdb.Client.
type History interface {
	WriteAccessEvent(ev influxdb.AccessEvent)
	WriteRowEvent(table, op string, fieldCount int)
}

// RowMessage is the JSON payload published for every committed row.
type RowMessage struct {
	Table     string            `json:"table"`
	Op        string            `json:"op"`
	Row       map[string]string `json:"row"`
	Timestamp time.Time         `json:"timestamp"`
}

// Monitor fans committed device data rows out to the configured
// sinks: MQTT for live subscribers, InfluxDB for queryable history,
// and the local access_events journal for transaction rows.
//
// Sinks are optional; a nil Publisher or History is skipped, and a
// nil journal database disables journalling. Wire it to a store with
// SetOnCommit:
//
//	monitor := events.NewMonitor(registry, logger, pub, hist, db)
//	store.SetOnCommit(monitor.HandleCommit)
type Monitor struct {
	registry  *tables.Registry
	logger    *logging.Logger
	publisher Publisher
	history   History
	journal   *database.DB
	topics    mqtt.Topics
}

// NewMonitor creates a monitor. Any sink may be nil.
func NewMonitor(registry *tables.Registry, logger *logging.Logger, publisher Publisher, history History, journal *database.DB) *Monitor {
	return &Monitor{
		registry:  registry,
		logger:    logger.With("component", "events"),
		publisher: publisher,
		history:   history,
		journal:   journal,
	}
}

// HandleCommit processes one committed session. It never fails: sink
// errors are logged and do not affect the commit that already
// happened.
func (m *Monitor) HandleCommit(ev panel.CommitEvent) {
	m.publishRow(ev)

	if m.history != nil {
		m.history.WriteRowEvent(ev.Table, string(ev.Op), len(ev.Row))
	}

	if ev.Table == "transaction" && ev.Op == panel.OpWrite {
		m.recordAccessEvent(ev.Row)
	}
}

// publishRow sends the raw row to the table's MQTT event topic.
func (m *Monitor) publishRow(ev panel.CommitEvent) {
	if m.publisher == nil {
		return
	}

	msg := RowMessage{
		Table:     ev.Table,
		Op:        string(ev.Op),
		Row:       ev.Row,
		Timestamp: time.Now().UTC(),
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		m.logger.Error("encoding row message", "table", ev.Table, "error", err)
		return
	}

	topic := m.topics.TableEvent(ev.Table, string(ev.Op))
	if err := m.publisher.PublishEvent(topic, payload); err != nil {
		m.logger.Warn("publishing row event", "topic", topic, "error", err)
	}
}

// recordAccessEvent decodes a transaction row and writes it to the
// history bucket and the local journal.
func (m *Monitor) recordAccessEvent(row map[string]string) {
	schema, ok := m.registry.Lookup("transaction")
	if !ok {
		return
	}

	record, err := tables.FromRaw(schema, row, false)
	if err != nil {
		m.logger.Warn("decoding transaction row", "error", err)
		return
	}
	tx, err := tables.AsTransaction(record)
	if err != nil {
		m.logger.Warn("decoding transaction row", "error", err)
		return
	}

	access, err := flattenTransaction(tx)
	if err != nil {
		m.logger.Warn("decoding transaction fields", "error", err)
		return
	}

	if m.history != nil {
		m.history.WriteAccessEvent(access)
	}
	if m.journal != nil {
		if err := m.journalAccessEvent(access); err != nil {
			m.logger.Warn("journalling access event", "error", err)
		}
	}
}

// flattenTransaction pulls the typed fields out of a transaction
// record. Absent fields stay at their zero values; a decode failure
// on any present field is an error.
func flattenTransaction(tx *tables.Transaction) (influxdb.AccessEvent, error) {
	var ev influxdb.AccessEvent

	card, _, err := tx.Card()
	if err != nil {
		return ev, err
	}
	pin, _, err := tx.Pin()
	if err != nil {
		return ev, err
	}
	door, _, err := tx.Door()
	if err != nil {
		return ev, err
	}
	eventType, _, err := tx.EventType()
	if err != nil {
		return ev, err
	}
	verifyMode, _, err := tx.VerifyMode()
	if err != nil {
		return ev, err
	}
	entryExit, _, err := tx.EntryExit()
	if err != nil {
		return ev, err
	}
	happened, _, err := tx.Time()
	if err != nil {
		return ev, err
	}

	return influxdb.AccessEvent{
		Card:       card,
		Pin:        pin,
		Door:       door,
		EventType:  int(eventType),
		VerifyMode: int(verifyMode),
		EntryExit:  int(entryExit),
		Time:       happened,
	}, nil
}

// journalAccessEvent inserts the event into the local access_events
// table so history survives broker outages.
func (m *Monitor) journalAccessEvent(ev influxdb.AccessEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), journalTimeout)
	defer cancel()

	var happenedAt any
	if !ev.Time.IsZero() {
		happenedAt = ev.Time.UTC().Format(time.RFC3339)
	}

	_, err := m.journal.ExecContext(ctx, `
		INSERT INTO access_events (card, pin, door, event_type, verify_mode, entry_exit, happened_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		ev.Card, ev.Pin, ev.Door, ev.EventType, ev.VerifyMode, ev.EntryExit, happenedAt,
	)
	return err
}
