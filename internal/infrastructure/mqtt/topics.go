package mqtt

import "fmt"

// Topic prefixes for the Gray Access MQTT hierarchy.
//
// Row events use the flat scheme: grayaccess/event/{table}/{op}
const (
	// TopicPrefix is the base for all Gray Access topics.
	TopicPrefix = "grayaccess"

	// TopicPrefixEvent is the base for row event topics.
	TopicPrefixEvent = "grayaccess/event"

	// TopicPrefixSystem is the base for system topics.
	TopicPrefixSystem = "grayaccess/system"
)

// Topics provides builders for Gray Access MQTT topics.
// Using these helpers keeps topic naming consistent across the codebase.
//
//	topics := mqtt.Topics{}
//	topic := topics.TableEvent("transaction", "write")
//	// Returns: "grayaccess/event/transaction/write"
type Topics struct{}

// TableEvent returns the topic for one committed row of a device data
// table. op is "write" or "delete".
//
// Example: grayaccess/event/transaction/write
func (Topics) TableEvent(table, op string) string {
	return fmt.Sprintf("%s/%s/%s", TopicPrefixEvent, table, op)
}

// SystemStatus returns the service status topic, used for the online
// and offline announcements and the LWT.
//
// Example: grayaccess/system/status
func (Topics) SystemStatus() string {
	return fmt.Sprintf("%s/status", TopicPrefixSystem)
}

// AllTableEvents returns a pattern matching every row event.
//
// Pattern: grayaccess/event/#
func (Topics) AllTableEvents() string {
	return fmt.Sprintf("%s/#", TopicPrefixEvent)
}

// TableEvents returns a pattern matching all events of one table.
//
// Pattern: grayaccess/event/transaction/+
func (Topics) TableEvents(table string) string {
	return fmt.Sprintf("%s/%s/+", TopicPrefixEvent, table)
}
