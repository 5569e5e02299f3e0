package tables

import "sort"

// LookupTable is a fixed external domain mapping raw integer indices to
// display names. Tables are declared once and never mutated; decoding a
// raw index outside a table's domain fails closed.
type LookupTable struct {
	name    string
	entries map[int]string
}

// Name returns the table's name, used in error messages.
func (t LookupTable) Name() string { return t.name }

// Contains reports whether the index is inside the table's domain.
func (t LookupTable) Contains(index int) bool {
	_, ok := t.entries[index]
	return ok
}

// Describe returns the display name for an index, or "" when the index
// is outside the table's domain.
func (t LookupTable) Describe(index int) string {
	return t.entries[index]
}

// Indexes returns the table's domain in ascending order.
func (t LookupTable) Indexes() []int {
	out := make([]int, 0, len(t.entries))
	for i := range t.entries {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// EventCode identifies the kind of an access-control event. Valid codes
// are exactly the domain of EventTypes.
type EventCode int

// Description returns the event's display name, or "" for a code
// outside the EventTypes domain.
func (c EventCode) Description() string { return EventTypes.Describe(int(c)) }

// InputIndex addresses a monitored input point. Valid indexes are
// exactly the domain of InputPoints.
type InputIndex int

// Description returns the input point's display name.
func (i InputIndex) Description() string { return InputPoints.Describe(int(i)) }

// OutputIndex addresses a controllable output point. Valid indexes are
// exactly the domain of OutputPoints.
type OutputIndex int

// Description returns the output point's display name.
func (o OutputIndex) Description() string { return OutputPoints.Describe(int(o)) }

// EventTypes maps the panel's event codes to display names.
var EventTypes = LookupTable{
	name: "event types",
	entries: map[int]string{
		0:   "Normal Punch Open",
		1:   "Punch during Normal Open Time Zone",
		2:   "First Card Normal Open",
		3:   "Multi-Card Open",
		4:   "Emergency Password Open",
		5:   "Open during Normal Open Time Zone",
		6:   "Linkage Event Triggered",
		7:   "Cancel Alarm",
		8:   "Remote Opening",
		9:   "Remote Closing",
		10:  "Disable Intraday Normal Open Time Zone",
		11:  "Enable Intraday Normal Open Time Zone",
		12:  "Open Auxiliary Output",
		13:  "Close Auxiliary Output",
		14:  "Press Fingerprint Open",
		15:  "Multi-Card Open (Fingerprint)",
		16:  "Fingerprint during Normal Open Time Zone",
		17:  "Card plus Fingerprint Open",
		18:  "First Card Normal Open (Fingerprint)",
		19:  "First Card Normal Open (Card plus Fingerprint)",
		20:  "Too Short Punch Interval",
		21:  "Door Inactive Time Zone (Punch)",
		22:  "Illegal Time Zone",
		23:  "Access Denied",
		24:  "Anti-Passback",
		25:  "Interlock",
		26:  "Multi-Card Authentication Waiting",
		27:  "Unregistered Card",
		28:  "Opening Timeout",
		29:  "Card Expired",
		30:  "Password Error",
		31:  "Too Short Fingerprint Pressing Interval",
		32:  "Multi-Card Authentication (Fingerprint)",
		33:  "Fingerprint Expired",
		34:  "Unregistered Fingerprint",
		35:  "Door Inactive Time Zone (Exit Button)",
		36:  "Door Inactive Time Zone (Door Sensor)",
		37:  "Failed to Close during Normal Open Time Zone",
		101: "Duress Password Open",
		102: "Opened Accidentally",
		103: "Duress Fingerprint Open",
		200: "Door Opened Correctly",
		201: "Door Closed Correctly",
		202: "Exit Button Open",
		203: "Multi-Card Open (Card plus Fingerprint)",
		204: "Normal Open Time Zone Over",
		205: "Remote Normal Opening",
		206: "Device Started",
		220: "Auxiliary Input Disconnected",
		221: "Auxiliary Input Shorted",
		255: "Current Door and Alarm Status",
	},
}

// InputPoints maps linkage input indexes to monitored points.
var InputPoints = LookupTable{
	name: "input points",
	entries: map[int]string{
		0:  "Any",
		1:  "Door 1",
		2:  "Door 2",
		3:  "Door 3",
		4:  "Door 4",
		5:  "Auxiliary Input 1",
		6:  "Auxiliary Input 2",
		7:  "Auxiliary Input 3",
		8:  "Auxiliary Input 4",
		9:  "Auxiliary Input 5",
		10: "Auxiliary Input 6",
		11: "Auxiliary Input 7",
		12: "Auxiliary Input 8",
	},
}

// OutputPoints maps linkage output indexes to controllable points.
var OutputPoints = LookupTable{
	name: "output points",
	entries: map[int]string{
		0:  "Any",
		1:  "Lock 1",
		2:  "Lock 2",
		3:  "Lock 3",
		4:  "Lock 4",
		5:  "Auxiliary Output 1",
		6:  "Auxiliary Output 2",
		7:  "Auxiliary Output 3",
		8:  "Auxiliary Output 4",
		9:  "Auxiliary Output 5",
		10: "Auxiliary Output 6",
		11: "Auxiliary Output 7",
		12: "Auxiliary Output 8",
	},
}
