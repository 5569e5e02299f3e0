package tables

// VerifyMode is the credential combination a door requires.
type VerifyMode int

// VerifyMode constants.
const (
	VerifyModeDefault         VerifyMode = 0
	VerifyModeFingerOnly      VerifyMode = 1
	VerifyModePasswordOnly    VerifyMode = 3
	VerifyModeCardOnly        VerifyMode = 4
	VerifyModeCardOrFinger    VerifyMode = 6
	VerifyModeCardAndFinger   VerifyMode = 10
	VerifyModeCardAndPassword VerifyMode = 11
	VerifyModeOther           VerifyMode = 200
)

func (m VerifyMode) String() string {
	switch m {
	case VerifyModeDefault:
		return "default"
	case VerifyModeFingerOnly:
		return "finger_only"
	case VerifyModePasswordOnly:
		return "password_only"
	case VerifyModeCardOnly:
		return "card_only"
	case VerifyModeCardOrFinger:
		return "card_or_finger"
	case VerifyModeCardAndFinger:
		return "card_and_finger"
	case VerifyModeCardAndPassword:
		return "card_and_password"
	case VerifyModeOther:
		return "other"
	}
	return "unknown"
}

// PassageDirection is the direction of a recorded passage.
type PassageDirection int

// PassageDirection constants.
const (
	DirectionEntry PassageDirection = 0
	DirectionExit  PassageDirection = 1
	DirectionNone  PassageDirection = 2
)

func (d PassageDirection) String() string {
	switch d {
	case DirectionEntry:
		return "entry"
	case DirectionExit:
		return "exit"
	case DirectionNone:
		return "none"
	}
	return "unknown"
}

// HolidayLoop says whether a holiday entry repeats every year.
type HolidayLoop int

// HolidayLoop constants.
const (
	LoopOnce   HolidayLoop = 0
	LoopRepeat HolidayLoop = 1
)

func (l HolidayLoop) String() string {
	switch l {
	case LoopOnce:
		return "once"
	case LoopRepeat:
		return "repeat"
	}
	return "unknown"
}

// RelayGroup is the relay bank a linkage output belongs to.
type RelayGroup int

// RelayGroup constants.
const (
	RelayGroupLock RelayGroup = 0
	RelayGroupAux  RelayGroup = 1
)

func (g RelayGroup) String() string {
	switch g {
	case RelayGroupLock:
		return "lock"
	case RelayGroupAux:
		return "aux"
	}
	return "unknown"
}
