package tables

import (
	"fmt"
	"strconv"
	"time"
)

// Device encoding constants.
const (
	// dateLayout is the panel's calendar date form (e.g. "20240131").
	dateLayout = "20060102"

	// panelEpochYear is the year the packed timestamp counts from.
	panelEpochYear = 2000

	// Packed timestamps use a synthetic calendar where every month has
	// 31 days. These are the resulting divisors.
	secondsPerDay   = 24 * 60 * 60
	secondsPerMonth = 31 * secondsPerDay
	secondsPerYear  = 12 * secondsPerMonth

	// timeRangeShift separates the "from" and "to" halves of a packed
	// time range; each half holds hour*100+minute.
	timeRangeShift = 16
	timeRangeMask  = 0xFFFF

	// doorCount is the number of door relays packed into one integer.
	doorCount = 4
	doorsMax  = 1<<doorCount - 1
)

// TimeRange is a daily start/end pair as stored in timezone segments.
// Only the wall-clock hour and minute of each endpoint are significant;
// both times of day and full timestamps are accepted.
type TimeRange struct {
	From time.Time
	To   time.Time
}

func (tr TimeRange) String() string {
	return fmt.Sprintf("%02d:%02d-%02d:%02d",
		tr.From.Hour(), tr.From.Minute(), tr.To.Hour(), tr.To.Minute())
}

// decodeDate parses the panel's YYYYMMDD date form.
func decodeDate(raw string) (time.Time, error) {
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", raw, err)
	}
	return t, nil
}

// encodeDate renders a date in the panel's YYYYMMDD form.
func encodeDate(t time.Time) string {
	return t.Format(dateLayout)
}

// decodeCTime unpacks the panel's timestamp: a decimal seconds count
// since 2000-01-01 in a synthetic calendar where every month has 31
// days.
func decodeCTime(raw string) (time.Time, error) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", raw, err)
	}
	if n < 0 {
		return time.Time{}, fmt.Errorf("negative timestamp %d", n)
	}

	year := int(n/secondsPerYear) + panelEpochYear
	month := time.Month(n/secondsPerMonth%12 + 1)
	day := int(n/secondsPerDay%31 + 1)
	hour := int(n / 3600 % 24)
	minute := int(n / 60 % 60)
	second := int(n % 60)

	return time.Date(year, month, day, hour, minute, second, 0, time.UTC), nil
}

// encodeCTime packs a timestamp into the panel's seconds count.
func encodeCTime(t time.Time) int64 {
	days := int64(t.Year()-panelEpochYear)*12*31 +
		int64(t.Month()-1)*31 +
		int64(t.Day()-1)
	return days*secondsPerDay +
		int64(t.Hour())*3600 + int64(t.Minute())*60 + int64(t.Second())
}

// decodeTimeRange unpacks a 32-bit time range: the high half holds the
// start as hour*100+minute, the low half the end.
func decodeTimeRange(raw string) (TimeRange, error) {
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return TimeRange{}, fmt.Errorf("parsing time range %q: %w", raw, err)
	}

	from, err := clockTime(int(n >> timeRangeShift))
	if err != nil {
		return TimeRange{}, fmt.Errorf("time range %q start: %w", raw, err)
	}
	to, err := clockTime(int(n & timeRangeMask))
	if err != nil {
		return TimeRange{}, fmt.Errorf("time range %q end: %w", raw, err)
	}
	return TimeRange{From: from, To: to}, nil
}

// encodeTimeRange packs a start/end pair into the 32-bit form.
func encodeTimeRange(tr TimeRange) int {
	from := tr.From.Hour()*100 + tr.From.Minute()
	to := tr.To.Hour()*100 + tr.To.Minute()
	return from<<timeRangeShift | to
}

// clockTime turns an hour*100+minute value into a time of day.
func clockTime(hhmm int) (time.Time, error) {
	hour, minute := hhmm/100, hhmm%100
	if hour > 23 || minute > 59 {
		return time.Time{}, fmt.Errorf("invalid clock value %04d", hhmm)
	}
	return time.Date(0, time.January, 1, hour, minute, 0, 0, time.UTC), nil
}

// decodeDoors unpacks a four-door boolean set. Bit i of the stored
// integer is door i, least-significant bit first.
func decodeDoors(raw string) ([]bool, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing door set %q: %w", raw, err)
	}
	if n < 0 || n > doorsMax {
		return nil, fmt.Errorf("door set %d outside 0-%d", n, doorsMax)
	}

	doors := make([]bool, doorCount)
	for i := range doors {
		doors[i] = n&(1<<i) != 0
	}
	return doors, nil
}

// encodeDoors packs four booleans into one integer, door i at bit i.
func encodeDoors(doors []bool) int {
	n := 0
	for i, open := range doors {
		if open {
			n |= 1 << i
		}
	}
	return n
}
