package object

import "time"

// Date is a by-value, reference-tracked timestamp, carried as
// milliseconds since the Unix epoch the way the wire node.KindDate does.
type Date struct {
	EpochMillis int64
}

func (*Date) isValue() {}

// NewDate constructs a Date from a time.Time, truncating to millisecond
// precision.
func NewDate(t time.Time) *Date {
	return &Date{EpochMillis: t.UnixMilli()}
}

// Time returns the UTC time.Time this Date represents.
func (d *Date) Time() time.Time {
	return time.UnixMilli(d.EpochMillis).UTC()
}
