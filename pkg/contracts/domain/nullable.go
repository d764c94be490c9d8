package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrNullValue is returned when a null field is used where a value is required.
var ErrNullValue = errors.New("null value")

// NullInt64 is an int64 that may be absent. The zero value is null.
type NullInt64 struct {
	Int64 int64
	Valid bool
}

// Int64Of returns a valid NullInt64 holding v.
func Int64Of(v int64) NullInt64 {
	return NullInt64{Int64: v, Valid: true}
}

// Value returns the held int64, or ErrNullValue when the field is null.
func (n NullInt64) Value() (int64, error) {
	if !n.Valid {
		return 0, ErrNullValue
	}
	return n.Int64, nil
}

// String renders the value for CSV output; null renders as the empty string.
func (n NullInt64) String() string {
	if !n.Valid {
		return ""
	}
	return fmt.Sprintf("%d", n.Int64)
}

// MarshalJSON renders null fields as JSON null, never as zero.
func (n NullInt64) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Int64)
}

// NullFloat64 is a float64 that may be absent. The zero value is null.
type NullFloat64 struct {
	Float64 float64
	Valid   bool
}

// Float64Of returns a valid NullFloat64 holding v.
func Float64Of(v float64) NullFloat64 {
	return NullFloat64{Float64: v, Valid: true}
}

// Value returns the held float64, or ErrNullValue when the field is null.
func (n NullFloat64) Value() (float64, error) {
	if !n.Valid {
		return 0, ErrNullValue
	}
	return n.Float64, nil
}

// MarshalJSON renders null fields as JSON null, never as zero.
func (n NullFloat64) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Float64)
}

// NullTime is a time.Time that may be absent. The zero value is null.
type NullTime struct {
	Time  time.Time
	Valid bool
}

// TimeOf returns a valid NullTime holding t.
func TimeOf(t time.Time) NullTime {
	return NullTime{Time: t, Valid: true}
}

// Value returns the held time, or ErrNullValue when the field is null.
func (n NullTime) Value() (time.Time, error) {
	if !n.Valid {
		return time.Time{}, ErrNullValue
	}
	return n.Time, nil
}

// MarshalJSON renders null fields as JSON null, never as the zero time.
func (n NullTime) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Time)
}
