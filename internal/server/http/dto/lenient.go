package dto

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Lenient holds a loosely typed scalar taken from a form field or a JSON
// body, where numbers may arrive quoted or not at all.
type Lenient string

// UnmarshalJSON accepts strings, numbers and null.
func (l *Lenient) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*l = Lenient(s)
		return nil
	}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*l = ""
		return nil
	}
	*l = Lenient(bytes.TrimSpace(data))
	return nil
}

// UnmarshalParam is used by gin form binding.
func (l *Lenient) UnmarshalParam(param string) error {
	*l = Lenient(param)
	return nil
}

// Float returns the numeric value, with ok false when the value is missing
// or not a finite number.
func (l Lenient) Float() (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(string(l)), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Amount floors the value to whole units, saturating at the int64 range.
// Missing or non-numeric input is 0.
func (l Lenient) Amount() int64 {
	v, ok := l.Float()
	if !ok {
		return 0
	}
	v = math.Floor(v)
	switch {
	case v >= math.MaxInt64:
		return math.MaxInt64
	case v <= math.MinInt64:
		return math.MinInt64
	}
	return int64(v)
}

// Quantity returns the item count, 1 when missing, non-numeric or below 1.
func (l Lenient) Quantity() int {
	v, ok := l.Float()
	if !ok || v < 1 {
		return 1
	}
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(v)
}
