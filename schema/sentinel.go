// Package schema defines the nine TPC-C row types, their sentinel
// default values, and the tolerance-aware equality used by verification.
package schema

import "math"

// Sentinel defaults assigned by every row constructor, matching the
// reference implementation's uninitialised-field values.
const (
	IntSentinel   int32   = math.MinInt32
	FloatSentinel float64 = -1.7976931348623157e+308
	DateSentinel  int64   = 0
)

// FloatEqual compares two decimal fields with the schema's fixed
// absolute tolerance.
func FloatEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 0.01
}
