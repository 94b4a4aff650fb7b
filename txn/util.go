package txn

import "strconv"

func itoa(v int32) string {
	return strconv.FormatInt(int64(v), 10)
}

// ftoa formats v the way printf's "%f" does: fixed-point, six decimals.
func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

func dateToken(d int64) string {
	return strconv.FormatInt(d, 10)
}
