package models

import (
	"strconv"
	"strings"
	"time"
)

// UnixTime represents a point in time decoded from an epoch-seconds JSON
// number. The API emits both integer and fractional epochs depending on
// the endpoint.
type UnixTime time.Time

// UnmarshalJSON unmarshals an epoch-seconds number into the UnixTime value.
func (t *UnixTime) UnmarshalJSON(data []byte) (err error) {
	raw := strings.Trim(string(data), `"`)
	if raw == "null" || raw == "" {
		return nil
	}

	sec, frac, _ := strings.Cut(raw, ".")

	var secInt, nsecInt int64
	if secInt, err = strconv.ParseInt(sec, 10, 64); err != nil {
		return
	}
	if frac != "" {
		frac = (frac + "000000000")[:9]
		if nsecInt, err = strconv.ParseInt(frac, 10, 64); err != nil {
			return
		}
	}

	*t = UnixTime(time.Unix(secInt, nsecInt))

	return
}

// MarshalJSON marshals the UnixTime value into an epoch-seconds number.
func (t UnixTime) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, time.Time(t).Unix(), 10), nil
}

// Time returns the underlying [time.Time].
func (t UnixTime) Time() time.Time {
	return time.Time(t)
}
