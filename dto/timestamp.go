package dto

import (
	"fmt"
	"strconv"
	"time"
)

// TimestampLayout is ISO-8601 in UTC with microseconds and no offset.
const TimestampLayout = "2006-01-02T15:04:05.000000"

// Timestamp encodes a time as a naive UTC ISO-8601 string.
type Timestamp time.Time

func (t Timestamp) Time() time.Time {
	return time.Time(t)
}

func (t Timestamp) String() string {
	return time.Time(t).UTC().Format(TimestampLayout)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.String())), nil
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	raw, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("timestamp must be a JSON string: %w", err)
	}
	parsed, err := ParseTimestamp(raw)
	if err != nil {
		return err
	}
	*t = Timestamp(parsed)
	return nil
}

// ParseTimestamp accepts the layout written by MarshalJSON as well as
// values without a fractional part.
func ParseTimestamp(raw string) (time.Time, error) {
	for _, layout := range []string{TimestampLayout, "2006-01-02T15:04:05.999999999", "2006-01-02T15:04:05"} {
		if parsed, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", raw)
}
