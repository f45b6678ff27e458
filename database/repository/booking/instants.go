package bookingRepo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// rawLayouts are tried in order when a stored time field arrives as a string.
var rawLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// coerceInstant converts a stored timestamp representation into a time.Time.
// Well-formed documents carry native date values; older records may hold raw
// strings or epoch milliseconds, so those are parsed directly as a fallback.
func coerceInstant(value interface{}) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, true
	case primitive.DateTime:
		return v.Time(), true
	case string:
		for _, layout := range rawLayouts {
			if t, err := time.Parse(layout, v); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	case int64:
		return time.UnixMilli(v), true
	case float64:
		return time.UnixMilli(int64(v)), true
	default:
		return time.Time{}, false
	}
}
