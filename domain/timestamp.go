package domain

import (
	"fmt"
	"time"
)

// Naive layouts carry no offset and are read as UTC.
var createdTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func ParseCreatedTime(value string) (time.Time, error) {
	for _, layout := range createdTimeLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("created_time %q is not an ISO-8601 timestamp", value)
}
