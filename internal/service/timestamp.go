// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"time"
)

// timestampLayouts covers the extended ISO-8601 forms: "T" or space between
// date and time, second, minute or hour precision, and offsets written as
// "Z", "+hh:mm", "+hhmm" or "+hh". Layouts without a zone are read as UTC.
var timestampLayouts = buildTimestampLayouts()

func buildTimestampLayouts() []string {
	var (
		separators = []string{"T", " "}
		clocks     = []string{"15:04:05.999999999", "15:04", "15"}
		zones      = []string{"Z07:00", "Z0700", "Z07", ""}
	)

	layouts := make([]string, 0, len(separators)*len(clocks)*len(zones)+1)
	for _, sep := range separators {
		for _, clock := range clocks {
			for _, zone := range zones {
				layouts = append(layouts, "2006-01-02"+sep+clock+zone)
			}
		}
	}

	return append(layouts, time.DateOnly)
}

// ParseTimestamp parses an ISO-8601 timestamp and normalises it to UTC.
func ParseTimestamp(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidTimestamp)
	}

	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, value)
}
