package validate

import (
	"strconv"
	"strings"
	"time"
)

func requireNonEmpty(dataset string, row int, field, raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", rowError(dataset, row, field, "has empty %s", field)
	}
	return raw, nil
}

func parseTimestamp(dataset string, row int, raw string) (time.Time, error) {
	if _, err := requireNonEmpty(dataset, row, "timestamp", raw); err != nil {
		return time.Time{}, err
	}
	ts, err := time.Parse(TimestampLayout, raw)
	if err != nil {
		return time.Time{}, rowError(dataset, row, "timestamp",
			"has invalid timestamp '%s' (expected YYYY-MM-DD HH:MM:SS)", raw)
	}
	return ts, nil
}

func parseFloatField(dataset string, row int, field, raw string) (float64, error) {
	if _, err := requireNonEmpty(dataset, row, field, raw); err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, rowError(dataset, row, field, "has non-numeric %s='%s'", field, raw)
	}
	return v, nil
}

func parseIntField(dataset string, row int, field, raw string) (int, error) {
	if _, err := requireNonEmpty(dataset, row, field, raw); err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, rowError(dataset, row, field, "has non-integer %s='%s'", field, raw)
	}
	return v, nil
}
