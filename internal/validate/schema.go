package validate

import (
	"fmt"
	"sort"
)

// The three dataset files the ETA pipeline joins on timestamp.
const (
	TrafficFile = "traffic_data.csv"
	WeatherFile = "weather_data.csv"
	EventsFile  = "events_data.csv"
)

// TimestampLayout is the only accepted timestamp format
// (YYYY-MM-DD HH:MM:SS).
const TimestampLayout = "2006-01-02 15:04:05"

// expectedColumns declares the schema for each file. The declared order
// is for display only; validity is checked set-wise (see CheckColumns).
var expectedColumns = map[string][]string{
	TrafficFile: {"road", "timestamp", "avg_speed"},
	WeatherFile: {"timestamp", "rain", "temp", "humidity"},
	EventsFile:  {"timestamp", "event_type"},
}

var knownRoads = map[string]bool{
	"Circle Rd":        true,
	"Spintex Rd":       true,
	"Independence Ave": true,
}

var knownEventTypes = map[string]bool{
	"none":       true,
	"concert":    true,
	"sports":     true,
	"festival":   true,
	"market_day": true,
	"accident":   true,
}

// CheckColumns verifies that the actual header of the named file carries
// exactly the expected column set. Column order does not matter; a
// duplicated column name is a mismatch even when the set looks complete.
func CheckColumns(name string, actual []string) error {
	expected := expectedColumns[name]

	expectedSet := make(map[string]bool, len(expected))
	for _, col := range expected {
		expectedSet[col] = true
	}
	actualSet := make(map[string]bool, len(actual))
	for _, col := range actual {
		actualSet[col] = true
	}

	var missing, extra []string
	for col := range expectedSet {
		if !actualSet[col] {
			missing = append(missing, col)
		}
	}
	for col := range actualSet {
		if !expectedSet[col] {
			extra = append(extra, col)
		}
	}
	if len(missing) == 0 && len(extra) == 0 && len(actual) == len(expected) {
		return nil
	}

	sort.Strings(missing)
	sort.Strings(extra)
	return &Error{
		Dataset: name,
		Msg: fmt.Sprintf("schema mismatch (expected=%v; got=%v; missing=%v; unexpected=%v)",
			expected, actual, missing, extra),
	}
}
