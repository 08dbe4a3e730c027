package validate

import "fmt"

// checkMergeability verifies the timestamp joins the ETA model depends on:
// every traffic timestamp must exist in weather, and every event timestamp
// must exist in traffic. The reverse directions are allowed to be sparse.
func checkMergeability(traffic, weather, events timeSet) error {
	absent := 0
	for ts := range traffic {
		if !weather[ts] {
			absent++
		}
	}
	if absent > 0 {
		return &Error{Msg: fmt.Sprintf("mergeability check failed: %d traffic timestamps absent from weather data", absent)}
	}

	absent = 0
	for ts := range events {
		if !traffic[ts] {
			absent++
		}
	}
	if absent > 0 {
		return &Error{Msg: fmt.Sprintf("mergeability check failed: %d event timestamps absent from traffic data", absent)}
	}
	return nil
}
