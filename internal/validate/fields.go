package validate

import (
	"math"
	"time"

	"github.com/sedegah/eta/pkg/models"
)

// timeSet tracks which timestamps a dataset carries. Duplicates collapse,
// which is what the mergeability check wants.
type timeSet map[time.Time]bool

func validateTraffic(ds *models.Dataset) (timeSet, error) {
	seen := make(timeSet, len(ds.Rows))
	for i, row := range ds.Rows {
		rowNum := i + 2

		road, err := requireNonEmpty(ds.Name, rowNum, "road", row["road"])
		if err != nil {
			return nil, err
		}
		if !knownRoads[road] {
			return nil, rowError(ds.Name, rowNum, "road", "has unknown road '%s'", road)
		}

		ts, err := parseTimestamp(ds.Name, rowNum, row["timestamp"])
		if err != nil {
			return nil, err
		}

		speed, err := parseFloatField(ds.Name, rowNum, "avg_speed", row["avg_speed"])
		if err != nil {
			return nil, err
		}
		if math.IsNaN(speed) || speed <= 0 {
			return nil, rowError(ds.Name, rowNum, "avg_speed", "has non-positive avg_speed=%v", speed)
		}

		seen[ts] = true
	}
	return seen, nil
}

func validateWeather(ds *models.Dataset) (timeSet, error) {
	seen := make(timeSet, len(ds.Rows))
	for i, row := range ds.Rows {
		rowNum := i + 2

		ts, err := parseTimestamp(ds.Name, rowNum, row["timestamp"])
		if err != nil {
			return nil, err
		}

		rain, err := parseFloatField(ds.Name, rowNum, "rain", row["rain"])
		if err != nil {
			return nil, err
		}
		if math.IsNaN(rain) || rain < 0 {
			return nil, rowError(ds.Name, rowNum, "rain", "has negative rain=%v", rain)
		}

		temp, err := parseFloatField(ds.Name, rowNum, "temp", row["temp"])
		if err != nil {
			return nil, err
		}
		if math.IsNaN(temp) || temp < -20 || temp > 60 {
			return nil, rowError(ds.Name, rowNum, "temp", "has out-of-range temp=%v", temp)
		}

		humidity, err := parseIntField(ds.Name, rowNum, "humidity", row["humidity"])
		if err != nil {
			return nil, err
		}
		if humidity < 0 || humidity > 100 {
			return nil, rowError(ds.Name, rowNum, "humidity", "has out-of-range humidity=%d", humidity)
		}

		seen[ts] = true
	}
	return seen, nil
}

func validateEvents(ds *models.Dataset) (timeSet, error) {
	seen := make(timeSet, len(ds.Rows))
	for i, row := range ds.Rows {
		rowNum := i + 2

		ts, err := parseTimestamp(ds.Name, rowNum, row["timestamp"])
		if err != nil {
			return nil, err
		}

		eventType, err := requireNonEmpty(ds.Name, rowNum, "event_type", row["event_type"])
		if err != nil {
			return nil, err
		}
		if !knownEventTypes[eventType] {
			return nil, rowError(ds.Name, rowNum, "event_type", "has unknown event_type '%s'", eventType)
		}

		seen[ts] = true
	}
	return seen, nil
}
