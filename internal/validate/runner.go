package validate

import (
	"github.com/sedegah/eta/pkg/logger"
	"github.com/sedegah/eta/pkg/models"
)

// Run validates the three dataset files under dir and reports their row
// counts. It stops at the first violation: loading, then the empty-file
// rule, then schemas, then per-row field checks, then mergeability.
func Run(dir string) (*models.Report, error) {
	log := logger.WithComponent("validate")

	traffic, err := Load(dir, TrafficFile)
	if err != nil {
		return nil, err
	}
	weather, err := Load(dir, WeatherFile)
	if err != nil {
		return nil, err
	}
	events, err := Load(dir, EventsFile)
	if err != nil {
		return nil, err
	}

	if len(traffic.Rows) == 0 || len(weather.Rows) == 0 {
		return nil, &Error{Msg: TrafficFile + " and " + WeatherFile + " must not be empty"}
	}

	for _, ds := range []*models.Dataset{traffic, weather, events} {
		if err := CheckColumns(ds.Name, ds.Columns); err != nil {
			return nil, err
		}
	}
	log.Debug().Msg("schemas match")

	trafficTimes, err := validateTraffic(traffic)
	if err != nil {
		return nil, err
	}
	weatherTimes, err := validateWeather(weather)
	if err != nil {
		return nil, err
	}
	eventTimes, err := validateEvents(events)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Int("traffic", len(trafficTimes)).
		Int("weather", len(weatherTimes)).
		Int("events", len(eventTimes)).
		Msg("distinct timestamps per dataset")

	if err := checkMergeability(trafficTimes, weatherTimes, eventTimes); err != nil {
		return nil, err
	}

	return &models.Report{
		TrafficRows: len(traffic.Rows),
		WeatherRows: len(weather.Rows),
		EventRows:   len(events.Rows),
	}, nil
}
