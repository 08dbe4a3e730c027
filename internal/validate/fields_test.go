package validate

import (
	"errors"
	"strings"
	"testing"

	"github.com/sedegah/eta/pkg/models"
)

func trafficDataset(rows ...models.Record) *models.Dataset {
	return &models.Dataset{
		Name:    TrafficFile,
		Columns: []string{"road", "timestamp", "avg_speed"},
		Rows:    rows,
	}
}

func weatherDataset(rows ...models.Record) *models.Dataset {
	return &models.Dataset{
		Name:    WeatherFile,
		Columns: []string{"timestamp", "rain", "temp", "humidity"},
		Rows:    rows,
	}
}

func eventsDataset(rows ...models.Record) *models.Dataset {
	return &models.Dataset{
		Name:    EventsFile,
		Columns: []string{"timestamp", "event_type"},
		Rows:    rows,
	}
}

func goodTrafficRow() models.Record {
	return models.Record{"road": "Circle Rd", "timestamp": "2024-01-01 08:00:00", "avg_speed": "32.5"}
}

func goodWeatherRow() models.Record {
	return models.Record{"timestamp": "2024-01-01 08:00:00", "rain": "0.0", "temp": "28.4", "humidity": "74"}
}

func TestValidateTrafficCollectsDistinctTimestamps(t *testing.T) {
	ds := trafficDataset(
		models.Record{"road": "Circle Rd", "timestamp": "2024-01-01 08:00:00", "avg_speed": "32.5"},
		models.Record{"road": "Spintex Rd", "timestamp": "2024-01-01 08:00:00", "avg_speed": "18.2"},
		models.Record{"road": "Independence Ave", "timestamp": "2024-01-01 09:00:00", "avg_speed": "41.0"},
	)

	seen, err := validateTraffic(ds)
	if err != nil {
		t.Fatalf("Failed to validate traffic rows: %v", err)
	}
	if len(seen) != 2 {
		t.Errorf("Expected 2 distinct timestamps, got %d", len(seen))
	}
}

func TestValidateTrafficViolations(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		value   string
		wantErr string
	}{
		{"empty road", "road", "", "row 3 has empty road"},
		{"whitespace road", "road", "   ", "row 3 has empty road"},
		{"unknown road", "road", "Tema Rd", "row 3 has unknown road 'Tema Rd'"},
		{"empty timestamp", "timestamp", "", "row 3 has empty timestamp"},
		{"slash timestamp", "timestamp", "01/02/2024 08:00", "row 3 has invalid timestamp '01/02/2024 08:00' (expected YYYY-MM-DD HH:MM:SS)"},
		{"date only", "timestamp", "2024-01-01", "row 3 has invalid timestamp '2024-01-01'"},
		{"non-numeric speed", "avg_speed", "fast", "row 3 has non-numeric avg_speed='fast'"},
		{"zero speed", "avg_speed", "0", "row 3 has non-positive avg_speed=0"},
		{"negative speed", "avg_speed", "-5.5", "row 3 has non-positive avg_speed=-5.5"},
		{"NaN speed", "avg_speed", "NaN", "row 3 has non-positive avg_speed=NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bad := goodTrafficRow()
			bad[tt.field] = tt.value
			ds := trafficDataset(goodTrafficRow(), bad)

			_, err := validateTraffic(ds)
			if err == nil {
				t.Fatalf("Expected error for %s=%q, got nil", tt.field, tt.value)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error to contain %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestValidateWeatherRanges(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		value   string
		wantErr string
	}{
		{"temp lower bound", "temp", "-20", ""},
		{"temp upper bound", "temp", "60", ""},
		{"temp below range", "temp", "-20.5", "row 2 has out-of-range temp=-20.5"},
		{"temp above range", "temp", "60.5", "row 2 has out-of-range temp=60.5"},
		{"humidity lower bound", "humidity", "0", ""},
		{"humidity upper bound", "humidity", "100", ""},
		{"humidity negative", "humidity", "-1", "row 2 has out-of-range humidity=-1"},
		{"humidity above range", "humidity", "101", "row 2 has out-of-range humidity=101"},
		{"humidity fractional", "humidity", "74.5", "row 2 has non-integer humidity='74.5'"},
		{"rain zero", "rain", "0", ""},
		{"rain negative", "rain", "-0.1", "row 2 has negative rain=-0.1"},
		{"rain NaN", "rain", "NaN", "row 2 has negative rain=NaN"},
		{"rain non-numeric", "rain", "wet", "row 2 has non-numeric rain='wet'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := goodWeatherRow()
			row[tt.field] = tt.value

			_, err := validateWeather(weatherDataset(row))
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Expected %s=%q to pass, got %v", tt.field, tt.value, err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Expected error for %s=%q, got nil", tt.field, tt.value)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error to contain %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestValidateEventsKnownTypes(t *testing.T) {
	for eventType := range knownEventTypes {
		ds := eventsDataset(models.Record{"timestamp": "2024-01-01 08:00:00", "event_type": eventType})
		if _, err := validateEvents(ds); err != nil {
			t.Errorf("Expected event_type %q to pass, got %v", eventType, err)
		}
	}
}

func TestValidateEventsViolations(t *testing.T) {
	ds := eventsDataset(models.Record{"timestamp": "2024-01-01 08:00:00", "event_type": "parade"})
	_, err := validateEvents(ds)
	if err == nil {
		t.Fatal("Expected error for unknown event type, got nil")
	}
	if !strings.Contains(err.Error(), "row 2 has unknown event_type 'parade'") {
		t.Errorf("Expected unknown event_type error, got %q", err.Error())
	}

	ds = eventsDataset(models.Record{"timestamp": "2024-01-01 08:00:00", "event_type": ""})
	_, err = validateEvents(ds)
	if err == nil || !strings.Contains(err.Error(), "row 2 has empty event_type") {
		t.Errorf("Expected empty event_type error, got %v", err)
	}
}

func TestRowErrorCarriesLocation(t *testing.T) {
	bad := goodTrafficRow()
	bad["avg_speed"] = "-1"
	_, err := validateTraffic(trafficDataset(goodTrafficRow(), bad))

	var verr *Error
	if !errors.As(err, &verr) {
		t.Fatalf("Expected *Error, got %T", err)
	}
	if verr.Dataset != TrafficFile {
		t.Errorf("Expected dataset %s, got %s", TrafficFile, verr.Dataset)
	}
	if verr.Row != 3 {
		t.Errorf("Expected row 3, got %d", verr.Row)
	}
	if verr.Field != "avg_speed" {
		t.Errorf("Expected field avg_speed, got %s", verr.Field)
	}
}
