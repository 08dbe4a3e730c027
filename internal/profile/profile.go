package profile

import (
	"fmt"
	"sort"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/sedegah/eta/internal/validate"
	"github.com/sedegah/eta/pkg/logger"
	"github.com/sedegah/eta/pkg/models"
)

// NumericStat summarizes one numeric column.
type NumericStat struct {
	Column string
	Min    float64
	Mean   float64
	Max    float64
}

// ValueCount is one distinct value of a categorical column and how many
// rows carry it.
type ValueCount struct {
	Column string
	Value  string
	Count  int
}

// DatasetSummary profiles one dataset file.
type DatasetSummary struct {
	Name    string
	Rows    int
	Columns int
	Numeric []NumericStat
	Values  []ValueCount
}

// Summary profiles all three dataset files.
type Summary struct {
	Datasets []DatasetSummary
}

var numericColumns = map[string][]string{
	validate.TrafficFile: {"avg_speed"},
	validate.WeatherFile: {"rain", "temp", "humidity"},
	validate.EventsFile:  nil,
}

var categoryColumns = map[string][]string{
	validate.TrafficFile: {"road"},
	validate.WeatherFile: nil,
	validate.EventsFile:  {"event_type"},
}

var columnTypes = map[string]map[string]series.Type{
	validate.TrafficFile: {"avg_speed": series.Float},
	validate.WeatherFile: {"rain": series.Float, "temp": series.Float, "humidity": series.Int},
	validate.EventsFile:  {},
}

// Build loads the three dataset files under dir and profiles each one.
// Headers must match the expected schemas; row contents are profiled
// as-is, so Build works on data that has not passed validation yet.
func Build(dir string) (*Summary, error) {
	log := logger.WithComponent("profile")

	s := &Summary{}
	for _, name := range []string{validate.TrafficFile, validate.WeatherFile, validate.EventsFile} {
		ds, err := validate.Load(dir, name)
		if err != nil {
			return nil, err
		}
		if err := validate.CheckColumns(ds.Name, ds.Columns); err != nil {
			return nil, err
		}
		summary, err := profileDataset(ds)
		if err != nil {
			return nil, err
		}
		s.Datasets = append(s.Datasets, summary)
		log.Debug().Str("dataset", name).Int("rows", summary.Rows).Msg("profiled dataset")
	}
	return s, nil
}

func profileDataset(ds *models.Dataset) (DatasetSummary, error) {
	summary := DatasetSummary{
		Name:    ds.Name,
		Rows:    len(ds.Rows),
		Columns: len(ds.Columns),
	}
	if len(ds.Rows) == 0 {
		return summary, nil
	}

	df := dataframe.LoadRecords(records(ds),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.WithTypes(columnTypes[ds.Name]),
	)
	if df.Err != nil {
		return DatasetSummary{}, fmt.Errorf("%s: building frame: %w", ds.Name, df.Err)
	}

	for _, col := range numericColumns[ds.Name] {
		c := df.Col(col)
		summary.Numeric = append(summary.Numeric, NumericStat{
			Column: col,
			Min:    c.Min(),
			Mean:   c.Mean(),
			Max:    c.Max(),
		})
	}

	for _, col := range categoryColumns[ds.Name] {
		counts := make(map[string]int)
		for _, v := range df.Col(col).Records() {
			counts[v]++
		}
		start := len(summary.Values)
		for v, n := range counts {
			summary.Values = append(summary.Values, ValueCount{Column: col, Value: v, Count: n})
		}
		byCountThenValue(summary.Values[start:])
	}

	return summary, nil
}

// records rebuilds the raw CSV records, header first, in declared column
// order. gota wants positional records, not keyed rows.
func records(ds *models.Dataset) [][]string {
	out := make([][]string, 0, len(ds.Rows)+1)
	out = append(out, ds.Columns)
	for _, row := range ds.Rows {
		record := make([]string, len(ds.Columns))
		for i, col := range ds.Columns {
			record[i] = row[col]
		}
		out = append(out, record)
	}
	return out
}

func byCountThenValue(counts []ValueCount) {
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Value < counts[j].Value
	})
}
