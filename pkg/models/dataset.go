// Package models holds the shared data types the CLI and the validation
// core exchange.
package models

// Record is one CSV data row, keyed by column name. Values are the raw
// strings from the file; parsing happens in the validators.
type Record map[string]string

// Dataset is one loaded CSV file. Datasets are built once per run and
// never mutated afterwards.
type Dataset struct {
	Name    string   // file name, e.g. "traffic_data.csv"
	Columns []string // header columns in file order
	Rows    []Record // data rows in file order
}

// Report summarizes a successful validation run.
type Report struct {
	TrafficRows int
	WeatherRows int
	EventRows   int
}
