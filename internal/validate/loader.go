package validate

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sedegah/eta/pkg/logger"
	"github.com/sedegah/eta/pkg/models"
)

// Load reads one dataset file from dir and returns its header and rows.
// The first record is taken as the header; every following record is
// keyed by header name. Schema problems are left for CheckColumns.
func Load(dir, name string) (*models.Dataset, error) {
	path := filepath.Join(dir, name)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &Error{Msg: "missing required file: " + path}
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, &Error{Dataset: name, Msg: fmt.Sprintf("malformed CSV: %v", err)}
	}
	if len(records) == 0 {
		return nil, &Error{Dataset: name, Msg: "missing header row"}
	}

	columns := records[0]
	rows := make([]models.Record, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(models.Record, len(columns))
		for i, col := range columns {
			row[col] = record[i]
		}
		rows = append(rows, row)
	}

	log := logger.WithDataset(name)
	log.Debug().
		Int("rows", len(rows)).
		Strs("columns", columns).
		Msg("loaded dataset")

	return &models.Dataset{Name: name, Columns: columns, Rows: rows}, nil
}
