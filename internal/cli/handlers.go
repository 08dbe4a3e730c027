package cli

import (
	"fmt"

	"github.com/sedegah/eta/internal/config"
	"github.com/sedegah/eta/internal/profile"
	"github.com/sedegah/eta/internal/validate"
)

// dataDir resolves where the dataset files live: the --data-dir flag
// wins, then ETA_DATA_DIR, then the "data" default.
func dataDir(opts *Options) string {
	if opts.DataDir != "" {
		return opts.DataDir
	}
	return config.Load().DataDir
}

func runValidate(opts *Options) error {
	report, err := validate.Run(dataDir(opts))
	if err != nil {
		return err
	}

	fmt.Println("Dataset validation passed.")
	fmt.Printf("Rows: traffic=%d, weather=%d, events=%d\n",
		report.TrafficRows, report.WeatherRows, report.EventRows)
	return nil
}

func runProfile(opts *Options) error {
	summary, err := profile.Build(dataDir(opts))
	if err != nil {
		return err
	}

	for _, ds := range summary.Datasets {
		fmt.Printf("%s: %d rows, %d columns\n", ds.Name, ds.Rows, ds.Columns)
		for _, stat := range ds.Numeric {
			fmt.Printf("  %s: min=%.2f mean=%.2f max=%.2f\n", stat.Column, stat.Min, stat.Mean, stat.Max)
		}
		for _, vc := range ds.Values {
			fmt.Printf("  %s %q: %d\n", vc.Column, vc.Value, vc.Count)
		}
	}
	return nil
}
