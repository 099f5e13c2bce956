package emit

import (
	"fmt"
	"os"

	"github.com/benchrate/slcsp/internal/contracts"
	"github.com/benchrate/slcsp/pkg/csvio"
)

// Header of the output table.
var header = []string{"zipcode", "rate"}

// WriteFile writes one output line per result, in order, to a freshly
// created file. Resolved rates carry exactly two decimal places; absent
// rates render as an empty field, keeping the line so output rows mirror
// target rows one to one.
func WriteFile(path string, results []contracts.RateResult) error {
	rows := make([][]string, 0, len(results))
	for _, result := range results {
		rows = append(rows, []string{result.Zipcode, result.FormattedRate()})
	}

	if err := csvio.WriteFile(path, header, rows); err != nil {
		// Do not leave a partial file behind
		_ = os.Remove(path)
		return fmt.Errorf("emit results: %w", err)
	}
	return nil
}
