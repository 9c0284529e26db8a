package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// CSVHeader names the columns written by WriteCSV.
var CSVHeader = []string{"destination", "origin", "day", "text", "cost_estimate"}

func dayLabel(n int) string {
	return "Day " + strconv.Itoa(n)
}

// WriteCSV writes rows to w, preceded by CSVHeader when header is true.
func WriteCSV(w io.Writer, rows []Row, header bool) error {
	cw := csv.NewWriter(w)
	if header {
		if err := cw.Write(CSVHeader); err != nil {
			return fmt.Errorf("csv: write header: %w", err)
		}
	}
	for _, r := range rows {
		rec := []string{r.Destination, r.Origin, r.DayLabel, r.DayText, strconv.Itoa(r.CostEstimate)}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
