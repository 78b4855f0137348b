package protein_classifier

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// WriteFrequencyCSV writes the code frequency table with a header row.
func WriteFrequencyCSV(w io.Writer, ft FrequencyTable) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"Code", "Freq", "Percent"}); err != nil {
		return err
	}
	for _, c := range ft.Codes {
		row := []string{c.Code, strconv.Itoa(c.Count), fmt.Sprintf("%.2f", c.Percent)}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WritePredictionsCSV writes one row per batch result. Failed records keep
// their id and carry the error text instead of a label.
func WritePredictionsCSV(w io.Writer, results []BatchResult) error {
	writer := csv.NewWriter(w)
	headers := []string{"SequenceID", "Length", "Class", "Confidence", "ConfidencePercent", "UniqueCodes", "Error"}
	if err := writer.Write(headers); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{r.ID, strconv.Itoa(r.Length), "", "", "", "", ""}
		if r.Err != nil {
			row[6] = r.Err.Error()
		} else {
			row[2] = r.Report.Label
			row[3] = fmt.Sprintf("%.4f", r.Report.Confidence)
			row[4] = fmt.Sprintf("%.2f", r.Report.ConfidencePercent)
			row[5] = strconv.Itoa(r.Report.UniqueCodes)
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// writeFileWith creates path and hands it to write, closing it on every path.
func writeFileWith(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
