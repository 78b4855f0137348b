package protein_classifier

import (
	"sort"
)

// CodeCount is one row of the code frequency table.
type CodeCount struct {
	Code    string  `json:"code"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"` // share of all codes in the sequence
}

// FrequencyTable is the per-sequence code histogram, most frequent first.
type FrequencyTable struct {
	Codes []CodeCount `json:"codes"`
	Total int         `json:"total"`
}

// CodeFrequencies counts every character of the raw sequence, including
// non-standard codes. Rows are sorted by count descending; equal counts keep
// the order in which the codes first appear.
func CodeFrequencies(raw string) FrequencyTable {
	index := make(map[rune]int)
	var rows []CodeCount
	total := 0
	for _, r := range raw {
		total++
		if i, ok := index[r]; ok {
			rows[i].Count++
			continue
		}
		index[r] = len(rows)
		rows = append(rows, CodeCount{Code: string(r), Count: 1})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Count > rows[j].Count
	})
	for i := range rows {
		rows[i].Percent = float64(rows[i].Count) / float64(total) * 100
	}
	return FrequencyTable{Codes: rows, Total: total}
}

// UniqueCodes is the number of distinct codes in the sequence.
func (ft FrequencyTable) UniqueCodes() int { return len(ft.Codes) }

// Sum adds up all counts; it always equals Total.
func (ft FrequencyTable) Sum() int {
	sum := 0
	for _, c := range ft.Codes {
		sum += c.Count
	}
	return sum
}
