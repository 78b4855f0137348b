package protein_classifier

import (
	"fmt"
	"io"
	"runtime"
	"sort"
	"sync"

	"github.com/cheggaaa/pb/v3"
	"gonum.org/v1/gonum/stat"

	common "prot_classifier_go/utils"
)

// BatchResult is the outcome for one FASTA record.
type BatchResult struct {
	ID     string
	Length int
	Report *Report
	Err    error
}

// BatchOptions tunes ClassifyFasta.
type BatchOptions struct {
	Workers  int       // defaults to runtime.NumCPU()
	Progress io.Writer // progress bar destination; nil disables it
}

// LabelCount is one row of the predicted-class histogram.
type LabelCount struct {
	Label string
	Count int
}

// BatchSummary aggregates a batch run.
type BatchSummary struct {
	Records        int
	Classified     int
	Failed         int
	MeanConfidence float64
	StdConfidence  float64
	Labels         []LabelCount // most frequent first
}

type fastaRecord struct {
	id  string
	seq string
}

// ClassifyFasta classifies every record of a (possibly gzipped) protein FASTA
// file. Records are sent through the same pipeline as preset choices, so
// they skip the free-text alphabet check. Results keep file order. A record
// that fails is reported in its BatchResult; only I/O problems fail the call.
func (s *Service) ClassifyFasta(path string, opts BatchOptions) ([]BatchResult, error) {
	var records []fastaRecord
	err := common.StreamFasta(path, func(id, seq string) error {
		records = append(records, fastaRecord{id: id, seq: seq})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	numWorkers := opts.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	var bar *pb.ProgressBar
	if opts.Progress != nil && len(records) > 0 {
		bar = pb.New(len(records))
		bar.SetWriter(opts.Progress)
		bar.Start()
	}

	results := make([]BatchResult, len(records))
	jobs := make(chan int, numWorkers*2)
	var wg sync.WaitGroup

	// Worker pool; each worker writes only its own result slots
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				rec := records[i]
				rep, err := s.ClassifySequence(rec.seq)
				if rep != nil {
					rep.Source = "fasta"
				}
				results[i] = BatchResult{ID: rec.id, Length: len([]rune(rec.seq)), Report: rep, Err: err}
				if bar != nil {
					bar.Increment()
				}
			}
		}()
	}

	for i := range records {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if bar != nil {
		bar.Finish()
	}
	return results, nil
}

// Summarize computes confidence statistics and the label histogram.
func Summarize(results []BatchResult) BatchSummary {
	sum := BatchSummary{Records: len(results)}
	var confs []float64
	counts := make(map[string]int)
	for _, r := range results {
		if r.Err != nil || r.Report == nil {
			sum.Failed++
			continue
		}
		sum.Classified++
		confs = append(confs, r.Report.Confidence)
		counts[r.Report.Label]++
	}

	if len(confs) > 0 {
		sum.MeanConfidence = stat.Mean(confs, nil)
	}
	if len(confs) > 1 {
		sum.StdConfidence = stat.StdDev(confs, nil)
	}

	for label, c := range counts {
		sum.Labels = append(sum.Labels, LabelCount{Label: label, Count: c})
	}
	sort.Slice(sum.Labels, func(i, j int) bool {
		if sum.Labels[i].Count != sum.Labels[j].Count {
			return sum.Labels[i].Count > sum.Labels[j].Count
		}
		return sum.Labels[i].Label < sum.Labels[j].Label
	})
	return sum
}
