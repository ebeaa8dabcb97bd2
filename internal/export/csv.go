package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/emrzvv/genrand/internal/bench"
	"github.com/emrzvv/genrand/internal/model"
	"github.com/emrzvv/genrand/internal/stats"
)

// writeCSV stops at the first failed row and reports it.
func writeCSV(path string, header []string, rows func(w *csv.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	if err := rows(w); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

func WriteBench(path string, results []*bench.Result) error {
	return writeCSV(path, []string{"target", "kind", "round", "iterations", "elapsed_ns", "ns_op", "checksum"},
		func(w *csv.Writer) error {
			for _, r := range results {
				if err := w.Write([]string{
					r.Target,
					r.Kind,
					strconv.Itoa(r.Round),
					strconv.Itoa(r.Iterations),
					strconv.FormatInt(r.Elapsed.Nanoseconds(), 10),
					fmt.Sprintf("%.3f", r.NsPerOp()),
					strconv.FormatUint(r.Checksum, 10),
				}); err != nil {
					return err
				}
			}
			return nil
		})
}

func WriteBenchSummary(path string, aggs []*bench.Aggregate) error {
	return writeCSV(path, []string{"target", "kind", "rounds", "mean_ns_op", "stddev_ns_op"},
		func(w *csv.Writer) error {
			for _, a := range aggs {
				if err := w.Write([]string{
					a.Target,
					a.Kind,
					strconv.Itoa(a.Rounds),
					fmt.Sprintf("%.3f", a.MeanNsOp),
					fmt.Sprintf("%.3f", a.StdDevNsOp),
				}); err != nil {
					return err
				}
			}
			return nil
		})
}

func WriteSamples(path string, values []float64) error {
	return writeCSV(path, []string{"index", "value"}, func(w *csv.Writer) error {
		for i, v := range values {
			if err := w.Write([]string{
				strconv.Itoa(i),
				strconv.FormatFloat(v, 'g', -1, 64),
			}); err != nil {
				return err
			}
		}
		return nil
	})
}

func WriteHistogram(path string, s *stats.Summary) error {
	return writeCSV(path, []string{"lo", "hi", "count"}, func(w *csv.Writer) error {
		for i, c := range s.Counts {
			if err := w.Write([]string{
				fmt.Sprintf("%.5f", s.Dividers[i]),
				fmt.Sprintf("%.5f", s.Dividers[i+1]),
				strconv.FormatFloat(c, 'f', 0, 64),
			}); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeStatisticsToCSV(trace *stats.Trace, arrivalsPath, jobsPath string) error {
	err := writeCSV(arrivalsPath, []string{"time_s", "job_id"}, func(w *csv.Writer) error {
		for _, event := range trace.Arrivals {
			if err := w.Write([]string{
				fmt.Sprintf("%.5f", event.T),
				fmt.Sprintf("%d", event.JobID),
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	return writeCSV(jobsPath, []string{"job_id", "arrival_s", "start_s", "end_s", "wait_s"}, func(w *csv.Writer) error {
		for _, event := range trace.Jobs {
			if err := w.Write([]string{
				fmt.Sprintf("%d", event.JobID),
				fmt.Sprintf("%.5f", event.Arrival),
				fmt.Sprintf("%.5f", event.Start),
				fmt.Sprintf("%.5f", event.End),
				fmt.Sprintf("%.5f", event.Wait()),
			}); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeSnapshotsToCSV(queue *model.Queue, path string) error {
	return writeCSV(path, []string{"time_s", "length", "busy"}, func(w *csv.Writer) error {
		for _, snap := range queue.Snapshots {
			if err := w.Write([]string{
				fmt.Sprintf("%.5f", snap.T),
				fmt.Sprintf("%d", snap.Length),
				strconv.FormatBool(snap.Busy),
			}); err != nil {
				return err
			}
		}
		return nil
	})
}

// ToCSV writes arrivals.csv, jobs.csv and snapshots.csv into dir.
func ToCSV(dir string, trace *stats.Trace, queue *model.Queue) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	err := writeStatisticsToCSV(trace,
		filepath.Join(dir, "arrivals.csv"),
		filepath.Join(dir, "jobs.csv"))
	if err != nil {
		return err
	}
	return writeSnapshotsToCSV(queue, filepath.Join(dir, "snapshots.csv"))
}
