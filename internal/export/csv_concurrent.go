package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

const flushInterval = 800 * time.Millisecond

// Stream writes rows from a channel until the channel is closed or ctx is
// done, flushing periodically. After cancellation rows already queued in the
// channel are still written. It returns the number of rows written.
func Stream(ctx context.Context, log zerolog.Logger, path string, header []string, rows <-chan []string) (int, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, err
	}
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return 0, err
	}

	flushTicker := time.NewTicker(flushInterval)
	defer flushTicker.Stop()

	written := 0
	write := func(row []string) error {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", written, err)
		}
		written++
		return nil
	}

	for {
		select {
		case row, ok := <-rows:
			if !ok {
				w.Flush()
				log.Debug().Str("path", path).Int("rows", written).Msg("stream closed")
				return written, w.Error()
			}
			if err := write(row); err != nil {
				return written, err
			}
		case <-flushTicker.C:
			w.Flush()
			if err := w.Error(); err != nil {
				return written, err
			}
		case <-ctx.Done():
		drain:
			for {
				select {
				case row, ok := <-rows:
					if !ok {
						break drain
					}
					if err := write(row); err != nil {
						return written, err
					}
				default:
					break drain
				}
			}
			w.Flush()
			log.Warn().Str("path", path).Int("rows", written).Msg("stream cancelled")
			if err := w.Error(); err != nil {
				return written, err
			}
			return written, ctx.Err()
		}
	}
}
