package huffman

import (
	"context"

	"github.com/nuclio/errors"
	"golang.org/x/sync/errgroup"
)

// minChunkSize is the smallest slice of input worth handing to its own
// counting goroutine.
const minChunkSize = 64 << 10

// FrequencyTable holds the number of occurrences of each Symbol in an input.
type FrequencyTable struct {
	counts [NumSymbols]uint64
}

// Count returns the number of occurrences of symbol.
func (ft *FrequencyTable) Count(symbol Symbol) uint64 {
	return ft.counts[symbol]
}

// Add records n more occurrences of symbol.
func (ft *FrequencyTable) Add(symbol Symbol, n uint64) {
	ft.counts[symbol] += n
}

// Distinct returns the number of symbols with a non-zero count.
func (ft *FrequencyTable) Distinct() int {
	var n int
	for _, count := range ft.counts {
		if count != 0 {
			n++
		}
	}
	return n
}

// Total returns the sum of all counts.
func (ft *FrequencyTable) Total() uint64 {
	var total uint64
	for _, count := range ft.counts {
		total += count
	}
	return total
}

// Merge adds every count in other to this table.
func (ft *FrequencyTable) Merge(other *FrequencyTable) {
	for symbol, count := range other.counts {
		ft.counts[symbol] += count
	}
}

func (ft *FrequencyTable) countBytes(data []byte) {
	for _, b := range data {
		ft.counts[b]++
	}
}

// CountFrequencies scans data and returns its FrequencyTable.
//
// If workers > 1 and data is large enough, data is split into contiguous
// chunks which are counted concurrently and then summed.  Addition is
// commutative, so the result is identical to a serial count.
//
func CountFrequencies(ctx context.Context, data []byte, workers int) (*FrequencyTable, error) {
	if workers > 1 && len(data)/workers < minChunkSize {
		workers = len(data) / minChunkSize
	}

	if workers <= 1 {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "Frequency count canceled")
		}
		var ft FrequencyTable
		ft.countBytes(data)
		return &ft, nil
	}

	partials := make([]FrequencyTable, workers)
	chunkSize := (len(data) + workers - 1) / workers

	group, groupCtx := errgroup.WithContext(ctx)
	for worker := 0; worker < workers; worker++ {
		worker := worker
		start := worker * chunkSize
		end := start + chunkSize
		if end > len(data) {
			end = len(data)
		}

		group.Go(func() error {
			chunk := data[start:end]
			for len(chunk) > 0 {
				if err := groupCtx.Err(); err != nil {
					return err
				}
				n := minChunkSize
				if n > len(chunk) {
					n = len(chunk)
				}
				partials[worker].countBytes(chunk[:n])
				chunk = chunk[n:]
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, errors.Wrap(err, "Frequency count canceled")
	}

	var ft FrequencyTable
	for i := range partials {
		ft.Merge(&partials[i])
	}
	return &ft, nil
}
