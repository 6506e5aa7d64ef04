package domain

import "go.trai.ch/zerr"

// Partition is the ordered slice of project ids owned by one worker.
type Partition struct {
	Worker int
	IDs    []string
}

// PartitionIDs splits ids across workers by stride: the id at index k goes to
// worker k mod workers. The result is stable for a given input order.
func PartitionIDs(ids []string, workers int) ([]Partition, error) {
	if workers < 1 {
		return nil, WithMeta(ErrInvalidWorkerCount, "workers", workers)
	}

	parts := make([]Partition, workers)
	for i := range parts {
		parts[i] = Partition{
			Worker: i,
			IDs:    make([]string, 0, len(ids)/workers+1),
		}
	}
	for k, id := range ids {
		w := k % workers
		parts[w].IDs = append(parts[w].IDs, id)
	}
	return parts, nil
}

// VerifyCoverage checks that every id appears in exactly one partition and
// that partitions hold nothing else.
func VerifyCoverage(ids []string, parts []Partition) error {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = false
	}

	for _, p := range parts {
		for _, id := range p.IDs {
			seen, known := want[id]
			if !known {
				return zerr.With(WithMeta(ErrPartitionCoverage, "unknown_id", id), "worker", p.Worker)
			}
			if seen {
				return zerr.With(WithMeta(ErrPartitionCoverage, "duplicate_id", id), "worker", p.Worker)
			}
			want[id] = true
		}
	}

	for id, seen := range want {
		if !seen {
			return WithMeta(ErrPartitionCoverage, "missing_id", id)
		}
	}
	return nil
}
