package fs

import (
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/sourcerer/internal/core/ports"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes xxhash fingerprints.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Fingerprint digests the ordered ids. The count prefix and separators keep
// ["ab"] and ["a", "b"] apart.
func (h *Hasher) Fingerprint(ids []string) string {
	hasher := xxhash.New()

	_, _ = hasher.WriteString(strconv.Itoa(len(ids)))
	_, _ = hasher.Write([]byte{0})
	for _, id := range ids {
		_, _ = hasher.WriteString(id)
		_, _ = hasher.Write([]byte{0})
	}

	return fmt.Sprintf("%016x", hasher.Sum64())
}
