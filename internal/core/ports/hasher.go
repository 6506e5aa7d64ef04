package ports

// Hasher computes fingerprints.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// Fingerprint returns a stable digest of the ordered ids.
	Fingerprint(ids []string) string
}
