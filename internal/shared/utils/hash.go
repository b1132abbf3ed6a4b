package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/bytedance/sonic"
)

// Hasher computes deterministic content digests
type Hasher struct {
	json sonic.API
}

// NewHasher creates a SHA-256 hasher. JSON input is encoded with sorted
// map keys so equal values always hash equally.
func NewHasher() *Hasher {
	return &Hasher{
		json: sonic.Config{SortMapKeys: true}.Froze(),
	}
}

// Hash returns the hex digest of data
func (h *Hasher) Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// HashJSON returns the digest of v's JSON encoding
func (h *Hasher) HashJSON(v any) (string, error) {
	data, err := h.json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return h.Hash(data), nil
}

// Short truncates a digest for display and cache validators
func Short(hash string) string {
	if len(hash) < 16 {
		return hash
	}
	return hash[:16]
}
