package util

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// HashJSON hashes the canonical JSON encoding of value. Struct field order
// is fixed by the type definition, so the result is stable across runs.
func HashJSON(value any) string {
	data, _ := json.Marshal(value)
	return HashBytes(data)
}

func HashStrings(parts ...string) string {
	return HashJSON(parts)
}

func HashBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
