package rsa

import (
	"encoding/binary"
	"io"
	"math/rand/v2"
)

// NewSeededReader returns a deterministic byte stream for reproducible key
// generation. It is not safe for concurrent use and is not a secure source.
func NewSeededReader(seed uint64) io.Reader {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	return rand.NewChaCha8(key)
}
