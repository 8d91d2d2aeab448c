package pipeline

import (
	"crypto/rand"
	"encoding/binary"
	"sync"
	"time"
)

// Job IDs are ULIDs: a 48-bit millisecond timestamp followed by 80
// random bits, Crockford Base32 encoded to 26 characters. Generated
// locally, no external dependency, sortable by creation time.

const crockford = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

var (
	ulidMu  sync.Mutex
	lastMs  uint64
	lastSeq uint16
)

// NewULID returns a fresh lexicographically sortable job ID.
func NewULID() string {
	ulidMu.Lock()
	defer ulidMu.Unlock()

	ms := uint64(time.Now().UnixMilli())
	if ms == lastMs {
		lastSeq++
	} else {
		lastMs = ms
		lastSeq = 0
	}

	var b [16]byte
	// Timestamp occupies the first 6 bytes, big-endian.
	binary.BigEndian.PutUint64(b[:8], ms<<16)
	rand.Read(b[6:])
	// A sequence counter in the first two random bytes keeps IDs
	// unique within one millisecond.
	binary.BigEndian.PutUint16(b[6:8], lastSeq)

	// 128 bits plus two zero padding bits on the left make 26
	// five-bit groups.
	out := make([]byte, 0, 26)
	var acc uint32
	bits := 2
	for _, c := range b {
		acc = acc<<8 | uint32(c)
		bits += 8
		for bits >= 5 {
			bits -= 5
			out = append(out, crockford[(acc>>bits)&31])
		}
	}
	return string(out)
}
