// Package volatile decodes the compact binary "volatile data" format
// (price and popularity data that changes daily and is not worth bundling
// into the corpus chunks) described in spec.md §4.2 and §6.
package volatile

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// RecordSize is the fixed width of one binary record, in bytes.
const RecordSize = 44

const sentinel = 0xFFFFFFFF

// ErrMalformed is returned when the input length is not a multiple of
// RecordSize. Per spec.md §4.2 the caller should log this and continue
// with an empty volatile map rather than fail the worker.
var ErrMalformed = errors.New("malformed volatile data")

// Record is the decoded form of one 44-byte entry.
type Record struct {
	ID   uuid.UUID
	Rank *int // EDHREC rank; nil if absent

	USD       *float64
	USDFoil   *float64
	USDEtched *float64
	EUR       *float64
	EURFoil   *float64
	TIX       *float64
}

// Decode parses a blob of zero or more 44-byte records into a map keyed by
// printing id. On a length mismatch it returns ErrMalformed and a nil map;
// the caller is expected to treat that as "volatile data unavailable",
// never as a fatal error.
func Decode(data []byte) (map[uuid.UUID]Record, error) {
	if len(data)%RecordSize != 0 {
		return nil, fmt.Errorf("%w: length %d is not a multiple of %d", ErrMalformed, len(data), RecordSize)
	}

	count := len(data) / RecordSize
	out := make(map[uuid.UUID]Record, count)

	for i := 0; i < count; i++ {
		rec, id, err := decodeOne(data[i*RecordSize : (i+1)*RecordSize])
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrMalformed, i, err)
		}
		out[id] = rec
	}

	return out, nil
}

func decodeOne(b []byte) (Record, uuid.UUID, error) {
	if len(b) != RecordSize {
		return Record{}, uuid.Nil, fmt.Errorf("read past end of buffer")
	}

	id, err := uuid.FromBytes(b[0:16])
	if err != nil {
		return Record{}, uuid.Nil, err
	}

	rank := binary.LittleEndian.Uint32(b[16:20])

	cents := func(off int) *float64 {
		v := binary.LittleEndian.Uint32(b[off : off+4])
		if v == sentinel {
			return nil
		}
		dollars := float64(v) / 100
		return &dollars
	}

	rec := Record{
		ID:        id,
		USD:       cents(20),
		USDFoil:   cents(24),
		USDEtched: cents(28),
		EUR:       cents(32),
		EURFoil:   cents(36),
		TIX:       cents(40),
	}
	if rank != sentinel {
		r := int(rank)
		rec.Rank = &r
	}

	return rec, id, nil
}

// Encode is the inverse of Decode for a single record, used by tests to
// exercise the round-trip invariant from spec.md §8.
func Encode(rec Record) []byte {
	b := make([]byte, RecordSize)
	copy(b[0:16], rec.ID[:])

	putRank := func(r *int) uint32 {
		if r == nil {
			return sentinel
		}
		return uint32(*r)
	}
	putCents := func(v *float64) uint32 {
		if v == nil {
			return sentinel
		}
		return uint32(*v*100 + 0.5)
	}

	binary.LittleEndian.PutUint32(b[16:20], putRank(rec.Rank))
	binary.LittleEndian.PutUint32(b[20:24], putCents(rec.USD))
	binary.LittleEndian.PutUint32(b[24:28], putCents(rec.USDFoil))
	binary.LittleEndian.PutUint32(b[28:32], putCents(rec.USDEtched))
	binary.LittleEndian.PutUint32(b[32:36], putCents(rec.EUR))
	binary.LittleEndian.PutUint32(b[36:40], putCents(rec.EURFoil))
	binary.LittleEndian.PutUint32(b[40:44], putCents(rec.TIX))

	return b
}
