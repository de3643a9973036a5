package core

import (
	"encoding/binary"
	"hash/fnv"
)

// SubSeed derives a stage seed from the base seed and a stage tag. Each
// pipeline stage draws from its own sub-seeded source, so adding or removing
// one stage never perturbs the random sequence of another.
func SubSeed(base int64, tag string) int64 {
	h := fnv.New64a()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(base))
	h.Write(buf[:])
	h.Write([]byte(tag))
	return int64(h.Sum64())
}
