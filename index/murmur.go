package index

// MurmurHash3's 32-bit finaliser constants. The reference hasher is
// compiled with `#define int unsigned int`, so every operation here uses
// explicit uint32 wraparound arithmetic rather than relying on Go's
// (signed) int to behave the same way on overflow.
const (
	foldC1       uint32 = 0xcc9e2d51 // -862048943 as a signed 32-bit value
	foldC2       uint32 = 0x1b873593 // 461845907
	foldMul      uint32 = 5
	foldAdd      uint32 = 0xe6546b64 // -430675100
	avalancheMul1 uint32 = 0x85ebca6b // -2048144789
	avalancheMul2 uint32 = 0xc2b2ae35 // -1028477387
)

func rotl32(x uint32, r uint) uint32 {
	return (x << r) | (x >> (32 - r))
}

// FieldHasher folds a sequence of per-field 32-bit hashes into a single
// composite key hash, the way the reference index hashers combine the
// fields of a probe key one at a time before the final avalanche mix.
type FieldHasher struct {
	h uint32
	n uint32
}

// NewFieldHasher returns a hasher ready to accept fields.
func NewFieldHasher() *FieldHasher {
	return &FieldHasher{}
}

// Add folds one more field's 32-bit hash into the accumulator and returns
// the receiver, so calls can be chained.
func (f *FieldHasher) Add(field uint32) *FieldHasher {
	k := field * foldC1
	k = rotl32(k, 15)
	k *= foldC2
	f.h ^= k
	f.h = rotl32(f.h, 13)
	f.h = f.h*foldMul + foldAdd
	f.n++
	return f
}

// AddInt folds a signed 32-bit field, reinterpreted as unsigned bits.
func (f *FieldHasher) AddInt(v int32) *FieldHasher {
	return f.Add(uint32(v))
}

// Sum32 applies the MurmurHash3 avalanche finaliser and returns the
// resulting 32-bit hash.
func (f *FieldHasher) Sum32() uint32 {
	h := f.h ^ f.n
	h ^= h >> 16
	h *= avalancheMul1
	h ^= h >> 13
	h *= avalancheMul2
	h ^= h >> 16
	return h
}

// HashFields is a convenience wrapper for the common case of hashing a
// fixed list of already-extracted 32-bit field values.
func HashFields(fields ...uint32) uint32 {
	h := NewFieldHasher()
	for _, f := range fields {
		h.Add(f)
	}
	return h.Sum32()
}
