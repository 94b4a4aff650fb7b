package index

// HashFunc computes the composite-key hash for a probe key, normally a
// thin wrapper around HashFields over the key's component fields.
type HashFunc[K any] func(K) uint32

// EqualFunc reports whether two keys of the same probed column set match.
type EqualFunc[K any] func(a, b K) bool

// KeyFunc extracts a row's value for one index's key.
type KeyFunc[Row, K any] func(row *Row) K

// smallPrimes covers every bucket-count request this engine ever makes;
// capacities here top out in the low millions so a short hand-picked list
// is enough to round up to a "good enough" prime without a sieve.
var smallPrimes = []int{
	1, 3, 7, 13, 31, 61, 127, 251, 509, 1021, 2039, 4093, 8191, 16381,
	32749, 65521, 131071, 262139, 524287, 1048573, 2097143, 4194301,
	8388593, 16777213, 33554393, 67108859, 134217689, 268435399,
	536870909, 1073741789,
}

func nextPrime(n int) int {
	if n < 1 {
		n = 1
	}
	for _, p := range smallPrimes {
		if p >= n {
			return p
		}
	}
	return smallPrimes[len(smallPrimes)-1]
}

// HashIndex is a chained-bucket hash table keyed by an arbitrary K, whose
// bucket count is the first smallPrimes entry at or above the requested
// capacity (not necessarily the nearest prime: 16 gives 31). When
// constructed unique, inserting a row whose key matches an existing row
// overwrites that row's slot instead of appending.
type HashIndex[Row, K any] struct {
	unique  bool
	keyOf   KeyFunc[Row, K]
	hash    HashFunc[K]
	equal   EqualFunc[K]
	buckets [][]*Row
	lastKey map[*Row]K
}

// NewHashIndex constructs a HashIndex with bucket count rounded up to the
// first smallPrimes entry at or above capacity.
func NewHashIndex[Row, K any](capacity int, unique bool, keyOf KeyFunc[Row, K], hash HashFunc[K], equal EqualFunc[K]) *HashIndex[Row, K] {
	return &HashIndex[Row, K]{
		unique:  unique,
		keyOf:   keyOf,
		hash:    hash,
		equal:   equal,
		buckets: make([][]*Row, nextPrime(capacity)),
		lastKey: make(map[*Row]K),
	}
}

func (h *HashIndex[Row, K]) bucketFor(k K) int {
	return int(h.hash(k) % uint32(len(h.buckets)))
}

// Insert adds row under its current key. If the index is unique and a row
// already occupies that key, it is replaced.
func (h *HashIndex[Row, K]) Insert(row *Row) {
	k := h.keyOf(row)
	b := h.bucketFor(k)
	if h.unique {
		for i, r := range h.buckets[b] {
			if h.equal(h.keyOf(r), k) {
				delete(h.lastKey, r)
				h.buckets[b][i] = row
				h.lastKey[row] = k
				return
			}
		}
	}
	h.buckets[b] = append(h.buckets[b], row)
	h.lastKey[row] = k
}

// Remove drops row from the index, using its last-known key so that a row
// removed after an in-place key mutation is still found.
func (h *HashIndex[Row, K]) Remove(row *Row) {
	k, ok := h.lastKey[row]
	if !ok {
		k = h.keyOf(row)
	}
	b := h.bucketFor(k)
	bucket := h.buckets[b]
	for i, r := range bucket {
		if r == row {
			h.buckets[b] = append(bucket[:i], bucket[i+1:]...)
			break
		}
	}
	delete(h.lastKey, row)
}

// Get returns the first row whose key equals key.
func (h *HashIndex[Row, K]) Get(key K) (*Row, bool) {
	b := h.bucketFor(key)
	for _, r := range h.buckets[b] {
		if h.equal(h.keyOf(r), key) {
			return r, true
		}
	}
	return nil, false
}

// Slice invokes fn on every row whose key equals key, in bucket order,
// stopping early if fn returns false.
func (h *HashIndex[Row, K]) Slice(key K, fn func(*Row) bool) {
	b := h.bucketFor(key)
	for _, r := range h.buckets[b] {
		if h.equal(h.keyOf(r), key) {
			if !fn(r) {
				return
			}
		}
	}
}

// Update re-synchronises the index after row's fields may have changed.
// If the freshly computed key differs from the key the row was last
// inserted under, the row is removed and re-inserted under its new key;
// otherwise this is a no-op, since the index stores a pointer and any
// non-key mutation is already visible through it.
func (h *HashIndex[Row, K]) Update(row *Row) {
	newKey := h.keyOf(row)
	if oldKey, ok := h.lastKey[row]; ok {
		if h.equal(oldKey, newKey) {
			return
		}
		h.Remove(row)
	}
	h.Insert(row)
}

// Len reports the number of rows currently indexed.
func (h *HashIndex[Row, K]) Len() int {
	return len(h.lastKey)
}
