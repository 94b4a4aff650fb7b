package index

import "github.com/google/btree"

// defaultDegree matches the ancestor's BTreeOrder tuning constant.
const defaultDegree = 16

type treeItem[Row, K any] struct {
	key  K
	row  *Row
	less func(a, b K) bool
}

func (t *treeItem[Row, K]) Less(other btree.Item) bool {
	o := other.(*treeItem[Row, K])
	return t.less(t.key, o.key)
}

// TreeIndex is a balanced ordered map keyed by a total ordering over K,
// backed by github.com/google/btree. Two rows whose keys compare equal
// under less occupy the same tree node — inserting a second row under an
// already-occupied key replaces the first, which is how the order table's
// secondary index (keyed by d_id, w_id, c_id only, not o_id) ends up
// holding the most-recently-inserted order for a customer: since orders
// are always inserted in increasing o_id order, the survivor after a
// string of replacements is always the one with the highest o_id.
type TreeIndex[Row, K any] struct {
	tr      *btree.BTree
	keyOf   KeyFunc[Row, K]
	less    func(a, b K) bool
	lastKey map[*Row]K
}

// NewTreeIndex constructs a TreeIndex ordered by less.
func NewTreeIndex[Row, K any](keyOf KeyFunc[Row, K], less func(a, b K) bool) *TreeIndex[Row, K] {
	return &TreeIndex[Row, K]{
		tr:      btree.New(defaultDegree),
		keyOf:   keyOf,
		less:    less,
		lastKey: make(map[*Row]K),
	}
}

func (t *TreeIndex[Row, K]) wrap(k K, row *Row) *treeItem[Row, K] {
	return &treeItem[Row, K]{key: k, row: row, less: t.less}
}

// Insert adds row under its current key, replacing any row already
// occupying that exact key.
func (t *TreeIndex[Row, K]) Insert(row *Row) {
	k := t.keyOf(row)
	t.tr.ReplaceOrInsert(t.wrap(k, row))
	t.lastKey[row] = k
}

// Remove drops row from the tree under its last-known key.
func (t *TreeIndex[Row, K]) Remove(row *Row) {
	k, ok := t.lastKey[row]
	if !ok {
		k = t.keyOf(row)
	}
	t.tr.Delete(t.wrap(k, row))
	delete(t.lastKey, row)
}

// Get returns the row stored under the exact key, if any.
func (t *TreeIndex[Row, K]) Get(key K) (*Row, bool) {
	item := t.tr.Get(t.wrap(key, nil))
	if item == nil {
		return nil, false
	}
	return item.(*treeItem[Row, K]).row, true
}

// AscendMatch walks rows in ascending key order starting at from,
// invoking fn on every row whose key satisfies matches, stopping at the
// first key that does not (the prefix is assumed contiguous in key
// order) or when fn returns false.
func (t *TreeIndex[Row, K]) AscendMatch(from K, matches func(K) bool, fn func(*Row) bool) {
	t.tr.AscendGreaterOrEqual(t.wrap(from, nil), func(i btree.Item) bool {
		it := i.(*treeItem[Row, K])
		if !matches(it.key) {
			return false
		}
		return fn(it.row)
	})
}

// Update re-synchronises the tree after row's fields may have changed,
// re-homing it if its key moved.
func (t *TreeIndex[Row, K]) Update(row *Row) {
	newKey := t.keyOf(row)
	if oldKey, ok := t.lastKey[row]; ok {
		if !t.less(oldKey, newKey) && !t.less(newKey, oldKey) {
			return
		}
		t.Remove(row)
	}
	t.Insert(row)
}

// Len reports the number of rows currently indexed.
func (t *TreeIndex[Row, K]) Len() int {
	return t.tr.Len()
}
