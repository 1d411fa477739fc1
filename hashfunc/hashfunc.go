package hashfunc

// HashAlgorithm - Interface that permits an implementation using the Table to supply a custom bucket
// selection algorithm suited for its particular distribution of keys.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called both when creating a new table and every time the table is resized. Hence, if a custom
	// hash algorithm is supplied that already has a table size, it will be overwritten by the current number
	// of buckets in the table.
	//   - tableSize is the number of buckets the table will address
	SetTableSize(tableSize int64)

	// GetTableSize - Returns the table size the implemented hash function is supporting.
	// The table never rounds the size given in SetTableSize, so this should return exactly that value.
	GetTableSize() int64

	// HashFunc - Given key it generates an index (bucket) between 0 and table size - 1
	// Any number returned outside the table size (0 -> table size - 1) makes the probing loop skip it.
	HashFunc(key string) int64

	// ProbeIteration - Returns the bucket to visit in the given iteration, starting from the value returned
	// by HashFunc. Since this function is called repeatedly while resolving a collision, and the hash value
	// is the same throughout the iterations for one key, the function takes that value rather than the key.
	ProbeIteration(hfValue, iteration int64) int64
}
