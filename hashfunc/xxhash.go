package hashfunc

import "github.com/cespare/xxhash/v2"

// XXHashAlgorithm - A bucket selection algorithm using xxhash64 over the key and then applying
// bucket = hash % tableSize. It spreads keys far more evenly than the internal polynomial hash
// but is not what the word counter uses unless asked for.
type XXHashAlgorithm struct {
	tableSize int64
}

// NewXXHashAlgorithm - Returns a pointer to a new XXHashAlgorithm instance
func NewXXHashAlgorithm(tableSize int64) *XXHashAlgorithm {
	X := &XXHashAlgorithm{}
	X.SetTableSize(tableSize)
	return X
}

// SetTableSize - Sets the table size for the hash algorithm.
func (X *XXHashAlgorithm) SetTableSize(tableSize int64) {
	X.tableSize = tableSize
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (X *XXHashAlgorithm) GetTableSize() int64 {
	return X.tableSize
}

// HashFunc - Given key it generates an index (bucket) between 0 and table size - 1
func (X *XXHashAlgorithm) HashFunc(key string) int64 {
	if X.tableSize <= 0 {
		return 0
	}
	return int64(xxhash.Sum64String(key) % uint64(X.tableSize))
}

// ProbeIteration - Implements Linear Probing
func (X *XXHashAlgorithm) ProbeIteration(hfValue, iteration int64) int64 {
	return (hfValue + iteration) % X.tableSize
}
