package hash

import (
	"github.com/gostonefire/probetable/internal/conf"
)

// PolynomialHashAlgorithm - The internally used bucket selection algorithm. It walks the key bytes left to right
// keeping a rolling multiplier that starts at 1 and is multiplied by 97 (mod table size) after each byte, and adds
// (multiplier * byte) mod table size to a sum. The bucket is the sum mod table size.
//
// The distribution is far from uniform, especially for table sizes sharing factors with 97 - 1, but it is cheap
// and deterministic for a given table size and key.
type PolynomialHashAlgorithm struct {
	tableSize int64
}

// NewPolynomialHashAlgorithm - Returns a pointer to a new PolynomialHashAlgorithm instance
func NewPolynomialHashAlgorithm(tableSize int64) *PolynomialHashAlgorithm {
	ha := &PolynomialHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
// Unlike the power of two algorithms, the size is used as is.
func (P *PolynomialHashAlgorithm) SetTableSize(tableSize int64) {
	P.tableSize = tableSize
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (P *PolynomialHashAlgorithm) GetTableSize() int64 {
	return P.tableSize
}

// HashFunc - Given key it generates an index (bucket) between 0 and table size - 1
func (P *PolynomialHashAlgorithm) HashFunc(key string) int64 {
	return int64(Polynomial(uint64(P.tableSize), key))
}

// ProbeIteration - Implements Linear Probing
func (P *PolynomialHashAlgorithm) ProbeIteration(hfValue, iteration int64) int64 {
	probe := hfValue + iteration
	if probe >= P.tableSize {
		probe %= P.tableSize
	}

	return probe
}

// Polynomial - Returns the polynomial hash of key for a table of m buckets. A zero m yields 0.
func Polynomial(m uint64, key string) uint64 {
	if m == 0 {
		return 0
	}

	var sum uint64
	multiplier := uint64(1)
	for i := 0; i < len(key); i++ {
		sum += (multiplier * uint64(key[i])) % m
		multiplier = (multiplier * conf.PolynomialBase) % m
	}

	return sum % m
}
