//go:build unit

package hash

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestPolynomialHashAlgorithm_GetTableSize(t *testing.T) {
	t.Run("returns table size as given", func(t *testing.T) {
		// Prepare
		h := NewPolynomialHashAlgorithm(10)

		// Execute
		tableSize := h.GetTableSize()

		// Check
		assert.Equal(t, int64(10), tableSize, "table size not rounded")
	})
}

func TestPolynomialHashAlgorithm_SetTableSize(t *testing.T) {
	t.Run("sets table size", func(t *testing.T) {
		// Prepare
		h := NewPolynomialHashAlgorithm(8)

		// Execute
		h.SetTableSize(16)

		// Check
		assert.Equal(t, int64(16), h.GetTableSize(), "correct tableSize value")
	})
}

func TestPolynomialHashAlgorithm_HashFunc(t *testing.T) {
	t.Run("creates known bucket numbers", func(t *testing.T) {
		// Prepare
		h := NewPolynomialHashAlgorithm(8)

		// Execute
		the := h.HashFunc("the")
		quick := h.HashFunc("quick")

		// Check
		assert.Equal(t, int64(1), the, "bucket for 'the'")
		assert.Equal(t, int64(5), quick, "bucket for 'quick'")
	})

	t.Run("uses the rolling multiplier", func(t *testing.T) {
		// Prepare
		h := NewPolynomialHashAlgorithm(10)

		// Execute
		bucketNo := h.HashFunc("ab")

		// Check
		// 97%10 + (97%10)*98%10 = 7 + 6 = 13 -> 3
		assert.Equal(t, int64(3), bucketNo, "bucket for 'ab'")
	})

	t.Run("is deterministic for a given table size", func(t *testing.T) {
		// Prepare
		h := NewPolynomialHashAlgorithm(1009)
		first := h.HashFunc("determinism")

		// Execute & Check
		for i := 0; i < 100; i++ {
			assert.Equalf(t, first, h.HashFunc("determinism"), "same bucket in call #%d", i)
		}
	})

	t.Run("stays within the table", func(t *testing.T) {
		// Prepare
		keys := []string{"", "a", "the", "quick brown fox", "zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz"}

		for _, size := range []int64{1, 2, 3, 7, 8, 97, 1000} {
			h := NewPolynomialHashAlgorithm(size)
			for _, key := range keys {
				// Execute
				bucketNo := h.HashFunc(key)

				// Check
				assert.GreaterOrEqualf(t, bucketNo, int64(0), "bucket not negative for %q in size %d", key, size)
				assert.Lessf(t, bucketNo, size, "bucket less than size for %q in size %d", key, size)
			}
		}
	})

	t.Run("zero table size gives zero", func(t *testing.T) {
		// Execute
		h := Polynomial(0, "anything")

		// Check
		assert.Equal(t, uint64(0), h, "no division by zero")
	})
}

func TestPolynomialHashAlgorithm_ProbeIteration(t *testing.T) {
	t.Run("iterates through table", func(t *testing.T) {
		// Prepare
		h := NewPolynomialHashAlgorithm(10)
		tableSize := h.GetTableSize()
		bucketNo := h.HashFunc("iterate")

		visit := make([]int, tableSize)

		// Execute
		for i := int64(0); i < tableSize; i++ {
			probe := h.ProbeIteration(bucketNo, i)
			assert.GreaterOrEqualf(t, probe, int64(0), "probe not negative in iteration #%d", i)
			assert.Lessf(t, probe, tableSize, "probe less than table size in iteration #%d", i)
			visit[probe]++
		}

		// Check
		for i := int64(0); i < tableSize; i++ {
			assert.Equalf(t, 1, visit[i], "exactly one visit in bucket #%d", i)
		}
	})

	t.Run("wraps around at the end", func(t *testing.T) {
		// Prepare
		h := NewPolynomialHashAlgorithm(8)

		// Execute
		probe := h.ProbeIteration(7, 1)

		// Check
		assert.Equal(t, int64(0), probe, "wrapped to first bucket")
	})
}
