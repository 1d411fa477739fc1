package conf

// DefaultInitialCapacity - Number of buckets a table starts with when the caller has no better estimate
const DefaultInitialCapacity int64 = 16

// DefaultMaxLoadFactor - Highest ratio of used buckets (occupied or deleted) to table size allowed after an insert
const DefaultMaxLoadFactor float64 = 0.7

// DefaultMaxCapacity - Largest bucket array a table will try to allocate unless configured otherwise
const DefaultMaxCapacity int64 = 1 << 26

// PolynomialBase - Base of the rolling multiplier used by the polynomial string hash
const PolynomialBase uint64 = 97

// GrowthFactor - Capacity multiplier applied on every resize
const GrowthFactor int64 = 2

// PurgeLoadRatio - Share of the max load factor that the live entries may fill for a resize to keep the table
// size and only drop tombstones
const PurgeLoadRatio float64 = 0.5
