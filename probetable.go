package probetable

import (
	"fmt"
	"github.com/gostonefire/probetable/hashfunc"
	"github.com/gostonefire/probetable/internal/conf"
	"github.com/gostonefire/probetable/internal/model"
	"github.com/gostonefire/probetable/internal/storage/linearprobing"
)

// Entry - A stored key with its occurrence count and the probe distance it was placed at
type Entry = model.Entry

// BucketManagement - Interface for any bucket storage implementation
type BucketManagement interface {
	Destroy()
	Get(key string) (bucket model.Bucket, err error)
	ProbeForSet(key string) (bucketNo int64, found bool, probeDistance int64, err error)
	Increment(bucketNo int64, n uint64) (bucket model.Bucket, err error)
	Place(bucketNo int64, key string, probeDistance int64, count uint64) (bucket model.Bucket, err error)
	Delete(key string) (err error)
	GetBucket(bucketNo int64) (bucket model.Bucket, err error)
	GetStorageParameters() (params model.StorageParameters)
	GetHashAlgorithm() hashfunc.HashAlgorithm
}

// TableConf - Is a struct used in the call to NewTableWithConf holding configuration for the table.
//   - InitialCapacity is the number of buckets to start with, must be positive
//   - MaxLoadFactor is the highest ratio of used buckets to size allowed after an insert, zero gives 0.7
//   - MaxCapacity is the largest number of buckets the table may grow to, zero gives a default and negative means no limit
//   - HashAlgorithm is an optional entry to provide a custom hash algorithm following the hashfunc.HashAlgorithm interface
type TableConf struct {
	InitialCapacity int64
	MaxLoadFactor   float64
	MaxCapacity     int64
	HashAlgorithm   hashfunc.HashAlgorithm
}

// TableInfo - Information structure containing some information about the table created
//   - NumberOfBuckets is the number of buckets allocated at creation
//   - MaxLoadFactor is the load factor that triggers a resize
//   - MaxCapacity is the largest number of buckets the table may grow to
//   - InternalAlgorithm is true if the internal polynomial hash is used
type TableInfo struct {
	NumberOfBuckets   int64
	MaxLoadFactor     float64
	MaxCapacity       int64
	InternalAlgorithm bool
}

// TableStat - Statistics on the overall usage of the table
//   - Size is the current number of buckets
//   - Filled is the number of buckets holding a live entry
//   - Deleted is the number of tombstones
//   - LoadFactor is Filled / Size
//   - MaxProbeDistance is the highest probe distance any entry was placed at since the last resize
//   - ProbeDistribution is the number of live entries per probe distance
type TableStat struct {
	Size              int64
	Filled            int64
	Deleted           int64
	LoadFactor        float64
	MaxProbeDistance  int64
	ProbeDistribution []int64
}

// Table - The main implementation struct
// A Table is not safe for concurrent use, callers sharing one across goroutines must serialize access.
type Table struct {
	bucketManagement BucketManagement
	maxLoadFactor    float64
	maxCapacity      int64
}

// NewTable - Returns a new table with the given number of buckets allocated up front.
//   - initialCapacity is the number of buckets to start with
//   - hashAlgorithm is an optional entry to provide a custom hash algorithm, nil gives the internal polynomial hash
//
// It returns:
//   - table is a pointer to a Table struct
//   - tableInfo is a TableInfo struct containing some data regarding the table created.
//   - err is a normal go Error, of type crt.AllocationFailure if the buckets could not be allocated
func NewTable(initialCapacity int64, hashAlgorithm hashfunc.HashAlgorithm) (table *Table, tableInfo TableInfo, err error) {
	return NewTableWithConf(TableConf{InitialCapacity: initialCapacity, HashAlgorithm: hashAlgorithm})
}

// NewTableWithConf - Same as NewTable but with full control over load factor and capacity limits
func NewTableWithConf(tableConf TableConf) (table *Table, tableInfo TableInfo, err error) {
	// Check if initialCapacity is valid
	if tableConf.InitialCapacity <= 0 {
		err = fmt.Errorf("initialCapacity must be a positive value higher than 0 (zero)")
		return
	}

	// Check if the max load factor is valid
	if tableConf.MaxLoadFactor == 0 {
		tableConf.MaxLoadFactor = conf.DefaultMaxLoadFactor
	}
	if tableConf.MaxLoadFactor <= 0 || tableConf.MaxLoadFactor >= 1 {
		err = fmt.Errorf("max load factor must be in range (0, 1), got %g", tableConf.MaxLoadFactor)
		return
	}

	if tableConf.MaxCapacity == 0 {
		tableConf.MaxCapacity = conf.DefaultMaxCapacity
	}

	lpConf := model.LPConf{
		NumberOfBuckets: tableConf.InitialCapacity,
		MaxCapacity:     tableConf.MaxCapacity,
		HashAlgorithm:   tableConf.HashAlgorithm,
	}

	var bm BucketManagement
	bm, err = linearprobing.NewLPBuckets(lpConf)
	if err != nil {
		return
	}

	// Prepare return data
	table = &Table{
		bucketManagement: bm,
		maxLoadFactor:    tableConf.MaxLoadFactor,
		maxCapacity:      tableConf.MaxCapacity,
	}

	sp := bm.GetStorageParameters()

	tableInfo = TableInfo{
		NumberOfBuckets:   sp.NumberOfBuckets,
		MaxLoadFactor:     tableConf.MaxLoadFactor,
		MaxCapacity:       tableConf.MaxCapacity,
		InternalAlgorithm: sp.InternalAlgorithm,
	}

	return
}

// Destroy - Releases all buckets. The table must not be used afterwards, lookups will find nothing and
// inserts fail with crt.AllocationFailure.
func (T *Table) Destroy() {
	T.bucketManagement.Destroy()
}

// GetTableInfo - Returns the current configuration of the table
func (T *Table) GetTableInfo() (tableInfo TableInfo) {
	sp := T.bucketManagement.GetStorageParameters()

	tableInfo = TableInfo{
		NumberOfBuckets:   sp.NumberOfBuckets,
		MaxLoadFactor:     T.maxLoadFactor,
		MaxCapacity:       T.maxCapacity,
		InternalAlgorithm: sp.InternalAlgorithm,
	}

	return
}

// GetTableStat - Returns statistics on the usage of the table including the probe distance distribution
func (T *Table) GetTableStat() (tableStat TableStat, err error) {
	sp := T.bucketManagement.GetStorageParameters()

	tableStat = TableStat{
		Size:              sp.NumberOfBuckets,
		Filled:            sp.NumberOfOccupied,
		Deleted:           sp.NumberOfDeleted,
		LoadFactor:        loadFactor(sp.NumberOfOccupied, sp.NumberOfBuckets),
		MaxProbeDistance:  sp.MaxProbeDistance,
		ProbeDistribution: make([]int64, sp.MaxProbeDistance+1),
	}

	iter := T.NewEntryIterator()
	var entry Entry
	for iter.HasNext() {
		entry, err = iter.Next()
		if err != nil {
			return
		}
		tableStat.ProbeDistribution[entry.ProbeDistance]++
	}

	return
}

// Len - Returns the number of live entries
func (T *Table) Len() int64 {
	return T.bucketManagement.GetStorageParameters().NumberOfOccupied
}

// Cap - Returns the current number of buckets
func (T *Table) Cap() int64 {
	return T.bucketManagement.GetStorageParameters().NumberOfBuckets
}

// loadFactor - Returns used / size, zero for an empty (destroyed) table
func loadFactor(used, size int64) float64 {
	if size == 0 {
		return 0
	}
	return float64(used) / float64(size)
}
