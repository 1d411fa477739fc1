package linearprobing

import (
	"fmt"
	"github.com/gostonefire/probetable/crt"
	"github.com/gostonefire/probetable/hashfunc"
	"github.com/gostonefire/probetable/internal/hash"
	"github.com/gostonefire/probetable/internal/model"
	"github.com/gostonefire/probetable/internal/storage"
)

// LPBuckets - Represents an in memory bucket array using the Linear Probing Collision Resolution Technique.
// Every bucket holds at most one entry. In case of a collision it steps to the next bucket (wrapping around at the
// end) until it finds the key or an empty bucket. Deleted buckets are left as tombstones so that probing passes
// through them, and they are reused by later inserts of absent keys.
//
// LPBuckets never grows, growing is done by allocating a bigger instance and replaying the live entries into it.
type LPBuckets struct {
	buckets           []model.Bucket
	numberOfBuckets   int64
	maxCapacity       int64
	hashAlgorithm     hashfunc.HashAlgorithm
	internalAlgorithm bool
	nOccupied         int64
	nDeleted          int64
	maxProbeDistance  int64
}

// NewLPBuckets - Returns a pointer to a new instance of the Linear Probing bucket array.
// The bucket array is allocated before the hash algorithm is told about the new table size, so a failed allocation
// leaves a shared hash algorithm untouched.
//   - lpConf is a model.LPConf struct providing configuration parameters affecting allocation and probing
//
// It returns:
//   - lpBuckets which is a pointer to the created instance
//   - err which is either nil or of type crt.AllocationFailure
func NewLPBuckets(lpConf model.LPConf) (lpBuckets *LPBuckets, err error) {
	buckets, err := storage.AllocateBuckets(lpConf.NumberOfBuckets, lpConf.MaxCapacity)
	if err != nil {
		return
	}

	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if lpConf.HashAlgorithm == nil {
		lpConf.HashAlgorithm = hash.NewPolynomialHashAlgorithm(lpConf.NumberOfBuckets)
		internalAlg = true
	} else {
		lpConf.HashAlgorithm.SetTableSize(lpConf.NumberOfBuckets)
	}

	if size := lpConf.HashAlgorithm.GetTableSize(); size != lpConf.NumberOfBuckets {
		err = fmt.Errorf("hash algorithm reports table size %d, expected %d", size, lpConf.NumberOfBuckets)
		return
	}

	lpBuckets = &LPBuckets{
		buckets:           buckets,
		numberOfBuckets:   lpConf.NumberOfBuckets,
		maxCapacity:       lpConf.MaxCapacity,
		hashAlgorithm:     lpConf.HashAlgorithm,
		internalAlgorithm: internalAlg,
	}

	return
}

// Destroy - Releases the bucket array and zeroes all counters
func (L *LPBuckets) Destroy() {
	L.buckets = nil
	L.numberOfBuckets = 0
	L.nOccupied = 0
	L.nDeleted = 0
	L.maxProbeDistance = 0
}

// GetStorageParameters - Returns a struct with storage parameters from LPBuckets
func (L *LPBuckets) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		CollisionResolutionTechnique: crt.LinearProbing,
		NumberOfBuckets:              L.numberOfBuckets,
		NumberOfOccupied:             L.nOccupied,
		NumberOfDeleted:              L.nDeleted,
		MaxProbeDistance:             L.maxProbeDistance,
		InternalAlgorithm:            L.internalAlgorithm,
	}

	return
}

// GetHashAlgorithm - Returns the hash algorithm in use, it is handed over to the next instance when growing
func (L *LPBuckets) GetHashAlgorithm() hashfunc.HashAlgorithm {
	return L.hashAlgorithm
}

// GetBucket - Returns a copy of the bucket given the bucket number
//   - bucketNo is the identifier of a bucket, between 0 and number of buckets - 1
//
// It returns:
//   - bucket is a model.Bucket struct
//   - err is a standard error if the bucket number is out of range
func (L *LPBuckets) GetBucket(bucketNo int64) (bucket model.Bucket, err error) {
	if bucketNo < 0 || bucketNo >= L.numberOfBuckets {
		err = fmt.Errorf("bucket number %d out of range [0, %d)", bucketNo, L.numberOfBuckets)
		return
	}

	bucket = L.buckets[bucketNo]

	return
}

// Get - Gets the bucket that holds the given key.
// The search visits at most max probe distance + 1 buckets, any entry further away than that was never placed by
// this instance.
//   - key is the key to look for
//
// It returns:
//   - bucket is a copy of the matching bucket if found, if not found an error of type crt.NoRecordFound is returned.
//   - err is either of type crt.NoRecordFound or crt.ProbingAlgorithm
func (L *LPBuckets) Get(key string) (bucket model.Bucket, err error) {
	bucketNo, err := L.probingForGet(key)
	if err != nil {
		return
	}

	bucket = L.buckets[bucketNo]

	return
}

// ProbeForSet - Finds the bucket to use for the key without changing anything.
//   - key is the key to find a bucket for
//
// It returns:
//   - bucketNo is the bucket holding the key if found, else the bucket a new entry should be placed in
//   - found is true if the key is already stored
//   - probeDistance is the number of buckets stepped past to reach bucketNo
//   - err is of type crt.ProbingAlgorithm if no usable bucket exists
func (L *LPBuckets) ProbeForSet(key string) (bucketNo int64, found bool, probeDistance int64, err error) {
	return L.probingForSet(key)
}

// Increment - Adds to the count of an occupied bucket and returns the updated bucket
func (L *LPBuckets) Increment(bucketNo int64, n uint64) (bucket model.Bucket, err error) {
	if bucket, err = L.GetBucket(bucketNo); err != nil {
		return
	}
	if !bucket.Occupied() {
		err = fmt.Errorf("bucket %d is not occupied", bucketNo)
		return
	}

	L.buckets[bucketNo].Entry.Count += n
	bucket = L.buckets[bucketNo]

	return
}

// Place - Stores a new entry in a bucket that was selected by ProbeForSet
//   - bucketNo is the bucket to use, it must not be occupied
//   - key is the key to store
//   - probeDistance is the distance reported by ProbeForSet
//   - count is the initial count, new keys start at 1 while replayed keys carry their old count
func (L *LPBuckets) Place(bucketNo int64, key string, probeDistance int64, count uint64) (bucket model.Bucket, err error) {
	if bucket, err = L.GetBucket(bucketNo); err != nil {
		return
	}
	if bucket.Occupied() {
		err = fmt.Errorf("bucket %d is already occupied", bucketNo)
		return
	}

	fromState := bucket.State
	L.buckets[bucketNo].Place(key, probeDistance)
	L.buckets[bucketNo].Entry.Count = count

	if probeDistance > L.maxProbeDistance {
		L.maxProbeDistance = probeDistance
	}
	L.updateUtilizationInfo(fromState, model.BucketOccupied)

	bucket = L.buckets[bucketNo]

	return
}

// Delete - Deletes the entry for the given key by turning its bucket into a tombstone
//   - key is the key to delete
//
// It returns:
//   - err is of type crt.NoRecordFound if the key is not stored, nothing is changed in that case
func (L *LPBuckets) Delete(key string) (err error) {
	bucketNo, err := L.probingForGet(key)
	if err != nil {
		return
	}

	fromState := L.buckets[bucketNo].State
	L.buckets[bucketNo].Clear()
	L.updateUtilizationInfo(fromState, model.BucketDeleted)

	return
}
