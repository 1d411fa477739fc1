package storage

import (
	"fmt"
	"github.com/gostonefire/probetable/crt"
	"github.com/gostonefire/probetable/internal/model"
)

// AllocateBuckets - Allocates a bucket array of the given size with every bucket empty and numbered.
// A request that is non positive, above maxCapacity or that the runtime refuses results in a crt.AllocationFailure
// and a nil array, it never hands back a partially built array.
//   - numberOfBuckets is the size of the array
//   - maxCapacity is the largest size accepted, zero or less means no limit
//
// It returns:
//   - buckets is the new bucket array
//   - err is either nil or of type crt.AllocationFailure
func AllocateBuckets(numberOfBuckets, maxCapacity int64) (buckets []model.Bucket, err error) {
	if numberOfBuckets <= 0 {
		err = crt.NewAllocationFailure(numberOfBuckets, "number of buckets must be positive")
		return
	}
	if maxCapacity > 0 && numberOfBuckets > maxCapacity {
		err = crt.NewAllocationFailure(numberOfBuckets, fmt.Sprintf("exceeds max capacity %d", maxCapacity))
		return
	}

	defer func() {
		if r := recover(); r != nil {
			buckets = nil
			err = crt.NewAllocationFailure(numberOfBuckets, fmt.Sprint(r))
		}
	}()

	buckets = make([]model.Bucket, numberOfBuckets)
	for i := range buckets {
		buckets[i].BucketNo = int64(i)
	}

	return
}
