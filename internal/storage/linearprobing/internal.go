package linearprobing

import (
	"github.com/gostonefire/probetable/crt"
	"github.com/gostonefire/probetable/internal/model"
)

// probingForGet - Is the Linear Probing Collision Resolution Technique algorithm for finding a stored key.
// Tombstones are stepped past, an empty bucket ends the search.
func (L *LPBuckets) probingForGet(key string) (bucketNo int64, err error) {
	if L.numberOfBuckets == 0 {
		err = crt.NoRecordFound{}
		return
	}

	var probe, n int64

	hfValue := L.hashAlgorithm.HashFunc(key)
	limit := L.maxProbeDistance + 1

	iMax := L.numberOfBuckets * 10 // To avoid infinite loop if hash algorithm is behaving bad

	for i := int64(0); i < iMax; i++ {
		probe = L.hashAlgorithm.ProbeIteration(hfValue, i)
		if probe < L.numberOfBuckets && probe >= 0 {
			bucket := &L.buckets[probe]

			switch bucket.State {
			case model.BucketEmpty:
				err = crt.NoRecordFound{}
				return

			case model.BucketOccupied:
				if bucket.Entry.Key == key {
					bucketNo = probe
					return
				}
			}

			// No entry was ever placed further away than maxProbeDistance
			n++
			if n >= limit || n >= L.numberOfBuckets {
				err = crt.NoRecordFound{}
				return
			}
		}
	}

	// When we have traversed long enough we just have to give up
	// This is just a failsafe, should (with emphasis on should) never occur
	err = crt.ProbingAlgorithm{}
	return
}

// probingForSet - Is the Linear Probing Collision Resolution Technique algorithm for getting a bucket for set.
// It returns the bucket holding the key if there is one, otherwise the first tombstone passed on the way or else
// the empty bucket that ended the search.
func (L *LPBuckets) probingForSet(key string) (bucketNo int64, found bool, probeDistance int64, err error) {
	if L.numberOfBuckets == 0 {
		err = crt.ProbingAlgorithm{}
		return
	}

	var deletedNo, deletedDistance int64
	var hasCached bool
	var probe, n int64

	hfValue := L.hashAlgorithm.HashFunc(key)

	iMax := L.numberOfBuckets * 10 // To avoid infinite loop if hash algorithm is behaving bad

	for i := int64(0); i < iMax; i++ {
		probe = L.hashAlgorithm.ProbeIteration(hfValue, i)
		if probe < L.numberOfBuckets && probe >= 0 {
			bucket := &L.buckets[probe]

			switch bucket.State {
			case model.BucketEmpty:
				if hasCached {
					bucketNo, probeDistance = deletedNo, deletedDistance
				} else {
					bucketNo, probeDistance = probe, n
				}
				return

			case model.BucketOccupied:
				if bucket.Entry.Key == key {
					bucketNo, found, probeDistance = probe, true, n
					return
				}

			case model.BucketDeleted:
				if !hasCached {
					deletedNo, deletedDistance = probe, n
					hasCached = true
				}
			}

			// Relies on the underlying probing function to distinctively go through the entire set of buckets
			n++
			if n >= L.numberOfBuckets {
				if hasCached {
					bucketNo, probeDistance = deletedNo, deletedDistance
					return
				}
				err = crt.ProbingAlgorithm{}
				return
			}
		}
	}

	err = crt.ProbingAlgorithm{}
	return
}

// updateUtilizationInfo - Updates the occupied and deleted counters given a bucket state transition
func (L *LPBuckets) updateUtilizationInfo(fromState, toState uint8) {
	switch fromState {
	case model.BucketOccupied:
		L.nOccupied--
	case model.BucketDeleted:
		L.nDeleted--
	}

	switch toState {
	case model.BucketOccupied:
		L.nOccupied++
	case model.BucketDeleted:
		L.nDeleted++
	}
}
