package model

import (
	"github.com/gostonefire/probetable/hashfunc"
)

// BucketEmpty - State indicating a bucket that has never been in use
const BucketEmpty uint8 = 0

// BucketOccupied - State indicating a bucket that holds a live entry
const BucketOccupied uint8 = 1

// BucketDeleted - State indicating a bucket that has been in use but was deleted (tombstone)
const BucketDeleted uint8 = 2

// Entry - A stored key together with how many times it was inserted and how far it had to probe
type Entry struct {
	Key           string
	Count         uint64
	ProbeDistance int64
}

// Bucket - Represents one slot in the bucket array
type Bucket struct {
	State        uint8
	EverOccupied bool
	BucketNo     int64
	Entry        Entry
}

// Occupied - Returns true if the bucket holds a live entry
func (B *Bucket) Occupied() bool {
	return B.State == BucketOccupied
}

// Place - Stores a new entry in the bucket with a count of one
func (B *Bucket) Place(key string, probeDistance int64) {
	B.State = BucketOccupied
	B.EverOccupied = true
	B.Entry = Entry{Key: key, Count: 1, ProbeDistance: probeDistance}
}

// Clear - Turns the bucket into a tombstone, resetting the entry
func (B *Bucket) Clear() {
	B.State = BucketDeleted
	B.Entry = Entry{}
}

// StorageParameters - Represents parameters specific for the bucket storage
type StorageParameters struct {
	CollisionResolutionTechnique int
	NumberOfBuckets              int64
	NumberOfOccupied             int64
	NumberOfDeleted              int64
	MaxProbeDistance             int64
	InternalAlgorithm            bool
}

// LPConf - Is a struct to be passed in the call to NewLPBuckets and contains configuration that affects
// bucket allocation and probing.
//   - NumberOfBuckets is the number of buckets to allocate
//   - MaxCapacity is the largest number of buckets that may be allocated
//   - HashAlgorithm is the hash function to use, nil gives the internal polynomial hash
type LPConf struct {
	NumberOfBuckets int64
	MaxCapacity     int64
	HashAlgorithm   hashfunc.HashAlgorithm
}
