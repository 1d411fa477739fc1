package probetable

import (
	"fmt"
	"github.com/gostonefire/probetable/crt"
	"github.com/gostonefire/probetable/internal/conf"
	"github.com/gostonefire/probetable/internal/model"
	"github.com/gostonefire/probetable/internal/storage/linearprobing"
	"sort"
	"strings"
)

// Insert - Counts one occurrence of key. A key already present gets its count incremented, an absent key is
// placed with a count of one. If placing a new key would push the used buckets (live entries plus tombstones)
// above the max load factor, the table is first rebuilt, doubling its size when the live entries need the room.
//   - key is any string, the empty string included
//
// It returns:
//   - err is of type crt.AllocationFailure if a needed resize could not allocate, the table is then left as it was
func (T *Table) Insert(key string) (err error) {
	if T.Cap() == 0 {
		err = crt.NewAllocationFailure(0, "table is destroyed")
		return
	}

	bucketNo, found, probeDistance, err := T.bucketManagement.ProbeForSet(key)
	if err != nil {
		return
	}

	if found {
		_, err = T.bucketManagement.Increment(bucketNo, 1)
		return
	}

	// Reusing a tombstone does not add to the used buckets
	extra := int64(1)
	if bucket, e := T.bucketManagement.GetBucket(bucketNo); e == nil && bucket.State == model.BucketDeleted {
		extra = 0
	}

	for T.exceedsLoad(extra) {
		err = T.reorg()
		if err != nil {
			return
		}

		bucketNo, _, probeDistance, err = T.bucketManagement.ProbeForSet(key)
		if err != nil {
			return
		}
		extra = 1
	}

	_, err = T.bucketManagement.Place(bucketNo, key, probeDistance, 1)

	return
}

// Get - Gets the entry that corresponds to the given key.
//   - key is the key to look up
//
// It returns:
//   - entry is the stored entry if found, if not found an error of type crt.NoRecordFound is also returned.
//   - err is either of type crt.NoRecordFound or a standard error, if something went wrong
func (T *Table) Get(key string) (entry Entry, err error) {
	bucket, err := T.bucketManagement.Get(key)
	if err != nil {
		return
	}

	entry = bucket.Entry

	return
}

// Delete - Deletes the entry for the given key. The bucket is left as a tombstone so lookups of other keys in the
// same cluster keep working.
//   - key is the key to delete
//
// It returns:
//   - err is of type crt.NoRecordFound if the key was not present, in which case nothing changed
func (T *Table) Delete(key string) (err error) {
	return T.bucketManagement.Delete(key)
}

// Entries - Returns a snapshot of all live entries in bucket order
func (T *Table) Entries() (entries []Entry, err error) {
	entries = make([]Entry, 0, T.Len())

	iter := T.NewEntryIterator()
	var entry Entry
	for iter.HasNext() {
		entry, err = iter.Next()
		if err != nil {
			return
		}
		entries = append(entries, entry)
	}

	return
}

// TopEntries - Returns the n entries with the highest count, ties ordered by key
func (T *Table) TopEntries(n int) (entries []Entry, err error) {
	entries, err = T.Entries()
	if err != nil {
		return
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Key < entries[j].Key
	})

	if n >= 0 && n < len(entries) {
		entries = entries[:n]
	}

	return
}

// Report - Returns a human-readable dump of the table: size, filled count, load factor and max probe distance
// followed by one line per occupied bucket.
func (T *Table) Report() string {
	var sb strings.Builder

	sp := T.bucketManagement.GetStorageParameters()

	_, _ = fmt.Fprintf(&sb, "Size: %d\n", sp.NumberOfBuckets)
	_, _ = fmt.Fprintf(&sb, "Filled: %d\n", sp.NumberOfOccupied)
	_, _ = fmt.Fprintf(&sb, "Deleted: %d\n", sp.NumberOfDeleted)
	_, _ = fmt.Fprintf(&sb, "Load: %.2f\n", loadFactor(sp.NumberOfOccupied, sp.NumberOfBuckets))
	_, _ = fmt.Fprintf(&sb, "Max probe distance: %d\n", sp.MaxProbeDistance)

	for i := int64(0); i < sp.NumberOfBuckets; i++ {
		bucket, err := T.bucketManagement.GetBucket(i)
		if err != nil || !bucket.Occupied() {
			continue
		}
		_, _ = fmt.Fprintf(&sb, "Bucket %d | Probe distance: %d | Count: %d | Occupied: %s | Ever occupied: %s | Key: %s\n",
			bucket.BucketNo,
			bucket.Entry.ProbeDistance,
			bucket.Entry.Count,
			yesNo(bucket.Occupied()),
			yesNo(bucket.EverOccupied),
			bucket.Entry.Key,
		)
	}

	return sb.String()
}

// exceedsLoad - Returns true if adding extra used buckets would go above the max load factor
func (T *Table) exceedsLoad(extra int64) bool {
	sp := T.bucketManagement.GetStorageParameters()
	return loadFactor(sp.NumberOfOccupied+sp.NumberOfDeleted+extra, sp.NumberOfBuckets) > T.maxLoadFactor
}

// reorg - Rebuilds the bucket array. The number of buckets doubles unless the live entries, plus the one about to
// be placed, fit within conf.PurgeLoadRatio of the max load factor, in which case the size is kept and the rebuild
// only drops tombstones. The new bucket array is allocated first and the live entries are then replayed into it,
// bucket by bucket, with their counts carried over and their probe distances recomputed.
// On any failure the current buckets stay in place untouched.
func (T *Table) reorg() (err error) {
	from := T.bucketManagement
	sp := from.GetStorageParameters()

	newSize := sp.NumberOfBuckets
	if loadFactor(sp.NumberOfOccupied+1, sp.NumberOfBuckets) > T.maxLoadFactor*conf.PurgeLoadRatio {
		newSize = sp.NumberOfBuckets * conf.GrowthFactor
		if newSize/conf.GrowthFactor != sp.NumberOfBuckets {
			err = crt.NewAllocationFailure(newSize, "capacity overflow")
			return
		}
	}

	lpConf := model.LPConf{NumberOfBuckets: newSize, MaxCapacity: T.maxCapacity}
	if !sp.InternalAlgorithm {
		lpConf.HashAlgorithm = from.GetHashAlgorithm()
	}

	// A custom hash algorithm is shared between the old and new buckets, so put its size back on failure
	restore := func() {
		if lpConf.HashAlgorithm != nil {
			lpConf.HashAlgorithm.SetTableSize(sp.NumberOfBuckets)
		}
	}

	to, err := linearprobing.NewLPBuckets(lpConf)
	if err != nil {
		restore()
		return
	}

	err = reorgRecords(from, to, sp.NumberOfBuckets)
	if err != nil {
		restore()
		err = fmt.Errorf("error while replaying entries into %d buckets: %w", newSize, err)
		return
	}

	T.bucketManagement = to
	from.Destroy()

	return
}

// reorgRecords - Reads bucket by bucket and places every live entry in the new buckets
func reorgRecords(from, to BucketManagement, fromNBuckets int64) (err error) {
	var bucket model.Bucket
	var bucketNo, probeDistance int64
	for i := int64(0); i < fromNBuckets; i++ {
		bucket, err = from.GetBucket(i)
		if err != nil {
			return
		}
		if !bucket.Occupied() {
			continue
		}

		bucketNo, _, probeDistance, err = to.ProbeForSet(bucket.Entry.Key)
		if err != nil {
			return
		}

		_, err = to.Place(bucketNo, bucket.Entry.Key, probeDistance, bucket.Entry.Count)
		if err != nil {
			return
		}
	}

	return
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
