package probetable

import (
	"fmt"
	"github.com/gostonefire/probetable/crt"
)

// EntryIterator - Is used to iterate over live entries one by one in bucket order.
// An insert that resizes the table invalidates the iterator, start a new one after inserting.
type EntryIterator struct {
	table    *Table
	bucketNo int64
}

// NewEntryIterator - Returns a pointer to a new EntryIterator positioned before the first bucket
func (T *Table) NewEntryIterator() *EntryIterator {
	return &EntryIterator{table: T}
}

// HasNext - Returns true if there are more entries to be fetched from a call to Next.
func (E *EntryIterator) HasNext() bool {
	bm := E.table.bucketManagement
	size := bm.GetStorageParameters().NumberOfBuckets

	for ; E.bucketNo < size; E.bucketNo++ {
		bucket, err := bm.GetBucket(E.bucketNo)
		if err == nil && bucket.Occupied() {
			return true
		}
	}

	return false
}

// Next - Returns entry.
// It returns:
//   - entry is the next live entry.
//   - err is either a standard error or if there are no more entries when calling this function an error of type crt.NoRecordFound is returned.
func (E *EntryIterator) Next() (entry Entry, err error) {
	if !E.HasNext() {
		err = crt.NoRecordFound{}
		return
	}

	bucket, err := E.table.bucketManagement.GetBucket(E.bucketNo)
	if err != nil {
		err = fmt.Errorf("error while retrieving bucket %d: %w", E.bucketNo, err)
		return
	}

	entry = bucket.Entry
	E.bucketNo++

	return
}
