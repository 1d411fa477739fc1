package crt

import "fmt"

// LinearProbing - Collision Resolution Technique: probe the next bucket, wrapping around at the table end
const LinearProbing = 1

// NoRecordFound - Custom error to inform that no record was found
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// Is - Makes errors.Is match any NoRecordFound regardless of message
func (E NoRecordFound) Is(target error) bool {
	_, ok := target.(NoRecordFound)
	return ok
}

// AllocationFailure - Custom error to inform that a bucket array could not be allocated
type AllocationFailure struct {
	msg string
}

// NewAllocationFailure - Returns an AllocationFailure stating the capacity that was requested
func NewAllocationFailure(capacity int64, reason string) AllocationFailure {
	return AllocationFailure{msg: fmt.Sprintf("unable to allocate %d buckets: %s", capacity, reason)}
}

// Error - Used to notify that allocation failed
func (A AllocationFailure) Error() string {
	if A.msg == "" {
		return "allocation failure"
	}
	return A.msg
}

// Is - Makes errors.Is match any AllocationFailure regardless of message
func (A AllocationFailure) Is(target error) bool {
	_, ok := target.(AllocationFailure)
	return ok
}

// ProbingAlgorithm - Custom error to inform that something went wrong concerning a probing algorithm
type ProbingAlgorithm struct {
	msg string
}

// Error - Used to notify that the probing algorithm was exhausted
func (P ProbingAlgorithm) Error() string {
	if P.msg == "" {
		return "probing algorithm exhausted"
	}
	return P.msg
}
