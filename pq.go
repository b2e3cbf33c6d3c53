package objcache

import "container/heap"

// make sure expiryQueue implements heap.Interface
var _ heap.Interface = (*expiryQueue)(nil)

// expiryRecord pairs an identifier with its absolute expiry instant.
type expiryRecord struct {
	id        string
	expiresAt int64
	index     int
}

// expiryQueue is a min-heap of expiryRecords ordered by expiry instant.
type expiryQueue []*expiryRecord

// Len returns the length of the queue
func (q expiryQueue) Len() int {
	return len(q)
}

// Less returns true if the record at index i expires before the record at index j
func (q expiryQueue) Less(i, j int) bool {
	return q[i].expiresAt < q[j].expiresAt
}

// Swap swaps the records at index i and j
func (q expiryQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index, q[j].index = i, j
}

// Push pushes a record onto the queue
func (q *expiryQueue) Push(x any) {
	n := len(*q)

	rec := x.(*expiryRecord)
	rec.index = n

	*q = append(*q, rec)
}

// Pop pops a record from the queue
func (q *expiryQueue) Pop() any {
	old := *q
	n := len(old)

	rec := old[n-1]
	rec.index = -1

	*q = old[0 : n-1]

	return rec
}

// expiryIndex is the time-ordered view of pending expiries. Duplicate
// identifiers are tolerated transiently; callers keep at most one record
// per identifier by removing before re-inserting.
type expiryIndex struct {
	q expiryQueue
}

func newExpiryIndex() *expiryIndex {
	return &expiryIndex{
		q: make(expiryQueue, 0),
	}
}

// len returns the number of pending records.
func (x *expiryIndex) len() int {
	return x.q.Len()
}

// insert adds a record for the given identifier and expiry instant.
func (x *expiryIndex) insert(id string, expiresAt int64) {
	heap.Push(&x.q, &expiryRecord{
		id:        id,
		expiresAt: expiresAt,
	})
}

// reinsert puts a previously popped record back unchanged.
func (x *expiryIndex) reinsert(rec *expiryRecord) {
	heap.Push(&x.q, rec)
}

// removeByID removes the record with the given identifier, if any.
func (x *expiryIndex) removeByID(id string) {
	for i, rec := range x.q {
		if rec.id == id {
			heap.Remove(&x.q, i)
			break
		}
	}
}

// peek returns the earliest record without removing it, or nil if empty.
func (x *expiryIndex) peek() *expiryRecord {
	if x.q.Len() == 0 {
		return nil
	}

	return x.q[0]
}

// pop removes and returns the earliest record, or nil if empty.
func (x *expiryIndex) pop() *expiryRecord {
	if x.q.Len() == 0 {
		return nil
	}

	return heap.Pop(&x.q).(*expiryRecord)
}

// clear empties the index.
func (x *expiryIndex) clear() {
	x.q = make(expiryQueue, 0)
}
