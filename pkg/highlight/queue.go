package highlight

// rescanQueue holds line indices pending re-classification. Insertion is
// idempotent, removal is strictly FIFO. The Highlighter serializes all
// access, so the queue itself carries no lock.
type rescanQueue struct {
	order  []int
	queued map[int]bool
}

// push appends i unless it is already pending. It reports whether the
// line was added.
func (q *rescanQueue) push(i int) bool {
	if q.queued[i] {
		return false
	}
	if q.queued == nil {
		q.queued = make(map[int]bool)
	}
	q.queued[i] = true
	q.order = append(q.order, i)
	return true
}

// pop removes and returns the oldest pending line.
func (q *rescanQueue) pop() (int, bool) {
	if len(q.order) == 0 {
		return 0, false
	}
	i := q.order[0]
	q.order = q.order[1:]
	delete(q.queued, i)
	return i, true
}

func (q *rescanQueue) len() int {
	return len(q.order)
}

func (q *rescanQueue) contains(i int) bool {
	return q.queued[i]
}

// clear drops every pending line, for buffer teardown.
func (q *rescanQueue) clear() {
	q.order = nil
	q.queued = nil
}
