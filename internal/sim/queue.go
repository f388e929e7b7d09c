package sim

// readyQueue is a FIFO of processes awaiting dispatch.
type readyQueue struct {
	q []*procState
}

func (q *readyQueue) enq(ps *procState) {
	q.q = append(q.q, ps)
}

func (q *readyQueue) deq() *procState {
	if len(q.q) == 0 {
		return nil
	}
	ps := q.q[0]
	q.q = q.q[1:]
	return ps
}

func (q *readyQueue) empty() bool {
	return len(q.q) == 0
}
