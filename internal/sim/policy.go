package sim

// fcfsPolicy: single queue, non-preemptive. A selected process always runs
// its full remaining service time, so requeue is unreachable.
type fcfsPolicy struct {
	ready readyQueue
}

func (p *fcfsPolicy) admit(ps *procState)     { p.ready.enq(ps) }
func (p *fcfsPolicy) next() *procState        { return p.ready.deq() }
func (p *fcfsPolicy) slice(ps *procState) int { return ps.remaining }
func (p *fcfsPolicy) requeue(ps *procState) {
	panic("sim: fcfs requeue of " + ps.proc.ID)
}
func (p *fcfsPolicy) pending() bool { return !p.ready.empty() }

// rrPolicy: single queue, one global quantum.
type rrPolicy struct {
	ready   readyQueue
	quantum int
}

func (p *rrPolicy) admit(ps *procState)     { p.ready.enq(ps) }
func (p *rrPolicy) next() *procState        { return p.ready.deq() }
func (p *rrPolicy) slice(ps *procState) int { return p.quantum }
func (p *rrPolicy) requeue(ps *procState)   { p.ready.enq(ps) }
func (p *rrPolicy) pending() bool           { return !p.ready.empty() }

// srrPolicy: single queue, per-process quantum. Every expiry grows the
// process's quantum by one up to the cap; completion never touches it.
type srrPolicy struct {
	ready   readyQueue
	initial int
	cap     int
}

// admit runs exactly once per process, so it also seeds the starting quantum.
func (p *srrPolicy) admit(ps *procState) {
	ps.quantum = p.initial
	p.ready.enq(ps)
}

func (p *srrPolicy) next() *procState        { return p.ready.deq() }
func (p *srrPolicy) slice(ps *procState) int { return ps.quantum }

func (p *srrPolicy) requeue(ps *procState) {
	ps.quantum = clampedInc(ps.quantum, p.cap)
	p.ready.enq(ps)
}

func (p *srrPolicy) pending() bool { return !p.ready.empty() }

// fbPolicy: one queue per level, strict priority across levels, round robin
// within a level, fixed quantum everywhere. Arrivals always enter level 0;
// expiry demotes by one level down to the bottom queue, which degenerates
// to plain round robin. There is no promotion.
type fbPolicy struct {
	levels  []readyQueue
	quantum int
}

func newFBPolicy(levelCount, quantum int) *fbPolicy {
	return &fbPolicy{
		levels:  make([]readyQueue, levelCount),
		quantum: quantum,
	}
}

func (p *fbPolicy) admit(ps *procState) {
	p.levels[0].enq(ps)
}

func (p *fbPolicy) next() *procState {
	for i := range p.levels {
		if !p.levels[i].empty() {
			return p.levels[i].deq()
		}
	}
	return nil
}

func (p *fbPolicy) slice(ps *procState) int { return p.quantum }

func (p *fbPolicy) requeue(ps *procState) {
	ps.level = clampedInc(ps.level, len(p.levels)-1)
	p.levels[ps.level].enq(ps)
}

func (p *fbPolicy) pending() bool {
	for i := range p.levels {
		if !p.levels[i].empty() {
			return true
		}
	}
	return false
}
