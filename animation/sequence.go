package animation

// Sequence runs a queue of child animations one at a time, each to
// completion. Only the front child is active, and the sequence's externally
// visible footprint is always that of the current front — the scheduler's
// mixability decision is made at insertion time, so a later stage that
// conflicts with a running animation only surfaces the conflict when it
// reaches the front.
type Sequence struct {
	queue        []Animation
	frontStarted bool
}

// NewSequence creates an empty sequence.
func NewSequence() *Sequence {
	return &Sequence{}
}

// Add appends a child to the queue.
func (sq *Sequence) Add(a Animation) {
	sq.queue = append(sq.queue, a)
}

// Objects implements Animation; an empty sequence touches nothing.
func (sq *Sequence) Objects() []Object {
	if len(sq.queue) == 0 {
		return nil
	}
	return sq.queue[0].Objects()
}

// HasObject implements Animation.
func (sq *Sequence) HasObject(o Object) bool {
	return len(sq.queue) > 0 && sq.queue[0].HasObject(o)
}

// Properties implements Animation.
func (sq *Sequence) Properties(o Object) Properties {
	if len(sq.queue) == 0 {
		return 0
	}
	return sq.queue[0].Properties(o)
}

// HasProperty implements Animation.
func (sq *Sequence) HasProperty(o Object, p Property) bool {
	return len(sq.queue) > 0 && sq.queue[0].HasProperty(o, p)
}

// Value implements Animation; reads come from the front child.
func (sq *Sequence) Value(o Object, p Property) (Value, bool) {
	if len(sq.queue) == 0 {
		return Value{}, false
	}
	return sq.queue[0].Value(o, p)
}

// Advance implements Animation. A front promoted since the last tick
// receives OnStart before its first step; a front that finishes fires
// OnFinish and is popped, and the next child starts on the following tick.
func (sq *Sequence) Advance(dt float64) {
	if len(sq.queue) == 0 {
		return
	}
	front := sq.queue[0]
	if !sq.frontStarted {
		front.OnStart()
		sq.frontStarted = true
	}
	front.Advance(dt)
	if front.Finished() {
		front.OnFinish()
		sq.queue = sq.queue[1:]
		sq.frontStarted = false
	}
}

// SetMaxDuration implements Animation; the cap cascades to every queued
// child.
func (sq *Sequence) SetMaxDuration(m float64) {
	for _, c := range sq.queue {
		c.SetMaxDuration(m)
	}
}

// Duration implements Animation; it reports the summed queue duration.
func (sq *Sequence) Duration() float64 {
	var d float64
	for _, c := range sq.queue {
		d += c.Duration()
	}
	return d
}

// Finished implements Animation.
func (sq *Sequence) Finished() bool {
	return len(sq.queue) == 0
}

// OnStart implements Animation; only the front starts.
func (sq *Sequence) OnStart() {
	if len(sq.queue) == 0 || sq.frontStarted {
		return
	}
	sq.queue[0].OnStart()
	sq.frontStarted = true
}

// OnFinish implements Animation.
func (sq *Sequence) OnFinish() {
	if len(sq.queue) > 0 && sq.frontStarted {
		sq.queue[0].OnFinish()
	}
	sq.queue = nil
	sq.frontStarted = false
}

// Interruptible implements Animation; true only if every queued child
// allows it, since interrupting discards the whole queue.
func (sq *Sequence) Interruptible() bool {
	for _, c := range sq.queue {
		if !c.Interruptible() {
			return false
		}
	}
	return true
}

// Mixable implements Animation; the front decides, matching the footprint.
func (sq *Sequence) Mixable() bool {
	return len(sq.queue) > 0 && sq.queue[0].Mixable()
}

// Interrupt implements Animation. The front jumps to its end state with its
// values readable; unstarted stages are discarded.
func (sq *Sequence) Interrupt() {
	if len(sq.queue) == 0 {
		return
	}
	sq.queue[0].Interrupt()
	sq.queue = sq.queue[:1]
}
