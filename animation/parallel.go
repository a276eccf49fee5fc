package animation

// Parallel advances a collection of child animations together. Its footprint
// is the union of the children's footprints. Children are assumed compatible
// by construction; the scheduler's mixability check happens before a group
// insertion, not here.
type Parallel struct {
	children []Animation
	objects  []Object
	props    map[Object]Properties
}

// NewParallel creates an empty parallel animation.
func NewParallel() *Parallel {
	return &Parallel{props: make(map[Object]Properties)}
}

// Add appends a child and unions its footprint into the composite's.
func (pa *Parallel) Add(a Animation) {
	for _, o := range a.Objects() {
		if _, seen := pa.props[o]; !seen {
			pa.objects = append(pa.objects, o)
		}
		pa.props[o] = pa.props[o].Union(a.Properties(o))
	}
	pa.children = append(pa.children, a)
}

// Objects implements Animation.
func (pa *Parallel) Objects() []Object {
	return pa.objects
}

// HasObject implements Animation.
func (pa *Parallel) HasObject(o Object) bool {
	_, ok := pa.props[o]
	return ok
}

// Properties implements Animation.
func (pa *Parallel) Properties(o Object) Properties {
	return pa.props[o]
}

// HasProperty implements Animation.
func (pa *Parallel) HasProperty(o Object, p Property) bool {
	return pa.props[o].Has(p)
}

// Value implements Animation; the first child driving the property wins.
func (pa *Parallel) Value(o Object, p Property) (Value, bool) {
	for _, c := range pa.children {
		if c.HasProperty(o, p) {
			return c.Value(o, p)
		}
	}
	return Value{}, false
}

// Advance implements Animation. Children that finish during the step fire
// OnFinish and are removed.
func (pa *Parallel) Advance(dt float64) {
	kept := pa.children[:0]
	for _, c := range pa.children {
		c.Advance(dt)
		if c.Finished() {
			c.OnFinish()
			continue
		}
		kept = append(kept, c)
	}
	pa.children = kept
}

// SetMaxDuration implements Animation.
func (pa *Parallel) SetMaxDuration(m float64) {
	for _, c := range pa.children {
		c.SetMaxDuration(m)
	}
}

// Duration implements Animation; it reports the longest child duration.
func (pa *Parallel) Duration() float64 {
	var d float64
	for _, c := range pa.children {
		if cd := c.Duration(); cd > d {
			d = cd
		}
	}
	return d
}

// Finished implements Animation.
func (pa *Parallel) Finished() bool {
	return len(pa.children) == 0
}

// OnStart implements Animation.
func (pa *Parallel) OnStart() {
	for _, c := range pa.children {
		c.OnStart()
	}
}

// OnFinish implements Animation. Children still present (after an
// interrupt) are finalized here.
func (pa *Parallel) OnFinish() {
	for _, c := range pa.children {
		c.OnFinish()
	}
	pa.children = nil
}

// Interruptible implements Animation; true only if every child allows it.
func (pa *Parallel) Interruptible() bool {
	for _, c := range pa.children {
		if !c.Interruptible() {
			return false
		}
	}
	return true
}

// Mixable implements Animation; true only if every child allows it.
func (pa *Parallel) Mixable() bool {
	for _, c := range pa.children {
		if !c.Mixable() {
			return false
		}
	}
	return true
}

// Interrupt implements Animation. Children keep their terminal values
// readable until OnFinish removes them.
func (pa *Parallel) Interrupt() {
	for _, c := range pa.children {
		c.Interrupt()
	}
}
