// Package markers holds the placemarks shown on the map and the follow-me
// target, stored as ECS entities.
package markers

import (
	"math"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/mapview/geometry"
)

// Kind distinguishes marker roles.
type Kind uint8

const (
	// KindPlace is a static placemark.
	KindPlace Kind = iota
	// KindTarget is the moving follow-me target.
	KindTarget
)

// Position is a marker's location in global map coordinates.
type Position struct {
	X, Y float64
}

// Heading is a marker's orientation in radians.
type Heading struct {
	Radians float64
}

// Meta identifies a marker.
type Meta struct {
	ID   uint32
	Kind Kind
}

// World owns the marker entities.
type World struct {
	world  *ecs.World
	mapper *ecs.Map3[Position, Heading, Meta]
	filter *ecs.Filter3[Position, Heading, Meta]
	posMap *ecs.Map1[Position]
	rotMap *ecs.Map1[Heading]

	rng    *rand.Rand
	nextID uint32

	target    ecs.Entity
	hasTarget bool
}

// NewWorld creates an empty marker world.
func NewWorld(seed int64) *World {
	world := ecs.NewWorld()
	return &World{
		world:  world,
		mapper: ecs.NewMap3[Position, Heading, Meta](world),
		filter: ecs.NewFilter3[Position, Heading, Meta](world),
		posMap: ecs.NewMap1[Position](world),
		rotMap: ecs.NewMap1[Heading](world),
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// SpawnPlaces scatters count placemarks uniformly inside a square of the
// given half-extent around the origin.
func (w *World) SpawnPlaces(count int, spread float64) {
	for i := 0; i < count; i++ {
		pos := Position{
			X: (w.rng.Float64()*2 - 1) * spread,
			Y: (w.rng.Float64()*2 - 1) * spread,
		}
		head := Heading{Radians: w.rng.Float64() * 2 * math.Pi}
		meta := Meta{ID: w.nextID, Kind: KindPlace}
		w.nextID++
		w.mapper.NewEntity(&pos, &head, &meta)
	}
}

// SpawnTarget creates the follow-me target at the given point. Only one
// target exists; respawning moves it.
func (w *World) SpawnTarget(at geometry.Point) {
	if w.hasTarget {
		pos := w.posMap.Get(w.target)
		pos.X, pos.Y = at.X, at.Y
		return
	}
	pos := Position{X: at.X, Y: at.Y}
	head := Heading{}
	meta := Meta{ID: w.nextID, Kind: KindTarget}
	w.nextID++
	w.target = w.mapper.NewEntity(&pos, &head, &meta)
	w.hasTarget = true
}

// Target returns the follow-me target's position and heading.
func (w *World) Target() (geometry.Point, float64, bool) {
	if !w.hasTarget || !w.world.Alive(w.target) {
		return geometry.Point{}, 0, false
	}
	pos := w.posMap.Get(w.target)
	head := w.rotMap.Get(w.target)
	return geometry.Pt(pos.X, pos.Y), head.Radians, true
}

// StepTarget advances the target along a smooth random walk: the heading
// drifts within the turn rate and the position follows it at the given
// speed.
func (w *World) StepTarget(dt, speed, turnRate float64) {
	if !w.hasTarget {
		return
	}
	pos := w.posMap.Get(w.target)
	head := w.rotMap.Get(w.target)

	head.Radians += (w.rng.Float64()*2 - 1) * turnRate * dt
	pos.X += math.Cos(head.Radians) * speed * dt
	pos.Y += math.Sin(head.Radians) * speed * dt
}

// Each visits every marker.
func (w *World) Each(fn func(pos geometry.Point, heading float64, kind Kind)) {
	query := w.filter.Query()
	for query.Next() {
		pos, head, meta := query.Get()
		fn(geometry.Pt(pos.X, pos.Y), head.Radians, meta.Kind)
	}
}

// Count returns the number of markers.
func (w *World) Count() int {
	n := 0
	query := w.filter.Query()
	for query.Next() {
		n++
	}
	return n
}
