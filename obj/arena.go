package obj

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/freecam/prefabs"
)

const (
	collisionTypeBall cp.CollisionType = iota + 1
	collisionTypeWall
)

// maxStep keeps a fast clock from tunnelling balls through the walls.
const maxStep = 1.0 / 120

// Arena is the physics scene the cameras look at. Bodies move on the
// chipmunk XY plane, which the renderer maps to world XZ.
type Arena struct {
	space *cp.Space
	balls []*cp.Body
	clock *Clock

	radius  float64
	width   float64
	depth   float64
	bounces int
}

func NewArena(spec prefabs.SceneSpec, clock *Clock) *Arena {
	space := cp.NewSpace()
	iters := spec.Iterations
	if iters <= 0 {
		iters = 10
	}
	space.Iterations = uint(iters)
	space.SetGravity(cp.Vector{X: 0, Y: spec.Gravity})

	if clock == nil {
		clock = NewClock()
	}
	a := &Arena{
		space:  space,
		clock:  clock,
		radius: spec.BallRadius,
		width:  spec.Width,
		depth:  spec.Depth,
	}
	if a.radius <= 0 {
		a.radius = 5
	}
	if a.width <= 0 {
		a.width = 400
	}
	if a.depth <= 0 {
		a.depth = 400
	}
	a.buildWalls()
	a.addBalls(spec.Balls, spec.Elasticity, spec.Seed)
	a.setupHandlers()
	return a
}

func (a *Arena) setupHandlers() {
	handler := a.space.NewCollisionHandler(collisionTypeBall, collisionTypeWall)
	handler.UserData = a
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		if arena, ok := userData.(*Arena); ok && arena != nil {
			arena.bounces++
		}
		return true
	}
}

// Bounces counts ball hits on the walls so far.
func (a *Arena) Bounces() int { return a.bounces }

func (a *Arena) buildWalls() {
	w, d := a.width, a.depth
	segments := []struct {
		a cp.Vector
		b cp.Vector
	}{
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: w, Y: 0}},
		{a: cp.Vector{X: 0, Y: d}, b: cp.Vector{X: w, Y: d}},
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: d}},
		{a: cp.Vector{X: w, Y: 0}, b: cp.Vector{X: w, Y: d}},
	}
	for _, seg := range segments {
		shape := cp.NewSegment(a.space.StaticBody, seg.a, seg.b, 1)
		shape.SetElasticity(1)
		shape.SetFriction(0)
		shape.SetCollisionType(collisionTypeWall)
		a.space.AddShape(shape)
	}
}

func (a *Arena) addBalls(n int, elasticity float64, seed int64) {
	if elasticity <= 0 {
		elasticity = 0.9
	}
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		mass := 1.0
		body := cp.NewBody(mass, cp.MomentForCircle(mass, 0, a.radius, cp.Vector{}))
		body.SetPosition(cp.Vector{
			X: a.radius + rng.Float64()*(a.width-2*a.radius),
			Y: a.radius + rng.Float64()*(a.depth-2*a.radius),
		})
		angle := rng.Float64() * 2 * math.Pi
		speed := 40 + rng.Float64()*80
		body.SetVelocity(math.Cos(angle)*speed, math.Sin(angle)*speed)

		shape := cp.NewCircle(body, a.radius, cp.Vector{})
		shape.SetElasticity(elasticity)
		shape.SetFriction(0)
		shape.SetCollisionType(collisionTypeBall)

		a.space.AddBody(body)
		a.space.AddShape(shape)
		a.balls = append(a.balls, body)
	}
}

// Step advances the simulation by dt wall seconds scaled by the arena clock.
// A stopped clock freezes the scene.
func (a *Arena) Step(dt float32) {
	if a == nil || a.space == nil {
		return
	}
	remaining := float64(a.clock.Scale(dt))
	for remaining > 0 {
		step := math.Min(remaining, maxStep)
		a.space.Step(step)
		remaining -= step
	}
}

func (a *Arena) Clock() *Clock { return a.clock }

// toWorld maps a chipmunk point to world space with the arena centered on
// the origin.
func (a *Arena) toWorld(v cp.Vector, y float64) mgl32.Vec3 {
	return mgl32.Vec3{float32(v.X - a.width/2), float32(y), float32(v.Y - a.depth/2)}
}

// Balls returns ball centers in world space.
func (a *Arena) Balls() []mgl32.Vec3 {
	out := make([]mgl32.Vec3, 0, len(a.balls))
	for _, b := range a.balls {
		out = append(out, a.toWorld(b.Position(), a.radius))
	}
	return out
}

func (a *Arena) BallRadius() float32 { return float32(a.radius) }

// Bounds returns the arena floor corners in world space.
func (a *Arena) Bounds() (lo, hi mgl32.Vec3) {
	return a.toWorld(cp.Vector{}, 0), a.toWorld(cp.Vector{X: a.width, Y: a.depth}, 0)
}
