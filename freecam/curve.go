package freecam

// BSplineDegree is the degree of the De Boor spline used once a path has four
// or more keyframes.
const BSplineDegree = 2

// bsplineMaxT keeps the remapped spline time inside the last segment.
const bsplineMaxT = 0.999

// Interpolate samples keys at t in [0,1]. The algorithm depends on the number
// of keyframes: one is held, two are lerped, three form a quadratic Bezier and
// four or more run De Boor's algorithm. ok is false for an empty sequence.
//
// Orientations are blended componentwise, not slerped. The result is
// renormalized.
func Interpolate(keys []Pose, t float32) (Pose, bool) {
	switch n := len(keys); {
	case n == 0:
		return Pose{}, false
	case n == 1:
		return keys[0], true
	case n == 2:
		return finish(lerp(keys[0], keys[1], t)), true
	case n == 3:
		return finish(bezierQuadratic(keys[0], keys[1], keys[2], t)), true
	default:
		return finish(deBoor(keys, t)), true
	}
}

func finish(p Pose) Pose {
	return NewPose(p.Position, p.Orientation)
}

func lerp(from, to Pose, t float32) Pose {
	return from.scale(1 - t).add(to.scale(t))
}

func bezierQuadratic(p0, p1, p2 Pose, t float32) Pose {
	mt := 1 - t
	return p0.scale(mt * mt).
		add(p1.scale(2 * mt * t)).
		add(p2.scale(t * t))
}

// deBoor works on a copy so keys is never modified.
func deBoor(keys []Pose, percent float32) Pose {
	if percent > bsplineMaxT {
		percent = bsplineMaxT
	}
	if percent < 0 {
		percent = 0
	}

	n := len(keys)
	t := percent*float32(n-BSplineDegree) + BSplineDegree
	s := int(t)

	nodes := make([]Pose, n)
	copy(nodes, keys)
	for l := 1; l <= BSplineDegree+1; l++ {
		for i := s; i >= s-BSplineDegree+l; i-- {
			alpha := (t - float32(i)) / float32((i+BSplineDegree+1-l)-i)
			nodes[i] = nodes[i-1].scale(1 - alpha).add(nodes[i].scale(alpha))
		}
	}
	return nodes[s]
}

// CorrectSigns flips any orientation whose dot product with its predecessor
// is negative, so blending never takes the long way around. It edits keys in
// place and reports how many orientations were flipped.
func CorrectSigns(keys []Pose) int {
	flipped := 0
	for i := 1; i < len(keys); i++ {
		if keys[i-1].Orientation.Dot(keys[i].Orientation) < 0 {
			keys[i].Orientation = keys[i].Orientation.Scale(-1)
			flipped++
		}
	}
	return flipped
}
