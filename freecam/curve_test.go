package freecam

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func posePath(points ...mgl32.Vec3) []Pose {
	out := make([]Pose, len(points))
	for i, p := range points {
		out[i] = Pose{Position: p, Orientation: mgl32.QuatIdent()}
	}
	return out
}

func squarePath() []Pose {
	return posePath(
		mgl32.Vec3{0, 0, 0},
		mgl32.Vec3{1, 0, 0},
		mgl32.Vec3{1, 1, 0},
		mgl32.Vec3{0, 1, 0},
	)
}

func TestInterpolate(t *testing.T) {
	tests := []struct {
		name string
		keys []Pose
		t    float32
		want mgl32.Vec3
	}{
		{
			name: "single point is held",
			keys: posePath(mgl32.Vec3{4, 5, 6}),
			t:    0.7,
			want: mgl32.Vec3{4, 5, 6},
		},
		{
			name: "lerp start",
			keys: posePath(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{2, 4, 6}),
			t:    0,
			want: mgl32.Vec3{0, 0, 0},
		},
		{
			name: "lerp midpoint",
			keys: posePath(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{2, 4, 6}),
			t:    0.5,
			want: mgl32.Vec3{1, 2, 3},
		},
		{
			name: "bezier start",
			keys: posePath(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 2, 0}, mgl32.Vec3{2, 0, 0}),
			t:    0,
			want: mgl32.Vec3{0, 0, 0},
		},
		{
			name: "bezier middle",
			keys: posePath(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 2, 0}, mgl32.Vec3{2, 0, 0}),
			t:    0.5,
			want: mgl32.Vec3{1, 1, 0},
		},
		{
			name: "bezier end",
			keys: posePath(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 2, 0}, mgl32.Vec3{2, 0, 0}),
			t:    1,
			want: mgl32.Vec3{2, 0, 0},
		},
		{
			// t=0 remaps to the first knot: halfway between the first two poses
			name: "spline start",
			keys: squarePath(),
			t:    0,
			want: mgl32.Vec3{0.5, 0, 0},
		},
		{
			name: "spline middle knot",
			keys: squarePath(),
			t:    0.5,
			want: mgl32.Vec3{1, 0.5, 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Interpolate(tt.keys, tt.t)
			if !ok {
				t.Fatalf("expected a pose")
			}
			if !vecNear(got.Position, tt.want, 1e-5) {
				t.Fatalf("position = %v, want %v", got.Position, tt.want)
			}
		})
	}
}

func TestInterpolateEmpty(t *testing.T) {
	if _, ok := Interpolate(nil, 0.5); ok {
		t.Fatalf("expected no pose for an empty sequence")
	}
}

func TestInterpolateSplineEndIsClamped(t *testing.T) {
	got, ok := Interpolate(squarePath(), 1)
	if !ok {
		t.Fatalf("expected a pose")
	}
	// the clamp stops just short of the last knot, the midpoint of the last two poses
	if !vecNear(got.Position, mgl32.Vec3{0.5, 1, 0}, 0.01) {
		t.Fatalf("position = %v", got.Position)
	}
}

func TestInterpolateSplineDoesNotMutate(t *testing.T) {
	keys := squarePath()
	before := make([]Pose, len(keys))
	copy(before, keys)
	for _, tt := range []float32{0, 0.3, 0.6, 1} {
		Interpolate(keys, tt)
	}
	for i := range keys {
		if keys[i] != before[i] {
			t.Fatalf("keyframe %d changed: %v -> %v", i, before[i], keys[i])
		}
	}
}

func TestInterpolateLerpIsNotSlerp(t *testing.T) {
	a := PoseFromEuler(mgl32.Vec3{}, 0, 0, 0)
	b := PoseFromEuler(mgl32.Vec3{}, 2, 0, 0)
	got, _ := Interpolate([]Pose{a, b}, 0.25)

	raw := a.Orientation.Scale(0.75).Add(b.Orientation.Scale(0.25)).Normalize()
	if !got.Orientation.ApproxEqualThreshold(raw, 1e-5) {
		t.Fatalf("orientation = %v, want componentwise blend %v", got.Orientation, raw)
	}
	slerp := mgl32.QuatSlerp(a.Orientation, b.Orientation, 0.25)
	if got.Orientation.ApproxEqualThreshold(slerp, 1e-4) {
		t.Fatalf("orientation matches slerp, expected a plain lerp")
	}
}

func TestCorrectSignsIdempotent(t *testing.T) {
	keys := posePath(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{2, 0, 0}, mgl32.Vec3{3, 0, 0})
	keys[1].Orientation = EulerToQuat(0.2, 0, 0).Scale(-1)
	keys[2].Orientation = EulerToQuat(0.4, 0, 0)
	keys[3].Orientation = EulerToQuat(0.6, 0, 0).Scale(-1)

	if n := CorrectSigns(keys); n == 0 {
		t.Fatalf("expected flips on the first pass")
	}
	first := make([]Pose, len(keys))
	copy(first, keys)

	if n := CorrectSigns(keys); n != 0 {
		t.Fatalf("second pass flipped %d orientations", n)
	}
	for i := range keys {
		if keys[i] != first[i] {
			t.Fatalf("keyframe %d changed on the second pass", i)
		}
		if i > 0 && keys[i-1].Orientation.Dot(keys[i].Orientation) < 0 {
			t.Fatalf("keyframes %d and %d still disagree in sign", i-1, i)
		}
	}
}
