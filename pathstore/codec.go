package pathstore

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/freecam/freecam"
)

const (
	countSize  = 4
	recordSize = 7 * 4
)

var ErrTruncated = errors.New("pathstore: truncated path data")

var order = binary.NativeEndian

// Encode writes a u32 count followed by one record per pose: position x, y, z
// then orientation x, y, z, w, all as native-endian 32-bit floats.
func Encode(poses []freecam.Pose) []byte {
	buf := make([]byte, countSize+len(poses)*recordSize)
	order.PutUint32(buf, uint32(len(poses)))
	off := countSize
	for _, p := range poses {
		for _, v := range [7]float32{
			p.Position[0], p.Position[1], p.Position[2],
			p.Orientation.V[0], p.Orientation.V[1], p.Orientation.V[2], p.Orientation.W,
		} {
			order.PutUint32(buf[off:], math.Float32bits(v))
			off += 4
		}
	}
	return buf
}

// Decode reads data written by Encode. Orientations come back exactly as
// stored; bytes past the last declared record are ignored.
func Decode(data []byte) ([]freecam.Pose, error) {
	if len(data) < countSize {
		return nil, fmt.Errorf("%w: %d bytes, no count", ErrTruncated, len(data))
	}
	n := uint64(order.Uint32(data))
	if need := countSize + n*recordSize; uint64(len(data)) < need {
		return nil, fmt.Errorf("%w: %d poses need %d bytes, have %d", ErrTruncated, n, need, len(data))
	}

	poses := make([]freecam.Pose, n)
	off := countSize
	next := func() float32 {
		v := math.Float32frombits(order.Uint32(data[off:]))
		off += 4
		return v
	}
	for i := range poses {
		pos := mgl32.Vec3{next(), next(), next()}
		x, y, z, w := next(), next(), next(), next()
		poses[i] = freecam.Pose{
			Position:    pos,
			Orientation: mgl32.Quat{W: w, V: mgl32.Vec3{x, y, z}},
		}
	}
	return poses, nil
}
