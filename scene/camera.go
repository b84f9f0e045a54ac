package scene

import (
	"github.com/mattrusch/SoftPT/types"
)

// The camera type controls the scene camera.
type Camera struct {
	Position types.Vec3
	LookAt   types.Vec3
	Up       types.Vec3
}

func NewCamera(position, lookAt, up types.Vec3) *Camera {
	return &Camera{
		Position: position,
		LookAt:   lookAt,
		Up:       up,
	}
}

// A camera basis resolved against a concrete frame size. Primary rays
// are generated by walking a [-1,1]x[-1,1] near-plane span in steps of
// dx/dy along the right and up axes.
//
// Note that the up axis is re-derived from the camera position rather
// than the view direction; the effective focal distance is implicit in
// the magnitudes of right and up.
type Frustum struct {
	position types.Vec3
	right    types.Vec3
	up       types.Vec3
	dx, dy   float32
}

// Resolve the camera basis for a frameW x frameH pixel grid. Returns
// ErrDegenerateCameraBasis when the basis collapses (up hint parallel
// to the view direction, camera at the look-at target or at the world
// origin) instead of letting NaNs leak into every pixel of the frame.
func (c *Camera) Frustum(frameW, frameH uint32) (*Frustum, error) {
	viewDir := c.LookAt.Sub(c.Position)
	if viewDir.Len() < types.Epsilon || c.Position.Len() < types.Epsilon {
		return nil, ErrDegenerateCameraBasis
	}

	right := c.Up.Cross(viewDir.Normalize())
	if right.Len() < types.Epsilon {
		return nil, ErrDegenerateCameraBasis
	}

	up := right.Cross(c.Position.Normalize())
	if up.Len() < types.Epsilon {
		return nil, ErrDegenerateCameraBasis
	}

	return &Frustum{
		position: c.Position,
		right:    right,
		up:       up,
		dx:       2.0 / float32(frameW),
		dy:       2.0 / float32(frameH),
	}, nil
}

// Generate the primary ray for pixel (x, y). All rays share the camera
// position as their origin and have unit-length directions.
func (fr *Frustum) PrimaryRay(x, y uint32) types.Ray {
	nearPlanePos := fr.right.Mul(-1.0 + fr.dx*float32(x)).Add(fr.up.Mul(1.0 - fr.dy*float32(y)))
	return types.Ray{
		Origin:    fr.position,
		Direction: nearPlanePos.Sub(fr.position).Normalize(),
	}
}
