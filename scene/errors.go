package scene

import "errors"

var (
	ErrInvalidGeometry       = errors.New("scene: sphere radius must be > 0")
	ErrUnknownMaterial       = errors.New("scene: sphere references unknown material")
	ErrDegenerateCameraBasis = errors.New("scene: up hint is parallel to the view direction")
)
