package material

import (
	"github.com/fransixpaohui/RayTracing/pkg/core"
	"github.com/fransixpaohui/RayTracing/pkg/texture"
)

// DiffuseLight is a one-sided area light: it emits from its front face and never scatters
type DiffuseLight struct {
	Base
	Emit texture.Texture
}

// NewDiffuseLight creates a light with a solid emission color
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emit: texture.NewSolidColor(emission)}
}

// Emitted returns the texture value on the front face and black on the back
func (d *DiffuseLight) Emitted(rayIn core.Ray, hit *HitRecord, u, v float64, p core.Vec3) core.Vec3 {
	if !hit.FrontFace {
		return core.Vec3{}
	}
	return d.Emit.Value(u, v, p)
}
