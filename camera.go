package scatter3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	defaultAzimuth   = -60.0
	defaultElevation = 30.0
	defaultFovY      = 45.0

	// keeps the view direction off the up axis
	maxPitch = math.Pi/2 - 0.01
)

var worldUp = mgl64.Vec3{0, 0, 1}

// Camera orbits Target at Distance. Yaw turns around the Z axis and Pitch
// lifts the eye above the XY plane; both are radians.
type Camera struct {
	Target   mgl64.Vec3
	Distance float64
	Yaw      float64
	Pitch    float64
	FovY     float64

	minDistance float64
	maxDistance float64
}

func NewCamera(target mgl64.Vec3, distance, yaw, pitch float64) *Camera {
	return &Camera{
		Target:      target,
		Distance:    distance,
		Yaw:         yaw,
		Pitch:       mgl64.Clamp(pitch, -maxPitch, maxPitch),
		FovY:        mgl64.DegToRad(defaultFovY),
		minDistance: distance * 0.05,
		maxDistance: distance * 20,
	}
}

// NewCameraFor frames the box from the default azimuth and elevation.
func NewCameraFor(box r3.Box) *Camera {
	center := boxCenter(box)
	radius := boxRadius(box)
	fov := mgl64.DegToRad(defaultFovY)
	distance := 1.1 * radius / math.Sin(fov/2)

	return NewCamera(
		mgl64.Vec3{center.X, center.Y, center.Z},
		distance,
		mgl64.DegToRad(defaultAzimuth),
		mgl64.DegToRad(defaultElevation),
	)
}

func (c *Camera) Eye() mgl64.Vec3 {
	rot := mgl64.HomogRotate3DZ(c.Yaw).Mul4(mgl64.HomogRotate3DY(-c.Pitch))
	dir := rot.Mul4x1(mgl64.Vec4{1, 0, 0, 0}).Vec3()
	return c.Target.Add(dir.Mul(c.Distance))
}

func (c *Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Eye(), c.Target, worldUp)
}

func (c *Camera) near() float64 {
	return c.Distance * 0.01
}

func (c *Camera) Projection(aspect float64) mgl64.Mat4 {
	return mgl64.Perspective(c.FovY, aspect, c.near(), c.Distance*100)
}

func (c *Camera) Orbit(dYaw, dPitch float64) {
	c.Yaw += dYaw
	c.Pitch = mgl64.Clamp(c.Pitch+dPitch, -maxPitch, maxPitch)
}

// Zoom scales the distance to the target. Factors below 1 move closer.
func (c *Camera) Zoom(factor float64) {
	if factor <= 0 {
		return
	}
	d := c.Distance * factor
	if c.maxDistance > 0 {
		d = mgl64.Clamp(d, c.minDistance, c.maxDistance)
	}
	c.Distance = d
}

// ScreenPoint is a projected point. X grows right and Y grows down from the
// top-left corner; Depth is the distance along the view direction.
type ScreenPoint struct {
	X, Y  float64
	Depth float64
}

// Projector maps world coordinates onto a width x height viewport for one
// camera pose.
type Projector struct {
	viewProj      mgl64.Mat4
	near          float64
	width, height float64
}

func (c *Camera) Projector(width, height int) *Projector {
	w, h := float64(width), float64(height)
	if h <= 0 {
		h = 1
	}
	return &Projector{
		viewProj: c.Projection(w / h).Mul4(c.View()),
		near:     c.near(),
		width:    w,
		height:   h,
	}
}

// Project returns false for points behind the near plane and for
// coordinates that are not finite.
func (p *Projector) Project(v r3.Vec) (ScreenPoint, bool) {
	clip := p.viewProj.Mul4x1(mgl64.Vec4{v.X, v.Y, v.Z, 1})
	w := clip.W()
	if math.IsNaN(w) || math.IsInf(w, 0) || w < p.near {
		return ScreenPoint{}, false
	}
	ndcX := clip.X() / w
	ndcY := clip.Y() / w
	if math.IsNaN(ndcX+ndcY) || math.IsInf(ndcX+ndcY, 0) {
		return ScreenPoint{}, false
	}
	return ScreenPoint{
		X:     (ndcX + 1) / 2 * p.width,
		Y:     (1 - ndcY) / 2 * p.height,
		Depth: w,
	}, true
}
