package entities

import (
	"math"

	"github.com/zooyer/dxf/core"
)

type Circle struct {
	BaseEntity
	Center core.Point
	Radius float64
}

// Arc 角度以弧度保存，AngleLength 始终落在 [0, 2π)
type Arc struct {
	Circle
	StartAngle  float64
	EndAngle    float64
	AngleLength float64

	fullTurn bool // 起止角相差整圈，AngleLength 归一化为 0
}

func init() {
	Register(TypeCircle, func() Entity { return &Circle{BaseEntity: newBase(TypeCircle)} })
	Register(TypeArc, func() Entity { return &Arc{Circle: Circle{BaseEntity: newBase(TypeArc)}} })
}

func (ci *Circle) Parse(c *core.Cursor) {
	for c.Next() && c.Tag.Code != 0 {
		ci.parse(c)
	}
}

func (ci *Circle) parse(c *core.Cursor) {
	switch c.Tag.Code {
	case 10:
		ci.Center = c.ReadPoint()
	case 40:
		ci.Radius = c.Tag.AsFloat()
	default:
		ci.parseCommon(c)
	}
}

func (ci *Circle) BBox() core.BBox {
	r := core.Point{X: ci.Radius, Y: ci.Radius}
	return core.EmptyBBox().Extend(ci.Center.Sub(r), ci.Center.Add(r))
}

func (a *Arc) Parse(c *core.Cursor) {
	for c.Next() && c.Tag.Code != 0 {
		switch c.Tag.Code {
		case 50:
			a.StartAngle = radians(c.Tag.AsFloat())
		case 51:
			a.EndAngle = radians(c.Tag.AsFloat())
		default:
			a.parse(c)
		}
	}
	a.AngleLength = AngleLength(a.StartAngle, a.EndAngle)
	a.fullTurn = a.AngleLength == 0 && math.Abs(a.EndAngle-a.StartAngle) > 1e-12
}

// FullTurn 起止角相差 360° 的整数倍（非零）
func (a *Arc) FullTurn() bool {
	return a.fullTurn
}

// AngleLength 从 start 逆时针转到 end 的角度，跨越 0° 时补一整圈
func AngleLength(start, end float64) float64 {
	length := math.Mod(end-start, 2*math.Pi)
	if length < 0 {
		length += 2 * math.Pi
	}
	// 角度换算的舍入误差会让整圈略小于 2π
	if 2*math.Pi-length < 1e-12 {
		length = 0
	}
	return length
}

// Endpoints 圆弧起止点
func (a *Arc) Endpoints() (start, end core.Point) {
	return a.pointAt(a.StartAngle), a.pointAt(a.StartAngle + a.AngleLength)
}

func (a *Arc) pointAt(angle float64) core.Point {
	return core.Point{
		X: a.Center.X + a.Radius*math.Cos(angle),
		Y: a.Center.Y + a.Radius*math.Sin(angle),
		Z: a.Center.Z,
	}
}

// BBox 端点加上扫过的象限点
func (a *Arc) BBox() core.BBox {
	if a.fullTurn {
		return a.Circle.BBox()
	}
	start, end := a.Endpoints()
	box := core.EmptyBBox().Extend(start, end)
	for q := 0; q < 4; q++ {
		angle := float64(q) * math.Pi / 2
		if AngleLength(a.StartAngle, angle) <= a.AngleLength {
			box = box.Extend(a.pointAt(angle))
		}
	}
	return box
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
