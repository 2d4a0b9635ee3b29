package entities

import (
	"github.com/zooyer/dxf/core"
)

type Spline struct {
	BaseEntity
	ControlPoints []core.Point
	FitPoints     []core.Point
	Knots         []float64
	Weights       []float64
	Degree        int
	StartTangent  *core.Point
	EndTangent    *core.Point

	NumberOfKnots         int
	NumberOfControlPoints int
	NumberOfFitPoints     int

	Closed   bool
	Periodic bool
	Rational bool
	Planar   bool
	Linear   bool
}

func init() {
	Register(TypeSpline, func() Entity { return &Spline{BaseEntity: newBase(TypeSpline)} })
}

func (s *Spline) Parse(c *core.Cursor) {
	for c.Next() && c.Tag.Code != 0 {
		switch c.Tag.Code {
		case 10:
			s.ControlPoints = append(s.ControlPoints, c.ReadPoint())
		case 11:
			s.FitPoints = append(s.FitPoints, c.ReadPoint())
		case 12:
			p := c.ReadPoint()
			s.StartTangent = &p
		case 13:
			p := c.ReadPoint()
			s.EndTangent = &p
		case 40:
			s.Knots = append(s.Knots, c.Tag.AsFloat())
		case 41:
			s.Weights = append(s.Weights, c.Tag.AsFloat())
		case 42, 43, 44:
			// 拟合公差
		case 70:
			flags := c.Tag.AsInt()
			s.Closed = flags&1 != 0
			s.Periodic = flags&2 != 0
			s.Rational = flags&4 != 0
			s.Planar = flags&8 != 0
			s.Linear = s.Planar && flags&16 != 0
		case 71:
			s.Degree = c.Tag.AsInt()
		case 72:
			s.NumberOfKnots = c.Tag.AsInt()
		case 73:
			s.NumberOfControlPoints = c.Tag.AsInt()
		case 74:
			s.NumberOfFitPoints = c.Tag.AsInt()
		default:
			s.parseCommon(c)
		}
	}
}

// BBox 控制点的凸包包含整条曲线
func (s *Spline) BBox() core.BBox {
	if len(s.ControlPoints) == 0 {
		return core.EmptyBBox().Extend(s.FitPoints...)
	}
	return core.EmptyBBox().Extend(s.ControlPoints...)
}
