package entities

import (
	"math"

	"github.com/zooyer/dxf/core"
)

// Ellipse 长轴以相对圆心的端点向量表示，起止为参数角（弧度）
type Ellipse struct {
	BaseEntity
	Center            core.Point
	MajorAxisEndPoint core.Point
	AxisRatio         float64
	StartAngle        float64
	EndAngle          float64
}

func init() {
	Register(TypeEllipse, func() Entity {
		return &Ellipse{BaseEntity: newBase(TypeEllipse), AxisRatio: 1, EndAngle: 2 * math.Pi}
	})
}

func (e *Ellipse) Parse(c *core.Cursor) {
	for c.Next() && c.Tag.Code != 0 {
		switch c.Tag.Code {
		case 10:
			e.Center = c.ReadPoint()
		case 11:
			e.MajorAxisEndPoint = c.ReadPoint()
		case 40:
			e.AxisRatio = c.Tag.AsFloat()
		case 41:
			e.StartAngle = c.Tag.AsFloat()
		case 42:
			e.EndAngle = c.Tag.AsFloat()
		default:
			e.parseCommon(c)
		}
	}
}

// BBox 按完整椭圆计算
func (e *Ellipse) BBox() core.BBox {
	ax, ay := e.MajorAxisEndPoint.X, e.MajorAxisEndPoint.Y
	bx, by := -ay*e.AxisRatio, ax*e.AxisRatio
	half := core.Point{X: math.Hypot(ax, bx), Y: math.Hypot(ay, by)}
	return core.EmptyBBox().Extend(e.Center.Sub(half), e.Center.Add(half))
}
