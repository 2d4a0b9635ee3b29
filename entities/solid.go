package entities

import (
	"github.com/zooyer/dxf/core"
)

// Solid 四个角点，第三、四点相同时为三角形
type Solid struct {
	BaseEntity
	Points [4]core.Point
}

type Point struct {
	BaseEntity
	Position core.Point
}

func init() {
	Register(TypeSolid, func() Entity { return &Solid{BaseEntity: newBase(TypeSolid)} })
	Register(TypePoint, func() Entity { return &Point{BaseEntity: newBase(TypePoint)} })
}

func (s *Solid) Parse(c *core.Cursor) {
	for c.Next() && c.Tag.Code != 0 {
		switch code := c.Tag.Code; code {
		case 10, 11, 12, 13:
			s.Points[code-10] = c.ReadPoint()
		default:
			s.parseCommon(c)
		}
	}
}

func (s *Solid) BBox() core.BBox {
	return core.EmptyBBox().Extend(s.Points[:]...)
}

func (p *Point) Parse(c *core.Cursor) {
	for c.Next() && c.Tag.Code != 0 {
		switch c.Tag.Code {
		case 10:
			p.Position = c.ReadPoint()
		default:
			p.parseCommon(c)
		}
	}
}

func (p *Point) BBox() core.BBox {
	return core.BBox{Min: p.Position, Max: p.Position}
}
