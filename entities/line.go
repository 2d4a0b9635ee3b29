package entities

import (
	"github.com/zooyer/dxf/core"
)

// Line 由组码 10 起点和 11 终点组成，Vertices 依次为起点、终点
type Line struct {
	BaseEntity
	Vertices []core.Point
}

func init() {
	Register(TypeLine, func() Entity { return &Line{BaseEntity: newBase(TypeLine)} })
}

func (l *Line) Parse(c *core.Cursor) {
	for c.Next() && c.Tag.Code != 0 {
		switch c.Tag.Code {
		case 10:
			l.Vertices = append([]core.Point{c.ReadPoint()}, l.Vertices...)
		case 11:
			l.Vertices = append(l.Vertices, c.ReadPoint())
		default:
			l.parseCommon(c)
		}
	}
}

// Start 起点，缺失时返回零值
func (l *Line) Start() core.Point {
	if len(l.Vertices) == 0 {
		return core.Point{}
	}
	return l.Vertices[0]
}

// End 终点，缺失时返回零值
func (l *Line) End() core.Point {
	if len(l.Vertices) == 0 {
		return core.Point{}
	}
	return l.Vertices[len(l.Vertices)-1]
}

func (l *Line) BBox() core.BBox {
	return core.EmptyBBox().Extend(l.Vertices...)
}
