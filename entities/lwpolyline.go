package entities

import (
	"github.com/zooyer/dxf/core"
)

type LWPolyline struct {
	BaseEntity
	Vertices         []core.Vertex
	NumberOfVertices int     // 组码 90 声明的顶点数
	Closed           bool    // 组码 70 bit 1
	Plinegen         bool    // 组码 70 bit 128，线型图案连续
	Elevation        float64 // 组码 38
	Width            float64 // 组码 43 全局宽度
}

func init() {
	Register(TypeLWPolyline, func() Entity { return &LWPolyline{BaseEntity: newBase(TypeLWPolyline)} })
}

func (l *LWPolyline) Parse(c *core.Cursor) {
	for c.Next() && c.Tag.Code != 0 {
		switch c.Tag.Code {
		case 10:
			l.Vertices = append(l.Vertices, readLWVertex(c))
		case 38:
			l.Elevation = c.Tag.AsFloat()
		case 43:
			l.Width = c.Tag.AsFloat()
		case 70:
			flags := c.Tag.AsInt()
			l.Closed = flags&1 != 0
			l.Plinegen = flags&128 != 0
		case 90:
			l.NumberOfVertices = c.Tag.AsInt()
		default:
			l.parseCommon(c)
		}
	}

	if l.NumberOfVertices != len(l.Vertices) {
		c.Logger().Debug("lwpolyline vertex count mismatch",
			"handle", l.Handle, "declared", l.NumberOfVertices, "parsed", len(l.Vertices))
	}
}

// readLWVertex 当前组为顶点的 X (10)，顺序读取紧随其后的坐标、宽度、凸度
func readLWVertex(c *core.Cursor) core.Vertex {
	v := core.Vertex{Point: c.ReadPoint()}
	for {
		switch {
		case c.NextIs(40) && c.Next():
			v.StartWidth = c.Tag.AsFloat()
		case c.NextIs(41) && c.Next():
			v.EndWidth = c.Tag.AsFloat()
		case c.NextIs(42) && c.Next():
			v.Bulge = c.Tag.AsFloat()
		case c.NextIs(91) && c.Next():
			// 顶点标识
		default:
			return v
		}
	}
}

// Loop 闭合时在末尾追加首个顶点
func (l *LWPolyline) Loop() []core.Vertex {
	return loop(l.Vertices, l.Closed)
}

func (l *LWPolyline) BBox() core.BBox {
	return vertexBBox(l.Vertices)
}

func loop(vertices []core.Vertex, closed bool) []core.Vertex {
	out := make([]core.Vertex, len(vertices), len(vertices)+1)
	copy(out, vertices)
	if closed && len(vertices) > 0 {
		out = append(out, vertices[0])
	}
	return out
}

func vertexBBox(vertices []core.Vertex) core.BBox {
	box := core.EmptyBBox()
	for _, v := range vertices {
		box = box.Extend(v.Point)
	}
	return box
}
