package entities

import (
	"github.com/zooyer/dxf/core"
)

// Polyline 旧式多段线：POLYLINE 头记录后跟若干 VERTEX，以 SEQEND 结束
type Polyline struct {
	BaseEntity
	Vertices  []core.Vertex
	Elevation float64 // 组码 30 (10/20 为占位点)
	Flags     int     // 组码 70 原值

	Closed                 bool
	IncludesCurveFit       bool
	IncludesSplineFit      bool
	Is3DPolyline           bool
	Is3DPolygonMesh        bool
	Is3DPolygonMeshClosedN bool
	IsPolyfaceMesh         bool
	Plinegen               bool
}

func init() {
	Register(TypePolyline, func() Entity { return &Polyline{BaseEntity: newBase(TypePolyline)} })
}

func (p *Polyline) Parse(c *core.Cursor) {
	for c.Next() && c.Tag.Code != 0 {
		switch c.Tag.Code {
		case 10:
			p.Elevation = c.ReadPoint().Z
		case 40, 41, 66, 71, 72, 73, 74, 75:
			// 默认宽度、网格参数
		case 70:
			p.setFlags(c.Tag.AsInt())
		default:
			p.parseCommon(c)
		}
	}

	for c.Err() == nil && c.Tag.Is(0, "VERTEX") {
		p.Vertices = append(p.Vertices, parseVertex(c))
	}

	if c.Tag.Is(0, "SEQEND") {
		// SEQEND 只带公共属性
		for c.Next() && c.Tag.Code != 0 {
		}
	}
}

func (p *Polyline) setFlags(flags int) {
	p.Flags = flags
	p.Closed = flags&1 != 0
	p.IncludesCurveFit = flags&2 != 0
	p.IncludesSplineFit = flags&4 != 0
	p.Is3DPolyline = flags&8 != 0
	p.Is3DPolygonMesh = flags&16 != 0
	p.Is3DPolygonMeshClosedN = flags&32 != 0
	p.IsPolyfaceMesh = flags&64 != 0
	p.Plinegen = flags&128 != 0
}

// parseVertex 读取一条 VERTEX 记录
func parseVertex(c *core.Cursor) core.Vertex {
	var v core.Vertex
	for c.Next() && c.Tag.Code != 0 {
		switch c.Tag.Code {
		case 10:
			v.Point = c.ReadPoint()
		case 40:
			v.StartWidth = c.Tag.AsFloat()
		case 41:
			v.EndWidth = c.Tag.AsFloat()
		case 42:
			v.Bulge = c.Tag.AsFloat()
		case 70:
			v.Flags = c.Tag.AsInt()
		}
	}
	return v
}

// Loop 闭合时在末尾追加首个顶点
func (p *Polyline) Loop() []core.Vertex {
	return loop(p.Vertices, p.Closed)
}

func (p *Polyline) BBox() core.BBox {
	return vertexBBox(p.Vertices)
}
