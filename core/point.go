package core

import "math"

// Point 代表三维空间中的一个点
type Point struct {
	X, Y, Z float64
}

// Add 向量加
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

// Sub 向量减
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Length 向量长度
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// Vertex 多段线顶点，Bulge 非 0 表示到下一个顶点是圆弧段
type Vertex struct {
	Point
	Bulge      float64
	StartWidth float64
	EndWidth   float64
	Flags      int
}

// BBox 代表包围盒
type BBox struct {
	Min, Max Point
}

// EmptyBBox 返回可被 Extend 的空包围盒
func EmptyBBox() BBox {
	return BBox{
		Min: Point{X: math.MaxFloat64, Y: math.MaxFloat64, Z: math.MaxFloat64},
		Max: Point{X: -math.MaxFloat64, Y: -math.MaxFloat64, Z: -math.MaxFloat64},
	}
}

// IsEmpty 是否未包含任何点
func (b BBox) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y
}

// Extend 把点并入包围盒
func (b BBox) Extend(points ...Point) BBox {
	for _, p := range points {
		b.Min.X = math.Min(b.Min.X, p.X)
		b.Min.Y = math.Min(b.Min.Y, p.Y)
		b.Min.Z = math.Min(b.Min.Z, p.Z)
		b.Max.X = math.Max(b.Max.X, p.X)
		b.Max.Y = math.Max(b.Max.Y, p.Y)
		b.Max.Z = math.Max(b.Max.Z, p.Z)
	}
	return b
}

// Union 合并两个包围盒，空盒不参与
func (b BBox) Union(o BBox) BBox {
	if o.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return o
	}
	return b.Extend(o.Min, o.Max)
}

// Width X 方向尺寸
func (b BBox) Width() float64 { return b.Max.X - b.Min.X }

// Height Y 方向尺寸
func (b BBox) Height() float64 { return b.Max.Y - b.Min.Y }
