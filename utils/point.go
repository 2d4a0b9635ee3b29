package utils

import (
	"math"

	"github.com/zooyer/golib/xmath"

	"github.com/zooyer/dxf/core"
	"github.com/zooyer/dxf/entities"
)

// TransformPoint 将局部坐标点经过 Insert 变换转换到父级/世界坐标
func TransformPoint(p core.Point, ins *entities.Insert) core.Point {
	rad := ins.Rotation * math.Pi / 180.0
	cos, sin := math.Cos(rad), math.Sin(rad)

	// 1. 缩放
	tx := p.X * ins.Scale.X
	ty := p.Y * ins.Scale.Y
	tz := p.Z * ins.Scale.Z

	// 2. 旋转
	rx := tx*cos - ty*sin
	ry := tx*sin + ty*cos

	// 3. 平移
	return core.Point{
		X: rx + ins.InsertionPoint.X,
		Y: ry + ins.InsertionPoint.Y,
		Z: tz + ins.InsertionPoint.Z,
	}
}

// SamePoint 在容差内比较两点
func SamePoint(a, b core.Point, epsilon float64) bool {
	return xmath.Equal(a.X, b.X, epsilon) && xmath.Equal(a.Y, b.Y, epsilon) && xmath.Equal(a.Z, b.Z, epsilon)
}

// IsClosedLoop 首尾顶点重合
func IsClosedLoop(vertices []core.Vertex, epsilon float64) bool {
	if len(vertices) < 2 {
		return false
	}
	return SamePoint(vertices[0].Point, vertices[len(vertices)-1].Point, epsilon)
}
