package utils

import (
	"log/slog"
	"math"

	"github.com/zooyer/dxf"
	"github.com/zooyer/dxf/core"
	"github.com/zooyer/dxf/entities"
)

// 块嵌套层数上限，防止块循环引用
const maxBlockDepth = 16

// TransformBBox 执行矩阵变换：将局部坐标变换到插入点所在的世界坐标
func TransformBBox(local core.BBox, ins *entities.Insert) core.BBox {
	if local.IsEmpty() {
		return local
	}

	corners := []core.Point{
		{X: local.Min.X, Y: local.Min.Y, Z: local.Min.Z},
		{X: local.Max.X, Y: local.Min.Y, Z: local.Min.Z},
		{X: local.Max.X, Y: local.Max.Y, Z: local.Min.Z},
		{X: local.Min.X, Y: local.Max.Y, Z: local.Min.Z},
		{X: local.Min.X, Y: local.Min.Y, Z: local.Max.Z},
		{X: local.Max.X, Y: local.Min.Y, Z: local.Max.Z},
		{X: local.Max.X, Y: local.Max.Y, Z: local.Max.Z},
		{X: local.Min.X, Y: local.Max.Y, Z: local.Max.Z},
	}

	world := core.EmptyBBox()
	for _, p := range corners {
		world = world.Extend(TransformPoint(p, ins))
	}
	return world
}

// MergeBoxes 合并重叠的矩形
func MergeBoxes(boxes []core.BBox, gap float64) []core.BBox {
	if len(boxes) < 2 {
		return boxes
	}

	for {
		changed := false
		var merged []core.BBox
		visited := make([]bool, len(boxes))
		for i := 0; i < len(boxes); i++ {
			if visited[i] {
				continue
			}
			curr := boxes[i]
			visited[i] = true
			for j := i + 1; j < len(boxes); j++ {
				if !visited[j] && !IsSeparate(curr, boxes[j], gap) {
					curr.Min.X = math.Min(curr.Min.X, boxes[j].Min.X)
					curr.Min.Y = math.Min(curr.Min.Y, boxes[j].Min.Y)
					curr.Max.X = math.Max(curr.Max.X, boxes[j].Max.X)
					curr.Max.Y = math.Max(curr.Max.Y, boxes[j].Max.Y)
					visited[j], changed = true, true
				}
			}
			merged = append(merged, curr)
		}
		boxes = merged
		if !changed {
			break
		}
	}

	return boxes
}

// IsSeparate 判断两个 BBox 是否完全分离
func IsSeparate(a, b core.BBox, gap float64) bool {
	return a.Max.X+gap < b.Min.X || a.Min.X-gap > b.Max.X ||
		a.Max.Y+gap < b.Min.Y || a.Min.Y-gap > b.Max.Y
}

func InBox(box core.BBox, point core.Point) bool {
	return point.X >= box.Min.X && point.X <= box.Max.X && point.Y >= box.Min.Y && point.Y <= box.Max.Y
}

// GetEntityBBoxWCS 实体在世界坐标下的包围盒，INSERT 展开所引用的块。
// 引用的块不存在时记录警告并返回空盒；标注按样式的 DIMEXE 外扩。
func GetEntityBBoxWCS(d *dxf.Document, entity entities.Entity) core.BBox {
	return entityBBox(d, entity, nil, 0)
}

func entityBBox(d *dxf.Document, entity entities.Entity, parent *entities.Insert, depth int) core.BBox {
	insert, ok := entity.(*entities.Insert)
	if !ok {
		var box core.BBox
		if dim, ok := entity.(*entities.Dimension); ok {
			box = dim.BBox2(DimExtension(d, dim))
		} else {
			box = entity.BBox()
		}
		if parent != nil {
			box = TransformBBox(box, parent)
		}
		return box
	}

	if parent != nil {
		insert = CombineInserts(parent, insert)
	}

	block, ok := d.Block(insert.BlockName)
	if !ok {
		slog.Warn("insert references a missing block", "block", insert.BlockName, "handle", insert.Handle)
		return core.EmptyBBox()
	}
	if depth >= maxBlockDepth {
		slog.Warn("block nesting too deep", "block", insert.BlockName, "depth", depth)
		return core.BBox{Min: insert.InsertionPoint, Max: insert.InsertionPoint}
	}

	box := core.EmptyBBox()
	for _, sub := range block.Entities {
		box = box.Union(entityBBox(d, sub, insert, depth+1))
	}
	return box
}

// DocumentBBox 所有可见实体的范围；没有实体时退回头段 $EXTMIN/$EXTMAX
func DocumentBBox(d *dxf.Document) (core.BBox, bool) {
	box := core.EmptyBBox()
	for _, e := range d.Entities {
		if !Visible(d, e) {
			continue
		}
		box = box.Union(GetEntityBBoxWCS(d, e))
	}
	if !box.IsEmpty() {
		return box, true
	}
	return d.Header.Extents()
}
