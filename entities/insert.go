package entities

import "github.com/zooyer/dxf/core"

type Insert struct {
	BaseEntity
	BlockName      string
	InsertionPoint core.Point
	Scale          core.Point
	Rotation       float64 // 角度制
	ColumnCount    int
	RowCount       int
	ColumnSpacing  float64
	RowSpacing     float64
	// HasAttributes 组码 66，其后跟随的 ATTRIB 记录会被跳过
	HasAttributes bool
}

func init() {
	Register(TypeInsert, func() Entity {
		return &Insert{
			BaseEntity:  newBase(TypeInsert),
			Scale:       core.Point{X: 1, Y: 1, Z: 1}, // 默认缩放为 1
			ColumnCount: 1,
			RowCount:    1,
		}
	})
}

func (i *Insert) Parse(c *core.Cursor) {
	for c.Next() && c.Tag.Code != 0 {
		tag := c.Tag
		switch tag.Code {
		case 2:
			i.BlockName = tag.AsString()
		case 10:
			i.InsertionPoint = c.ReadPoint()
		case 41:
			i.Scale.X = tag.AsFloat()
		case 42:
			i.Scale.Y = tag.AsFloat()
		case 43:
			i.Scale.Z = tag.AsFloat()
		case 44:
			i.ColumnSpacing = tag.AsFloat()
		case 45:
			i.RowSpacing = tag.AsFloat()
		case 50:
			i.Rotation = tag.AsFloat()
		case 66:
			i.HasAttributes = tag.AsInt() == 1
		case 70:
			i.ColumnCount = tag.AsInt()
		case 71:
			i.RowCount = tag.AsInt()
		default:
			i.parseCommon(c)
		}
	}

	if !i.HasAttributes {
		return
	}

	// 属性不在解析范围内：跳过 ATTRIB 直到 SEQEND
	skipped := 0
	for c.Tag.Is(0, "ATTRIB") {
		skipped++
		if !c.Skip(func(t core.Tag) bool { return t.Code == 0 }) {
			return
		}
	}
	if c.Tag.Is(0, "SEQEND") {
		c.Skip(func(t core.Tag) bool { return t.Code == 0 })
	}
	if skipped > 0 {
		c.Logger().Info("skipped insert attributes", "block", i.BlockName, "count", skipped)
	}
}

func (i *Insert) BBox() core.BBox {
	// Insert 的包围盒需要结合 Block 定义计算，见 utils.GetEntityBBoxWCS
	// 这里先返回插入点
	return core.BBox{Min: i.InsertionPoint, Max: i.InsertionPoint}
}
