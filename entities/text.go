package entities

import (
	"strings"

	"github.com/zooyer/dxf/core"
)

// Text 单行文字
type Text struct {
	BaseEntity
	StartPoint core.Point
	EndPoint   *core.Point // 组码 11 第二对齐点，对齐方式非默认时才有
	Height     float64
	XScale     float64
	Rotation   float64 // 角度制
	Text       string
	Style      string
	HAlign     int // 组码 72
	VAlign     int // 组码 73
}

// MText 多行文字，Text 保留原始格式控制码
type MText struct {
	BaseEntity
	Position         core.Point
	Direction        *core.Point // 组码 11 X 轴方向向量
	Height           float64     // 名义字高
	Width            float64     // 参考矩形宽度（换行宽度）
	Rotation         float64     // 角度制
	Text             string
	Style            string
	Attachment       AttachmentPoint
	DrawingDirection int
}

// AttachmentPoint 1-9，按 上/中/下 × 左/中/右 排列
type AttachmentPoint int

const (
	TopLeft AttachmentPoint = iota + 1
	TopCenter
	TopRight
	MiddleLeft
	MiddleCenter
	MiddleRight
	BottomLeft
	BottomCenter
	BottomRight
)

// Valid 是否为 1-9
func (a AttachmentPoint) Valid() bool {
	return a >= TopLeft && a <= BottomRight
}

// Vertical 返回 top/middle/bottom
func (a AttachmentPoint) Vertical() string {
	if !a.Valid() {
		return ""
	}
	return [...]string{"top", "middle", "bottom"}[(a-1)/3]
}

// Horizontal 返回 left/center/right
func (a AttachmentPoint) Horizontal() string {
	if !a.Valid() {
		return ""
	}
	return [...]string{"left", "center", "right"}[(a-1)%3]
}

func init() {
	Register(TypeText, func() Entity {
		return &Text{BaseEntity: newBase(TypeText), XScale: 1}
	})
	Register(TypeMText, func() Entity {
		return &MText{BaseEntity: newBase(TypeMText)}
	})
}

func (t *Text) Parse(c *core.Cursor) {
	for c.Next() && c.Tag.Code != 0 {
		switch c.Tag.Code {
		case 1:
			t.Text = c.Tag.Raw()
		case 7:
			t.Style = c.Tag.AsString()
		case 10:
			t.StartPoint = c.ReadPoint()
		case 11:
			p := c.ReadPoint()
			t.EndPoint = &p
		case 40:
			t.Height = c.Tag.AsFloat()
		case 41:
			t.XScale = c.Tag.AsFloat()
		case 50:
			t.Rotation = c.Tag.AsFloat()
		case 72:
			t.HAlign = c.Tag.AsInt()
		case 73:
			t.VAlign = c.Tag.AsInt()
		default:
			t.parseCommon(c)
		}
	}
}

func (t *Text) BBox() core.BBox {
	// 不做字体排版，文字以插入点作为包围盒
	return core.BBox{Min: t.StartPoint, Max: t.StartPoint}
}

func (m *MText) Parse(c *core.Cursor) {
	var text strings.Builder
	for c.Next() && c.Tag.Code != 0 {
		switch c.Tag.Code {
		case 1, 3:
			text.WriteString(c.Tag.Raw())
		case 7:
			m.Style = c.Tag.AsString()
		case 10:
			m.Position = c.ReadPoint()
		case 11:
			p := c.ReadPoint()
			m.Direction = &p
		case 40:
			m.Height = c.Tag.AsFloat()
		case 41:
			m.Width = c.Tag.AsFloat()
		case 50:
			m.Rotation = c.Tag.AsFloat()
		case 71:
			m.Attachment = AttachmentPoint(c.Tag.AsInt())
		case 72:
			m.DrawingDirection = c.Tag.AsInt()
		default:
			m.parseCommon(c)
		}
	}
	m.Text = text.String()
}

func (m *MText) BBox() core.BBox {
	return core.BBox{Min: m.Position, Max: m.Position}
}
