package entities

import (
	"github.com/zooyer/dxf/core"
)

// Type 实体类型，即组码 0 的值
type Type string

const (
	TypeLine       Type = "LINE"
	TypeLWPolyline Type = "LWPOLYLINE"
	TypePolyline   Type = "POLYLINE"
	TypeCircle     Type = "CIRCLE"
	TypeArc        Type = "ARC"
	TypeText       Type = "TEXT"
	TypeMText      Type = "MTEXT"
	TypeDimension  Type = "DIMENSION"
	TypeSolid      Type = "SOLID"
	TypePoint      Type = "POINT"
	TypeInsert     Type = "INSERT"
	TypeSpline     Type = "SPLINE"
	TypeEllipse    Type = "ELLIPSE"
)

// Entity 是一切几何实体的接口
type Entity interface {
	// Parse 从实体类型组开始读取，返回时游标停在下一个组码 0 上
	Parse(c *core.Cursor)
	Type() Type
	Layer() string
	Common() *BaseEntity
	BBox() core.BBox
}

// BaseEntity 存放所有实体通用的属性（如 Layer, Color, Handle）
type BaseEntity struct {
	TypeName      Type
	Handle        string
	OwnerHandle   string
	LayerName     string
	LineTypeName  string
	LineTypeScale float64
	LineWeight    int
	Thickness     float64
	Hidden        bool
	PaperSpace    bool
	// ColorIndex 为组码 62 原值，未设置时为 ByLayer(256)
	ColorIndex int
	// Color 为解析后的颜色：组码 420 真彩色优先，否则按 62 查表；ByLayer/ByBlock 时为 nil
	Color     *core.Color
	Extrusion *core.Point

	trueColor bool
}

func newBase(t Type) BaseEntity {
	return BaseEntity{
		TypeName:      t,
		ColorIndex:    core.ColorByLayer,
		LineTypeScale: 1,
	}
}

func (b *BaseEntity) Type() Type { return b.TypeName }

func (b *BaseEntity) Layer() string { return b.LayerName }

func (b *BaseEntity) LineType() string { return b.LineTypeName }

func (b *BaseEntity) Common() *BaseEntity { return b }

// parseCommon 处理所有实体共有的组码，其余组码记录后忽略
func (b *BaseEntity) parseCommon(c *core.Cursor) {
	tag := c.Tag
	switch tag.Code {
	case 5:
		b.Handle = tag.AsString()
	case 6:
		b.LineTypeName = tag.AsString()
	case 8:
		b.LayerName = tag.AsString()
	case 39:
		b.Thickness = tag.AsFloat()
	case 48:
		b.LineTypeScale = tag.AsFloat()
	case 60:
		b.Hidden = tag.AsInt() != 0
	case 62:
		b.ColorIndex = tag.AsInt()
		if b.trueColor {
			break
		}
		b.Color = nil
		if i := abs(b.ColorIndex); i != core.ColorByBlock && i != core.ColorByLayer && core.IsIndex(i) {
			color := core.ACI(i)
			b.Color = &color
		}
	case 67:
		b.PaperSpace = tag.AsInt() != 0
	case 100:
		// 子类标记
	case 210:
		p := c.ReadPoint()
		b.Extrusion = &p
	case 330:
		b.OwnerHandle = tag.AsString()
	case 370:
		b.LineWeight = tag.AsInt()
	case 420:
		color := core.Color(tag.AsInt() & 0xFFFFFF)
		b.Color, b.trueColor = &color, true
	default:
		c.Logger().Debug("unhandled group", "entity", b.TypeName, "code", tag.Code, "value", tag.Value)
	}
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}

// EntityFactory 定义了如何从标签流中创建一个实体
type EntityFactory func() Entity

var registry = map[Type]EntityFactory{}

// Register 允许以后动态扩展新的实体类型
func Register(typeName Type, factory EntityFactory) {
	registry[typeName] = factory
}

// CreateEntity 根据实体名称生产对应的结构体，不支持的类型返回 nil
func CreateEntity(typeName string) Entity {
	if factory, ok := registry[Type(typeName)]; ok {
		return factory()
	}
	return nil
}

// Supported 是否已注册该实体类型
func Supported(typeName string) bool {
	_, ok := registry[Type(typeName)]
	return ok
}
