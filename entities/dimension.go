package entities

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/zooyer/dxf/core"
)

var (
	reFormat = regexp.MustCompile(`\\[A-Z].*?;`)
	reNumber = regexp.MustCompile(`[0-9.]+`)
)

type Dimension struct {
	BaseEntity
	Block             string          // 组码 2 (匿名块，保存标注的几何图形)
	StyleName         string          // 组码 3 (标注样式名称，用于关联 TABLES)
	DimensionType     int             // 组码 70 原值
	DimType           int             // 组码 70 低 3 位 (关键：区分标注类型)
	Attachment        AttachmentPoint // 组码 71
	ActualMeasurement float64         // 组码 42
	Text              string          // 组码 1
	Angle             float64         // 组码 50，角度制
	DefPoint          core.Point      // 组码 10 (标注线起点)
	TextMidPoint      core.Point      // 组码 11 (中间的点)
	InsertionPoint    core.Point      // 组码 12
	MeasureStart      core.Point      // 组码 13 (被测量的起点)
	MeasureEnd        core.Point      // 组码 14 (被测量的终点)
	RadiusPoint       core.Point      // 组码 15 (直径/半径标注点)
	ArcPoint          core.Point      // 组码 16
}

// 标注类型（组码 70 低 3 位）
const (
	DimLinear = iota // 转角、水平、垂直
	DimAligned
	DimAngular
	DimDiameter
	DimRadius
	DimAngular3Point
	DimOrdinate
)

func init() {
	Register(TypeDimension, func() Entity {
		return &Dimension{BaseEntity: newBase(TypeDimension)}
	})
}

func (d *Dimension) Parse(c *core.Cursor) {
	for c.Next() && c.Tag.Code != 0 {
		tag := c.Tag
		switch tag.Code {
		case 1:
			d.Text = tag.AsString()
		case 2:
			d.Block = tag.AsString()
		case 3:
			// 核心：读取标注样式名称
			d.StyleName = strings.ToUpper(tag.AsString())
		case 10:
			d.DefPoint = c.ReadPoint()
		case 11:
			d.TextMidPoint = c.ReadPoint()
		case 12:
			d.InsertionPoint = c.ReadPoint()
		case 13:
			d.MeasureStart = c.ReadPoint()
		case 14:
			d.MeasureEnd = c.ReadPoint()
		case 15:
			d.RadiusPoint = c.ReadPoint()
		case 16:
			d.ArcPoint = c.ReadPoint()
		case 42:
			d.ActualMeasurement = tag.AsFloat()
		case 50:
			d.Angle = tag.AsFloat()
		case 70:
			// 组码 70 包含了很多信息，我们只需要低 3 位来判定类型
			d.DimensionType = tag.AsInt()
			d.DimType = d.DimensionType & 0x07
		case 71:
			d.Attachment = AttachmentPoint(tag.AsInt())
		default:
			d.parseCommon(c)
		}
	}
}

// BBox 覆盖：为了通用库的严谨性，标注的 BBox 应该包含所有定义点
func (d *Dimension) BBox() core.BBox {
	return d.BBox2(0)
}

// GetExtensionPoints 计算标注线上的两个转角点
// 返回：对应 P13 的转角点, 对应 P14 的转角点
func (d *Dimension) GetExtensionPoints() (p13Corner, p14Corner core.Point) {
	rad := radians(d.Angle)
	v := core.Point{X: math.Cos(rad), Y: math.Sin(rad)}

	project := func(p core.Point) core.Point {
		dot := (p.X-d.DefPoint.X)*v.X + (p.Y-d.DefPoint.Y)*v.Y
		return core.Point{X: d.DefPoint.X + v.X*dot, Y: d.DefPoint.Y + v.Y*dot}
	}

	return project(d.MeasureStart), project(d.MeasureEnd)
}

// BBox2 实现"完美矩形"包围盒
// exe 代表标注线超出延伸线的长度 (DIMEXE)
func (d *Dimension) BBox2(exe float64) core.BBox {
	c13, c14 := d.GetExtensionPoints()

	// 延伸线方向垂直于标注线
	upRad := radians(d.Angle + 90.0)
	u := core.Point{X: math.Cos(upRad), Y: math.Sin(upRad)}

	// 通过向量 (c13 - MeasureStart) 与 u 的点积判定向外的方向
	dot := (c13.X-d.MeasureStart.X)*u.X + (c13.Y-d.MeasureStart.Y)*u.Y
	direction := 1.0
	if dot < 0 {
		direction = -1.0
	}

	push := core.Point{X: u.X * exe * direction, Y: u.Y * exe * direction}

	return core.EmptyBBox().Extend(
		d.MeasureStart,
		d.MeasureEnd,
		c13.Add(push),
		c14.Add(push),
		d.TextMidPoint, // 文字位置
	)
}

// GetCleanVal 正则提取数值
func (d *Dimension) GetCleanVal() float64 {
	val := d.ActualMeasurement
	if val <= 0 && d.Text != "" {
		cleanText := reFormat.ReplaceAllString(d.Text, "")
		if match := reNumber.FindString(cleanText); match != "" {
			parsed, _ := strconv.ParseFloat(match, 64)
			val = parsed
		}
	}
	return val
}
