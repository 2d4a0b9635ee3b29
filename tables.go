package dxf

import (
	"strings"

	"github.com/zooyer/dxf/core"
)

type Tables struct {
	Layers    map[string]*Layer
	LineTypes map[string]*LineType
	DimStyles map[string]*DimStyle
}

type Layer struct {
	Name       string
	ColorIndex int        // 组码 62 绝对值
	Color      core.Color // 解析后的 RGB
	Hidden     bool       // 组码 62 <= 0
	Frozen     bool       // 组码 70 bit 1/2
	LineType   string     // 组码 6

	trueColor bool
}

type LineType struct {
	Name          string
	Description   string
	Elements      int       // 组码 73 声明的图案元素数
	Pattern       []float64 // 正数为实线段，负数为空隙；仅在 73 > 0 时存在
	PatternLength float64
}

type DimStyle struct {
	Name      string
	Precision int     // 对应组码 271 DIMDEC，显示的小数位数
	ExLimit   float64 // 对应组码 44 DIMEXE，标注线超出延伸线的长度
	Scale     float64 // 对应组码 40 DIMSCALE，全局比例，影响所有标注特征
}

func (p *parser) parseTables() {
	c := p.c
	if p.doc.Tables == nil {
		p.doc.Tables = &Tables{
			Layers:    make(map[string]*Layer),
			LineTypes: make(map[string]*LineType),
			DimStyles: make(map[string]*DimStyle),
		}
	}
	if !c.Next() {
		return
	}

	for c.Err() == nil && !isSectionEnd(c.Tag) {
		if c.Tag.Is(0, "TABLE") {
			if !c.Next() {
				return
			}
			if c.Tag.Code != 2 {
				continue
			}
			switch name := strings.ToUpper(c.Tag.AsString()); name {
			case "LAYER":
				p.parseLayers()
			case "LTYPE":
				p.parseLineTypes()
			case "DIMSTYLE":
				p.parseDimStyles()
			default:
				p.log.Debug("skipping table", "table", name)
				c.Skip(isBoundary)
			}
			// 表解析停在第一个不属于自己的组码 0 上（通常是 ENDTAB）
			continue
		}
		c.Next()
	}
}

// parseRecords 读取一张表中类型为 record 的所有记录。
// 每个新的 (0, record) 先提交上一条；遇到其他组码 0 时提交并返回，游标不前进。
func (p *parser) parseRecords(record string, start func(), group func(core.Tag), flush func()) {
	c := p.c
	open := false
	for c.Next() {
		tag := c.Tag
		if tag.Code == 0 {
			if open {
				flush()
				open = false
			}
			if tag.Is(0, record) {
				start()
				open = true
				continue
			}
			return
		}
		if open {
			group(tag)
		}
	}
	if open {
		flush()
	}
}

func (p *parser) parseLayers() {
	var layer *Layer
	p.parseRecords("LAYER",
		func() {
			layer = &Layer{ColorIndex: 7, Color: core.ACI(7)}
		},
		func(tag core.Tag) {
			switch tag.Code {
			case 2:
				layer.Name = tag.AsString()
			case 6:
				layer.LineType = tag.AsString()
			case 62:
				index := tag.AsInt()
				layer.Hidden = index <= 0
				if index < 0 {
					index = -index
				}
				layer.ColorIndex = index
				if !layer.trueColor {
					layer.Color = core.ACI(index)
				}
			case 70:
				flags := tag.AsInt()
				layer.Frozen = flags&1 != 0 || flags&2 != 0
			case 420:
				layer.Color = core.Color(tag.AsInt() & 0xFFFFFF)
				layer.trueColor = true
			}
		},
		func() {
			if layer.Name != "" {
				p.doc.Tables.Layers[layer.Name] = layer
			}
		},
	)
}

func (p *parser) parseLineTypes() {
	var ltype *LineType
	p.parseRecords("LTYPE",
		func() {
			ltype = &LineType{}
		},
		func(tag core.Tag) {
			switch tag.Code {
			case 2:
				ltype.Name = tag.AsString()
			case 3:
				ltype.Description = tag.AsString()
			case 40:
				ltype.PatternLength = tag.AsFloat()
			case 49:
				if ltype.Pattern != nil {
					ltype.Pattern = append(ltype.Pattern, tag.AsFloat())
				}
			case 73:
				ltype.Elements = tag.AsInt()
				if ltype.Elements > 0 {
					ltype.Pattern = make([]float64, 0, ltype.Elements)
				}
			}
		},
		func() {
			if ltype.Elements > 0 && ltype.Elements != len(ltype.Pattern) {
				p.log.Warn("lengths do not match on LTYPE pattern",
					"ltype", ltype.Name, "declared", ltype.Elements, "parsed", len(ltype.Pattern))
			}
			if ltype.Name != "" {
				p.doc.Tables.LineTypes[ltype.Name] = ltype
			}
		},
	)
}

func (p *parser) parseDimStyles() {
	var style *DimStyle
	p.parseRecords("DIMSTYLE",
		func() {
			style = &DimStyle{Scale: 1.0} // 默认为 1.0，防止乘法归零
		},
		func(tag core.Tag) {
			switch tag.Code {
			case 2: // 样式名称
				style.Name = strings.ToUpper(tag.AsString())
			case 271: // 精度
				style.Precision = tag.AsInt()
			case 44: // 标注线超出延伸线长度 (DIMEXE)
				style.ExLimit = tag.AsFloat()
			case 40: // 全局标注比例 (DIMSCALE)
				style.Scale = tag.AsFloat()
			}
		},
		func() {
			if style.Name != "" {
				p.doc.Tables.DimStyles[style.Name] = style
			}
		},
	)
}
