package utils

import (
	"github.com/zooyer/dxf"
	"github.com/zooyer/dxf/core"
	"github.com/zooyer/dxf/entities"
)

// ResolveColor 绘制颜色：实体颜色 > 图层颜色 > 黑色。
// 白纸黑字：白色按黑色处理。
func ResolveColor(d *dxf.Document, e entities.Entity) core.Color {
	color := core.Black
	if c := e.Common().Color; c != nil {
		color = *c
	} else if layer, ok := d.Layer(e.Layer()); ok {
		color = layer.Color
	}

	if color == core.White {
		return core.Black
	}
	return color
}

// Visible 实体及其图层均未隐藏
func Visible(d *dxf.Document, e entities.Entity) bool {
	if e.Common().Hidden {
		return false
	}
	if layer, ok := d.Layer(e.Layer()); ok {
		return !layer.Hidden && !layer.Frozen
	}
	return true
}
