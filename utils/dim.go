package utils

import (
	"math"
	"strings"

	"github.com/zooyer/dxf"
	"github.com/zooyer/dxf/entities"
)

func GetDimValue(doc *dxf.Document, dim *entities.Dimension) float64 {
	// 1. 如果有手动文字覆盖，直接按文字提取数字
	if dim.Text != "" && !strings.Contains(dim.Text, "<>") {
		return dim.GetCleanVal()
	}

	// 2. 查找标注样式定义的精度
	precision := 0 // 默认取整
	if style, ok := doc.DimStyle(dim.StyleName); ok {
		precision = style.Precision
	}

	// 3. 根据精度进行四舍五入
	p := math.Pow(10, float64(precision))

	return math.Round(dim.ActualMeasurement*p) / p
}

// DimExtension 标注线超出延伸线的实际长度 (DIMEXE × DIMSCALE)
func DimExtension(doc *dxf.Document, dim *entities.Dimension) float64 {
	if style, ok := doc.DimStyle(dim.StyleName); ok {
		return style.ExLimit * style.Scale
	}
	return 0
}
