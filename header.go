package dxf

import (
	"strings"

	"github.com/zooyer/dxf/core"
)

// Header 头段变量，值为 string/float64/int/bool/core.Point
type Header map[string]any

func (h Header) String(name string) (string, bool) {
	s, ok := h[name].(string)
	return s, ok
}

func (h Header) Float(name string) (float64, bool) {
	switch v := h[name].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}

func (h Header) Int(name string) (int, bool) {
	i, ok := h[name].(int)
	return i, ok
}

func (h Header) Point(name string) (core.Point, bool) {
	p, ok := h[name].(core.Point)
	return p, ok
}

// Extents 由 $EXTMIN/$EXTMAX 给出图形范围，可作为视口取景的后备
func (h Header) Extents() (core.BBox, bool) {
	min, ok1 := h.Point("$EXTMIN")
	max, ok2 := h.Point("$EXTMAX")
	if !ok1 || !ok2 {
		return core.BBox{}, false
	}
	box := core.BBox{Min: min, Max: max}
	if box.IsEmpty() {
		return core.BBox{}, false
	}
	return box, true
}

// parseHeader 变量名在遇到下一个 (9, ...) 或 ENDSEC 时才写入
func (p *parser) parseHeader() {
	var (
		c     = p.c
		name  string
		value any
	)

	flush := func() {
		if name != "" && value != nil {
			p.doc.Header[name] = value
		}
		name, value = "", nil
	}

	for c.Next() {
		tag := c.Tag
		if isSectionEnd(tag) {
			break
		}
		switch tag.Code {
		case 9:
			flush()
			name = tag.AsString()
		case 10:
			value = c.ReadPoint()
		default:
			if s, ok := tag.Value.(string); ok {
				value = strings.TrimSpace(s)
			} else {
				value = tag.Value
			}
		}
	}
	flush()
}
