package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Tag 代表 DXF 中的一组标签对 (group code + value)。
// Value 已按组码范围转换为 string/float64/int/bool 之一。
type Tag struct {
	Code  int
	Value any
}

// Is 判断组码与字符串值是否同时匹配（值比较忽略大小写与首尾空格）
func (t Tag) Is(code int, value string) bool {
	if t.Code != code {
		return false
	}
	s, ok := t.Value.(string)
	return ok && strings.EqualFold(strings.TrimSpace(s), value)
}

// AsFloat 将值转换为 float64
func (t Tag) AsFloat() float64 {
	switch v := t.Value.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case bool:
		if v {
			return 1
		}
		return 0
	case string:
		f, _ := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f
	}
	return 0
}

// AsInt 将值转换为 int
func (t Tag) AsInt() int {
	switch v := t.Value.(type) {
	case int:
		return v
	case float64:
		return int(v)
	case bool:
		if v {
			return 1
		}
		return 0
	case string:
		i, _ := strconv.Atoi(strings.TrimSpace(v))
		return i
	}
	return 0
}

// AsBool 将值转换为 bool
func (t Tag) AsBool() bool {
	switch v := t.Value.(type) {
	case bool:
		return v
	case int:
		return v != 0
	case float64:
		return v != 0
	case string:
		return strings.TrimSpace(v) == "1"
	}
	return false
}

// AsString 清洗字符串（去除多余空格）
func (t Tag) AsString() string {
	switch v := t.Value.(type) {
	case string:
		return strings.TrimSpace(v)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// Raw 返回未清洗的字符串值，MTEXT 拼接时保留空格
func (t Tag) Raw() string {
	if s, ok := t.Value.(string); ok {
		return s
	}
	return t.AsString()
}

func (t Tag) String() string {
	return fmt.Sprintf("%d:%v", t.Code, t.Value)
}
