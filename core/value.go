package core

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Kind 是组码值的基本类型
type Kind int

const (
	KindUnknown Kind = iota
	KindString
	KindFloat
	KindInt
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindFloat:
		return "float"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	}
	return "unknown"
}

type codeRange struct {
	lo, hi int
	kind   Kind
}

// DXF 参考手册中的组码取值范围表
var codeRanges = []codeRange{
	{math.MinInt, 9, KindString},
	{10, 59, KindFloat},
	{60, 99, KindInt},
	{100, 109, KindString},
	{110, 149, KindFloat},
	{160, 179, KindInt},
	{210, 239, KindFloat},
	{270, 289, KindInt},
	{290, 299, KindBool},
	{300, 369, KindString},
	{370, 389, KindInt},
	{390, 399, KindString},
	{400, 409, KindInt},
	{410, 419, KindString},
	{420, 429, KindInt},
	{430, 439, KindString},
	{440, 459, KindInt},
	{460, 469, KindFloat},
	{470, 481, KindString},
	{999, 999, KindString},
	{1000, 1009, KindString},
	{1010, 1059, KindFloat},
	{1060, 1071, KindInt},
}

// KindOf 查表返回组码对应的值类型，未定义的组码返回 KindUnknown
func KindOf(code int) Kind {
	for _, r := range codeRanges {
		if code >= r.lo && code <= r.hi {
			return r.kind
		}
	}
	return KindUnknown
}

// ErrMalformedNumber 数值类组码的值无法解析，调用方可记录后继续
var ErrMalformedNumber = errors.New("malformed numeric group value")

// ParseGroupValue 按组码范围把原始字符串转换为带类型的值。
//
// 未定义的组码原样返回字符串。布尔值只接受 "0"/"1"，否则返回 *TypeMismatchError。
// 数值无法解析时返回该类型的零值和 ErrMalformedNumber。
func ParseGroupValue(code int, raw string) (any, error) {
	switch KindOf(code) {
	case KindFloat:
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return 0.0, ErrMalformedNumber
		}
		return f, nil
	case KindInt:
		return parseInt(raw)
	case KindBool:
		switch strings.TrimSpace(raw) {
		case "0":
			return false, nil
		case "1":
			return true, nil
		}
		return nil, &TypeMismatchError{Code: code, Value: raw}
	}
	return raw, nil
}

func parseInt(raw string) (any, error) {
	s := strings.TrimSpace(raw)
	if i, err := strconv.Atoi(s); err == nil {
		return i, nil
	}
	// 部分导出程序会把整数写成 "1.0"
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f), nil
	}
	return 0, ErrMalformedNumber
}
