package core

import (
	"errors"
	"fmt"
)

var (
	// ErrEndOfInput EOF 组已读取后继续调用 Next
	ErrEndOfInput = errors.New("cannot read past EOF group")
	// ErrUnexpectedEOF 行已耗尽但未遇到 EOF 组
	ErrUnexpectedEOF = errors.New("unexpected end of input: EOF group not read before end of file")
)

// ScanError 记录扫描失败时的位置
type ScanError struct {
	Line int // 1 起始的行号
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("dxf: line %d: %v", e.Line, e.Err)
}

func (e *ScanError) Unwrap() error { return e.Err }

// TypeMismatchError 布尔组码的值不是 "0" 或 "1"
type TypeMismatchError struct {
	Code  int
	Value string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("group code %d: string %q cannot be cast to boolean", e.Code, e.Value)
}

// CodeError 组码行不是整数
type CodeError struct {
	Text string
}

func (e *CodeError) Error() string {
	return fmt.Sprintf("invalid group code %q", e.Text)
}
