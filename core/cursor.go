package core

import "log/slog"

// Cursor 是所有子解析器共享的"当前组"。
//
// Tag 始终是最近一次从 Scanner 读出的组。子解析器返回时 Tag 停在
// 第一个未被它处理的组上（通常是下一个组码 0），Next 失败后 Err 给出原因。
type Cursor struct {
	scanner *Scanner
	log     *slog.Logger
	Tag     Tag
	err     error
}

func NewCursor(scanner *Scanner, log *slog.Logger) *Cursor {
	if log == nil {
		log = slog.Default()
	}
	scanner.SetLogger(log)
	return &Cursor{scanner: scanner, log: log}
}

// Next 前进一组，出错后始终返回 false
func (c *Cursor) Next() bool {
	if c.err != nil {
		return false
	}
	tag, err := c.scanner.Next()
	if err != nil {
		c.err = err
		return false
	}
	c.Tag = tag
	return true
}

// NextIs 下一组的组码是否为 code
func (c *Cursor) NextIs(code int) bool {
	if c.err != nil {
		return false
	}
	next, ok := c.scanner.PeekCode()
	return ok && next == code
}

// Skip 一直前进到 stop 返回 true 的组（不消耗该组），返回是否找到
func (c *Cursor) Skip(stop func(Tag) bool) bool {
	for c.Next() {
		if stop(c.Tag) {
			return true
		}
	}
	return false
}

// EOF 当前组是否为 (0, EOF)
func (c *Cursor) EOF() bool {
	return c.Tag.Is(0, "EOF")
}

func (c *Cursor) Err() error {
	return c.err
}

func (c *Cursor) Logger() *slog.Logger {
	return c.log
}

// ReadPoint 以当前组为 X 读取一个点。
// Y、Z 分别位于组码 +10、+20，只有紧随其后时才会被消耗，缺少 Z 视为二维点。
func (c *Cursor) ReadPoint() Point {
	code := c.Tag.Code
	p := Point{X: c.Tag.AsFloat()}
	if c.NextIs(code+10) && c.Next() {
		p.Y = c.Tag.AsFloat()
		if c.NextIs(code+20) && c.Next() {
			p.Z = c.Tag.AsFloat()
		}
	}
	return p
}
