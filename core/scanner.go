package core

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
)

// Scanner 按行读取组码/值对，每次 Next 消耗两行。
// 输入在解析前已全部切分为行，读指针只进不退。
type Scanner struct {
	lines []string
	pos   int
	eof   bool
	log   *slog.Logger
}

func NewScanner(lines []string) *Scanner {
	return &Scanner{
		lines: lines,
		log:   slog.Default(),
	}
}

// SetLogger 设置告警输出，nil 时保持默认
func (s *Scanner) SetLogger(l *slog.Logger) {
	if l != nil {
		s.log = l
	}
}

// HasNext 剩余至少两行且尚未读到 EOF 组
func (s *Scanner) HasNext() bool {
	return !s.eof && s.pos <= len(s.lines)-2
}

// IsEOF 是否已读到 (0, EOF)
func (s *Scanner) IsEOF() bool {
	return s.eof
}

// Next 读取下一组
func (s *Scanner) Next() (Tag, error) {
	if !s.HasNext() {
		if s.eof {
			return Tag{}, &ScanError{Line: s.pos + 1, Err: ErrEndOfInput}
		}
		return Tag{}, &ScanError{Line: s.pos + 1, Err: ErrUnexpectedEOF}
	}

	line := s.pos + 1
	code, err := parseCode(s.lines[s.pos])
	if err != nil {
		return Tag{}, &ScanError{Line: line, Err: err}
	}
	raw := strings.TrimRight(s.lines[s.pos+1], "\r")
	s.pos += 2

	value, err := ParseGroupValue(code, raw)
	switch {
	case errors.Is(err, ErrMalformedNumber):
		s.log.Warn("malformed group value", "line", line+1, "code", code, "value", raw)
	case err != nil:
		return Tag{}, &ScanError{Line: line + 1, Err: err}
	}
	if KindOf(code) == KindUnknown {
		s.log.Warn("group code does not have a defined type", "line", line, "code", code, "value", raw)
	}

	tag := Tag{Code: code, Value: value}
	if tag.Is(0, "EOF") {
		s.eof = true
	}
	return tag, nil
}

// PeekCode 返回下一组的组码但不消耗
func (s *Scanner) PeekCode() (int, bool) {
	if !s.HasNext() {
		return 0, false
	}
	code, err := parseCode(s.lines[s.pos])
	if err != nil {
		return 0, false
	}
	return code, true
}

func parseCode(line string) (int, error) {
	text := strings.TrimSpace(line)
	code, err := strconv.Atoi(text)
	if err != nil {
		return 0, &CodeError{Text: text}
	}
	return code, nil
}
