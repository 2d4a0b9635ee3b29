package dxf

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/zooyer/dxf/core"
	"github.com/zooyer/dxf/entities"
)

// ErrTooShort 输入不足两行，无法构成任何组
var ErrTooShort = errors.New("dxf: input has fewer than two lines")

type Block struct {
	Name       string
	Name2      string // 组码 3
	Handle     string
	Layer      string
	Position   core.Point
	XrefPath   string
	PaperSpace bool
	Flags      int
	Entities   []entities.Entity
}

type Document struct {
	Header   Header
	Tables   *Tables // 文件没有 TABLES 段时为 nil
	Blocks   map[string]*Block
	Entities []entities.Entity
}

// Block 按名称查找块，名称不区分大小写
func (d *Document) Block(name string) (*Block, bool) {
	if b, ok := d.Blocks[name]; ok {
		return b, true
	}
	for key, b := range d.Blocks {
		if strings.EqualFold(key, name) {
			return b, true
		}
	}
	return nil, false
}

// Layer 查找图层，没有 TABLES 段时返回 false
func (d *Document) Layer(name string) (*Layer, bool) {
	if d.Tables == nil {
		return nil, false
	}
	l, ok := d.Tables.Layers[name]
	return l, ok
}

// LineType 查找线型
func (d *Document) LineType(name string) (*LineType, bool) {
	if d.Tables == nil {
		return nil, false
	}
	lt, ok := d.Tables.LineTypes[name]
	return lt, ok
}

// DimStyle 查找标注样式，名称已统一大写
func (d *Document) DimStyle(name string) (*DimStyle, bool) {
	if d.Tables == nil {
		return nil, false
	}
	s, ok := d.Tables.DimStyles[strings.ToUpper(name)]
	return s, ok
}

type options struct {
	logger   *slog.Logger
	codePage string
}

type Option func(*options)

// WithLogger 设置可恢复问题的日志输出，默认 slog.Default()
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithCodePage 指定非 UTF-8 文件的代码页（如 ANSI_936），覆盖 $DWGCODEPAGE
func WithCodePage(name string) Option {
	return func(o *options) {
		o.codePage = name
	}
}

func newOptions(opts []Option) *options {
	o := &options{logger: slog.Default()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func Open(filename string, opts ...Option) (doc *Document, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return
	}

	defer func() {
		if e := file.Close(); e != nil && err == nil {
			err = e
		}
	}()

	return Load(file, opts...)
}

// Load 读取全部内容，按代码页解码后解析
func Load(reader io.Reader, opts ...Option) (*Document, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	o := newOptions(opts)
	text, err := decode(data, o.codePage)
	if err != nil {
		return nil, err
	}

	return parse(text, o)
}

// Parse 解析完整的 DXF 文本
func Parse(text string, opts ...Option) (*Document, error) {
	return parse(text, newOptions(opts))
}

func parse(text string, o *options) (*Document, error) {
	lines := splitLines(text)
	if len(lines) < 2 {
		return nil, ErrTooShort
	}

	p := &parser{
		c:   core.NewCursor(core.NewScanner(lines), o.logger),
		log: o.logger,
		doc: &Document{
			Header:   Header{},
			Blocks:   make(map[string]*Block),
			Entities: make([]entities.Entity, 0, 1024),
		},
	}
	if err := p.parse(); err != nil {
		return nil, err
	}

	return p.doc, nil
}

func splitLines(text string) []string {
	text = strings.TrimPrefix(text, "\ufeff")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}
