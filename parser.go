package dxf

import (
	"log/slog"
	"strings"

	"github.com/zooyer/dxf/core"
	"github.com/zooyer/dxf/entities"
)

// parser 是文档构建状态机：顶层 → HEADER/TABLES/BLOCKS/ENTITIES → 顶层，
// 遇到 (0, EOF) 终止。各段解析返回时游标停在 ENDSEC 或 EOF 上。
type parser struct {
	c   *core.Cursor
	log *slog.Logger
	doc *Document
}

func isBoundary(t core.Tag) bool {
	return t.Code == 0
}

func isSectionEnd(t core.Tag) bool {
	return t.Is(0, "ENDSEC") || t.Is(0, "EOF")
}

func (p *parser) parse() error {
	c := p.c
	if !c.Next() {
		return c.Err()
	}

	for c.Err() == nil {
		if c.EOF() {
			return nil
		}

		if c.Tag.Is(0, "SECTION") {
			if !c.Next() {
				break
			}
			if c.Tag.Code != 2 {
				p.log.Error("unexpected code after SECTION", "group", c.Tag.String())
				// 当前组重新参与判断
				continue
			}
			p.parseSection(c.Tag.AsString())
			if c.EOF() {
				return nil
			}
		}

		if !c.Next() {
			break
		}
	}

	return c.Err()
}

func (p *parser) parseSection(name string) {
	switch strings.ToUpper(name) {
	case "HEADER":
		p.parseHeader()
	case "TABLES":
		p.parseTables()
	case "BLOCKS":
		p.parseBlocks()
	case "ENTITIES":
		if p.c.Next() {
			p.doc.Entities = append(p.doc.Entities, p.parseEntityList("ENDSEC")...)
		}
	default:
		p.log.Info("skipping section", "section", name)
		p.c.Skip(isSectionEnd)
	}
}

func (p *parser) parseBlocks() {
	c := p.c
	if !c.Next() {
		return
	}

	for c.Err() == nil && !isSectionEnd(c.Tag) {
		if c.Tag.Is(0, "BLOCK") {
			block := p.parseBlock()
			if block.Name == "" {
				p.log.Warn("block is missing a name", "handle", block.Handle)
			} else {
				p.doc.Blocks[block.Name] = block
			}
			// parseBlock 已停在下一个组码 0 上
			continue
		}

		p.log.Debug("unhandled group in BLOCKS", "group", c.Tag.String())
		c.Next()
	}
}

// parseBlock 从 (0, BLOCK) 读到 ENDBLK 记录结束，返回时游标停在其后的组码 0 上
func (p *parser) parseBlock() *Block {
	c := p.c
	block := &Block{}

	for c.Next() && c.Tag.Code != 0 {
		tag := c.Tag
		switch tag.Code {
		case 1:
			block.XrefPath = tag.AsString()
		case 2:
			block.Name = tag.AsString()
		case 3:
			block.Name2 = tag.AsString()
		case 5:
			block.Handle = tag.AsString()
		case 8:
			block.Layer = tag.AsString()
		case 10:
			block.Position = c.ReadPoint()
		case 67:
			block.PaperSpace = tag.AsInt() == 1
		case 70:
			block.Flags = tag.AsInt()
		}
	}

	block.Entities = p.parseEntityList("ENDBLK")

	if c.Err() == nil && c.Tag.Is(0, "ENDBLK") {
		c.Skip(isBoundary)
	}

	return block
}

// parseEntityList 按组码 0 分派实体，直到 end / ENDSEC / EOF（不消耗）
func (p *parser) parseEntityList(end string) []entities.Entity {
	var (
		c    = p.c
		list []entities.Entity
	)

	for c.Err() == nil {
		tag := c.Tag
		if tag.Code != 0 {
			c.Next()
			continue
		}
		if tag.Is(0, end) || isSectionEnd(tag) {
			break
		}

		name := tag.AsString()
		ent := entities.CreateEntity(name)
		if ent == nil {
			p.log.Warn("unhandled entity", "type", name)
			c.Skip(isBoundary)
			continue
		}

		ent.Parse(c)
		p.check(ent)
		list = append(list, ent)
	}

	return list
}

// check 记录不影响解析的数据问题
func (p *parser) check(ent entities.Entity) {
	if dim, ok := ent.(*entities.Dimension); ok && dim.Block == "" {
		p.log.Warn("dimension is missing a block reference", "handle", dim.Handle)
	}
}
