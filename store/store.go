package store

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/zooyer/dxf"
	"github.com/zooyer/dxf/entities"
	"github.com/zooyer/dxf/utils"
)

// Store 把解析结果导出到 sqlite，便于离线查询
type Store struct {
	db *sql.DB
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite: %w", err)
	}

	// 单连接，:memory: 数据库才能在多次调用间保持
	db.SetMaxOpenConns(1)

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func migrate(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS documents (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			version TEXT,
			created_at TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS layers (
			document_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			color INTEGER NOT NULL,
			hidden INTEGER NOT NULL,
			frozen INTEGER NOT NULL,
			line_type TEXT,
			FOREIGN KEY (document_id) REFERENCES documents(id)
		);
		CREATE TABLE IF NOT EXISTS line_types (
			document_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			description TEXT,
			pattern_length REAL,
			pattern TEXT,
			FOREIGN KEY (document_id) REFERENCES documents(id)
		);
		CREATE TABLE IF NOT EXISTS blocks (
			document_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			layer TEXT,
			entity_count INTEGER NOT NULL,
			FOREIGN KEY (document_id) REFERENCES documents(id)
		);
		CREATE TABLE IF NOT EXISTS entities (
			document_id INTEGER NOT NULL,
			block TEXT,
			seq INTEGER NOT NULL,
			type TEXT NOT NULL,
			handle TEXT,
			layer TEXT,
			color INTEGER,
			min_x REAL, min_y REAL, max_x REAL, max_y REAL,
			FOREIGN KEY (document_id) REFERENCES documents(id)
		);
	`)
	return err
}

// SaveDocument 在一个事务内写入文档，返回文档 ID
func (s *Store) SaveDocument(ctx context.Context, name string, doc *dxf.Document) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	version, _ := doc.Header.String("$ACADVER")
	res, err := tx.ExecContext(ctx,
		`INSERT INTO documents (name, version, created_at) VALUES (?, ?, ?)`,
		name, version, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting document: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if doc.Tables != nil {
		for _, l := range doc.Tables.Layers {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO layers (document_id, name, color, hidden, frozen, line_type) VALUES (?, ?, ?, ?, ?, ?)`,
				id, l.Name, int(l.Color), l.Hidden, l.Frozen, l.LineType,
			); err != nil {
				return 0, fmt.Errorf("inserting layer %s: %w", l.Name, err)
			}
		}
		for _, lt := range doc.Tables.LineTypes {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO line_types (document_id, name, description, pattern_length, pattern) VALUES (?, ?, ?, ?, ?)`,
				id, lt.Name, lt.Description, lt.PatternLength, formatPattern(lt.Pattern),
			); err != nil {
				return 0, fmt.Errorf("inserting line type %s: %w", lt.Name, err)
			}
		}
	}

	for _, b := range doc.Blocks {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO blocks (document_id, name, layer, entity_count) VALUES (?, ?, ?, ?)`,
			id, b.Name, b.Layer, len(b.Entities),
		); err != nil {
			return 0, fmt.Errorf("inserting block %s: %w", b.Name, err)
		}
		if err := insertEntities(ctx, tx, id, doc, b.Name, b.Entities); err != nil {
			return 0, err
		}
	}

	if err := insertEntities(ctx, tx, id, doc, "", doc.Entities); err != nil {
		return 0, err
	}

	return id, tx.Commit()
}

func insertEntities(ctx context.Context, tx *sql.Tx, id int64, doc *dxf.Document, block string, list []entities.Entity) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO entities (document_id, block, seq, type, handle, layer, color, min_x, min_y, max_x, max_y)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	var blockName sql.NullString
	if block != "" {
		blockName = sql.NullString{String: block, Valid: true}
	}

	for i, e := range list {
		box := e.BBox()
		if block == "" {
			box = utils.GetEntityBBoxWCS(doc, e)
		}
		var minX, minY, maxX, maxY sql.NullFloat64
		if !box.IsEmpty() {
			minX = sql.NullFloat64{Float64: box.Min.X, Valid: true}
			minY = sql.NullFloat64{Float64: box.Min.Y, Valid: true}
			maxX = sql.NullFloat64{Float64: box.Max.X, Valid: true}
			maxY = sql.NullFloat64{Float64: box.Max.Y, Valid: true}
		}
		if _, err := stmt.ExecContext(ctx,
			id, blockName, i, string(e.Type()), e.Common().Handle, e.Layer(),
			int(utils.ResolveColor(doc, e)), minX, minY, maxX, maxY,
		); err != nil {
			return fmt.Errorf("inserting %s entity %d: %w", e.Type(), i, err)
		}
	}
	return nil
}

// EntityCounts 按类型统计模型空间实体数
func (s *Store) EntityCounts(ctx context.Context, documentID int64) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT type, COUNT(*) FROM entities WHERE document_id = ? AND block IS NULL GROUP BY type`,
		documentID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			typ   string
			count int
		)
		if err := rows.Scan(&typ, &count); err != nil {
			return nil, err
		}
		counts[typ] = count
	}
	return counts, rows.Err()
}

// LayerNames 返回文档的图层名（按名称排序）
func (s *Store) LayerNames(ctx context.Context, documentID int64) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name FROM layers WHERE document_id = ? ORDER BY name`, documentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func formatPattern(pattern []float64) sql.NullString {
	if pattern == nil {
		return sql.NullString{}
	}
	parts := make([]string, len(pattern))
	for i, v := range pattern {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return sql.NullString{String: strings.Join(parts, ","), Valid: true}
}
