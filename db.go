package cbmapper

import (
	"bytes"
	"database/sql"
	"fmt"
	"image/png"

	"github.com/bodgit/cbmapper/format"
	"github.com/bodgit/cbmapper/image"
	_ "github.com/mattn/go-sqlite3"
)

// Catalog caches rendered minimaps keyed by the CRC of the file they came
// from
type Catalog struct {
	db *sql.DB
}

// NewCatalog opens or creates the catalog in the named sqlite database
func NewCatalog(file string) (*Catalog, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on&_txlock=immediate&_busy_timeout=10000", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS source (id INTEGER PRIMARY KEY NOT NULL, crc TEXT NOT NULL, title TEXT NOT NULL, kind INTEGER NOT NULL, UNIQUE(crc, title))"); err != nil {
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS minimap (source_id INTEGER NOT NULL, idx INTEGER NOT NULL, mapsize INTEGER NOT NULL, climate INTEGER NOT NULL, image BLOB NOT NULL, FOREIGN KEY(source_id) REFERENCES source(id), UNIQUE(source_id, idx))"); err != nil {
		return nil, err
	}

	return &Catalog{
		db: db,
	}, nil
}

// Close closes the underlying database
func (c *Catalog) Close() error {
	return c.db.Close()
}

func (c *Catalog) addSource(tx *sql.Tx, crc string, t format.Title, kind format.Kind) (int64, error) {
	var id int64
	switch err := tx.QueryRow("SELECT id FROM source WHERE crc = ? AND title = ?", crc, t.String()).Scan(&id); err {
	case sql.ErrNoRows:
		result, err := tx.Exec("INSERT INTO source (crc, title, kind) VALUES (?, ?, ?)", crc, t.String(), int(kind))
		if err != nil {
			return 0, err
		}
		return result.LastInsertId()
	case nil:
		if _, err := tx.Exec("DELETE FROM minimap WHERE source_id = ?", id); err != nil {
			return 0, err
		}
		return id, nil
	default:
		return 0, err
	}
}

// Add stores the maps rendered from the file with the given CRC, replacing
// anything already stored for it. Every map must have rendered.
func (c *Catalog) Add(crc string, t format.Title, maps []Map) error {
	if len(maps) == 0 {
		return nil
	}
	for _, m := range maps {
		if m.Err != nil || m.Image == nil {
			return fmt.Errorf("cbmapper: map %d has no image", m.Index)
		}
	}

	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	id, err := c.addSource(tx, crc, t, maps[0].Kind)
	if err != nil {
		return err
	}

	for _, m := range maps {
		b := new(bytes.Buffer)
		if err := image.Encode(b, m.Image, image.PNG); err != nil {
			return err
		}
		if _, err := tx.Exec("INSERT INTO minimap (source_id, idx, mapsize, climate, image) VALUES (?, ?, ?, ?, ?)", id, m.Index, m.MapSize, int(m.Climate), b.Bytes()); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Find returns the maps stored for the file with the given CRC or nil if
// there are none
func (c *Catalog) Find(crc string, t format.Title) ([]Map, error) {
	var id int64
	var kind int
	switch err := c.db.QueryRow("SELECT id, kind FROM source WHERE crc = ? AND title = ?", crc, t.String()).Scan(&id, &kind); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
	default:
		return nil, err
	}

	rows, err := c.db.Query("SELECT idx, mapsize, climate, image FROM minimap WHERE source_id = ? ORDER BY idx", id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var maps []Map
	for rows.Next() {
		var climate int
		var b []byte
		m := Map{
			Kind:  format.Kind(kind),
			Title: t,
		}
		if err := rows.Scan(&m.Index, &m.MapSize, &climate, &b); err != nil {
			return nil, err
		}
		m.Climate = format.Climate(climate)
		if m.Image, err = png.Decode(bytes.NewReader(b)); err != nil {
			return nil, err
		}
		maps = append(maps, m)
	}

	return maps, rows.Err()
}
