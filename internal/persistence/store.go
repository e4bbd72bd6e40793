// Package persistence provides SQLite-based map storage. A store holds
// any number of named maps, one of them the main map, plus key-value
// session metadata.
package persistence

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/expedition/internal/fixture"
	"github.com/talgya/expedition/internal/world"
)

var (
	// ErrMapNotFound is returned when loading a map name the store lacks.
	ErrMapNotFound = errors.New("map not found")
	// ErrUnknownFixture is returned for fixture variants with no stored form.
	ErrUnknownFixture = errors.New("unknown fixture variant")
)

// Store wraps a SQLite connection for map persistence.
type Store struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS maps (
		name TEXT PRIMARY KEY,
		is_main INTEGER NOT NULL,
		row_count INTEGER NOT NULL,
		column_count INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS tiles (
		map TEXT NOT NULL,
		pos_row INTEGER NOT NULL,
		pos_col INTEGER NOT NULL,
		terrain INTEGER NOT NULL,
		mountainous INTEGER NOT NULL,
		rivers INTEGER NOT NULL,
		PRIMARY KEY (map, pos_row, pos_col)
	);

	CREATE TABLE IF NOT EXISTS roads (
		map TEXT NOT NULL,
		pos_row INTEGER NOT NULL,
		pos_col INTEGER NOT NULL,
		direction INTEGER NOT NULL,
		level INTEGER NOT NULL,
		PRIMARY KEY (map, pos_row, pos_col, direction)
	);

	CREATE TABLE IF NOT EXISTS fixtures (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		map TEXT NOT NULL,
		pos_row INTEGER NOT NULL,
		pos_col INTEGER NOT NULL,
		seq INTEGER NOT NULL,
		type TEXT NOT NULL,
		body TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS players (
		map TEXT NOT NULL,
		id INTEGER NOT NULL,
		name TEXT NOT NULL,
		is_current INTEGER NOT NULL,
		PRIMARY KEY (map, id)
	);

	CREATE TABLE IF NOT EXISTS session_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_fixtures_map ON fixtures(map, pos_row, pos_col, seq);
	`
	_, err := s.conn.Exec(schema)
	return err
}

type mapRow struct {
	Name    string `db:"name"`
	IsMain  int    `db:"is_main"`
	Rows    int    `db:"row_count"`
	Columns int    `db:"column_count"`
}

type tileRow struct {
	Row         int `db:"pos_row"`
	Col         int `db:"pos_col"`
	Terrain     int `db:"terrain"`
	Mountainous int `db:"mountainous"`
	Rivers      int `db:"rivers"`
}

type roadRow struct {
	Row       int `db:"pos_row"`
	Col       int `db:"pos_col"`
	Direction int `db:"direction"`
	Level     int `db:"level"`
}

type fixtureRow struct {
	Row  int    `db:"pos_row"`
	Col  int    `db:"pos_col"`
	Type string `db:"type"`
	Body string `db:"body"`
}

type playerRow struct {
	ID      int    `db:"id"`
	Name    string `db:"name"`
	Current int    `db:"is_current"`
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// SaveMap writes m under name (full replace) and clears its modified
// flag. Marking a map main demotes any previous main map.
func (s *Store) SaveMap(name string, isMain bool, m *world.Map) error {
	tx, err := s.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"maps", "tiles", "roads", "fixtures", "players"} {
		col := "map"
		if table == "maps" {
			col = "name"
		}
		if _, err := tx.Exec("DELETE FROM "+table+" WHERE "+col+" = ?", name); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	if isMain {
		if _, err := tx.Exec("UPDATE maps SET is_main = 0"); err != nil {
			return err
		}
	}
	dims := m.Dimensions()
	if _, err := tx.Exec(
		"INSERT INTO maps (name, is_main, row_count, column_count) VALUES (?, ?, ?, ?)",
		name, boolInt(isMain), dims.Rows, dims.Columns,
	); err != nil {
		return fmt.Errorf("insert map: %w", err)
	}

	if err := saveTiles(tx, name, m); err != nil {
		return err
	}
	if err := saveFixtures(tx, name, m); err != nil {
		return err
	}
	for _, p := range m.Players() {
		if _, err := tx.Exec(
			"INSERT INTO players (map, id, name, is_current) VALUES (?, ?, ?, ?)",
			name, p.ID, p.Name, boolInt(p.Current),
		); err != nil {
			return fmt.Errorf("insert player %d: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	m.SetModified(false)
	slog.Info("map saved", "name", name, "main", isMain, "locations", len(m.Locations()))
	return nil
}

func saveTiles(tx *sqlx.Tx, name string, m *world.Map) error {
	tiles, err := tx.Preparex(`INSERT INTO tiles
		(map, pos_row, pos_col, terrain, mountainous, rivers) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer tiles.Close()
	roads, err := tx.Preparex(`INSERT INTO roads
		(map, pos_row, pos_col, direction, level) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer roads.Close()

	for _, p := range m.Dimensions().Points() {
		t, mountainous, rivers := m.Terrain(p), m.Mountainous(p), m.Rivers(p)
		if t != world.TileUnknown || mountainous || !rivers.Empty() {
			if _, err := tiles.Exec(name, p.Row, p.Column, int(t), boolInt(mountainous), int(rivers)); err != nil {
				return fmt.Errorf("insert tile %v: %w", p, err)
			}
		}
		for d, level := range m.Roads(p) {
			if _, err := roads.Exec(name, p.Row, p.Column, int(d), level); err != nil {
				return fmt.Errorf("insert road %v %v: %w", p, d, err)
			}
		}
	}
	return nil
}

func saveFixtures(tx *sqlx.Tx, name string, m *world.Map) error {
	stmt, err := tx.Preparex(`INSERT INTO fixtures
		(map, pos_row, pos_col, seq, type, body) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range m.Locations() {
		for seq, f := range m.Fixtures(p) {
			env, err := encodeFixture(f)
			if err != nil {
				return fmt.Errorf("encode fixture at %v: %w", p, err)
			}
			body, err := json.Marshal(env)
			if err != nil {
				return err
			}
			if _, err := stmt.Exec(name, p.Row, p.Column, seq, env.Type, string(body)); err != nil {
				return fmt.Errorf("insert fixture %d: %w", f.FixtureID(), err)
			}
		}
	}
	return nil
}

// LoadMap reads the map stored under name. The result is not marked
// modified.
func (s *Store) LoadMap(name string) (*world.Map, error) {
	var row mapRow
	err := s.conn.Get(&row, "SELECT name, is_main, row_count, column_count FROM maps WHERE name = ?", name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrMapNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("load map %s: %w", name, err)
	}
	m := world.NewMap(world.MapDimensions{Rows: row.Rows, Columns: row.Columns})

	var tiles []tileRow
	if err := s.conn.Select(&tiles,
		"SELECT pos_row, pos_col, terrain, mountainous, rivers FROM tiles WHERE map = ?", name); err != nil {
		return nil, fmt.Errorf("load tiles: %w", err)
	}
	for _, t := range tiles {
		p := world.Point{Row: t.Row, Column: t.Col}
		m.SetTerrain(p, world.TileType(t.Terrain))
		m.SetMountainous(p, t.Mountainous != 0)
		m.AddRivers(p, world.Rivers(t.Rivers))
	}

	var roads []roadRow
	if err := s.conn.Select(&roads,
		"SELECT pos_row, pos_col, direction, level FROM roads WHERE map = ?", name); err != nil {
		return nil, fmt.Errorf("load roads: %w", err)
	}
	for _, r := range roads {
		m.SetRoadLevel(world.Point{Row: r.Row, Column: r.Col}, world.Direction(r.Direction), r.Level)
	}

	var fixtures []fixtureRow
	if err := s.conn.Select(&fixtures,
		"SELECT pos_row, pos_col, type, body FROM fixtures WHERE map = ? ORDER BY pos_row, pos_col, seq", name); err != nil {
		return nil, fmt.Errorf("load fixtures: %w", err)
	}
	for _, fr := range fixtures {
		var env envelope
		if err := json.Unmarshal([]byte(fr.Body), &env); err != nil {
			return nil, fmt.Errorf("decode %s at (%d, %d): %w", fr.Type, fr.Row, fr.Col, err)
		}
		f, err := decodeFixture(env)
		if err != nil {
			return nil, err
		}
		m.AddFixture(world.Point{Row: fr.Row, Column: fr.Col}, f)
	}

	var players []playerRow
	if err := s.conn.Select(&players, "SELECT id, name, is_current FROM players WHERE map = ? ORDER BY id", name); err != nil {
		return nil, fmt.Errorf("load players: %w", err)
	}
	for _, p := range players {
		m.AddPlayer(fixture.Player{ID: p.ID, Name: p.Name, Current: p.Current != 0})
	}

	m.SetModified(false)
	slog.Debug("map loaded", "name", name, "fixtures", len(fixtures))
	return m, nil
}

// MapNames lists stored maps, the main map first, the rest by name.
func (s *Store) MapNames() ([]string, error) {
	var names []string
	err := s.conn.Select(&names, "SELECT name FROM maps ORDER BY is_main DESC, name")
	return names, err
}

// SaveMeta stores a key-value pair in session metadata.
func (s *Store) SaveMeta(key, value string) error {
	_, err := s.conn.Exec(
		"INSERT OR REPLACE INTO session_meta (key, value) VALUES (?, ?)",
		key, value,
	)
	return err
}

// GetMeta retrieves a metadata value.
func (s *Store) GetMeta(key string) (string, error) {
	var value string
	err := s.conn.Get(&value, "SELECT value FROM session_meta WHERE key = ?", key)
	return value, err
}
