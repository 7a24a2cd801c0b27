// Package store keeps a history of generated designs in SQLite.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/piwi3910/BoxCut/internal/model"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrAmbiguous = errors.New("ambiguous id prefix")
)

// timeLayout is fixed width so created_at sorts as text. Rows are read back
// with time.RFC3339Nano, which accepts both this form and trimmed fractions.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Entry is a saved design.
type Entry struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	CreatedAt time.Time          `json:"created_at"`
	Record    model.DesignRecord `json:"record"`
}

// Summary is the list view of a saved design.
type Summary struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	CreatedAt     time.Time `json:"created_at"`
	Width         float64   `json:"width"`
	Depth         float64   `json:"depth"`
	Height        float64   `json:"height"`
	Thickness     float64   `json:"thickness"`
	Material      string    `json:"material"`
	Style         string    `json:"style"`
	TotalCost     float64   `json:"total_cost"`
	WastePercent  float64   `json:"waste_percent"`
	PriceFallback bool      `json:"price_fallback"`
}

// Store is the design history. It is safe for concurrent use.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the history database at path.
func Open(path string) (*Store, error) {
	db, err := OpenDB(path)
	if err != nil {
		return nil, err
	}
	return New(db), nil
}

// New wraps an already migrated database.
func New(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save stores a production-ready record under a fresh ID.
func (s *Store) Save(ctx context.Context, name string, record model.DesignRecord) (Entry, error) {
	if !record.ProductionReady {
		return Entry{}, fmt.Errorf("refusing to save a design that is not production ready")
	}

	data, err := json.Marshal(record)
	if err != nil {
		return Entry{}, fmt.Errorf("encoding design: %w", err)
	}

	entry := Entry{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: s.now().UTC(),
		Record:    record,
	}
	p := record.Params

	query := `INSERT INTO designs (id, name, created_at, width, depth, height, thickness,
		material, style, total_cost, waste_percent, price_fallback, record_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = s.db.ExecContext(ctx, query,
		entry.ID,
		entry.Name,
		entry.CreatedAt.Format(timeLayout),
		p.Width,
		p.Depth,
		p.Height,
		p.Thickness,
		p.Material,
		string(p.Style),
		record.TotalCost,
		record.WastePercent,
		boolToInt(record.PriceFallback),
		string(data),
	)
	if err != nil {
		return Entry{}, fmt.Errorf("inserting design: %w", err)
	}
	return entry, nil
}

// Get returns the design with the given ID. A unique ID prefix of at
// least four characters is accepted.
func (s *Store) Get(ctx context.Context, id string) (Entry, error) {
	id, err := s.resolveID(ctx, id)
	if err != nil {
		return Entry{}, err
	}

	row := s.db.QueryRowContext(ctx, `SELECT id, name, created_at, record_json FROM designs WHERE id = ?`, id)

	var (
		e       Entry
		created string
		data    string
	)
	if err := row.Scan(&e.ID, &e.Name, &created, &data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Entry{}, fmt.Errorf("design %s: %w", id, ErrNotFound)
		}
		return Entry{}, fmt.Errorf("scanning design: %w", err)
	}
	if e.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
		return Entry{}, fmt.Errorf("parsing created_at of %s: %w", id, err)
	}
	if err := json.Unmarshal([]byte(data), &e.Record); err != nil {
		return Entry{}, fmt.Errorf("decoding design %s: %w", id, err)
	}
	return e, nil
}

func (s *Store) resolveID(ctx context.Context, id string) (string, error) {
	if len(id) < 4 {
		return "", fmt.Errorf("design %q: %w", id, ErrNotFound)
	}
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM designs WHERE substr(id, 1, length(?)) = ? LIMIT 2`, id, id)
	if err != nil {
		return "", fmt.Errorf("resolving design id: %w", err)
	}
	defer rows.Close()

	var matches []string
	for rows.Next() {
		var m string
		if err := rows.Scan(&m); err != nil {
			return "", fmt.Errorf("scanning design id: %w", err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return "", err
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("design %s: %w", id, ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("design %s: %w", id, ErrAmbiguous)
	}
}

// List returns up to limit designs, newest first. A limit of zero or less
// returns all of them.
func (s *Store) List(ctx context.Context, limit int) ([]Summary, error) {
	if limit <= 0 {
		limit = -1
	}
	query := `SELECT id, name, created_at, width, depth, height, thickness, material, style,
		total_cost, waste_percent, price_fallback
		FROM designs ORDER BY created_at DESC, rowid DESC LIMIT ?`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing designs: %w", err)
	}
	defer rows.Close()

	out := []Summary{}
	for rows.Next() {
		var (
			sm       Summary
			created  string
			fallback int
		)
		if err := rows.Scan(&sm.ID, &sm.Name, &created, &sm.Width, &sm.Depth, &sm.Height, &sm.Thickness,
			&sm.Material, &sm.Style, &sm.TotalCost, &sm.WastePercent, &fallback); err != nil {
			return nil, fmt.Errorf("scanning design: %w", err)
		}
		if sm.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
			return nil, fmt.Errorf("parsing created_at of %s: %w", sm.ID, err)
		}
		sm.PriceFallback = fallback != 0
		out = append(out, sm)
	}
	return out, rows.Err()
}

// Delete removes a design by ID or unique prefix.
func (s *Store) Delete(ctx context.Context, id string) error {
	id, err := s.resolveID(ctx, id)
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM designs WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting design %s: %w", id, err)
	}
	return nil
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
