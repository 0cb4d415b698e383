package document

import (
	"database/sql"
	"sync/atomic"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/lattice-viz/lattice/errors"
	"github.com/lattice-viz/lattice/geom"
	"github.com/lattice-viz/lattice/logger"
	"github.com/lattice-viz/lattice/view"
)

const schema = `
CREATE TABLE IF NOT EXISTS documents (
	name       TEXT PRIMARY KEY,
	data       BLOB NOT NULL,
	updated_at TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS viewports (
	surface_id  TEXT PRIMARY KEY,
	pan_x       REAL NOT NULL,
	pan_y       REAL NOT NULL,
	zoom        REAL NOT NULL,
	first_frame INTEGER NOT NULL,
	updated_at  TIMESTAMP NOT NULL
);`

// Store persists documents and per-surface viewports in SQLite. Documents
// are stored as TOML blobs; viewports as columns so they stay queryable.
type Store struct {
	db     *sql.DB
	closed atomic.Bool
}

// Open opens (creating if needed) the store at the given path. Use
// ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open store %s", path)
	}
	store, err := NewStore(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	logger.Debugw("Opened document store", "path", path)
	return store, nil
}

// NewStore wraps an existing database handle and ensures the schema.
func NewStore(db *sql.DB) (*Store, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, errors.Wrap(err, "failed to ensure store schema")
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database. Further operations on the store
// return ErrClosed.
func (s *Store) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	return s.db.Close()
}

// handle returns the database handle, or ErrClosed after Close.
func (s *Store) handle() (*sql.DB, error) {
	if s.closed.Load() {
		return nil, errors.WithMessage(errors.ErrClosed, "document store")
	}
	return s.db, nil
}

// SaveDocument upserts a document under its name.
func (s *Store) SaveDocument(doc *Document) error {
	if doc.Name == "" {
		return errors.WithMessage(errors.ErrInvalidDocument, "document has no name")
	}
	data, err := Encode(doc, FormatTOML)
	if err != nil {
		return errors.Wrapf(err, "failed to encode document %s", doc.Name)
	}

	db, err := s.handle()
	if err != nil {
		return err
	}
	_, err = db.Exec(`
		INSERT INTO documents (name, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		doc.Name, data, time.Now().UTC())
	if err != nil {
		return errors.Wrapf(err, "failed to save document %s", doc.Name)
	}
	return nil
}

// LoadDocument fetches a document by name. Returns ErrNotFound when absent.
func (s *Store) LoadDocument(name string) (*Document, error) {
	db, err := s.handle()
	if err != nil {
		return nil, err
	}
	var data []byte
	err = db.QueryRow(`SELECT data FROM documents WHERE name = ?`, name).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError("document %s", name)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load document %s", name)
	}
	return Decode(data, FormatTOML)
}

// ListDocuments returns the stored document names, newest first.
func (s *Store) ListDocuments() ([]string, error) {
	db, err := s.handle()
	if err != nil {
		return nil, err
	}
	rows, err := db.Query(`SELECT name FROM documents ORDER BY updated_at DESC`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list documents")
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, errors.Wrap(err, "failed to scan document name")
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// DeleteDocument removes a document. Returns ErrNotFound when absent.
func (s *Store) DeleteDocument(name string) error {
	db, err := s.handle()
	if err != nil {
		return err
	}
	res, err := db.Exec(`DELETE FROM documents WHERE name = ?`, name)
	if err != nil {
		return errors.Wrapf(err, "failed to delete document %s", name)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.NewNotFoundError("document %s", name)
	}
	return nil
}

// SaveViewport upserts the persisted viewport for a surface.
func (s *Store) SaveViewport(surfaceID string, vp *view.Viewport) error {
	db, err := s.handle()
	if err != nil {
		return err
	}
	firstFrame := 0
	if vp.FirstFrame {
		firstFrame = 1
	}
	_, err = db.Exec(`
		INSERT INTO viewports (surface_id, pan_x, pan_y, zoom, first_frame, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(surface_id) DO UPDATE SET
			pan_x = excluded.pan_x, pan_y = excluded.pan_y,
			zoom = excluded.zoom, first_frame = excluded.first_frame,
			updated_at = excluded.updated_at`,
		surfaceID, vp.Pan.X, vp.Pan.Y, vp.Zoom, firstFrame, time.Now().UTC())
	if err != nil {
		return errors.Wrapf(err, "failed to save viewport for surface %s", surfaceID)
	}
	return nil
}

// LoadViewport fetches the persisted viewport for a surface. Returns
// ErrNotFound when the surface has no saved state.
func (s *Store) LoadViewport(surfaceID string) (*view.Viewport, error) {
	db, err := s.handle()
	if err != nil {
		return nil, err
	}
	var panX, panY, zoom float64
	var firstFrame int
	err = db.QueryRow(`
		SELECT pan_x, pan_y, zoom, first_frame FROM viewports WHERE surface_id = ?`,
		surfaceID).Scan(&panX, &panY, &zoom, &firstFrame)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError("viewport for surface %s", surfaceID)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load viewport for surface %s", surfaceID)
	}
	return &view.Viewport{
		Pan:        geom.V(panX, panY),
		Zoom:       zoom,
		FirstFrame: firstFrame != 0,
	}, nil
}
