package character

import (
	"context"
	"database/sql"
	"embed"
	"io/fs"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/KirkDiggler/rpg-chargen/internal/entities"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
	"github.com/KirkDiggler/rpg-chargen/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-chargen/internal/pkg/sqlitemigrate"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

var _ Repository = (*SQLite)(nil)

// SQLite is a character repository backed by a single SQLite file.
// AUTOINCREMENT keeps IDs from being reused after deletes.
type SQLite struct {
	db    *sql.DB
	clock clock.Clock
}

// SQLiteConfig contains configuration for the SQLite character repository.
type SQLiteConfig struct {
	// Path is the database file. The file is created if missing.
	Path  string
	Clock clock.Clock
}

// Validate validates the SQLiteConfig.
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("path", cfg.Path, vb)
	return vb.Build()
}

// NewSQLite opens the database at cfg.Path and applies pending migrations.
func NewSQLite(ctx context.Context, cfg *SQLiteConfig) (*SQLite, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", cfg.Path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite database")
	}
	// A single writer avoids SQLITE_BUSY on concurrent saves.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to ping sqlite database")
	}

	migrations, err := fs.Sub(migrationFiles, "migrations")
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to load migrations")
	}
	if err := sqlitemigrate.Apply(ctx, db, migrations); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to apply migrations")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &SQLite{db: db, clock: c}, nil
}

// Close closes the underlying database
func (s *SQLite) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Create stores a character and assigns its ID
func (s *SQLite) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}

	data, err := encodeCharacter(input.Character)
	if err != nil {
		return nil, err
	}

	res, err := s.db.ExecContext(ctx, `
INSERT INTO characters (nome, raca, classe, nivel, data_json, created_at)
VALUES (?, ?, ?, ?, ?, ?)`,
		input.Character.Name,
		string(input.Character.Race),
		string(input.Character.Class),
		input.Character.Level,
		string(data),
		s.clock.Now().Unix(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to insert character")
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read character ID")
	}

	return &CreateOutput{Character: withID(input.Character, id)}, nil
}

// Get retrieves a character by ID
func (s *SQLite) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	var data string
	err := s.db.QueryRowContext(ctx, "SELECT data_json FROM characters WHERE id = ?", input.ID).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, errors.NotFoundf("character with ID %d not found", input.ID)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character %d", input.ID)
	}

	c, err := decodeCharacter(input.ID, []byte(data))
	if err != nil {
		return nil, err
	}
	return &GetOutput{Character: c}, nil
}

// List returns characters ordered by ID, optionally filtered and limited
func (s *SQLite) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	var (
		where []string
		args  []interface{}
	)
	if input.Race != "" {
		where = append(where, "raca = ?")
		args = append(args, string(input.Race))
	}
	if input.Class != "" {
		where = append(where, "classe = ?")
		args = append(args, string(input.Class))
	}

	query := "SELECT id, data_json FROM characters"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY id"
	if input.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, input.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}
	defer func() { _ = rows.Close() }()

	characters := make([]*entities.Character, 0)
	for rows.Next() {
		var (
			id   int64
			data string
		)
		if err := rows.Scan(&id, &data); err != nil {
			return nil, errors.Wrap(err, "failed to scan character row")
		}

		c, err := decodeCharacter(id, []byte(data))
		if err != nil {
			return nil, err
		}
		characters = append(characters, c)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate characters")
	}

	return &ListOutput{Characters: characters}, nil
}

// Delete removes a character by ID
func (s *SQLite) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM characters WHERE id = ?", input.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete character %d", input.ID)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete character %d", input.ID)
	}
	if n == 0 {
		return nil, errors.NotFoundf("character with ID %d not found", input.ID)
	}

	return &DeleteOutput{}, nil
}

// DeleteAll removes every character. The AUTOINCREMENT sequence is kept.
func (s *SQLite) DeleteAll(ctx context.Context, _ DeleteAllInput) (*DeleteAllOutput, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM characters")
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete characters")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, errors.Wrap(err, "failed to count deleted characters")
	}

	return &DeleteAllOutput{Deleted: n}, nil
}
