package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/phrazzld/seimei-api/internal/domain"
	"github.com/phrazzld/seimei-api/internal/platform/logger"
	"github.com/phrazzld/seimei-api/internal/store"
)

// characterRow is the database shape of a dictionary entry.
type characterRow struct {
	Glyph       string `db:"glyph"`
	StrokeCount int    `db:"stroke_count"`
	Reading     string `db:"reading"`
}

// CharacterStore implements the store.CharacterStore interface
// using a SQL database as the storage backend.
type CharacterStore struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewCharacterStore creates a new SQL implementation of the CharacterStore interface.
// The schema must already be migrated (see Migrate).
// If logger is nil, a default logger will be used.
func NewCharacterStore(db *sqlx.DB, logger *slog.Logger) *CharacterStore {
	if db == nil {
		// ALLOW-PANIC: a nil database handle is a wiring error
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &CharacterStore{
		db:     db,
		logger: logger.With(slog.String("component", "character_store")),
	}
}

// Ensure CharacterStore implements store.CharacterStore interface
var _ store.CharacterStore = (*CharacterStore)(nil)

// GetByGlyph implements store.CharacterStore.GetByGlyph
func (s *CharacterStore) GetByGlyph(ctx context.Context, glyph string) (domain.Character, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := s.db.Rebind(`SELECT glyph, stroke_count, reading FROM characters WHERE glyph = ?`)

	var row characterRow
	if err := s.db.GetContext(ctx, &row, query, glyph); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("glyph not in dictionary", slog.String("glyph", glyph))
			return domain.Character{}, fmt.Errorf("%w: %q", store.ErrCharacterNotFound, glyph)
		}
		log.Error("failed to get character",
			slog.String("error", err.Error()),
			slog.String("glyph", glyph))
		return domain.Character{}, MapError(err)
	}

	return domain.NewCharacter(row.Glyph, row.StrokeCount, row.Reading)
}

// Upsert implements store.CharacterStore.Upsert
// The whole batch is written in one transaction.
func (s *CharacterStore) Upsert(ctx context.Context, chars []domain.Character) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := store.ValidateCharacters(chars); err != nil {
		log.Warn("rejected dictionary batch", slog.String("error", err.Error()))
		return err
	}
	if len(chars) == 0 {
		return nil
	}

	query := s.db.Rebind(`
		INSERT INTO characters (glyph, stroke_count, reading, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (glyph) DO UPDATE SET
			stroke_count = excluded.stroke_count,
			reading = excluded.reading,
			updated_at = excluded.updated_at
	`)

	now := time.Now().UTC()
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		stmt, err := tx.PreparexContext(ctx, query)
		if err != nil {
			return MapError(err)
		}
		defer func() { _ = stmt.Close() }()

		for _, c := range chars {
			if _, err := stmt.ExecContext(ctx, c.Glyph(), c.StrokeCount(), c.Reading(), now); err != nil {
				return MapError(err)
			}
		}
		return nil
	})
	if err != nil {
		log.Error("failed to upsert characters",
			slog.String("error", err.Error()),
			slog.Int("count", len(chars)))
		return store.NewStoreError("character", "upsert", "failed to write dictionary batch", err)
	}

	log.Debug("upserted characters", slog.Int("count", len(chars)))
	return nil
}

// Count implements store.CharacterStore.Count
func (s *CharacterStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM characters`); err != nil {
		return 0, fmt.Errorf("failed to count characters: %w", MapError(err))
	}
	return n, nil
}
