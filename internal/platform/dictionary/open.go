package dictionary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/seimei-api/internal/config"
	"github.com/phrazzld/seimei-api/internal/domain"
	"github.com/phrazzld/seimei-api/internal/platform/sqlstore"
	"github.com/phrazzld/seimei-api/internal/store"
)

// DriverMemory selects the in-memory dictionary.
const DriverMemory = "memory"

// Dictionary is an opened character store together with its cleanup.
type Dictionary struct {
	store.CharacterStore

	driver string
	close  func() error
}

// Driver reports which provider backs the dictionary.
func (d *Dictionary) Driver() string { return d.driver }

// Close releases the underlying connection, if any.
func (d *Dictionary) Close() error {
	if d.close == nil {
		return nil
	}
	return d.close()
}

// Open creates the dictionary selected by cfg.Driver.
//
// The memory driver loads the embedded seed plus cfg.SeedFile. The SQL
// drivers migrate the schema and, when the table is empty, import the same
// data so a fresh database is immediately usable.
func Open(ctx context.Context, cfg config.DictionaryConfig, logger *slog.Logger) (*Dictionary, error) {
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With(slog.String("component", "dictionary"), slog.String("driver", cfg.Driver))

	seed, err := seedCharacters(cfg.SeedFile)
	if err != nil {
		return nil, err
	}

	switch cfg.Driver {
	case DriverMemory, "":
		log.Info("using in-memory dictionary", slog.Int("characters", len(seed)))
		// The extra file was appended after the embedded seed, so it wins.
		return &Dictionary{CharacterStore: NewMemoryStore(seed...), driver: DriverMemory}, nil

	case sqlstore.DriverSQLite, sqlstore.DriverPostgres:
		db, err := sqlstore.Open(ctx, cfg.Driver, cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("opening %s dictionary: %w", cfg.Driver, err)
		}
		if _, err := sqlstore.Migrate(ctx, db, logger); err != nil {
			_ = db.Close()
			return nil, err
		}

		s := sqlstore.NewCharacterStore(db, logger)
		n, err := s.Count(ctx)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		if n == 0 {
			if err := s.Upsert(ctx, seed); err != nil {
				_ = db.Close()
				return nil, fmt.Errorf("seeding dictionary: %w", err)
			}
			log.Info("seeded empty dictionary", slog.Int("characters", len(seed)))
		} else {
			log.Info("using existing dictionary", slog.Int("characters", n))
		}

		return &Dictionary{CharacterStore: s, driver: cfg.Driver, close: db.Close}, nil

	default:
		return nil, fmt.Errorf("unsupported dictionary driver %q", cfg.Driver)
	}
}

func seedCharacters(extraFile string) ([]domain.Character, error) {
	chars, err := Seed()
	if err != nil {
		return nil, fmt.Errorf("loading embedded dictionary: %w", err)
	}
	if extraFile == "" {
		return chars, nil
	}

	extra, err := LoadFile(extraFile)
	if err != nil {
		return nil, err
	}
	return append(chars, extra...), nil
}
