package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"
	"venuely/config"
	"venuely/infras/postgres"
	"venuely/migrations"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"
)

// Migration directions understood by Run.
const (
	DirectionUp     = "up"
	DirectionDown   = "down"
	DirectionStepUp = "step-up"
	DirectionDrop   = "drop"
)

var ErrUnknownDirection = errors.New("unknown migration direction")

func databaseURL(cfg *config.Config) string {
	extra := url.Values{}

	if table := cfg.DB.Postgres.MigrationTable; table != "" {
		extra.Set("x-migrations-table", table)
	}

	return postgres.DSN(cfg.DB.Postgres.Write, cfg.DB.Postgres.Prefix, extra)
}

func open(cfg *config.Config) (*migrate.Migrate, error) {
	source, err := iofs.New(migrations.Postgres, "postgres")
	if err != nil {
		return nil, fmt.Errorf("reading embedded migrations: %w", err)
	}

	mig, err := migrate.NewWithSourceInstance("iofs", source, databaseURL(cfg))
	if err != nil {
		return nil, fmt.Errorf("creating migrate instance: %w", err)
	}

	return mig, nil
}

// Run applies the embedded schema in direction. Already being at the target is not an error.
func Run(cfg *config.Config, direction string) error {
	mig, err := open(cfg)
	if err != nil {
		return err
	}
	defer mig.Close()

	switch direction {
	case DirectionUp:
		err = mig.Up()
	case DirectionDown:
		err = mig.Steps(-1)
	case DirectionStepUp:
		err = mig.Steps(1)
	case DirectionDrop:
		err = mig.Down()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDirection, direction)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrating %s: %w", direction, err)
	}

	version, dirty, _ := mig.Version()
	log.Info().Str("direction", direction).Uint("version", version).Bool("dirty", dirty).Msg("migrations applied")

	return nil
}

// Version reports the applied schema version. Zero means nothing has been applied.
func Version(cfg *config.Config) (uint, bool, error) {
	mig, err := open(cfg)
	if err != nil {
		return 0, false, err
	}
	defer mig.Close()

	version, dirty, err := mig.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}

	if err != nil {
		return 0, false, fmt.Errorf("reading schema version: %w", err)
	}

	return version, dirty, nil
}

func Up(cfg *config.Config) error {
	return Run(cfg, DirectionUp)
}
