package postgres

//nolint:revive
import (
	"context"
	"fmt"
	"net"
	"net/url"
	"time"
	"venuely/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const driverName = "postgres"

// Connection holds the read and write pools. Repositories read from Read and write to Write.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// Transactor runs a unit of work inside a single write transaction.
type Transactor interface {
	WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}

func NewTransactor(conn *Connection) Transactor {
	return conn
}

// New connects both pools and exits the process when either stays unreachable.
func New(cfg *config.Config) *Connection {
	return &Connection{
		Read:  connect(cfg, "read", cfg.DB.Postgres.Read),
		Write: connect(cfg, "write", cfg.DB.Postgres.Write),
	}
}

// WithTx commits when fn returns nil and rolls back otherwise.
func (c *Connection) WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := c.Write.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()

			panic(p)
		}
	}()

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error().Err(rbErr).Msg("failed to rollback transaction")
		}

		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// DSN renders a postgres URL for node. extra is merged into the query string.
func DSN(node config.PostgresNode, prefix string, extra url.Values) string {
	query := url.Values{}
	query.Set("sslmode", node.SSLMode)

	if node.Timezone != "" {
		query.Set("timezone", node.Timezone)
	}

	for key, values := range extra {
		query[key] = values
	}

	dsn := url.URL{
		Scheme:   driverName,
		User:     url.UserPassword(node.Username, node.Password),
		Host:     net.JoinHostPort(node.Host, node.Port),
		Path:     "/" + prefix + node.Name,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

func connect(cfg *config.Config, role string, node config.PostgresNode) *sqlx.DB {
	pg := cfg.DB.Postgres
	dsn := DSN(node, pg.Prefix, nil)
	logger := log.With().Str("pool", role).Str("host", node.Host).Str("db", pg.Prefix+node.Name).Logger()

	attempts := max(pg.MaxRetry, 1)

	for attempt := 1; attempt <= attempts; attempt++ {
		db, err := sqlx.Connect(driverName, dsn)
		if err == nil {
			db.SetMaxOpenConns(pg.MaxOpenConns)
			db.SetMaxIdleConns(pg.MaxIdleConns)
			db.SetConnMaxLifetime(time.Duration(pg.ConnMaxLifetimeMin) * time.Minute)

			logger.Info().Msg("connected to database")

			return db
		}

		logger.Error().Err(err).Int("attempt", attempt).Int("max", attempts).Msg("failed connecting to database")

		if attempt < attempts {
			time.Sleep(time.Duration(pg.RetryWaitTime) * time.Second)
		}
	}

	logger.Fatal().Msg("database unreachable")

	return nil
}
