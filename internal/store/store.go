package store

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wildlog/wildlog_api/internal/config"
	"github.com/wildlog/wildlog_api/internal/database/sqlc/db"
	"github.com/wildlog/wildlog_api/internal/models"
)

const (
	connTimeout       = time.Second * 5
	defaultQueryLimit = 100

	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

type Store interface {
	CreateProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	SaveProfile(ctx context.Context, profile *models.Profile) error
	SetProfileSwarm(ctx context.Context, profileID uuid.UUID, swarmID *uuid.UUID) error
	AddProfileXP(ctx context.Context, profileID uuid.UUID, xp int64) error

	CreateSwarm(ctx context.Context, name string) (*models.Swarm, error)
	GetSwarm(ctx context.Context, id uuid.UUID) (*models.Swarm, error)
	ListSwarmMembers(ctx context.Context, swarmID uuid.UUID) ([]*models.Profile, error)
	SaveSwarmProgress(ctx context.Context, swarm *models.Swarm) error

	CreateSighting(ctx context.Context, sighting *models.Sighting) error
	ListSightings(ctx context.Context, profileID uuid.UUID, limit, offset int) ([]*models.Sighting, error)

	StartIdentification(ctx context.Context, profileID uuid.UUID, photoKey string) (*models.Identification, error)
	CompleteIdentification(ctx context.Context, identification *models.Identification) error
	GetIdentification(ctx context.Context, id uuid.UUID) (*models.Identification, error)

	Close()
	Conn() *pgxpool.Pool
	WithTx(tx pgx.Tx) Store
	BeginTx(ctx context.Context) (pgx.Tx, error)
	ExecTx(ctx context.Context, fn func(Store) error) error
}

type Connection interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Close()
}

type QuerierFactory func(tx db.DBTX) db.Querier

type pgStore struct {
	q    db.Querier
	qf   QuerierFactory
	pool Connection
}

func NewPGStore(conf config.Config) (Store, error) {
	dsn := url.URL{
		Scheme: "postgres",
		Host:   fmt.Sprintf("%s:%s", conf.DB.Host, conf.DB.Port),
		User:   url.UserPassword(conf.DB.User, conf.DB.Password),
		Path:   "/" + conf.DB.Name,
	}
	if conf.DB.SSLMode != "" {
		dsn.RawQuery = url.Values{"sslmode": {conf.DB.SSLMode}}.Encode()
	}

	ctx, cancel := context.WithTimeout(context.Background(), connTimeout)
	defer cancel()

	conn, err := pgxpool.New(ctx, dsn.String())
	if err != nil {
		return nil, err
	}

	if err := conn.Ping(ctx); err != nil {
		conn.Close()
		return nil, err
	}

	return NewPgStore(db.New(conn), func(tx db.DBTX) db.Querier {
		return db.New(tx)
	}, conn), nil
}

// NewPgStore assembles a store from its parts. Tests use it to plug in mocks.
func NewPgStore(q db.Querier, qf QuerierFactory, pool Connection) Store {
	return &pgStore{q: q, qf: qf, pool: pool}
}

func (s *pgStore) Close() {
	s.pool.Close()
}

func (s *pgStore) WithTx(tx pgx.Tx) Store {
	return &pgStore{q: s.qf(tx), qf: s.qf, pool: s.pool}
}

func (s *pgStore) BeginTx(ctx context.Context) (pgx.Tx, error) {
	return s.pool.Begin(ctx)
}

func (s *pgStore) Conn() *pgxpool.Pool {
	pool, _ := s.pool.(*pgxpool.Pool)
	return pool
}

func (s *pgStore) ExecTx(ctx context.Context, fn func(Store) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := fn(s.WithTx(tx)); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
