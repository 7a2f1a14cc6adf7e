package kvstore

import (
	"database/sql"
	"errors"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Postgres maps the namespace onto a single portal_kv table so several
// portal instances can share one state store. The schema is owned by
// cmd/migration. Read-modify-write discipline still applies: the portal
// always rewrites whole collection values, never partial records.
type Postgres struct {
	db *sqlx.DB
}

func NewPostgres(dbURL string) (*Postgres, error) {
	if strings.TrimSpace(dbURL) == "" {
		return nil, crerr.New("database url is required")
	}

	db, err := sqlx.Connect("postgres", dbURL)
	if err != nil {
		return nil, crerr.Wrap(err, "connect kvstore database")
	}

	return &Postgres{db: db}, nil
}

func (p *Postgres) Get(key string) ([]byte, bool, error) {
	var value []byte
	err := p.db.Get(&value, `SELECT value FROM portal_kv WHERE key = $1`, key)
	if err != nil {
		if isNoRows(err) {
			return nil, false, nil
		}
		return nil, false, crerr.Wrapf(err, "get key %s", key)
	}
	return value, true, nil
}

func (p *Postgres) Set(key string, value []byte) error {
	_, err := p.db.Exec(
		`INSERT INTO portal_kv (key, value, updated_at) VALUES ($1, $2, now())
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, value,
	)
	if err != nil {
		return crerr.Wrapf(err, "set key %s", key)
	}
	return nil
}

func (p *Postgres) Delete(key string) error {
	if _, err := p.db.Exec(`DELETE FROM portal_kv WHERE key = $1`, key); err != nil {
		return crerr.Wrapf(err, "delete key %s", key)
	}
	return nil
}

func (p *Postgres) Keys() ([]string, error) {
	var out []string
	if err := p.db.Select(&out, `SELECT key FROM portal_kv ORDER BY key`); err != nil {
		return nil, crerr.Wrap(err, "list keys")
	}
	return out, nil
}

func (p *Postgres) Close() error {
	return p.db.Close()
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
