package account

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/safelink/safelink/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const accountCols = `id, email, password_hash, created_at`

func (r *repoPG) scanAccount(row pgx.Row) (*Account, error) {
	var a Account
	err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &a, err
}

func (r *repoPG) Create(ctx context.Context, a *Account) error {
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO account (email, password_hash)
		VALUES ($1, $2)
		RETURNING id, created_at`,
		a.Email, a.PasswordHash,
	).Scan(&a.ID, &a.CreatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrEmailTaken
	}
	return err
}

func (r *repoPG) GetByEmail(ctx context.Context, email string) (*Account, error) {
	return r.scanAccount(r.conn(ctx).QueryRow(ctx,
		`SELECT `+accountCols+` FROM account WHERE email = $1`, email))
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Account, error) {
	return r.scanAccount(r.conn(ctx).QueryRow(ctx,
		`SELECT `+accountCols+` FROM account WHERE id = $1`, id))
}
