package chat

import (
	"context"
	"time"

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

func NewRepoPG(pool *pgxpool.Pool) ChatMessageRepository { return &repoPG{pool: pool} }

func (r *repoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const messageCols = `id, account_id, role, content, created_at`

func (r *repoPG) scanMessage(row pgx.Row) (*ChatMessage, error) {
	var m ChatMessage
	err := row.Scan(&m.ID, &m.AccountID, &m.Role, &m.Content, &m.CreatedAt)
	return &m, err
}

func (r *repoPG) CreateTurn(ctx context.Context, accountID int64, userMessage, reply string) error {
	now := time.Now().UTC()
	return db.WithTx(ctx, r.pool, func(ctx context.Context) error {
		conn := r.conn(ctx)
		if _, err := conn.Exec(ctx, `
			INSERT INTO chat_message (account_id, role, content, created_at)
			VALUES ($1,$2,$3,$4)`,
			accountID, RoleUser, userMessage, now); err != nil {
			return err
		}
		_, err := conn.Exec(ctx, `
			INSERT INTO chat_message (account_id, role, content, created_at)
			VALUES ($1,$2,$3,$4)`,
			accountID, RoleAssistant, reply, now)
		return err
	})
}

func (r *repoPG) ListByUser(ctx context.Context, accountID int64, limit int) ([]*ChatMessage, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+messageCols+` FROM chat_message
		WHERE account_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`,
		accountID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*ChatMessage
	for rows.Next() {
		m, err := r.scanMessage(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}
