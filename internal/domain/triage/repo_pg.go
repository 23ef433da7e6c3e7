package triage

import (
	"context"

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

func NewRepoPG(pool *pgxpool.Pool) SymptomCheckRepository { return &repoPG{pool: pool} }

func (r *repoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const checkCols = `id, account_id, age, temperature, symptoms_text,
	risk_level, risk_score, advice, created_at`

func (r *repoPG) scanCheck(row pgx.Row) (*SymptomCheck, error) {
	var sc SymptomCheck
	err := row.Scan(&sc.ID, &sc.AccountID, &sc.Age, &sc.Temperature, &sc.SymptomsText,
		&sc.RiskLevel, &sc.RiskScore, &sc.Advice, &sc.CreatedAt)
	return &sc, err
}

func (r *repoPG) Create(ctx context.Context, check *SymptomCheck) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO symptom_check (account_id, age, temperature, symptoms_text,
			risk_level, risk_score, advice, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id`,
		check.AccountID, check.Age, check.Temperature, check.SymptomsText,
		check.RiskLevel, check.RiskScore, check.Advice, check.CreatedAt,
	).Scan(&check.ID)
}

func (r *repoPG) ListByUser(ctx context.Context, accountID int64, limit int) ([]*SymptomCheck, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+checkCols+` FROM symptom_check
		WHERE account_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`,
		accountID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*SymptomCheck
	for rows.Next() {
		sc, err := r.scanCheck(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, sc)
	}
	return items, rows.Err()
}
