package debtor

import (
	"context"
	"errors"
	"time"

	c "github.com/d1d2-apps/ewallet-backend/internal/core/domain/common"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/debtor"
	e "github.com/d1d2-apps/ewallet-backend/internal/core/domain/errors"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/user"
	"github.com/d1d2-apps/ewallet-backend/internal/db"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const columns = `id, user_id, name, description, value, is_paid, created_at, updated_at`

type PgxDebtorRepository struct {
	db db.DBTX
}

func NewPgxDebtorRepository(dbtx db.DBTX) *PgxDebtorRepository {
	if dbtx == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxDebtorRepository{db: dbtx}
}

func (r *PgxDebtorRepository) Create(ctx context.Context, input debtor.CreateInput) (d debtor.Debtor, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO debtor (user_id, name, description, value, is_paid, created_at, updated_at)
		VALUES ($1, $2, $3, $4, FALSE, $5, $5)
		RETURNING `+columns,
		int64(input.UserID),
		input.Name,
		input.Description,
		int64(input.Value),
		input.CreatedAt,
	)
	d, err = scanDebtor(row)
	if err != nil {
		return d, err
	}
	return d, d.Validate()
}

func (r *PgxDebtorRepository) GetByID(ctx context.Context, id debtor.ID) (d debtor.Debtor, err error) {
	row := r.db.QueryRow(ctx, `SELECT `+columns+` FROM debtor WHERE id = $1`, int64(id))
	d, err = scanDebtor(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return d, debtor.ErrDebtorDoesNotExist
	}
	return d, err
}

func (r *PgxDebtorRepository) Read(ctx context.Context, options debtor.ReadOptions) ([]debtor.Debtor, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT `+columns+` FROM debtor
		WHERE user_id = $1 AND ($2::boolean IS NULL OR is_paid = $2)
		ORDER BY created_at DESC, id DESC`,
		int64(options.UserID),
		pgtype.Bool{Bool: options.IsPaid.Value, Valid: options.IsPaid.IsPresent},
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	debtors := make([]debtor.Debtor, 0)
	for rows.Next() {
		d, err := scanDebtor(rows)
		if err != nil {
			return nil, err
		}
		debtors = append(debtors, d)
	}
	return debtors, rows.Err()
}

func (r *PgxDebtorRepository) Update(ctx context.Context, input debtor.UpdateInput) (d debtor.Debtor, err error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE debtor SET
			name = COALESCE($2, name),
			description = COALESCE($3, description),
			value = COALESCE($4, value),
			is_paid = COALESCE($5, is_paid),
			updated_at = $6
		WHERE id = $1
		RETURNING `+columns,
		int64(input.ID),
		pgtype.Text{String: input.Name.Value, Valid: input.Name.IsPresent},
		pgtype.Text{String: input.Description.Value, Valid: input.Description.IsPresent},
		pgtype.Int8{Int64: int64(input.Value.Value), Valid: input.Value.IsPresent},
		pgtype.Bool{Bool: input.IsPaid.Value, Valid: input.IsPaid.IsPresent},
		input.UpdatedAt,
	)
	d, err = scanDebtor(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return d, debtor.ErrDebtorDoesNotExist
	}
	return d, err
}

func (r *PgxDebtorRepository) Delete(ctx context.Context, id debtor.ID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM debtor WHERE id = $1`, int64(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return debtor.ErrDebtorDoesNotExist
	}
	return nil
}

func scanDebtor(row pgx.Row) (d debtor.Debtor, err error) {
	var (
		id          int64
		userID      int64
		name        string
		description string
		value       int64
		isPaid      bool
		createdAt   time.Time
		updatedAt   time.Time
	)
	err = row.Scan(&id, &userID, &name, &description, &value, &isPaid, &createdAt, &updatedAt)
	if err != nil {
		return d, err
	}
	return debtor.Debtor{
		ID:          debtor.ID(id),
		UserID:      user.ID(userID),
		Name:        name,
		Description: description,
		Value:       c.Money(value),
		IsPaid:      isPaid,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}
