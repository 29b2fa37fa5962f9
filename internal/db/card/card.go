package card

import (
	"context"
	"errors"
	"time"

	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/card"
	c "github.com/d1d2-apps/ewallet-backend/internal/core/domain/common"
	e "github.com/d1d2-apps/ewallet-backend/internal/core/domain/errors"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/user"
	"github.com/d1d2-apps/ewallet-backend/internal/db"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const columns = `id, user_id, name, holder_name, last_digits, brand, "limit", due_day, created_at, updated_at`

type PgxCardRepository struct {
	db db.DBTX
}

func NewPgxCardRepository(dbtx db.DBTX) *PgxCardRepository {
	if dbtx == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxCardRepository{db: dbtx}
}

func (r *PgxCardRepository) Create(ctx context.Context, input card.CreateInput) (cd card.Card, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO card (user_id, name, holder_name, last_digits, brand, "limit", due_day, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		RETURNING `+columns,
		int64(input.UserID),
		input.Name,
		input.HolderName,
		input.LastDigits,
		input.Brand.String(),
		int64(input.Limit),
		int16(input.DueDay),
		input.CreatedAt,
	)
	cd, err = scanCard(row)
	if err != nil {
		return cd, err
	}
	return cd, cd.Validate()
}

func (r *PgxCardRepository) GetByID(ctx context.Context, id card.ID) (cd card.Card, err error) {
	row := r.db.QueryRow(ctx, `SELECT `+columns+` FROM card WHERE id = $1`, int64(id))
	cd, err = scanCard(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return cd, card.ErrCardDoesNotExist
	}
	return cd, err
}

func (r *PgxCardRepository) ReadByUserID(ctx context.Context, userID user.ID) ([]card.Card, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT `+columns+` FROM card WHERE user_id = $1 ORDER BY created_at DESC, id DESC`,
		int64(userID),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cards := make([]card.Card, 0)
	for rows.Next() {
		cd, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, cd)
	}
	return cards, rows.Err()
}

func (r *PgxCardRepository) Update(ctx context.Context, input card.UpdateInput) (cd card.Card, err error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE card SET
			name = COALESCE($2, name),
			holder_name = COALESCE($3, holder_name),
			"limit" = COALESCE($4, "limit"),
			due_day = COALESCE($5, due_day),
			updated_at = $6
		WHERE id = $1
		RETURNING `+columns,
		int64(input.ID),
		pgtype.Text{String: input.Name.Value, Valid: input.Name.IsPresent},
		pgtype.Text{String: input.HolderName.Value, Valid: input.HolderName.IsPresent},
		pgtype.Int8{Int64: int64(input.Limit.Value), Valid: input.Limit.IsPresent},
		pgtype.Int2{Int16: int16(input.DueDay.Value), Valid: input.DueDay.IsPresent},
		input.UpdatedAt,
	)
	cd, err = scanCard(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return cd, card.ErrCardDoesNotExist
	}
	return cd, err
}

func (r *PgxCardRepository) Delete(ctx context.Context, id card.ID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM card WHERE id = $1`, int64(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return card.ErrCardDoesNotExist
	}
	return nil
}

func scanCard(row pgx.Row) (cd card.Card, err error) {
	var (
		id         int64
		userID     int64
		name       string
		holderName string
		lastDigits string
		rawBrand   string
		limit      int64
		dueDay     int16
		createdAt  time.Time
		updatedAt  time.Time
	)
	err = row.Scan(&id, &userID, &name, &holderName, &lastDigits, &rawBrand, &limit, &dueDay, &createdAt, &updatedAt)
	if err != nil {
		return cd, err
	}
	brand, err := card.ParseBrand(rawBrand)
	if err != nil {
		return cd, err
	}
	return card.Card{
		ID:         card.ID(id),
		UserID:     user.ID(userID),
		Name:       name,
		HolderName: holderName,
		LastDigits: lastDigits,
		Brand:      brand,
		Limit:      c.Money(limit),
		DueDay:     uint8(dueDay),
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}, nil
}
