package user

import (
	"context"
	"errors"
	"time"

	e "github.com/d1d2-apps/ewallet-backend/internal/core/domain/errors"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/user"
	"github.com/d1d2-apps/ewallet-backend/internal/db"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const tokenColumns = `id::text, user_id, is_active, expires_in, created_at`

type PgxPasswordResetTokenRepository struct {
	db db.DBTX
}

func NewPgxPasswordResetTokenRepository(dbtx db.DBTX) *PgxPasswordResetTokenRepository {
	if dbtx == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxPasswordResetTokenRepository{db: dbtx}
}

func (r *PgxPasswordResetTokenRepository) Create(
	ctx context.Context,
	input user.CreatePasswordResetTokenInput,
) (t user.PasswordResetToken, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO password_reset_token (id, user_id, is_active, expires_in, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+tokenColumns,
		string(input.ID),
		int64(input.UserID),
		input.IsActive,
		input.ExpiresIn,
		input.CreatedAt,
	)
	return scanToken(row)
}

func (r *PgxPasswordResetTokenRepository) GetByID(
	ctx context.Context,
	id user.PasswordResetTokenID,
) (t user.PasswordResetToken, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+tokenColumns+` FROM password_reset_token WHERE id = $1`,
		string(id),
	)
	t, err = scanToken(row)
	if errors.Is(err, pgx.ErrNoRows) || isInvalidUUID(err) {
		return t, user.ErrPasswordResetTokenDoesNotExist
	}
	return t, err
}

func (r *PgxPasswordResetTokenRepository) GetLatestByUserID(
	ctx context.Context,
	userID user.ID,
) (t user.PasswordResetToken, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+tokenColumns+` FROM password_reset_token
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1`,
		int64(userID),
	)
	t, err = scanToken(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return t, user.ErrPasswordResetTokenDoesNotExist
	}
	return t, err
}

func (r *PgxPasswordResetTokenRepository) Deactivate(ctx context.Context, id user.PasswordResetTokenID) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE password_reset_token SET is_active = FALSE WHERE id = $1`,
		string(id),
	)
	if isInvalidUUID(err) {
		return user.ErrPasswordResetTokenDoesNotExist
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrPasswordResetTokenDoesNotExist
	}
	return nil
}

func scanToken(row pgx.Row) (t user.PasswordResetToken, err error) {
	var (
		id        string
		userID    int64
		isActive  bool
		expiresIn time.Time
		createdAt time.Time
	)
	err = row.Scan(&id, &userID, &isActive, &expiresIn, &createdAt)
	if err != nil {
		return t, err
	}
	return user.PasswordResetToken{
		ID:        user.PasswordResetTokenID(id),
		UserID:    user.ID(userID),
		IsActive:  isActive,
		ExpiresIn: expiresIn,
		CreatedAt: createdAt,
	}, nil
}

// Token ids come straight from requests; a malformed one can not match any row.
func isInvalidUUID(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.InvalidTextRepresentation
}
