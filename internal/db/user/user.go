package user

import (
	"context"
	"errors"
	"time"

	c "github.com/d1d2-apps/ewallet-backend/internal/core/domain/common"
	e "github.com/d1d2-apps/ewallet-backend/internal/core/domain/errors"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/user"
	"github.com/d1d2-apps/ewallet-backend/internal/db"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

const EMAIL_CONSTRAINT_NAME = "user_email_idx"

const userColumns = `id, email, name, password_hash, created_at, updated_at`

type PgxUserRepository struct {
	db db.DBTX
}

func NewPgxRepository(dbtx db.DBTX) *PgxUserRepository {
	if dbtx == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxUserRepository{db: dbtx}
}

func (r *PgxUserRepository) Create(ctx context.Context, input user.CreateUserInput) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO "user" (email, name, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		RETURNING `+userColumns,
		string(input.Email),
		input.Name,
		string(input.PasswordHash),
		input.CreatedAt,
	)
	u, err = scanUser(row)
	if isEmailUniqueViolation(err) {
		return u, user.ErrEmailAlreadyExists
	}
	if err != nil {
		return u, err
	}
	return u, u.Validate()
}

func (r *PgxUserRepository) GetByID(ctx context.Context, id user.ID) (u user.User, err error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM "user" WHERE id = $1`, int64(id))
	return r.decode(row)
}

func (r *PgxUserRepository) GetByEmail(ctx context.Context, email c.Email) (u user.User, err error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM "user" WHERE email = $1`, string(email))
	return r.decode(row)
}

func (r *PgxUserRepository) Update(ctx context.Context, input user.UpdateUserInput) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE "user" SET
			email = COALESCE($2, email),
			name = COALESCE($3, name),
			updated_at = $4
		WHERE id = $1
		RETURNING `+userColumns,
		int64(input.ID),
		pgtype.Text{String: string(input.Email.Value), Valid: input.Email.IsPresent},
		pgtype.Text{String: input.Name.Value, Valid: input.Name.IsPresent},
		input.UpdatedAt,
	)
	u, err = scanUser(row)
	if isEmailUniqueViolation(err) {
		return u, user.ErrEmailAlreadyExists
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if err != nil {
		return u, err
	}
	return u, u.Validate()
}

func (r *PgxUserRepository) SetPassword(ctx context.Context, id user.ID, password user.PasswordHash) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE "user" SET password_hash = $2 WHERE id = $1`,
		int64(id),
		string(password),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserDoesNotExist
	}
	return nil
}

func (r *PgxUserRepository) Delete(ctx context.Context, id user.ID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM "user" WHERE id = $1`, int64(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserDoesNotExist
	}
	return nil
}

func (r *PgxUserRepository) decode(row pgx.Row) (u user.User, err error) {
	u, err = scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if err != nil {
		return u, err
	}
	return u, u.Validate()
}

func scanUser(row pgx.Row) (u user.User, err error) {
	var (
		id           int64
		email        string
		name         string
		passwordHash string
		createdAt    time.Time
		updatedAt    time.Time
	)
	err = row.Scan(&id, &email, &name, &passwordHash, &createdAt, &updatedAt)
	if err != nil {
		return u, err
	}
	return user.User{
		ID:           user.ID(id),
		Email:        c.Email(email),
		Name:         name,
		PasswordHash: user.PasswordHash(passwordHash),
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}, nil
}

func isEmailUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.Code == pgerrcode.UniqueViolation &&
		pgErr.ConstraintName == EMAIL_CONSTRAINT_NAME
}
