package user

import (
	"context"
	"crypto/md5"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	c "github.com/d1d2-apps/ewallet-backend/internal/core/domain/common"
)

type FakePasswordHasher struct{}

func NewFakePasswordHasher() *FakePasswordHasher {
	return &FakePasswordHasher{}
}

func (h *FakePasswordHasher) HashPassword(password RawPassword) (PasswordHash, error) {
	hash := md5.New()
	io.WriteString(hash, string(password))
	return PasswordHash(fmt.Sprintf("%x", hash.Sum(nil))), nil
}

func (h *FakePasswordHasher) ValidatePassword(password RawPassword, hash PasswordHash) bool {
	actualHash, err := h.HashPassword(password)
	if err != nil {
		return false
	}
	return actualHash == hash
}

type FakeAuthTokenIssuer struct {
	Issued      []ID
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeAuthTokenIssuer() *FakeAuthTokenIssuer {
	return &FakeAuthTokenIssuer{}
}

func (i *FakeAuthTokenIssuer) IssueToken(userID ID) (AuthToken, error) {
	if i.ReturnError {
		return "", fmt.Errorf("could not issue token for user %d", userID)
	}
	i.lock.Lock()
	defer i.lock.Unlock()
	i.Issued = append(i.Issued, userID)
	return AuthToken(fmt.Sprintf("token-%d", userID)), nil
}

func (i *FakeAuthTokenIssuer) ParseToken(token AuthToken) (ID, error) {
	var id ID
	if _, err := fmt.Sscanf(string(token), "token-%d", &id); err != nil {
		return 0, ErrInvalidAuthToken
	}
	return id, nil
}

type FakeUserRepository struct {
	Users       []User
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{Users: make([]User, 0, 10)}
}

func (r *FakeUserRepository) Create(ctx context.Context, input CreateUserInput) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not create user %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, u := range r.Users {
		if u.Email == input.Email {
			return u, ErrEmailAlreadyExists
		}
		if u.ID > maxID {
			maxID = u.ID
		}
	}
	u = User{
		ID:           maxID + 1,
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: input.PasswordHash,
		CreatedAt:    input.CreatedAt,
		UpdatedAt:    input.CreatedAt,
	}
	r.Users = append(r.Users, u)
	return u, nil
}

func (r *FakeUserRepository) GetByID(ctx context.Context, id ID) (u User, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if u.ID == id {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) GetByEmail(ctx context.Context, email c.Email) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not get user by email %s", email)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, u := range r.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) Update(ctx context.Context, input UpdateUserInput) (u User, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if input.Email.IsPresent {
		for _, u := range r.Users {
			if u.ID != input.ID && u.Email == input.Email.Value {
				return u, ErrEmailAlreadyExists
			}
		}
	}
	for ix, u := range r.Users {
		if u.ID == input.ID {
			if input.Email.IsPresent {
				r.Users[ix].Email = input.Email.Value
			}
			if input.Name.IsPresent {
				r.Users[ix].Name = input.Name.Value
			}
			r.Users[ix].UpdatedAt = input.UpdatedAt
			return r.Users[ix], nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) SetPassword(ctx context.Context, id ID, password PasswordHash) error {
	if r.ReturnError {
		return fmt.Errorf("could not set password for user %d", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.ID == id {
			r.Users[ix].PasswordHash = password
			return nil
		}
	}
	return ErrUserDoesNotExist
}

func (r *FakeUserRepository) Delete(ctx context.Context, id ID) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, u := range r.Users {
		if u.ID == id {
			r.Users = append(r.Users[:ix], r.Users[ix+1:]...)
			return nil
		}
	}
	return ErrUserDoesNotExist
}

type FakePasswordResetTokenRepository struct {
	Tokens          []PasswordResetToken
	ReturnError     bool
	DeactivateError error
	GetByIDCalls    int
	lock            sync.Mutex
}

func NewFakePasswordResetTokenRepository() *FakePasswordResetTokenRepository {
	return &FakePasswordResetTokenRepository{}
}

func (r *FakePasswordResetTokenRepository) Create(
	ctx context.Context,
	input CreatePasswordResetTokenInput,
) (t PasswordResetToken, err error) {
	if r.ReturnError {
		return t, fmt.Errorf("could not create password reset token %v", input.UserID)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	t = PasswordResetToken{
		ID:        input.ID,
		UserID:    input.UserID,
		IsActive:  input.IsActive,
		ExpiresIn: input.ExpiresIn,
		CreatedAt: input.CreatedAt,
	}
	r.Tokens = append(r.Tokens, t)
	return t, nil
}

func (r *FakePasswordResetTokenRepository) GetByID(
	ctx context.Context,
	id PasswordResetTokenID,
) (t PasswordResetToken, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.GetByIDCalls++
	for _, t := range r.Tokens {
		if t.ID == id {
			return t, nil
		}
	}
	return t, ErrPasswordResetTokenDoesNotExist
}

func (r *FakePasswordResetTokenRepository) GetLatestByUserID(
	ctx context.Context,
	userID ID,
) (t PasswordResetToken, err error) {
	if r.ReturnError {
		return t, fmt.Errorf("could not get password reset token for user %d", userID)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	userTokens := make([]PasswordResetToken, 0, len(r.Tokens))
	for _, t := range r.Tokens {
		if t.UserID == userID {
			userTokens = append(userTokens, t)
		}
	}
	if len(userTokens) == 0 {
		return t, ErrPasswordResetTokenDoesNotExist
	}
	sort.SliceStable(userTokens, func(i, j int) bool {
		return userTokens[i].CreatedAt.After(userTokens[j].CreatedAt)
	})
	return userTokens[0], nil
}

func (r *FakePasswordResetTokenRepository) Deactivate(ctx context.Context, id PasswordResetTokenID) error {
	if r.DeactivateError != nil {
		return r.DeactivateError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, t := range r.Tokens {
		if t.ID == id {
			r.Tokens[ix].IsActive = false
			return nil
		}
	}
	return ErrPasswordResetTokenDoesNotExist
}

func (r *FakePasswordResetTokenRepository) Count() int {
	r.lock.Lock()
	defer r.lock.Unlock()
	return len(r.Tokens)
}

type FakePasswordResetTokenGenerator struct {
	counter int
	lock    sync.Mutex
}

func NewFakePasswordResetTokenGenerator() *FakePasswordResetTokenGenerator {
	return &FakePasswordResetTokenGenerator{}
}

func (g *FakePasswordResetTokenGenerator) GenerateToken() PasswordResetTokenID {
	g.lock.Lock()
	defer g.lock.Unlock()
	g.counter++
	return PasswordResetTokenID(fmt.Sprintf("reset-token-%d", g.counter))
}

type FakePasswordResetEmailRenderer struct {
	ReturnError bool
}

func NewFakePasswordResetEmailRenderer() *FakePasswordResetEmailRenderer {
	return &FakePasswordResetEmailRenderer{}
}

func (r *FakePasswordResetEmailRenderer) RenderPasswordResetEmail(
	ctx context.Context,
	u User,
	token PasswordResetToken,
) (PasswordResetEmail, error) {
	if r.ReturnError {
		return PasswordResetEmail{}, fmt.Errorf("could not render email for user %d", u.ID)
	}
	return PasswordResetEmail{
		Subject:  "Password reset",
		HTMLBody: fmt.Sprintf("<p>%s</p><p>%s</p>", u.Name, token.ID),
	}, nil
}

// NewTestUser returns a user whose password hash is produced by FakePasswordHasher.
func NewTestUser(id ID, email c.Email, password RawPassword, now time.Time) User {
	hash, _ := NewFakePasswordHasher().HashPassword(password)
	return User{
		ID:           id,
		Email:        email,
		Name:         "Test User",
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
