package authtoken

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	e "github.com/d1d2-apps/ewallet-backend/internal/core/domain/errors"
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/user"

	"github.com/golang-jwt/jwt/v5"
)

const ISSUER = "ewallet"

type JWT struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWT(secret string, ttl time.Duration, now func() time.Time) *JWT {
	if secret == "" {
		panic(e.NewEmptyArgumentError("secret"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &JWT{secret: []byte(secret), ttl: ttl, now: now}
}

func (j *JWT) IssueToken(userID user.ID) (user.AuthToken, error) {
	now := j.now()
	claims := jwt.RegisteredClaims{
		Issuer:    ISSUER,
		Subject:   strconv.FormatInt(int64(userID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("could not sign auth token: %w", err)
	}
	return user.AuthToken(signed), nil
}

func (j *JWT) ParseToken(token user.AuthToken) (user.ID, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(
		string(token),
		claims,
		func(t *jwt.Token) (interface{}, error) {
			return j.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(ISSUER),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		return 0, errors.Join(user.ErrInvalidAuthToken, err)
	}
	if !parsed.Valid {
		return 0, user.ErrInvalidAuthToken
	}
	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, user.ErrInvalidAuthToken
	}
	return user.ID(id), nil
}
