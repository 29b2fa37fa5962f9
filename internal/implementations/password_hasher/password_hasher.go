package passwordhasher

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"

	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/user"

	"golang.org/x/crypto/bcrypt"
)

// Bcrypt peppers every password with a server side secret. The password is
// first reduced to a base64 HMAC-SHA256 digest so that bcrypt never sees more
// than 44 bytes, whatever the password length.
type Bcrypt struct {
	secret []byte
	cost   int
}

func NewBcrypt(secret string, cost int) *Bcrypt {
	return &Bcrypt{secret: []byte(secret), cost: cost}
}

func (h *Bcrypt) HashPassword(password user.RawPassword) (hash user.PasswordHash, err error) {
	bcryptHash, err := bcrypt.GenerateFromPassword(h.peppered(password), h.cost)
	if err != nil {
		return hash, err
	}
	return user.PasswordHash(bcryptHash), nil
}

func (h *Bcrypt) ValidatePassword(password user.RawPassword, hash user.PasswordHash) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), h.peppered(password))
	return err == nil
}

func (h *Bcrypt) peppered(password user.RawPassword) []byte {
	mac := hmac.New(sha256.New, h.secret)
	mac.Write([]byte(password))
	digest := mac.Sum(nil)
	encoded := make([]byte, base64.StdEncoding.EncodedLen(len(digest)))
	base64.StdEncoding.Encode(encoded, digest)
	return encoded
}
