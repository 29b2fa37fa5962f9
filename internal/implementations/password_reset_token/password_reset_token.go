package passwordresettoken

import (
	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/user"

	"github.com/google/uuid"
)

// UUID generates random (version 4) token identifiers.
type UUID struct{}

func NewUUID() *UUID {
	return &UUID{}
}

func (g *UUID) GenerateToken() user.PasswordResetTokenID {
	return user.PasswordResetTokenID(uuid.NewString())
}
