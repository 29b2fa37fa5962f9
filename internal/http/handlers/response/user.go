package response

import (
	"time"

	"github.com/d1d2-apps/ewallet-backend/internal/core/domain/user"
)

// User never carries the password hash.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) FromDomainUser(du user.User) {
	u.ID = int64(du.ID)
	u.Email = string(du.Email)
	u.Name = du.Name
	u.CreatedAt = du.CreatedAt
	u.UpdatedAt = du.UpdatedAt
}
