package domain

import (
	"time"

	"github.com/google/uuid"
)

// RoleSuperAdmin is the only role allowed into the console.
const RoleSuperAdmin = "super_admin"

// Session is a signed-in console admin. Upstream tokens are stored sealed.
type Session struct {
	ID                 uuid.UUID `json:"id"`
	UserID             int64     `json:"user_id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	Role               string    `json:"role"`
	Country            string    `json:"country,omitempty"`
	AccessTokenSealed  string    `json:"access_token"`
	RefreshTokenSealed string    `json:"refresh_token"`
	AccessExpiresAt    time.Time `json:"access_expires_at"`
	DisplayCurrency    string    `json:"display_currency"`
	CreatedAt          time.Time `json:"created_at"`
}

// HasUser reports whether the session carries the admin's upstream user id.
func (s *Session) HasUser() bool {
	return s.UserID > 0
}

// AccessExpired reports whether the upstream access token must be refreshed.
func (s *Session) AccessExpired(now time.Time) bool {
	return !now.Before(s.AccessExpiresAt)
}
