package domain

import (
	"fmt"
	"strings"
	"time"

	"carbon-footprint/backend/internal/emission"
)

// User owns category records. Deleting a user deletes every record it owns.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate validates the user for persistence. Returns an error describing the first validation failure.
func (u *User) Validate() error {
	if u.Email == "" {
		return fmt.Errorf("%w: email is required", emission.ErrInvalidArgument)
	}
	if at := strings.Index(u.Email, "@"); at <= 0 || at == len(u.Email)-1 {
		return fmt.Errorf("%w: invalid email %q", emission.ErrInvalidArgument, u.Email)
	}
	return nil
}
