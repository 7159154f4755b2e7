package user

import "time"

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // never return
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Roles a user can register with.
const (
	RoleFreelancer = "freelancer"
	RoleEmployer   = "employer"
)
