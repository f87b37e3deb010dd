package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleSuperuser = "superuser"
	RoleStaff     = "staff"
)

type Admin struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password" json:"-"`
	Role         string    `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

func (a *Admin) IsSuperuser() bool {
	return a.Role == RoleSuperuser
}
