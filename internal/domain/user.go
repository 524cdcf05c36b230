// File: internal/domain/user.go
package domain

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Role values, ordered from widest to narrowest reach.
const (
	RoleSuperAdmin  = "super_admin"
	RoleBranchAdmin = "branch_admin"
	RoleGroupLeader = "group_leader"
	RoleMember      = "member"
)

// ValidRoles lists every role the users table accepts.
var ValidRoles = []string{RoleSuperAdmin, RoleBranchAdmin, RoleGroupLeader, RoleMember}

type User struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-"`
	Role      string    `json:"role" gorm:"not null;default:member"`
	BranchID  *uint     `json:"branch_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HashPassword securely hashes the user's password.
func (u *User) HashPassword(password string) error {
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

// ValidatePassword compares a plain-text password with the user's hashed password.
func (u *User) ValidatePassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
}

// Elevated reports whether the user's role grants unrestricted reads
// across branches and groups.
func (u *User) Elevated() bool {
	return u.Role == RoleSuperAdmin
}

func (u *User) IsValid() error {
	if len(u.Name) < 2 {
		return errors.New("name must be at least 2 characters")
	}
	if !strings.Contains(u.Email, "@") {
		return errors.New("a valid email is required")
	}
	if !IsValidRole(u.Role) {
		return errors.New("unknown role: " + u.Role)
	}
	return nil
}

// IsValidRole reports whether role is one of the accepted role values.
func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}

// Principal is the verified identity attached to a request after the
// session token has been checked. Handlers never trust client-supplied
// user, role or branch values; they read them from here.
type Principal struct {
	UserID   uint
	Role     string
	BranchID *uint
}

// Elevated reports whether the principal may read across all branches
// and groups.
func (p Principal) Elevated() bool {
	return p.Role == RoleSuperAdmin
}
