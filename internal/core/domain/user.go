package domain

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Role is the authorization level assigned to a user.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidRole = errors.New("invalid role")
var ErrForbidden = errors.New("access forbidden")

// ParseRole maps a role string to a Role, case-insensitively.
// An empty string defaults to RoleEmployee.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return RoleEmployee, nil
	case "admin":
		return RoleAdmin, nil
	case "manager":
		return RoleManager, nil
	case "employee":
		return RoleEmployee, nil
	}
	return "", ErrInvalidRole
}

// bcryptMarker is the prefix every bcrypt-encoded hash starts with ("$2a$",
// "$2b$", "$2y$"). Stored credentials without it are legacy plaintext values
// awaiting migration.
const bcryptMarker = "$2"

// User models an authenticated actor in the system.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	DepartmentID string    `json:"department_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewUser builds a User with the raw password hashed into the modern format.
func NewUser(username, email, password string, role Role) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// HasModernHash reports whether the stored credential is bcrypt-encoded,
// as opposed to a legacy plaintext-equivalent value.
func (u *User) HasModernHash() bool {
	return strings.HasPrefix(u.PasswordHash, bcryptMarker)
}
