package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a person who can be assigned work. ResourceSerial appears in
// generated task codes as "R<serial>".
type User struct {
	ID             uuid.UUID `json:"id"              db:"id"`
	Email          string    `json:"email"           db:"email"`
	FullName       string    `json:"full_name"       db:"full_name"`
	Role           UserRole  `json:"role"            db:"role"`
	ResourceSerial int       `json:"resource_serial" db:"resource_serial"`
	CreatedAt      time.Time `json:"created_at"      db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"      db:"updated_at"`
}

// Actor is the authenticated caller of an operation.
type Actor struct {
	UserID uuid.UUID
	Role   UserRole
}
