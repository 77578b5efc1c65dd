// File: entities/user.go
package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Email    string    `gorm:"uniqueIndex;not null" json:"email"`
	Password string    `json:"-"`
	FullName string    `json:"full_name"`
	GoogleID *string   `gorm:"uniqueIndex" json:"google_id,omitempty"`

	Timestamp
}
