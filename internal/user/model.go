package user

import (
	"time"

	"github.com/lib/pq"
)

const (
	RoleUser      = "user"
	RoleRecruiter = "recruiter"
	RoleAdmin     = "admin"
)

type User struct {
	ID           uint64         `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"size:50;not null" json:"name"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	Role         string         `gorm:"type:text;not null;default:'user'" json:"role"`
	Skills       pq.StringArray `gorm:"type:text[];not null;default:'{}'" json:"skills"`
	Experience   float64        `gorm:"not null;default:0" json:"experience"`
	Education    string         `gorm:"type:text;not null;default:''" json:"education"`
	CreatedAt    time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}
