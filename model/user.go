// api/model/user.go
package model

import (
	"time"

	"github.com/firatsalmanoglu/firesafe-api/authz"
)

type User struct {
	ID            string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name          string    `json:"name" gorm:"type:varchar(100);not null"`
	Email         string    `json:"email" gorm:"type:varchar(100);uniqueIndex"`
	Phone         string    `json:"phone,omitempty" gorm:"type:varchar(20)"`
	Role          string    `json:"role" gorm:"type:varchar(40);not null;index"`
	InstitutionID string    `json:"institution_id,omitempty" gorm:"type:varchar(36);index"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

// Ownership exposes the fields the policy engine scopes user records by.
func (u User) Ownership() authz.Ownership {
	return authz.Ownership{TargetInsID: u.InstitutionID}
}

type UserSearchCriteria struct {
	Name          string `json:"name,omitempty"`
	Email         string `json:"email,omitempty"`
	Role          string `json:"role,omitempty"`
	InstitutionID string `json:"institution_id,omitempty"`
	Limit         int    `json:"limit,omitempty"`
	Offset        int    `json:"offset,omitempty"`
}
