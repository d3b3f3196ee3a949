// api/model/appointment.go
package model

import (
	"time"

	"github.com/firatsalmanoglu/firesafe-api/authz"
)

// Appointment is a scheduled service visit, created by the provider side
// for a customer-side recipient.
type Appointment struct {
	ID             string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Title          string    `json:"title" gorm:"type:varchar(150);not null"`
	CreatorID      string    `json:"creator_id" gorm:"type:varchar(36);not null;index"`
	CreatorInsID   string    `json:"creator_ins_id" gorm:"type:varchar(36);not null;index"`
	RecipientID    string    `json:"recipient_id" gorm:"type:varchar(36);index"`
	RecipientInsID string    `json:"recipient_ins_id" gorm:"type:varchar(36);not null;index"`
	Start          time.Time `json:"start" gorm:"not null;index"`
	End            time.Time `json:"end"`
	Notes          string    `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Appointment) TableName() string {
	return "appointments"
}

func (a Appointment) Ownership() authz.Ownership {
	return authz.Ownership{
		CreatorID:      a.CreatorID,
		CreatorInsID:   a.CreatorInsID,
		RecipientID:    a.RecipientID,
		RecipientInsID: a.RecipientInsID,
	}
}
