// api/model/notification.go
package model

import (
	"time"

	"github.com/firatsalmanoglu/firesafe-api/authz"
)

type Notification struct {
	ID             string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	RecipientID    string    `json:"recipient_id" gorm:"type:varchar(36);index"`
	RecipientInsID string    `json:"recipient_ins_id" gorm:"type:varchar(36);index"`
	Content        string    `json:"content" gorm:"type:text;not null"`
	IsRead         bool      `json:"is_read" gorm:"default:false"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Notification) TableName() string {
	return "notifications"
}

func (n Notification) Ownership() authz.Ownership {
	return authz.Ownership{
		RecipientID:    n.RecipientID,
		RecipientInsID: n.RecipientInsID,
	}
}
