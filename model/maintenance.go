// api/model/maintenance.go
package model

import (
	"time"

	"github.com/firatsalmanoglu/firesafe-api/authz"
)

// MaintenanceCard records one service visit on a device. The provider side
// writes and manages it; the customer side only reads it.
type MaintenanceCard struct {
	ID                  string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	DeviceID            string     `json:"device_id" gorm:"type:varchar(36);not null;index"`
	ProviderID          string     `json:"provider_id" gorm:"type:varchar(36);index"`
	ProviderInsID       string     `json:"provider_ins_id" gorm:"type:varchar(36);not null;index"`
	CustomerInsID       string     `json:"customer_ins_id" gorm:"type:varchar(36);not null;index"`
	Details             string     `json:"details,omitempty" gorm:"type:text"`
	MaintenanceDate     time.Time  `json:"maintenance_date" gorm:"not null"`
	NextMaintenanceDate *time.Time `json:"next_maintenance_date,omitempty"`
	CreatedAt           time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt           time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

func (MaintenanceCard) TableName() string {
	return "maintenance_cards"
}

func (m MaintenanceCard) Ownership() authz.Ownership {
	return authz.Ownership{
		ProviderInsID: m.ProviderInsID,
		CustomerInsID: m.CustomerInsID,
	}
}
