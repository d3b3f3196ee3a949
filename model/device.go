// api/model/device.go
package model

import (
	"time"

	"github.com/firatsalmanoglu/firesafe-api/authz"
)

// Device is one piece of fire-safety equipment: extinguisher, hose cabinet,
// alarm panel and so on. It always belongs to a customer-side user and may
// be assigned to a provider-side user for servicing.
type Device struct {
	ID              string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Serial          string     `json:"serial" gorm:"type:varchar(64);uniqueIndex;not null"`
	Kind            string     `json:"kind" gorm:"type:varchar(60);not null"`
	Location        string     `json:"location,omitempty" gorm:"type:varchar(150)"`
	OwnerID         string     `json:"owner_id" gorm:"type:varchar(36);not null;index"`
	OwnerInsID      string     `json:"owner_ins_id" gorm:"type:varchar(36);index"`
	ProviderID      string     `json:"provider_id,omitempty" gorm:"type:varchar(36);index"`
	ProviderInsID   string     `json:"provider_ins_id,omitempty" gorm:"type:varchar(36);index"`
	ProductionDate  *time.Time `json:"production_date,omitempty"`
	LastMaintenance *time.Time `json:"last_maintenance,omitempty"`
	NextMaintenance *time.Time `json:"next_maintenance,omitempty"`
	CreatedAt       time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Device) TableName() string {
	return "devices"
}

func (d Device) Ownership() authz.Ownership {
	return authz.Ownership{
		OwnerID:       d.OwnerID,
		OwnerInsID:    d.OwnerInsID,
		ProviderID:    d.ProviderID,
		ProviderInsID: d.ProviderInsID,
	}
}

type DeviceSearchCriteria struct {
	Serial        string     `json:"serial,omitempty"`
	Kind          string     `json:"kind,omitempty"`
	OwnerInsID    string     `json:"owner_ins_id,omitempty"`
	ProviderInsID string     `json:"provider_ins_id,omitempty"`
	DueBefore     *time.Time `json:"due_before,omitempty"`
	Limit         int        `json:"limit,omitempty"`
	Offset        int        `json:"offset,omitempty"`
}
