// api/model/institution.go
package model

import (
	"time"

	"github.com/firatsalmanoglu/firesafe-api/authz"
)

// Institution kinds: a customer owns equipment, a provider services it.
const (
	InstitutionCustomer = "MUSTERI"
	InstitutionProvider = "HIZMETSAGLAYICI"
)

type Institution struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name      string    `json:"name" gorm:"type:varchar(150);not null"`
	Kind      string    `json:"kind" gorm:"type:varchar(20);not null;index"`
	Address   string    `json:"address,omitempty" gorm:"type:varchar(255)"`
	City      string    `json:"city,omitempty" gorm:"type:varchar(60)"`
	Phone     string    `json:"phone,omitempty" gorm:"type:varchar(20)"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Institution) TableName() string {
	return "institutions"
}

func (i Institution) Ownership() authz.Ownership {
	return authz.Ownership{TargetInsID: i.ID}
}
