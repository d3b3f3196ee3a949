// api/model/offer.go
package model

import (
	"time"

	"github.com/firatsalmanoglu/firesafe-api/authz"
)

// Offer request lifecycle states. Providers may only respond while the
// request is still Aktif.
const (
	OfferRequestActive    = "Aktif"
	OfferRequestCancelled = "Iptal"
	OfferRequestCompleted = "Tamamlandi"
)

// OfferRequest is a customer's call for quotes, visible to every provider.
type OfferRequest struct {
	ID           string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CreatorID    string     `json:"creator_id" gorm:"type:varchar(36);not null;index"`
	CreatorInsID string     `json:"creator_ins_id" gorm:"type:varchar(36);not null;index"`
	Status       string     `json:"status" gorm:"type:varchar(20);not null;default:'Aktif';index"`
	Details      string     `json:"details,omitempty" gorm:"type:text"`
	NeedsDate    *time.Time `json:"needs_date,omitempty"`
	CreatedAt    time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

func (OfferRequest) TableName() string {
	return "offer_requests"
}

func (r OfferRequest) Ownership() authz.Ownership {
	return authz.Ownership{
		CreatorID:    r.CreatorID,
		CreatorInsID: r.CreatorInsID,
		Status:       r.Status,
	}
}

// OfferCard is a provider's quote, usually in answer to an offer request.
type OfferCard struct {
	ID             string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OfferRequestID string     `json:"offer_request_id,omitempty" gorm:"type:varchar(36);index"`
	CreatorID      string     `json:"creator_id" gorm:"type:varchar(36);not null;index"`
	CreatorInsID   string     `json:"creator_ins_id" gorm:"type:varchar(36);not null;index"`
	RecipientID    string     `json:"recipient_id" gorm:"type:varchar(36);index"`
	RecipientInsID string     `json:"recipient_ins_id" gorm:"type:varchar(36);not null;index"`
	Amount         float64    `json:"amount"`
	Currency       string     `json:"currency" gorm:"type:varchar(10);default:'TL'"`
	Details        string     `json:"details,omitempty" gorm:"type:text"`
	Status         string     `json:"status" gorm:"type:varchar(20);default:'Aktif'"`
	ValidityDate   *time.Time `json:"validity_date,omitempty"`
	CreatedAt      time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

func (OfferCard) TableName() string {
	return "offer_cards"
}

func (o OfferCard) Ownership() authz.Ownership {
	return authz.Ownership{
		CreatorID:      o.CreatorID,
		CreatorInsID:   o.CreatorInsID,
		RecipientID:    o.RecipientID,
		RecipientInsID: o.RecipientInsID,
	}
}
