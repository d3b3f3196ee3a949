// api/model/isg_member.go
package model

import "time"

// IsgMember is an entry on the workplace safety-officer roster. The roster
// is public; it carries no ownership view because visibility is unscoped.
type IsgMember struct {
	ID            string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name          string    `json:"name" gorm:"type:varchar(100);not null"`
	InstitutionID string    `json:"institution_id,omitempty" gorm:"type:varchar(36);index"`
	Phone         string    `json:"phone,omitempty" gorm:"type:varchar(20)"`
	Email         string    `json:"email,omitempty" gorm:"type:varchar(100)"`
	Certificate   string    `json:"certificate,omitempty" gorm:"type:varchar(100)"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (IsgMember) TableName() string {
	return "isg_members"
}
