// api/model/log.go
package model

import "time"

// Audit action names, stored as lookup rows and referenced by id.
const (
	ActionCreate = "EKLE"
	ActionUpdate = "GÜNCELLE"
	ActionDelete = "SİL"
)

// Log is one immutable audit entry: who did what to which table, from where.
// Rows are only ever inserted.
type Log struct {
	ID       string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID   string    `json:"user_id" gorm:"type:varchar(36);not null;index"`
	ActionID string    `json:"action_id" gorm:"type:varchar(36);not null;index"`
	TableID  string    `json:"table_id" gorm:"type:varchar(36);not null;index"`
	IP       string    `json:"ip" gorm:"type:varchar(45)"`
	Date     time.Time `json:"date" gorm:"autoCreateTime;index"`
}

func (Log) TableName() string {
	return "logs"
}

// Action is a lookup row, created lazily on first use. The unique index on
// Name is what guarantees at most one row per action kind; the get-or-create
// in the recorder is not atomic on its own.
type Action struct {
	ID   string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name string `json:"name" gorm:"type:varchar(40);uniqueIndex;not null"`
}

func (Action) TableName() string {
	return "actions"
}

// Table is the lookup row naming the resource table a log entry refers to.
type Table struct {
	ID   string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name string `json:"name" gorm:"type:varchar(60);uniqueIndex;not null"`
}

func (Table) TableName() string {
	return "tables"
}
