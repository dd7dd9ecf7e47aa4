package model

import (
	"time"
)

// 本系統的資料列只會新增，不會更新或刪除
// 僅保留建立與更新時間供稽核
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
