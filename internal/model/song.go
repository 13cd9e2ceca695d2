package model

import "time"

// Song 是映射数据库表的结构体
// Sequence 存前端生成的 JSON 串，后端只负责存取，不解析内容
type Song struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 归属用户，创建后不可变更
	UserID   string `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Title    string `gorm:"type:varchar(255);not null" json:"title"`
	Sequence string `gorm:"type:text" json:"sequence"`

	// 可选的音乐元信息
	KeyInfo string `gorm:"type:varchar(100)" json:"key_info,omitempty"`
	BPM     int    `json:"bpm,omitempty"`
	Notes   string `gorm:"type:text" json:"notes,omitempty"`

	// 可见性开关：false 只有作者可见，true 任何人可读
	IsPublic bool `gorm:"default:false;index" json:"is_public"`
}

// TableName 强制指定表名
func (Song) TableName() string {
	return "songs"
}
