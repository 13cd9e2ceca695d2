package model

import "time"

type User struct {
	ID    string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Email string `gorm:"type:varchar(255);not null;unique;index" json:"email"`
	// Password 为空字符串表示"受邀账号"：管理员预建、尚未设置过密码，
	// 后续由本人注册补全。序列化永远不暴露。
	Password  string    `gorm:"type:varchar(255)" json:"-"`
	Name      string    `gorm:"type:varchar(255)" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName 强制指定表名
func (User) TableName() string {
	return "users"
}

// HasUsablePassword 是否已设置过可用密码（受邀账号返回 false）
func (u *User) HasUsablePassword() bool {
	return u.Password != ""
}
