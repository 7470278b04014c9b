package models

import (
	"time"

	"gorm.io/gorm"
)

// User 用户表（客户与管理员共用，按角色区分）
type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`                                            // 主键
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`                               // 邮箱（登录账号）
	PasswordHash string         `gorm:"not null" json:"-"`                                               // 密码哈希（不返回给前端）
	FirstName    string         `gorm:"type:varchar(100)" json:"first_name"`                             // 名
	LastName     string         `gorm:"type:varchar(100)" json:"last_name"`                              // 姓
	Phone        string         `gorm:"type:varchar(20)" json:"phone"`                                   // 电话
	Role         string         `gorm:"type:varchar(20);not null;default:'customer';index" json:"role"` // 角色（customer/administrator）
	IsActive     bool           `gorm:"default:true" json:"is_active"`                                   // 账号是否可用
	LastLoginAt  *time.Time     `json:"last_login_at"`                                                   // 最后登录时间
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`                                         // 创建时间
	UpdatedAt    time.Time      `json:"updated_at"`                                                      // 更新时间
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                                                  // 软删除时间
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
