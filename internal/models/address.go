package models

import "time"

// Address 收货地址表
type Address struct {
	ID             uint      `gorm:"primarykey" json:"id"`                          // 主键
	UserID         uint      `gorm:"not null;index" json:"user_id"`                 // 所属用户ID
	FirstName      string    `gorm:"type:varchar(100);not null" json:"first_name"`  // 收件人名
	LastName       string    `gorm:"type:varchar(100);not null" json:"last_name"`   // 收件人姓
	Phone          string    `gorm:"type:varchar(20);not null" json:"phone"`        // 联系电话
	Email          string    `gorm:"type:varchar(200)" json:"email"`                // 联系邮箱
	Street         string    `gorm:"type:varchar(200);not null" json:"street"`      // 街道
	ExteriorNumber string    `gorm:"type:varchar(20);not null" json:"exterior_number"` // 门牌号
	InteriorNumber string    `gorm:"type:varchar(20)" json:"interior_number"`       // 室内号（可选）
	Neighborhood   string    `gorm:"type:varchar(100);not null" json:"neighborhood"` // 社区/街区
	City           string    `gorm:"type:varchar(100);not null" json:"city"`        // 城市
	State          string    `gorm:"type:varchar(100);not null" json:"state"`       // 州/省
	PostalCode     string    `gorm:"type:varchar(10);not null" json:"postal_code"`  // 邮政编码
	CreatedAt      time.Time `gorm:"index" json:"created_at"`                       // 创建时间
	UpdatedAt      time.Time `json:"updated_at"`                                    // 更新时间
}

// TableName 指定表名
func (Address) TableName() string {
	return "addresses"
}

// RecipientName 返回收件人全名
func (a Address) RecipientName() string {
	if a.FirstName == "" {
		return a.LastName
	}
	if a.LastName == "" {
		return a.FirstName
	}
	return a.FirstName + " " + a.LastName
}
