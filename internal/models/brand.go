package models

import (
	"time"

	"gorm.io/gorm"
)

// Brand 商品品牌表
type Brand struct {
	ID          uint           `gorm:"primarykey" json:"id"`                 // 主键
	Name        string         `gorm:"uniqueIndex;not null" json:"name"`     // 品牌名称
	Description string         `gorm:"type:varchar(500)" json:"description"` // 品牌描述
	IsActive    bool           `gorm:"default:true;index" json:"is_active"`  // 是否启用
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`              // 创建时间
	UpdatedAt   time.Time      `json:"updated_at"`                           // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                       // 软删除时间
}

// TableName 指定表名
func (Brand) TableName() string {
	return "brands"
}
