package models

import (
	"time"

	"gorm.io/gorm"
)

// Order 订单表
type Order struct {
	ID                uint           `gorm:"primarykey" json:"id"`                                   // 主键
	UserID            uint           `gorm:"index;not null" json:"user_id"`                          // 用户ID
	ShippingAddressID *uint          `gorm:"index" json:"shipping_address_id,omitempty"`             // 收货地址ID（地址删除后置空）
	Status            string         `gorm:"index;not null" json:"status"`                           // 订单状态
	Subtotal          Money          `gorm:"type:decimal(10,2);not null;default:0" json:"subtotal"` // 商品小计
	Total             Money          `gorm:"type:decimal(10,2);not null;default:0" json:"total"`    // 实付金额
	CreatedAt         time.Time      `gorm:"index" json:"created_at"`                                // 创建时间
	UpdatedAt         time.Time      `gorm:"index" json:"updated_at"`                                // 更新时间
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`                                         // 软删除时间

	// 关联
	Items           []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`                                          // 订单项
	ShippingAddress *Address    `gorm:"foreignKey:ShippingAddressID;constraint:OnDelete:SET NULL" json:"shipping_address,omitempty"` // 收货地址
	User            *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`                                            // 下单用户
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
