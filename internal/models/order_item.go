package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItem 订单项表（下单时冻结单价）
type OrderItem struct {
	ID          uint      `gorm:"primarykey" json:"id"`                                    // 主键
	OrderID     uint      `gorm:"index;not null" json:"order_id"`                          // 订单ID
	ProductID   uint      `gorm:"index;not null" json:"product_id"`                        // 商品ID
	ProductName string    `gorm:"not null" json:"product_name"`                            // 商品名称快照
	UnitPrice   Money     `gorm:"type:decimal(10,2);not null;default:0" json:"unit_price"` // 单价（下单时快照）
	Quantity    int       `gorm:"not null" json:"quantity"`                                // 数量
	Subtotal    Money     `gorm:"type:decimal(10,2);not null;default:0" json:"subtotal"`  // 小计
	CreatedAt   time.Time `gorm:"index" json:"created_at"`                                 // 创建时间
	UpdatedAt   time.Time `json:"updated_at"`                                              // 更新时间

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // 关联商品
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}

// BeforeSave 保存前重算小计（数量 × 单价）
func (item *OrderItem) BeforeSave(tx *gorm.DB) error {
	item.Subtotal = NewMoneyFromDecimal(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	return nil
}
