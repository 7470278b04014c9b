package service

import (
	"errors"
	"fmt"
)

// 业务错误哨兵，handler 层统一映射为响应码与提示文案
var (
	ErrNotFound             = errors.New("记录不存在")
	ErrValidation           = errors.New("参数不合法")
	ErrEmailExists          = errors.New("邮箱已被注册")
	ErrInvalidEmail         = errors.New("邮箱格式不正确")
	ErrInvalidCredentials   = errors.New("邮箱或密码错误")
	ErrInvalidPassword      = errors.New("原密码不正确")
	ErrWeakPassword         = errors.New("密码强度不足")
	ErrUserDisabled         = errors.New("账号已被禁用")
	ErrNameExists           = errors.New("名称已存在")
	ErrCategoryInUse        = errors.New("分类下仍有商品")
	ErrBrandInUse           = errors.New("品牌下仍有商品")
	ErrCategoryNotFound     = errors.New("分类不存在")
	ErrBrandNotFound        = errors.New("品牌不存在")
	ErrProductNotAvailable  = errors.New("商品不可购买")
	ErrOutOfStock           = errors.New("商品无库存")
	ErrQuantityExceedsStock = errors.New("数量超过可用库存")
	ErrInvalidOrderItem     = errors.New("购物车参数不合法")
	ErrEmptyCart            = errors.New("购物车为空")
	ErrInsufficientStock    = errors.New("库存不足")
	ErrNoAddress            = errors.New("用户没有收货地址")
	ErrUnknownStatus        = errors.New("未知订单状态")
)

// InsufficientStockError 库存不足错误（携带商品与可用库存）
type InsufficientStockError struct {
	ProductID   uint
	ProductName string
	Available   int
}

// Error 实现 error 接口
func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("库存不足: product=%s available=%d", e.ProductName, e.Available)
}

// Unwrap 支持 errors.Is(err, ErrInsufficientStock)
func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}
