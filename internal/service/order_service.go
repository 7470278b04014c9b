package service

import (
	"strings"
	"time"

	"github.com/ferreguly-next/internal/constants"
	"github.com/ferreguly-next/internal/models"
	"github.com/ferreguly-next/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderService 订单业务服务
type OrderService struct {
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	addressRepo repository.AddressRepository
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository, cartRepo repository.CartRepository, productRepo repository.ProductRepository, addressRepo repository.AddressRepository) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		addressRepo: addressRepo,
	}
}

// PlaceOrderInput 下单输入
type PlaceOrderInput struct {
	UserID            uint
	ShippingAddressID uint
}

type placementLine struct {
	item    models.CartItem
	product models.Product
}

// PlaceOrder 下单：校验购物车与库存，事务内建单、扣库存并清空购物车
func (s *OrderService) PlaceOrder(input PlaceOrderInput) (*models.Order, error) {
	if input.UserID == 0 {
		return nil, ErrValidation
	}

	items, err := s.cartRepo.ListByUser(input.UserID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	lines := make([]placementLine, 0, len(items))
	for _, item := range items {
		product := item.Product
		if product == nil || product.ID == 0 {
			p, err := s.productRepo.GetByID(item.ProductID)
			if err != nil {
				return nil, err
			}
			product = p
		}
		if product == nil || !product.IsActive {
			return nil, ErrProductNotAvailable
		}
		if item.Quantity > product.Stock {
			return nil, &InsufficientStockError{
				ProductID:   product.ID,
				ProductName: product.Name,
				Available:   product.Stock,
			}
		}
		lines = append(lines, placementLine{item: item, product: *product})
	}

	addressCount, err := s.addressRepo.CountByUser(input.UserID)
	if err != nil {
		return nil, err
	}
	if addressCount == 0 {
		return nil, ErrNoAddress
	}
	address, err := s.addressRepo.GetByID(input.ShippingAddressID)
	if err != nil {
		return nil, err
	}
	if address == nil || address.UserID != input.UserID {
		return nil, ErrNotFound
	}

	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.product.Price.Mul(decimal.NewFromInt(int64(line.item.Quantity))))
	}

	var created *models.Order
	err = s.orderRepo.Transaction(func(tx *gorm.DB) error {
		txOrder := s.orderRepo.WithTx(tx)
		txProduct := s.productRepo.WithTx(tx)
		txCart := s.cartRepo.WithTx(tx)

		now := time.Now()
		addressID := address.ID
		order := &models.Order{
			UserID:            input.UserID,
			ShippingAddressID: &addressID,
			Status:            constants.OrderStatusPending,
			Subtotal:          models.NewMoneyFromDecimal(subtotal),
			Total:             models.NewMoneyFromDecimal(subtotal),
			CreatedAt:         now,
			UpdatedAt:         now,
		}

		orderItems := make([]models.OrderItem, 0, len(lines))
		for _, line := range lines {
			// 单价在此刻冻结，后续改价不影响已生成订单
			orderItems = append(orderItems, models.OrderItem{
				ProductID:   line.product.ID,
				ProductName: line.product.Name,
				UnitPrice:   line.product.Price,
				Quantity:    line.item.Quantity,
				CreatedAt:   now,
				UpdatedAt:   now,
			})
		}

		if err := txOrder.Create(order, orderItems); err != nil {
			return err
		}

		for _, line := range lines {
			affected, err := txProduct.DecrementStock(line.product.ID, line.item.Quantity)
			if err != nil {
				return err
			}
			if affected == 0 {
				// 并发下单导致库存被先占用，整单回滚
				return &InsufficientStockError{
					ProductID:   line.product.ID,
					ProductName: line.product.Name,
					Available:   line.product.Stock,
				}
			}
		}

		if err := txCart.ClearByUser(input.UserID); err != nil {
			return err
		}

		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ListByUser 用户订单列表
func (s *OrderService) ListByUser(userID uint, page, pageSize int) ([]models.Order, int64, error) {
	if userID == 0 {
		return nil, 0, ErrValidation
	}
	return s.orderRepo.ListByUser(repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		UserID:   userID,
	})
}

// GetByIDAndUser 用户订单详情（仅限本人）
func (s *OrderService) GetByIDAndUser(id, userID uint) (*models.Order, error) {
	if id == 0 || userID == 0 {
		return nil, ErrValidation
	}
	order, err := s.orderRepo.GetByIDAndUser(id, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	return order, nil
}

// ListAdmin 管理端订单列表
func (s *OrderService) ListAdmin(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	if filter.Status != "" && !isValidOrderStatus(filter.Status) {
		return nil, 0, ErrUnknownStatus
	}
	return s.orderRepo.ListAdmin(filter)
}

// GetByID 管理端订单详情
func (s *OrderService) GetByID(id uint) (*models.Order, error) {
	if id == 0 {
		return nil, ErrValidation
	}
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	return order, nil
}

// UpdateStatus 更新订单状态（状态集合外拒绝，集合内任意切换）
func (s *OrderService) UpdateStatus(id uint, status string) (*models.Order, error) {
	normalized := strings.ToLower(strings.TrimSpace(status))
	if !isValidOrderStatus(normalized) {
		return nil, ErrUnknownStatus
	}

	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}

	if err := s.orderRepo.UpdateStatus(order.ID, normalized); err != nil {
		return nil, err
	}
	order.Status = normalized
	return order, nil
}

func isValidOrderStatus(status string) bool {
	for _, s := range constants.OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}
