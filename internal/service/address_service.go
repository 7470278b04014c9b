package service

import (
	"strings"

	"github.com/ferreguly-next/internal/models"
	"github.com/ferreguly-next/internal/repository"
)

// AddressService 收货地址服务
type AddressService struct {
	repo repository.AddressRepository
}

// NewAddressService 创建地址服务
func NewAddressService(repo repository.AddressRepository) *AddressService {
	return &AddressService{repo: repo}
}

// AddressInput 创建/更新地址输入
type AddressInput struct {
	FirstName      string
	LastName       string
	Phone          string
	Email          string
	Street         string
	ExteriorNumber string
	InteriorNumber string
	Neighborhood   string
	City           string
	State          string
	PostalCode     string
}

func (input *AddressInput) normalize() error {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Email = strings.TrimSpace(input.Email)
	input.Street = strings.TrimSpace(input.Street)
	input.ExteriorNumber = strings.TrimSpace(input.ExteriorNumber)
	input.InteriorNumber = strings.TrimSpace(input.InteriorNumber)
	input.Neighborhood = strings.TrimSpace(input.Neighborhood)
	input.City = strings.TrimSpace(input.City)
	input.State = strings.TrimSpace(input.State)
	input.PostalCode = strings.TrimSpace(input.PostalCode)

	if input.FirstName == "" || input.LastName == "" || input.Phone == "" ||
		input.Street == "" || input.ExteriorNumber == "" || input.Neighborhood == "" ||
		input.City == "" || input.State == "" || input.PostalCode == "" {
		return ErrValidation
	}
	return nil
}

func (input AddressInput) apply(address *models.Address) {
	address.FirstName = input.FirstName
	address.LastName = input.LastName
	address.Phone = input.Phone
	address.Email = input.Email
	address.Street = input.Street
	address.ExteriorNumber = input.ExteriorNumber
	address.InteriorNumber = input.InteriorNumber
	address.Neighborhood = input.Neighborhood
	address.City = input.City
	address.State = input.State
	address.PostalCode = input.PostalCode
}

// ListByUser 用户地址列表
func (s *AddressService) ListByUser(userID uint) ([]models.Address, error) {
	if userID == 0 {
		return nil, ErrValidation
	}
	return s.repo.ListByUser(userID)
}

// Create 创建地址
func (s *AddressService) Create(userID uint, input AddressInput) (*models.Address, error) {
	if userID == 0 {
		return nil, ErrValidation
	}
	if err := input.normalize(); err != nil {
		return nil, err
	}

	address := models.Address{UserID: userID}
	input.apply(&address)
	if err := s.repo.Create(&address); err != nil {
		return nil, err
	}
	return &address, nil
}

// Update 更新地址（仅限本人）
func (s *AddressService) Update(userID, id uint, input AddressInput) (*models.Address, error) {
	address, err := s.getOwned(userID, id)
	if err != nil {
		return nil, err
	}
	if err := input.normalize(); err != nil {
		return nil, err
	}

	input.apply(address)
	if err := s.repo.Update(address); err != nil {
		return nil, err
	}
	return address, nil
}

// Delete 删除地址（仅限本人，历史订单引用置空）
func (s *AddressService) Delete(userID, id uint) error {
	address, err := s.getOwned(userID, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(address.ID)
}

func (s *AddressService) getOwned(userID, id uint) (*models.Address, error) {
	if userID == 0 || id == 0 {
		return nil, ErrValidation
	}
	address, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if address == nil || address.UserID != userID {
		return nil, ErrNotFound
	}
	return address, nil
}
