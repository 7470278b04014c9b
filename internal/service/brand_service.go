package service

import (
	"strings"

	"github.com/ferreguly-next/internal/models"
	"github.com/ferreguly-next/internal/repository"
)

// BrandService 品牌业务服务
type BrandService struct {
	repo        repository.BrandRepository
	productRepo repository.ProductRepository
}

// NewBrandService 创建品牌服务
func NewBrandService(repo repository.BrandRepository, productRepo repository.ProductRepository) *BrandService {
	return &BrandService{repo: repo, productRepo: productRepo}
}

// BrandInput 创建/更新品牌输入
type BrandInput struct {
	Name        string
	Description string
	IsActive    bool
}

// List 获取品牌列表
func (s *BrandService) List(onlyActive bool) ([]models.Brand, error) {
	return s.repo.List(onlyActive)
}

// GetByID 获取品牌详情
func (s *BrandService) GetByID(id uint) (*models.Brand, error) {
	brand, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, ErrNotFound
	}
	return brand, nil
}

// Create 创建品牌
func (s *BrandService) Create(input BrandInput) (*models.Brand, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrValidation
	}
	count, err := s.repo.CountByName(name, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrNameExists
	}

	brand := models.Brand{
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		IsActive:    input.IsActive,
	}
	if err := s.repo.Create(&brand); err != nil {
		return nil, err
	}
	return &brand, nil
}

// Update 更新品牌
func (s *BrandService) Update(id uint, input BrandInput) (*models.Brand, error) {
	brand, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, ErrNotFound
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrValidation
	}
	count, err := s.repo.CountByName(name, &id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrNameExists
	}

	brand.Name = name
	brand.Description = strings.TrimSpace(input.Description)
	brand.IsActive = input.IsActive

	if err := s.repo.Update(brand); err != nil {
		return nil, err
	}
	return brand, nil
}

// Delete 删除品牌（仍被商品引用时拒绝）
func (s *BrandService) Delete(id uint) error {
	brand, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if brand == nil {
		return ErrNotFound
	}

	count, err := s.productRepo.CountByBrand(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrBrandInUse
	}
	return s.repo.Delete(id)
}
