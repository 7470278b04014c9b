package service

import (
	"strings"
	"time"

	"github.com/ferreguly-next/internal/constants"
	"github.com/ferreguly-next/internal/models"
	"github.com/ferreguly-next/internal/repository"
)

// UserService 用户管理服务（管理端）
type UserService struct {
	repo repository.UserRepository
}

// NewUserService 创建用户管理服务
func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// AdminUpdateUserInput 管理端更新用户输入
type AdminUpdateUserInput struct {
	Email     string
	FirstName string
	LastName  string
	Phone     string
	Role      string
	IsActive  bool
}

// List 用户列表
func (s *UserService) List(filter repository.UserListFilter) ([]models.User, int64, error) {
	return s.repo.List(filter)
}

// GetByID 用户详情
func (s *UserService) GetByID(id uint) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// AdminUpdate 管理端更新用户（资料、角色与启用状态）
func (s *UserService) AdminUpdate(id uint, input AdminUpdateUserInput) (*models.User, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	role := strings.ToLower(strings.TrimSpace(input.Role))
	if role != constants.RoleCustomer && role != constants.RoleAdministrator {
		return nil, ErrValidation
	}

	normalized, err := normalizeEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if normalized != user.Email {
		exist, err := s.repo.GetByEmail(normalized)
		if err != nil {
			return nil, err
		}
		if exist != nil && exist.ID != user.ID {
			return nil, ErrEmailExists
		}
	}

	user.Email = normalized
	user.FirstName = strings.TrimSpace(input.FirstName)
	user.LastName = strings.TrimSpace(input.LastName)
	user.Phone = strings.TrimSpace(input.Phone)
	user.Role = role
	user.IsActive = input.IsActive
	user.UpdatedAt = time.Now()

	if err := s.repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
