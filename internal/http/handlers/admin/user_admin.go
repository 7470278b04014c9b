package admin

import (
	"errors"
	"strconv"

	"github.com/ferreguly-next/internal/http/response"
	"github.com/ferreguly-next/internal/repository"
	"github.com/ferreguly-next/internal/service"

	"github.com/gin-gonic/gin"
)

// UpdateUserRequest 管理端更新用户请求
type UpdateUserRequest struct {
	Email     string `json:"email" binding:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Role      string `json:"role" binding:"required"`
	IsActive  bool   `json:"is_active"`
}

// ListUsers 用户列表，支持关键字/角色/状态过滤
func (h *Handler) ListUsers(c *gin.Context) {
	page, pageSize := parsePagination(c)

	var isActive *bool
	if raw := trimQuery(c, "is_active"); raw != "" {
		if parsed, err := strconv.ParseBool(raw); err == nil {
			isActive = &parsed
		}
	}

	users, total, err := h.UserService.List(repository.UserListFilter{
		Page:     page,
		PageSize: pageSize,
		Keyword:  trimQuery(c, "keyword"),
		Role:     trimQuery(c, "role"),
		IsActive: isActive,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.user_fetch_failed", err)
		return
	}

	response.SuccessWithPage(c, users, response.BuildPagination(page, pageSize, total))
}

// GetUser 用户详情
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	user, err := h.UserService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.user_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.user_fetch_failed", err)
		return
	}

	response.Success(c, user)
}

// UpdateUser 更新用户资料、角色与启用状态
func (h *Handler) UpdateUser(c *gin.Context) {
	adminID, ok := getAdminID(c)
	if !ok {
		return
	}
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	user, err := h.UserService.AdminUpdate(id, service.AdminUpdateUserInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Role:      req.Role,
		IsActive:  req.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "error.user_not_found", nil)
		case errors.Is(err, service.ErrInvalidEmail):
			respondError(c, response.CodeBadRequest, "error.email_invalid", nil)
		case errors.Is(err, service.ErrEmailExists):
			respondError(c, response.CodeBadRequest, "error.email_exists", nil)
		case errors.Is(err, service.ErrValidation):
			respondError(c, response.CodeBadRequest, "error.role_invalid", nil)
		default:
			respondError(c, response.CodeInternal, "error.user_update_failed", err)
		}
		return
	}

	requestLog(c).Infow("user_updated_by_admin",
		"user_id", user.ID,
		"role", user.Role,
		"is_active", user.IsActive,
		"admin_id", adminID,
	)
	response.Success(c, user)
}
