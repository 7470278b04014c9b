package admin

import (
	"errors"

	"github.com/ferreguly-next/internal/http/response"
	"github.com/ferreguly-next/internal/service"

	"github.com/gin-gonic/gin"
)

// BrandRequest 创建/更新品牌请求
type BrandRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	IsActive    bool   `json:"is_active"`
}

// ListBrands 管理端品牌列表（含停用）
func (h *Handler) ListBrands(c *gin.Context) {
	brands, err := h.BrandService.List(false)
	if err != nil {
		respondError(c, response.CodeInternal, "error.catalog_fetch_failed", err)
		return
	}
	response.Success(c, brands)
}

// GetBrand 管理端品牌详情
func (h *Handler) GetBrand(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	brand, err := h.BrandService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.brand_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.catalog_fetch_failed", err)
		return
	}
	response.Success(c, brand)
}

// CreateBrand 创建品牌
func (h *Handler) CreateBrand(c *gin.Context) {
	var req BrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	brand, err := h.BrandService.Create(service.BrandInput{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			respondError(c, response.CodeBadRequest, "error.validation", nil)
		case errors.Is(err, service.ErrNameExists):
			respondError(c, response.CodeBadRequest, "error.name_exists", nil)
		default:
			respondError(c, response.CodeInternal, "error.brand_save_failed", err)
		}
		return
	}

	response.Success(c, brand)
}

// UpdateBrand 更新品牌
func (h *Handler) UpdateBrand(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req BrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	brand, err := h.BrandService.Update(id, service.BrandInput{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "error.brand_not_found", nil)
		case errors.Is(err, service.ErrValidation):
			respondError(c, response.CodeBadRequest, "error.validation", nil)
		case errors.Is(err, service.ErrNameExists):
			respondError(c, response.CodeBadRequest, "error.name_exists", nil)
		default:
			respondError(c, response.CodeInternal, "error.brand_save_failed", err)
		}
		return
	}

	response.Success(c, brand)
}

// DeleteBrand 删除品牌（仍有商品时拒绝）
func (h *Handler) DeleteBrand(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := h.BrandService.Delete(id); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "error.brand_not_found", nil)
		case errors.Is(err, service.ErrBrandInUse):
			respondError(c, response.CodeBadRequest, "error.brand_in_use", nil)
		default:
			respondError(c, response.CodeInternal, "error.brand_save_failed", err)
		}
		return
	}

	response.Success(c, nil)
}
