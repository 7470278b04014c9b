package public

import (
	"errors"

	"github.com/ferreguly-next/internal/http/response"
	"github.com/ferreguly-next/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

var cartItemErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidOrderItem, code: response.CodeBadRequest, key: "error.cart_item_invalid"},
	{target: service.ErrProductNotAvailable, code: response.CodeBadRequest, key: "error.product_not_available"},
	{target: service.ErrOutOfStock, code: response.CodeBadRequest, key: "error.out_of_stock"},
	{target: service.ErrQuantityExceedsStock, code: response.CodeBadRequest, key: "error.quantity_exceeds_stock"},
	{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.cart_item_not_found"},
}

var addressErrorRules = []mappedHandlerError{
	{target: service.ErrValidation, code: response.CodeBadRequest, key: "error.address_invalid"},
	{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.address_not_found"},
}
