package constants

// 订单状态常量
const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "enviado"
	OrderStatusDelivered = "entregado"
	OrderStatusCanceled  = "cancelado"
)

// OrderStatuses 订单状态全集（集合外的状态一律拒绝）
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusPaid,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCanceled,
}

// 用户角色常量
const (
	RoleCustomer      = "customer"
	RoleAdministrator = "administrator"
)

// 站点语言常量
const (
	LocaleES = "es"
	LocaleEN = "en"
)

// DefaultLocale 默认站点语言
const DefaultLocale = LocaleES

// SupportedLocales 支持的站点语言顺序（含回退顺序）
var SupportedLocales = []string{LocaleES, LocaleEN}
