package i18n

// messages 按语言划分的文案表，key 与 handler/middleware 保持一致
var messages = map[string]map[string]string{
	"es": {
		"error.internal":             "Error interno del servidor",
		"error.bad_request":          "Solicitud inválida",
		"error.validation":           "Los datos enviados no son válidos",
		"error.unauthorized":         "No autorizado",
		"error.forbidden":            "No tiene permisos para realizar esta operación",
		"error.not_found":            "Recurso no encontrado",
		"error.invalid_id":           "Identificador inválido",
		"error.user_id_invalid":      "Sesión inválida",
		"error.user_id_type_invalid": "Sesión inválida",

		"error.jwt_secret_missing":   "Autenticación no disponible",
		"error.auth_header_missing":  "Falta el encabezado de autorización",
		"error.auth_header_invalid":  "Encabezado de autorización inválido",
		"error.token_invalid":        "Token inválido o expirado",
		"error.user_not_found":       "Usuario no encontrado",
		"error.user_disabled":        "La cuenta está deshabilitada",
		"error.email_exists":         "El correo ya está registrado",
		"error.email_invalid":        "El correo no es válido",
		"error.invalid_credentials":  "Correo o contraseña incorrectos",
		"error.password_invalid":     "La contraseña actual es incorrecta",
		"error.weak_password":        "La contraseña no cumple la política de seguridad",
		"error.password_min_length":  "La contraseña debe tener al menos %d caracteres",
		"error.password_require_upper":   "La contraseña debe incluir una letra mayúscula",
		"error.password_require_lower":   "La contraseña debe incluir una letra minúscula",
		"error.password_require_number":  "La contraseña debe incluir un número",
		"error.password_require_special": "La contraseña debe incluir un carácter especial",

		"error.category_not_found": "La categoría no existe",
		"error.brand_not_found":    "La marca no existe",
		"error.product_not_found":  "El producto no existe",
		"error.name_exists":        "El nombre ya está en uso",
		"error.category_in_use":    "La categoría tiene productos asociados",
		"error.brand_in_use":       "La marca tiene productos asociados",

		"error.product_not_available":   "El producto no está disponible",
		"error.out_of_stock":            "El producto no tiene existencias",
		"error.quantity_exceeds_stock":  "La cantidad supera las existencias disponibles",
		"error.cart_item_invalid":       "Artículo de carrito inválido",
		"error.cart_item_not_found":     "El artículo no está en su carrito",

		"error.cart_empty":           "El carrito está vacío",
		"error.insufficient_stock":   "Existencias insuficientes de %s (disponibles: %d)",
		"error.no_address":           "Debe registrar una dirección de envío antes de ordenar",
		"error.address_not_found":    "La dirección no existe",
		"error.address_invalid":      "Los datos de la dirección están incompletos",
		"error.order_not_found":      "La orden no existe",
		"error.order_status_invalid": "Estado de orden desconocido",

		"error.role_invalid": "Rol de usuario desconocido",

		"error.register_failed":        "No se pudo completar el registro",
		"error.login_failed":           "No se pudo iniciar sesión",
		"error.profile_update_failed":  "No se pudo actualizar el perfil",
		"error.password_change_failed": "No se pudo cambiar la contraseña",
		"error.catalog_fetch_failed":   "No se pudo consultar el catálogo",
		"error.cart_fetch_failed":      "No se pudo consultar el carrito",
		"error.cart_update_failed":     "No se pudo actualizar el carrito",
		"error.order_create_failed":    "No se pudo crear la orden",
		"error.order_fetch_failed":     "No se pudo consultar la orden",
		"error.order_update_failed":    "No se pudo actualizar la orden",
		"error.address_save_failed":    "No se pudo guardar la dirección",
		"error.product_save_failed":    "No se pudo guardar el producto",
		"error.category_save_failed":   "No se pudo guardar la categoría",
		"error.brand_save_failed":      "No se pudo guardar la marca",
		"error.user_fetch_failed":      "No se pudo consultar el usuario",
		"error.user_update_failed":     "No se pudo actualizar el usuario",
	},
	"en": {
		"error.internal":             "Internal server error",
		"error.bad_request":          "Invalid request",
		"error.validation":           "Submitted data is invalid",
		"error.unauthorized":         "Unauthorized",
		"error.forbidden":            "You do not have permission to perform this operation",
		"error.not_found":            "Resource not found",
		"error.invalid_id":           "Invalid identifier",
		"error.user_id_invalid":      "Invalid session",
		"error.user_id_type_invalid": "Invalid session",

		"error.jwt_secret_missing":   "Authentication unavailable",
		"error.auth_header_missing":  "Missing authorization header",
		"error.auth_header_invalid":  "Invalid authorization header",
		"error.token_invalid":        "Invalid or expired token",
		"error.user_not_found":       "User not found",
		"error.user_disabled":        "Account is disabled",
		"error.email_exists":         "Email is already registered",
		"error.email_invalid":        "Email is not valid",
		"error.invalid_credentials":  "Incorrect email or password",
		"error.password_invalid":     "Current password is incorrect",
		"error.weak_password":        "Password does not meet the security policy",
		"error.password_min_length":  "Password must be at least %d characters",
		"error.password_require_upper":   "Password must include an uppercase letter",
		"error.password_require_lower":   "Password must include a lowercase letter",
		"error.password_require_number":  "Password must include a number",
		"error.password_require_special": "Password must include a special character",

		"error.category_not_found": "Category does not exist",
		"error.brand_not_found":    "Brand does not exist",
		"error.product_not_found":  "Product does not exist",
		"error.name_exists":        "Name is already in use",
		"error.category_in_use":    "Category still has products",
		"error.brand_in_use":       "Brand still has products",

		"error.product_not_available":   "Product is not available",
		"error.out_of_stock":            "Product is out of stock",
		"error.quantity_exceeds_stock":  "Quantity exceeds available stock",
		"error.cart_item_invalid":       "Invalid cart item",
		"error.cart_item_not_found":     "Item is not in your cart",

		"error.cart_empty":           "Cart is empty",
		"error.insufficient_stock":   "Insufficient stock for %s (available: %d)",
		"error.no_address":           "You must register a shipping address before ordering",
		"error.address_not_found":    "Address does not exist",
		"error.address_invalid":      "Address data is incomplete",
		"error.order_not_found":      "Order does not exist",
		"error.order_status_invalid": "Unknown order status",

		"error.role_invalid": "Unknown user role",

		"error.register_failed":        "Registration could not be completed",
		"error.login_failed":           "Could not sign in",
		"error.profile_update_failed":  "Could not update profile",
		"error.password_change_failed": "Could not change password",
		"error.catalog_fetch_failed":   "Could not fetch catalog",
		"error.cart_fetch_failed":      "Could not fetch cart",
		"error.cart_update_failed":     "Could not update cart",
		"error.order_create_failed":    "Could not create order",
		"error.order_fetch_failed":     "Could not fetch order",
		"error.order_update_failed":    "Could not update order",
		"error.address_save_failed":    "Could not save address",
		"error.product_save_failed":    "Could not save product",
		"error.category_save_failed":   "Could not save category",
		"error.brand_save_failed":      "Could not save brand",
		"error.user_fetch_failed":      "Could not fetch user",
		"error.user_update_failed":     "Could not update user",
	},
}
