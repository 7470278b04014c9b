package i18n

import (
	"fmt"
	"strings"

	"github.com/ferreguly-next/internal/constants"

	"github.com/gin-gonic/gin"
)

// ResolveLocale 解析请求语言：query 参数优先，其次 Accept-Language，默认西班牙语
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return constants.DefaultLocale
	}
	if locale := normalizeLocale(c.Query("locale")); locale != "" {
		return locale
	}
	header := c.GetHeader("Accept-Language")
	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if locale := normalizeLocale(tag); locale != "" {
			return locale
		}
	}
	return constants.DefaultLocale
}

// T 返回指定语言的文案，缺失时回退默认语言再回退 key 本身
func T(locale, key string) string {
	if msgs, ok := messages[normalizeLocale(locale)]; ok {
		if msg, ok := msgs[key]; ok {
			return msg
		}
	}
	if msg, ok := messages[constants.DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Sprintf 返回带参数格式化后的文案
func Sprintf(locale, key string, args ...interface{}) string {
	template := T(locale, key)
	if len(args) == 0 {
		return template
	}
	return fmt.Sprintf(template, args...)
}

func normalizeLocale(raw string) string {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return ""
	}
	if idx := strings.IndexAny(normalized, "-_"); idx > 0 {
		normalized = normalized[:idx]
	}
	for _, supported := range constants.SupportedLocales {
		if normalized == supported {
			return normalized
		}
	}
	return ""
}
