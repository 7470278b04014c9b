package i18n

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func contextWithRequest(target, acceptLanguage string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req := httptest.NewRequest("GET", target, nil)
	if acceptLanguage != "" {
		req.Header.Set("Accept-Language", acceptLanguage)
	}
	c.Request = req
	return c
}

func TestResolveLocale(t *testing.T) {
	cases := []struct {
		name           string
		target         string
		acceptLanguage string
		want           string
	}{
		{"default", "/", "", "es"},
		{"query wins", "/?locale=en", "es-MX", "en"},
		{"query region stripped", "/?locale=EN_us", "", "en"},
		{"header fallback", "/", "en-US,en;q=0.9", "en"},
		{"header skips unsupported", "/", "fr-FR, es;q=0.8", "es"},
		{"unsupported falls back", "/?locale=de", "pt-BR", "es"},
	}
	for _, tc := range cases {
		if got := ResolveLocale(contextWithRequest(tc.target, tc.acceptLanguage)); got != tc.want {
			t.Fatalf("%s: want %s got %s", tc.name, tc.want, got)
		}
	}
	if got := ResolveLocale(nil); got != "es" {
		t.Fatalf("nil context want es got %s", got)
	}
}

func TestTranslationFallback(t *testing.T) {
	if got := T("en", "error.not_found"); got == "" || got == "error.not_found" {
		t.Fatalf("english message missing: %q", got)
	}
	// 未知语言回退默认语言，未知 key 回退 key 本身
	if got, want := T("de", "error.not_found"), T("es", "error.not_found"); got != want {
		t.Fatalf("fallback to default locale: want %q got %q", want, got)
	}
	if got := T("es", "error.clave_inexistente"); got != "error.clave_inexistente" {
		t.Fatalf("unknown key should return key, got %q", got)
	}
}

func TestSprintfFormatsArgs(t *testing.T) {
	got := Sprintf("es", "error.insufficient_stock", "Martillo", 2)
	if got != "Existencias insuficientes de Martillo (disponibles: 2)" {
		t.Fatalf("unexpected message: %q", got)
	}
}
