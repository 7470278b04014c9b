package public

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestContext(t *testing.T, method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) (int, string) {
	t.Helper()
	var envelope struct {
		StatusCode int    `json:"status_code"`
		Msg        string `json:"msg"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response failed: %v", err)
	}
	return envelope.StatusCode, envelope.Msg
}

func TestGetProductRejectsInvalidID(t *testing.T) {
	c, w := newTestContext(t, http.MethodGet, "/api/v1/public/products/abc", "")
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	h := &Handler{}
	h.GetProduct(c)

	if w.Code != http.StatusOK {
		t.Fatalf("envelope responses use HTTP 200, got %d", w.Code)
	}
	code, msg := decodeEnvelope(t, w)
	if code != 400 {
		t.Fatalf("status_code want 400 got %d", code)
	}
	if msg != "Identificador inválido" {
		t.Fatalf("default locale message want Spanish, got %q", msg)
	}
}

func TestGetProductLocaleQueryOverridesMessage(t *testing.T) {
	c, w := newTestContext(t, http.MethodGet, "/api/v1/public/products/0?locale=en", "")
	c.Params = gin.Params{{Key: "id", Value: "0"}}

	h := &Handler{}
	h.GetProduct(c)

	code, msg := decodeEnvelope(t, w)
	if code != 400 {
		t.Fatalf("status_code want 400 got %d", code)
	}
	if msg != "Invalid identifier" {
		t.Fatalf("locale=en message want English, got %q", msg)
	}
}

func TestRegisterRejectsIncompletePayload(t *testing.T) {
	c, w := newTestContext(t, http.MethodPost, "/api/v1/auth/register", `{"email":"cliente@example.com"}`)

	h := &Handler{}
	h.Register(c)

	code, msg := decodeEnvelope(t, w)
	if code != 400 {
		t.Fatalf("status_code want 400 got %d", code)
	}
	if msg != "Solicitud inválida" {
		t.Fatalf("unexpected message %q", msg)
	}
}
