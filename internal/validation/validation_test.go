package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type priced struct {
	Name  string          `json:"name" binding:"required"`
	Email string          `json:"email" binding:"omitempty,email"`
	Price decimal.Decimal `json:"price" binding:"gte=0"`
}

func bind(t *testing.T, body string) error {
	t.Helper()

	gin.SetMode(gin.TestMode)
	Setup()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var dst priced
	return BindJSON(c, &dst)
}

func TestBindJSON_Valid(t *testing.T) {
	if err := bind(t, `{"name":"ok","email":"ok@x.com","price":"12.50"}`); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestBindJSON_SyntaxError(t *testing.T) {
	err := bind(t, `{"name":`)

	verr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if verr.Message != "invalid request body" {
		t.Errorf("unexpected message %q", verr.Message)
	}
	if len(verr.Fields) != 1 || verr.Fields[0].Rule != "syntax" {
		t.Errorf("expected one syntax field error, got %+v", verr.Fields)
	}
}

func TestBindJSON_FieldErrorsUseJSONNames(t *testing.T) {
	err := bind(t, `{"email":"not-an-email","price":-1}`)

	verr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if verr.Message != "validation failed" {
		t.Errorf("unexpected message %q", verr.Message)
	}

	rules := map[string]string{}
	for _, f := range verr.Fields {
		rules[f.Field] = f.Rule
	}

	want := map[string]string{
		"name":  "required",
		"email": "email",
		"price": "gte",
	}
	for field, rule := range want {
		if rules[field] != rule {
			t.Errorf("expected %s to fail %q, got %q (all: %+v)", field, rule, rules[field], verr.Fields)
		}
	}
}
