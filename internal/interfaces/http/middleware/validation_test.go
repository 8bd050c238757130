package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/propertyhub/backend/internal/interfaces/http/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validationSample struct {
	Phone   string           `json:"phone" binding:"required,phone"`
	Site    string           `json:"site" binding:"omitempty,httpurl"`
	BuiltAt *time.Time       `json:"builtAt" binding:"omitempty,notfuture"`
	Cost    decimal.Decimal  `json:"cost" binding:"required,gt=0"`
	Length  *decimal.Decimal `json:"length" binding:"omitempty,gt=0"`
	Email   *string          `json:"email" binding:"omitempty,email_or_empty"`
	Mobile  *string          `json:"mobile" binding:"omitempty,phone"`
	Link    *string          `json:"link" binding:"omitempty,httpurl"`
}

func bindSample(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	require.NoError(t, SetupValidator())

	router := gin.New()
	router.Use(RequestID())
	router.POST("/", func(c *gin.Context) {
		var s validationSample
		if err := c.ShouldBindJSON(&s); err != nil {
			HandleValidationError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestSetupValidator(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
		tag   string
	}{
		{"valid", `{"phone":"+47 (22) 00-00","site":"https://a.example.com","builtAt":"2001-06-15T00:00:00Z","cost":1.5,"length":2}`, "", ""},
		{"bad phone", `{"phone":"call me","cost":1}`, "phone", "phone"},
		{"ftp site", `{"phone":"123","site":"ftp://a.example.com","cost":1}`, "site", "httpurl"},
		{"relative site", `{"phone":"123","site":"example.com","cost":1}`, "site", "httpurl"},
		{"future date", `{"phone":"123","builtAt":"` + time.Now().Add(48*time.Hour).UTC().Format(time.RFC3339) + `","cost":1}`, "builtAt", "notfuture"},
		{"zero cost", `{"phone":"123","cost":0}`, "cost", "required"},
		{"negative cost", `{"phone":"123","cost":-5}`, "cost", "gt"},
		{"negative length", `{"phone":"123","cost":1,"length":-1}`, "length", "gt"},
		{"empty patch strings", `{"phone":"123","cost":1,"email":"","mobile":"","link":""}`, "", ""},
		{"patch email", `{"phone":"123","cost":1,"email":"a@b.com"}`, "", ""},
		{"bad patch email", `{"phone":"123","cost":1,"email":"nope"}`, "email", "email_or_empty"},
		{"bad patch mobile", `{"phone":"123","cost":1,"mobile":"call me"}`, "mobile", "phone"},
		{"bad patch link", `{"phone":"123","cost":1,"link":"ftp://a.example.com"}`, "link", "httpurl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := bindSample(t, tt.body)
			if tt.field == "" {
				assert.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
				return
			}

			assert.Equal(t, http.StatusBadRequest, w.Code)
			resp := decodeResponse(t, w)
			require.NotNil(t, resp.Error)
			assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
			assert.NotEmpty(t, resp.Error.RequestID)
			require.Len(t, resp.Error.Details, 1)
			assert.Equal(t, tt.field, resp.Error.Details[0].Field)
			assert.Equal(t, tt.tag, resp.Error.Details[0].Tag)
		})
	}
}

func TestHandleValidationError_MalformedJSON(t *testing.T) {
	w := bindSample(t, `{"phone":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, dto.ErrCodeInvalidJSON, resp.Error.Code)
	assert.Empty(t, resp.Error.Details)
}
