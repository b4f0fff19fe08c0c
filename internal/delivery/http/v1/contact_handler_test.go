package v1_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-portfolio-backend/config"
	v1 "go-portfolio-backend/internal/delivery/http/v1"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/mailer"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendContactEmail(ctx context.Context, data mailer.ContactEmailData) error {
	return m.Called(ctx, data).Error(0)
}

func testConfig() *config.Config {
	return &config.Config{
		Port:                      "8080",
		FrontendURL:               "http://localhost:3000",
		ResendAPIKey:              "re_test",
		ContactEmailFrom:          "Portfólio <onboarding@resend.dev>",
		ContactEmailTo:            "dest@example.com",
		MailTimeoutSecs:           5,
		RateLimitWindowSeconds:    60,
		RateLimitContactThreshold: 1000, // high enough to stay out of the way
	}
}

func newTestRouter(m mailer.Mailer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	uc := usecase.NewContactUsecase(m, 5*time.Second)
	return v1.NewRouter(v1.RouterDeps{
		ContactUC: uc,
		Config:    testConfig(),
	})
}

func postContact(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestContactEndpoint_Success(t *testing.T) {
	mockMailer := new(MockMailer)
	mockMailer.On("SendContactEmail", mock.Anything, mock.Anything).Return(nil)
	router := newTestRouter(mockMailer)

	w := postContact(router, `{"name":"João Silva","email":"joao@email.com","message":"Mensagem de teste com mais de 10 caracteres"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
	mockMailer.AssertNumberOfCalls(t, "SendContactEmail", 1)
}

func TestContactEndpoint_WireContract(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "malformed json",
			body:       `{"name": "João"`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Corpo da requisição inválido"}`,
		},
		{
			name:       "missing fields",
			body:       `{"name":"","email":"","message":""}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Todos os campos são obrigatórios"}`,
		},
		{
			name:       "fields absent entirely",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Todos os campos são obrigatórios"}`,
		},
		{
			name:       "too short",
			body:       `{"name":"J","email":"joao@email.com","message":"Mensagem de teste válida"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Nome ou mensagem muito curtos"}`,
		},
		{
			name:       "invalid email",
			body:       `{"name":"João Silva","email":"not-an-email","message":"Mensagem de teste válida"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Email inválido"}`,
		},
		{
			name:       "spam blocked",
			body:       `{"name":"João Silva","email":"joao@email.com","message":"Limited offer, Buy Now and win"}`,
			wantStatus: http.StatusForbidden,
			wantBody:   `{"error":"Mensagem bloqueada"}`,
		},
		{
			name:       "message too long",
			body:       `{"name":"João Silva","email":"joao@email.com","message":"` + strings.Repeat("a", 1001) + `"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Mensagem muito longa"}`,
		},
		{
			name:       "disposable email",
			body:       `{"name":"João Silva","email":"user@tempmail.com","message":"Mensagem de teste válida"}`,
			wantStatus: http.StatusForbidden,
			wantBody:   `{"error":"Email temporário não permitido"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockMailer := new(MockMailer)
			router := newTestRouter(mockMailer)

			w := postContact(router, tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
			mockMailer.AssertNotCalled(t, "SendContactEmail")
		})
	}
}

func TestContactEndpoint_DeliveryFailure(t *testing.T) {
	mockMailer := new(MockMailer)
	mockMailer.On("SendContactEmail", mock.Anything, mock.Anything).Return(errors.New("provider down"))
	router := newTestRouter(mockMailer)

	w := postContact(router, `{"name":"João Silva","email":"joao@email.com","message":"Mensagem de teste com mais de 10 caracteres"}`)

	// Never a 200 when the collaborator rejects, and never the provider's
	// error text on the wire
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Erro ao enviar mensagem"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "provider down")
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(new(MockMailer))

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
}

func TestContactEndpoint_RequestIDHeader(t *testing.T) {
	router := newTestRouter(new(MockMailer))

	w := postContact(router, `{}`)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	// A caller-supplied id is echoed back
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{}`))
	req.Header.Set("X-Request-ID", "trace-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "trace-123", rec.Header().Get("X-Request-ID"))
}
