package router

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/foodbridge/internal/config"
	"github.com/polkiloo/foodbridge/internal/domain/model"
	"github.com/polkiloo/foodbridge/internal/metrics"
	"github.com/polkiloo/foodbridge/internal/server/http/dto"
	"github.com/polkiloo/foodbridge/internal/server/http/handlers"
	"github.com/polkiloo/foodbridge/internal/server/http/middleware"
	testhelpers "github.com/polkiloo/foodbridge/internal/test"
)

func newEngine(t *testing.T, facade testhelpers.FoodBridgeFacadeStub, cfg *config.Config) *gin.Engine {
	t.Helper()
	if cfg == nil {
		cfg = &config.Config{TokenTTL: time.Hour, RateLimitRPS: 100, RateLimitBurst: 100, CORSAllowOrigins: []string{"http://app.local"}}
	}
	return Setup(Params{
		Facade:  facade,
		Config:  cfg,
		Logger:  slog.New(slog.NewJSONHandler(io.Discard, nil)),
		Metrics: metrics.New(),
	})
}

func serve(engine *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	return resp
}

func TestSetupRoutes(t *testing.T) {
	facade := testhelpers.FoodBridgeFacadeStub{
		NGOFacadeStub: testhelpers.NGOFacadeStub{
			BoardFn: func(_ context.Context, identity model.Identity) (*model.NGOBoard, error) {
				return &model.NGOBoard{Available: []model.Donation{{ID: "d1", Type: model.DonationTypeFood}}}, nil
			},
		},
	}
	engine := newEngine(t, facade, nil)

	body, _ := json.Marshal(dto.RegisterRequest{Email: "user@example.org", Password: "pass"})
	req := httptest.NewRequest(http.MethodPost, "/registrationUser", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if resp := serve(engine, req); resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for register, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/donationsNGO", nil)
	req.AddCookie(&http.Cookie{Name: middleware.CookieName, Value: "ngo:n1"})
	resp := serve(engine, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for ngo board, got %d", resp.Code)
	}
	if resp.Header().Get(middleware.RequestIDHeader) == "" {
		t.Fatal("expected request id header")
	}

	req = httptest.NewRequest(http.MethodPost, "/accept-donation", strings.NewReader(`{"donationId":"d1"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer ngo:n1")
	if resp := serve(engine, req); resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for accept, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/redeem", strings.NewReader(`{"restaurantId":"r1","restaurantName":"Spice"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer donor:u1")
	if resp := serve(engine, req); resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for redeem, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/donate/food", strings.NewReader("foodItem=Rice&address=Hall"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: middleware.CookieName, Value: "donor:u1"})
	if resp := serve(engine, req); resp.Code != http.StatusFound || resp.Header().Get("Location") != "/donations" {
		t.Fatalf("expected redirect after food donation, got %d", resp.Code)
	}
}

func TestSetupAnonymousAndInvalidTokens(t *testing.T) {
	engine := newEngine(t, testhelpers.FoodBridgeFacadeStub{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/complete-donation", strings.NewReader(`{"donationId":"d1"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer garbage")
	if resp := serve(engine, req); resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for invalid token, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/donations", nil)
	if resp := serve(engine, req); resp.Code != http.StatusFound || resp.Header().Get("Location") != "/" {
		t.Fatalf("expected redirect for anonymous donor page, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	if resp := serve(engine, req); resp.Body.String() != `{"user":null}` {
		t.Fatalf("expected anonymous home, got %s", resp.Body.String())
	}
}

func TestSetupOperationalRoutes(t *testing.T) {
	engine := newEngine(t, testhelpers.FoodBridgeFacadeStub{}, nil)

	if resp := serve(engine, httptest.NewRequest(http.MethodGet, "/healthz", nil)); resp.Code != http.StatusOK {
		t.Fatalf("expected healthy status, got %d", resp.Code)
	}

	serve(engine, httptest.NewRequest(http.MethodGet, "/", nil))
	resp := serve(engine, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected metrics status 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "foodbridge_http_request_duration_seconds") {
		t.Fatal("expected request duration histogram in metrics output")
	}

	req := httptest.NewRequest(http.MethodPost, "/api/chatbot", strings.NewReader(`{"message":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Encoding", "gzip")
	resp = serve(engine, req)
	if resp.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("expected gzip response, got headers %v", resp.Header())
	}
	reader, err := gzip.NewReader(resp.Body)
	if err != nil {
		t.Fatalf("gzip reader: %v", err)
	}
	data, _ := io.ReadAll(reader)
	if !strings.Contains(string(data), "echo: hi") {
		t.Fatalf("unexpected chatbot reply %s", data)
	}
}

func TestSetupCORS(t *testing.T) {
	engine := newEngine(t, testhelpers.FoodBridgeFacadeStub{}, nil)

	req := httptest.NewRequest(http.MethodOptions, "/redeem", nil)
	req.Header.Set("Origin", "http://app.local")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	resp := serve(engine, req)
	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "http://app.local" {
		t.Fatalf("expected allowed origin, got %q", got)
	}
	if resp.Header().Get("Access-Control-Allow-Credentials") != "true" {
		t.Fatal("expected credentials to be allowed")
	}

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "http://evil.local")
	if resp := serve(engine, req); resp.Code != http.StatusForbidden {
		t.Fatalf("expected unknown origin to be rejected, got %d", resp.Code)
	}
}

func TestSetupRateLimitsMutations(t *testing.T) {
	cfg := &config.Config{TokenTTL: time.Hour, RateLimitRPS: 0.001, RateLimitBurst: 1}
	engine := newEngine(t, testhelpers.FoodBridgeFacadeStub{}, cfg)

	send := func() int {
		req := httptest.NewRequest(http.MethodPost, "/redeem", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer donor:u1")
		return serve(engine, req).Code
	}
	if code := send(); code != http.StatusOK {
		t.Fatalf("expected first redeem to pass, got %d", code)
	}
	if code := send(); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", code)
	}
}

func TestCORSConfigDefaults(t *testing.T) {
	cfg := corsConfig(nil)
	if len(cfg.AllowOrigins) != 1 || cfg.AllowOrigins[0] != "http://localhost:3000" {
		t.Fatalf("unexpected default origins %v", cfg.AllowOrigins)
	}
	if !cfg.AllowCredentials || cfg.MaxAge != 12*time.Hour {
		t.Fatalf("unexpected cors config %+v", cfg)
	}
}

var _ handlers.FoodBridgeFacade = testhelpers.FoodBridgeFacadeStub{}
var _ Observability = (*metrics.Metrics)(nil)
