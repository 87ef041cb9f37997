package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"synctracker/internal/cycle"
	"synctracker/internal/middleware"
	"synctracker/internal/model"
	"synctracker/pkg/response"

	cycleHTTP "synctracker/internal/cycle/delivery/http"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, args ...any)  {}

type mockCycleUseCase struct {
	setupOutput cycle.SetupOutput
	setupErr    error
	phaseOutput cycle.PhaseOutput
	phaseErr    error
}

func (m *mockCycleUseCase) Setup(ctx context.Context, sc model.Scope, input cycle.SetupInput) (cycle.SetupOutput, error) {
	return m.setupOutput, m.setupErr
}
func (m *mockCycleUseCase) CurrentPhase(ctx context.Context, sc model.Scope) (cycle.PhaseOutput, error) {
	return m.phaseOutput, m.phaseErr
}
func (m *mockCycleUseCase) Insights(ctx context.Context, sc model.Scope) (cycle.InsightsOutput, error) {
	return cycle.InsightsOutput{}, nil
}
func (m *mockCycleUseCase) Recommendations(ctx context.Context, sc model.Scope) (cycle.RecommendationsOutput, error) {
	return cycle.RecommendationsOutput{}, nil
}

func newTestRouter(uc cycle.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := &mockLogger{}
	r := gin.New()
	cycleHTTP.RegisterRoutes(r.Group("/api/v1"), cycleHTTP.New(l, uc), middleware.New(l, 1000, 1000))
	return r
}

func TestSetupEndpoint(t *testing.T) {
	uc := &mockCycleUseCase{setupOutput: cycle.SetupOutput{
		Phase: cycle.PhaseOutput{Phase: model.PhaseFollicular, DayInCycle: 10},
	}}
	r := newTestRouter(uc)

	body, err := json.Marshal(gin.H{
		"user_id":           "u1",
		"last_period_start": "2024-01-01T00:00:00Z",
		"cycle_length":      28,
		"period_length":     5,
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cycle/setup", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	data, _ := resp.Data.(map[string]any)
	phase, _ := data["current_phase"].(map[string]any)
	if phase["phase"] != "follicular" {
		t.Errorf("phase = %v", phase["phase"])
	}
}

func TestSetupEndpointMissingFields(t *testing.T) {
	r := newTestRouter(&mockCycleUseCase{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cycle/setup", bytes.NewBufferString(`{"user_id":"u1"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400; body = %s", w.Code, w.Body.String())
	}
}

func TestCurrentEndpointWithoutData(t *testing.T) {
	uc := &mockCycleUseCase{phaseErr: cycle.ErrAnchorNotFound}
	r := newTestRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cycle/u1/current", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404; body = %s", w.Code, w.Body.String())
	}
}
