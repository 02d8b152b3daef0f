package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"sheet_relay/internal/feature/symbolcache/adapters"
	"sheet_relay/internal/feature/symbolcache/domain/entity"
	"sheet_relay/internal/feature/symbolcache/usecase"
)

// mockSymbolUsecase is a mock implementation of the SymbolUsecase interface.
type mockSymbolUsecase struct {
	WriteFunc func(ctx context.Context, cmd usecase.WriteCommand) (int, error)
	ReadFunc  func(ctx context.Context) (entity.Snapshot, error)
}

func (m *mockSymbolUsecase) Write(ctx context.Context, cmd usecase.WriteCommand) (int, error) {
	if m.WriteFunc != nil {
		return m.WriteFunc(ctx, cmd)
	}
	return 0, nil
}

func (m *mockSymbolUsecase) Read(ctx context.Context) (entity.Snapshot, error) {
	if m.ReadFunc != nil {
		return m.ReadFunc(ctx)
	}
	return entity.Snapshot{}, nil
}

func setupRouter(uc SymbolUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewSymbolHandler(uc)
	r := gin.New()
	r.POST("/symbols", h.Save)
	r.GET("/symbols", h.List)
	return r
}

func TestSymbolHandler_Save(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		body           string
		mockWrite      func(ctx context.Context, cmd usecase.WriteCommand) (int, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: symbols written",
			body: `{"symbols":["BTCUSD","ETHUSD"]}`,
			mockWrite: func(ctx context.Context, cmd usecase.WriteCommand) (int, error) {
				return len(cmd.Symbols), nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true,"count":2}`,
		},
		{
			name: "failure: missing symbols",
			body: `{"fullData":[]}`,
			mockWrite: func(ctx context.Context, cmd usecase.WriteCommand) (int, error) {
				return 0, usecase.ErrInvalidPayload
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"error":"invalid payload"}`,
		},
		{
			name:           "failure: symbols is not an array",
			body:           `{"symbols":"BTCUSD"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"error":"symbols must be an array of strings"}`,
		},
		{
			name: "failure: store error",
			body: `{"symbols":["BTCUSD"]}`,
			mockWrite: func(ctx context.Context, cmd usecase.WriteCommand) (int, error) {
				return 0, errors.New("redis: connection refused")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"success":false,"error":"redis: connection refused"}`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router := setupRouter(&mockSymbolUsecase{WriteFunc: tt.mockWrite})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/symbols", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestSymbolHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ts := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		mockRead       func(ctx context.Context) (entity.Snapshot, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: stored snapshot returned",
			mockRead: func(ctx context.Context) (entity.Snapshot, error) {
				return entity.Snapshot{Symbols: []string{"BTCUSD", "ETHUSD"}, Timestamp: ts}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true,"symbols":["BTCUSD","ETHUSD"],"count":2,"timestamp":"2026-08-01T12:00:00Z"}`,
		},
		{
			name: "empty slot: not-available marker with 200",
			mockRead: func(ctx context.Context) (entity.Snapshot, error) {
				return entity.Snapshot{Symbols: []string{}}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":false,"symbols":[],"count":0,"message":"no symbols stored yet"}`,
		},
		{
			name: "failure: store error",
			mockRead: func(ctx context.Context) (entity.Snapshot, error) {
				return entity.Snapshot{}, errors.New("redis: connection refused")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"success":false,"error":"redis: connection refused"}`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router := setupRouter(&mockSymbolUsecase{ReadFunc: tt.mockRead})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/symbols", nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

// TestSymbolHandler_WriteThenRead wires the real usecase and memory store
// to verify the round trip the extension relies on.
func TestSymbolHandler_WriteThenRead(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	router := setupRouter(usecase.NewSymbolUsecase(adapters.NewSnapshotMemory()))

	// Read before any write: the valid empty state.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/symbols", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":false,"symbols":[],"count":0,"message":"no symbols stored yet"}`, w.Body.String())

	// Write two symbols.
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/symbols", strings.NewReader(`{"symbols":["BTCUSD","ETHUSD"]}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"count":2}`, w.Body.String())

	// Read them back.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/symbols", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.EqualValues(t, 2, resp["count"])
	assert.Equal(t, []any{"BTCUSD", "ETHUSD"}, resp["symbols"])
	assert.NotEmpty(t, resp["timestamp"])
}
