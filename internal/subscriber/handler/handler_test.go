package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"fixlist/internal/subscriber"
	"fixlist/internal/subscriber/handler/mocks"
	dErrors "fixlist/pkg/domain-errors"
)

//go:generate mockgen -source=handler.go -destination=mocks/access-mocks.go -package=mocks
type AccessHandlerSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *AccessHandlerSuite) SetupSuite() {
	s.ctx = context.Background()
}

func TestAccessHandlerSuite(t *testing.T) {
	suite.Run(t, new(AccessHandlerSuite))
}

func newTestHandler(t *testing.T) (chi.Router, *mocks.MockService, *mocks.MockSheetAccess) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockService := mocks.NewMockService(ctrl)
	mockSheet := mocks.NewMockSheetAccess(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler := New(mockService, mockSheet, logger)
	r := chi.NewRouter()
	handler.Register(r)
	handler.RegisterStream(r)
	return r, mockService, mockSheet
}

func (s *AccessHandlerSuite) TestHandleSubscribe() {
	s.Run("new subscriber gets the welcome message", func() {
		r, mockService, _ := newTestHandler(s.T())
		mockService.EXPECT().Subscribe(gomock.Any(), "a@b.com").
			Return(subscriber.SubscribeResult{IsNew: true, HasAccess: true}, nil)

		body, err := json.Marshal(subscribeRequest{Email: "a@b.com"})
		require.NoError(s.T(), err)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/access/subscribe", bytes.NewReader(body)))

		assert.Equal(s.T(), http.StatusOK, w.Code)
		var resp subscribeResponse
		require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(s.T(), resp.Success)
		assert.True(s.T(), resp.IsNew)
		assert.True(s.T(), resp.HasAccess)
		assert.Equal(s.T(), "Welcome! You now have access to all 101 fixes.", resp.Message)
	})

	s.Run("repeat subscriber gets no welcome message", func() {
		r, mockService, _ := newTestHandler(s.T())
		mockService.EXPECT().Subscribe(gomock.Any(), "a@b.com").
			Return(subscriber.SubscribeResult{IsNew: false, HasAccess: true}, nil)

		body, _ := json.Marshal(subscribeRequest{Email: "a@b.com"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/access/subscribe", bytes.NewReader(body)))

		assert.Equal(s.T(), http.StatusOK, w.Code)
		var resp subscribeResponse
		require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(s.T(), resp.IsNew)
		assert.Empty(s.T(), resp.Message)
	})

	s.Run("store outage becomes 503 and the gate can retry", func() {
		r, mockService, _ := newTestHandler(s.T())
		mockService.EXPECT().Subscribe(gomock.Any(), "a@b.com").
			Return(subscriber.SubscribeResult{}, dErrors.New(dErrors.CodeUnavailable, "subscriber store unavailable"))

		body, _ := json.Marshal(subscribeRequest{Email: "a@b.com"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/access/subscribe", bytes.NewReader(body)))

		assert.Equal(s.T(), http.StatusServiceUnavailable, w.Code)
	})

	s.Run("invalid body is a 400", func() {
		r, _, _ := newTestHandler(s.T())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/access/subscribe", bytes.NewReader([]byte("{"))))
		assert.Equal(s.T(), http.StatusBadRequest, w.Code)
	})
}

func (s *AccessHandlerSuite) TestHandleCheck() {
	r, mockService, _ := newTestHandler(s.T())
	mockService.EXPECT().CheckAccess(gomock.Any(), "a@b.com").
		Return(subscriber.AccessStatus{Exists: true, HasAccess: true}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/access/check?email=a%40b.com", nil))

	assert.Equal(s.T(), http.StatusOK, w.Code)
	var status subscriber.AccessStatus
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &status))
	assert.True(s.T(), status.Exists)
	assert.True(s.T(), status.HasAccess)
}

func (s *AccessHandlerSuite) TestHandleWatch() {
	r, mockService, _ := newTestHandler(s.T())

	updates := make(chan subscriber.AccessStatus, 2)
	updates <- subscriber.AccessStatus{Exists: false, HasAccess: false}
	updates <- subscriber.AccessStatus{Exists: true, HasAccess: true}
	close(updates)

	mockService.EXPECT().Watch(gomock.Any(), "a@b.com").
		Return((<-chan subscriber.AccessStatus)(updates), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/access/watch?email=a%40b.com", nil))

	assert.Equal(s.T(), http.StatusOK, w.Code)
	assert.Equal(s.T(), "text/event-stream", w.Header().Get("Content-Type"))
	assert.Contains(s.T(), w.Body.String(), `data: {"exists":false,"hasAccess":false}`)
	assert.Contains(s.T(), w.Body.String(), `data: {"exists":true,"hasAccess":true}`)
}

func (s *AccessHandlerSuite) TestHandleSheet() {
	s.Run("hands out the sheet URL", func() {
		r, _, mockSheet := newTestHandler(s.T())
		mockSheet.EXPECT().Grant(gomock.Any(), "a@b.com").
			Return("https://example.com/sheet", nil)

		body, _ := json.Marshal(subscribeRequest{Email: "a@b.com"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/access/sheet", bytes.NewReader(body)))

		assert.Equal(s.T(), http.StatusOK, w.Code)
		var resp sheetResponse
		require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(s.T(), resp.Success)
		assert.Equal(s.T(), "https://example.com/sheet", resp.SheetURL)
	})

	s.Run("empty email is rejected before granting", func() {
		r, _, _ := newTestHandler(s.T())
		body, _ := json.Marshal(subscribeRequest{Email: ""})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/access/sheet", bytes.NewReader(body)))
		assert.Equal(s.T(), http.StatusBadRequest, w.Code)
	})
}
