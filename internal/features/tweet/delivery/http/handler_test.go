package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tweet-feed-backend/internal/common/validation"
	"tweet-feed-backend/internal/features/tweet/models"
	"tweet-feed-backend/internal/features/tweet/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockTweetService struct {
	mock.Mock
}

func (m *mockTweetService) Feed(ctx context.Context) ([]*models.FeedEntry, error) {
	args := m.Called(ctx)
	if entries := args.Get(0); entries != nil {
		return entries.([]*models.FeedEntry), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTweetService) Create(ctx context.Context, username, text string) (*models.Tweet, error) {
	args := m.Called(ctx, username, text)
	if tweet := args.Get(0); tweet != nil {
		return tweet.(*models.Tweet), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTweetService) Update(ctx context.Context, id, username, text string) error {
	args := m.Called(ctx, id, username, text)
	return args.Error(0)
}

func (m *mockTweetService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestRouter(svc *mockTweetService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewTweetHandler(svc).RegisterRoutes(&router.RouterGroup)
	return router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestFeed(t *testing.T) {
	avatar := "https://example.com/bob.png"
	svc := new(mockTweetService)
	svc.On("Feed", mock.Anything).Return([]*models.FeedEntry{
		{ID: "2", Username: "bob", Tweet: "newest", Avatar: &avatar},
		{ID: "1", Username: "ghost", Tweet: "orphaned", Avatar: nil},
	}, nil)

	w := doRequest(newTestRouter(svc), http.MethodGet, "/tweets", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var entries []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "2", entries[0]["id"])
	assert.Equal(t, "https://example.com/bob.png", entries[0]["avatar"])
	assert.Nil(t, entries[1]["avatar"])
}

func TestFeedStoreFailure(t *testing.T) {
	svc := new(mockTweetService)
	svc.On("Feed", mock.Anything).Return(nil, errors.New("connection refused"))

	w := doRequest(newTestRouter(svc), http.MethodGet, "/tweets", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestCreateTweet(t *testing.T) {
	svc := new(mockTweetService)
	svc.On("Create", mock.Anything, "bob", "hello").
		Return(&models.Tweet{ID: "1", Username: "bob", Tweet: "hello"}, nil)

	w := doRequest(newTestRouter(svc), http.MethodPost, "/tweets", `{"username":"bob","tweet":"hello"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateTweetUnknownAuthor(t *testing.T) {
	svc := new(mockTweetService)
	svc.On("Create", mock.Anything, "ghost", "hello").Return(nil, service.ErrAuthorNotFound)

	w := doRequest(newTestRouter(svc), http.MethodPost, "/tweets", `{"username":"ghost","tweet":"hello"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateTweetValidationErrors(t *testing.T) {
	svc := new(mockTweetService)
	svc.On("Create", mock.Anything, "", "").Return(nil, validation.Errors{
		"username is required",
		"tweet is required",
	})

	w := doRequest(newTestRouter(svc), http.MethodPost, "/tweets", `{}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var messages []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &messages))
	assert.Len(t, messages, 2)
}

func TestCreateTweetWrongTypedField(t *testing.T) {
	svc := new(mockTweetService)

	w := doRequest(newTestRouter(svc), http.MethodPost, "/tweets", `{"username":"bob","tweet":123}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var messages []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &messages))
	assert.Equal(t, []string{"tweet must be a string"}, messages)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateTweet(t *testing.T) {
	svc := new(mockTweetService)
	svc.On("Update", mock.Anything, "1", "bob", "edited").Return(nil)

	w := doRequest(newTestRouter(svc), http.MethodPut, "/tweets/1", `{"username":"bob","tweet":"edited"}`)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestUpdateTweetNotFound(t *testing.T) {
	svc := new(mockTweetService)
	svc.On("Update", mock.Anything, "42", "bob", "edited").Return(service.ErrTweetNotFound)

	w := doRequest(newTestRouter(svc), http.MethodPut, "/tweets/42", `{"username":"bob","tweet":"edited"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteTweet(t *testing.T) {
	svc := new(mockTweetService)
	svc.On("Delete", mock.Anything, "1").Return(nil)

	w := doRequest(newTestRouter(svc), http.MethodDelete, "/tweets/1", "")

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDeleteTweetNotFound(t *testing.T) {
	svc := new(mockTweetService)
	svc.On("Delete", mock.Anything, "42").Return(service.ErrTweetNotFound)

	w := doRequest(newTestRouter(svc), http.MethodDelete, "/tweets/42", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}
