package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/vijitdua/TaskUp/internal/auth"
	dom "github.com/vijitdua/TaskUp/internal/domain"
	"github.com/vijitdua/TaskUp/internal/handlers"
	"github.com/vijitdua/TaskUp/internal/repo"
	"github.com/vijitdua/TaskUp/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memTaskLogRepo struct {
	mu    sync.Mutex
	tasks map[string][]dom.Task
	next  int64
}

var _ repo.TaskLogRepo = (*memTaskLogRepo)(nil)

func (m *memTaskLogRepo) InitByToken(context.Context, string) error { return nil }

func (m *memTaskLogRepo) List(_ context.Context, userID string) ([]dom.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tasks[userID], nil
}

func (m *memTaskLogRepo) Add(_ context.Context, userID, title string) (dom.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	t := dom.Task{ID: m.next, UserID: userID, Title: title, CreatedAt: time.Now()}
	m.tasks[userID] = append(m.tasks[userID], t)
	return t, nil
}

type staticValidator struct {
	user dom.User
}

func (s staticValidator) UserByToken(_ context.Context, token string) (dom.User, bool, error) {
	if token == s.user.Token {
		return s.user, true, nil
	}
	return dom.User{}, false, nil
}

func newTaskRouter(user dom.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.NewTaskLogService(&memTaskLogRepo{tasks: make(map[string][]dom.Task)}, nil)
	h := handlers.NewTaskHandler(svc)

	r := gin.New()
	protected := r.Group("/api/v1", auth.RequireToken(staticValidator{user: user}))
	protected.GET("/tasks", h.List)
	protected.POST("/tasks", h.Add)
	return r
}

func TestTaskRoutes(t *testing.T) {
	user := dom.User{ID: "u1", Username: "ada", Token: "tok-1"}
	r := newTaskRouter(user)

	do := func(method, path, token string, body any) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		if body != nil {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
		req := httptest.NewRequest(method, path, &buf)
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("requires a valid bearer token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, do(http.MethodGet, "/api/v1/tasks", "", nil).Code)
		assert.Equal(t, http.StatusUnauthorized, do(http.MethodGet, "/api/v1/tasks", "bogus", nil).Code)
	})

	t.Run("add then list", func(t *testing.T) {
		w := do(http.MethodPost, "/api/v1/tasks", "tok-1", gin.H{"title": "write tests"})
		require.Equal(t, http.StatusCreated, w.Code)

		w = do(http.MethodGet, "/api/v1/tasks", "tok-1", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var out struct {
			Items []struct {
				Title string `json:"title"`
			} `json:"items"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		require.Len(t, out.Items, 1)
		assert.Equal(t, "write tests", out.Items[0].Title)
	})

	t.Run("rejects missing title", func(t *testing.T) {
		w := do(http.MethodPost, "/api/v1/tasks", "tok-1", gin.H{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
