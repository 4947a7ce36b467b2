package service

import (
	"context"
	"errors"
	"strings"

	"github.com/vijitdua/TaskUp/internal/cache"
	dom "github.com/vijitdua/TaskUp/internal/domain"
	"github.com/vijitdua/TaskUp/internal/repo"

	"golang.org/x/sync/singleflight"
)

var ErrEmptyTitle = errors.New("title required")

// TaskLogService manages the per-user task logs created at signup. It also
// implements Provisioner for the auth service.
type TaskLogService struct {
	repo  repo.TaskLogRepo
	cache *cache.TaskCache
	sf    singleflight.Group
}

// NewTaskLogService creates a TaskLogService. If c is nil, caching is disabled.
func NewTaskLogService(r repo.TaskLogRepo, c *cache.TaskCache) *TaskLogService {
	return &TaskLogService{repo: r, cache: c}
}

// ProvisionUserStorage initializes the task log for a freshly signed-up
// user, identified by the bearer token issued to it.
func (s *TaskLogService) ProvisionUserStorage(ctx context.Context, token string) error {
	return s.repo.InitByToken(ctx, token)
}

// List returns the user's tasks, collapsing concurrent cache misses.
func (s *TaskLogService) List(ctx context.Context, userID string) ([]dom.Task, error) {
	if s.cache != nil {
		v, err, _ := s.sf.Do("list:"+userID, func() (interface{}, error) {
			if list, err := s.cache.GetList(ctx, userID); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.List(ctx, userID)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetList(ctx, userID, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.Task), nil
	}
	return s.repo.List(ctx, userID)
}

// Add appends a task to the user's log.
func (s *TaskLogService) Add(ctx context.Context, userID, title string) (dom.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return dom.Task{}, ErrEmptyTitle
	}
	t, err := s.repo.Add(ctx, userID, title)
	if err != nil {
		return dom.Task{}, err
	}
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, userID)
	}
	return t, nil
}
