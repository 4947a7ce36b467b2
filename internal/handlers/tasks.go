package handlers

import (
	"net/http"

	"github.com/vijitdua/TaskUp/internal/auth"
	dom "github.com/vijitdua/TaskUp/internal/domain"
	"github.com/vijitdua/TaskUp/internal/dto"
	"github.com/vijitdua/TaskUp/internal/service"

	"github.com/gin-gonic/gin"
)

// TaskHandler exposes the per-user task log provisioned at signup.
type TaskHandler struct {
	svc *service.TaskLogService
}

// NewTaskHandler returns a new TaskHandler.
func NewTaskHandler(svc *service.TaskLogService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

// List godoc
// @Summary      List the current user's tasks
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ListTasksResponse
// @Failure      401  {object}  dto.StatusResponse
// @Failure      500  {object}  map[string]string
// @Router       /tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	user := auth.UserFromContext(c)
	list, err := h.svc.List(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list tasks"})
		return
	}
	c.JSON(http.StatusOK, dto.ListTasksResponse{Items: tasksToResponses(list)})
}

// Add godoc
// @Summary      Add a task to the current user's log
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.AddTaskRequest  true  "Task"
// @Success      201   {object}  dto.TaskResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  dto.StatusResponse
// @Failure      500   {object}  map[string]string
// @Router       /tasks [post]
func (h *TaskHandler) Add(c *gin.Context) {
	var req dto.AddTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user := auth.UserFromContext(c)
	t, err := h.svc.Add(c.Request.Context(), user.ID, req.Title)
	if err != nil {
		if err == service.ErrEmptyTitle {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add task"})
		return
	}
	c.JSON(http.StatusCreated, taskToResponse(t))
}

func taskToResponse(t dom.Task) dto.TaskResponse {
	return dto.TaskResponse{
		ID:        t.ID,
		Title:     t.Title,
		IsDone:    t.IsDone,
		CreatedAt: t.CreatedAt,
	}
}

func tasksToResponses(list []dom.Task) []dto.TaskResponse {
	out := make([]dto.TaskResponse, 0, len(list))
	for _, t := range list {
		out = append(out, taskToResponse(t))
	}
	return out
}
