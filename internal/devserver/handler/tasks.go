package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dev-kelz/Event-Management-System/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

type createTaskRequest struct {
	EventID     int64      `json:"event_id" binding:"required"`
	StageID     *int64     `json:"stage_id"`
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
	CreatedBy   int64      `json:"created_by" binding:"required"`
}

type createStageRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

func (h *Handler) CreateTask(c *ginext.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, err.Error())
		return
	}

	priority := domain.TaskPriority(req.Priority)
	if priority == "" {
		priority = domain.PriorityMedium
	}

	task := domain.Task{
		EventID:     req.EventID,
		StageID:     req.StageID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    priority,
		DueDate:     req.DueDate,
		CreatedBy:   req.CreatedBy,
	}
	if err := h.store.CreateTask(c.Request.Context(), &task); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ginext.H{"success": true, "task": task})
}

func (h *Handler) ListEventTasks(c *ginext.Context) {
	eventID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var stageID *int64
	if raw := c.Query("stage_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			detail(c, http.StatusBadRequest, "invalid stage_id")
			return
		}
		stageID = &id
	}

	tasks, err := h.store.TasksByEvent(c.Request.Context(), eventID, stageID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}

	c.JSON(http.StatusOK, ginext.H{"success": true, "tasks": tasks})
}

func (h *Handler) ToggleTask(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	task, err := h.store.ToggleTask(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"success": true, "task": task})
}

func (h *Handler) DeleteTask(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.store.DeleteTask(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"success": true})
}

func (h *Handler) ListStages(c *ginext.Context) {
	stages, err := h.store.ListStages(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	if stages == nil {
		stages = []domain.Stage{}
	}

	c.JSON(http.StatusOK, ginext.H{"success": true, "stages": stages})
}

func (h *Handler) CreateStage(c *ginext.Context) {
	var req createStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, err.Error())
		return
	}

	stage := domain.Stage{
		Name:        req.Name,
		Description: req.Description,
		Order:       req.Order,
	}
	if err := h.store.CreateStage(c.Request.Context(), &stage); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ginext.H{"success": true, "stage": stage})
}
