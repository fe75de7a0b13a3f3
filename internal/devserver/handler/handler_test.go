package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dev-kelz/Event-Management-System/internal/devserver/auth"
	"github.com/dev-kelz/Event-Management-System/internal/devserver/store"
	"github.com/dev-kelz/Event-Management-System/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func setupRouter(t *testing.T) (*store.Memory, http.Handler) {
	t.Helper()

	mem := store.NewMemory()
	tokens := auth.NewTokenIssuer("test-secret", time.Hour)
	h := New(mem, tokens, newTestLogger(t))

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/register", h.SignUp)
		api.POST("/login", h.Login)
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.PUT("/events/:id", h.UpdateEvent)
		api.DELETE("/events/:id", h.DeleteEvent)
		api.POST("/registrations", h.Register)
		api.GET("/registrations/user/:uid/event/:eid", h.RegistrationStatus)
		api.POST("/registrations/check-in/:id", h.CheckIn)
		api.POST("/tasks", h.CreateTask)
		api.GET("/events/:id/tasks", h.ListEventTasks)
		api.POST("/tasks/:id/toggle", h.ToggleTask)
		api.DELETE("/tasks/:id", h.DeleteTask)
		api.GET("/stages", h.ListStages)
		api.POST("/stages", h.CreateStage)
		api.GET("/notifications/:id", h.ListNotifications)
		api.PUT("/notifications/:id/read", h.MarkNotificationRead)
		api.PUT("/notifications/:id/read-all", h.MarkAllNotificationsRead)
		api.DELETE("/notifications/:id", h.DeleteNotification)
		api.POST("/reminders", h.CreateReminder)
		api.POST("/push-tokens", h.RegisterPushToken)
		api.POST("/feedback", h.CreateFeedback)
		api.GET("/feedback/event/:id", h.ListEventFeedback)
	}

	return mem, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func signUp(t *testing.T, r http.Handler, email string) int64 {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/register", map[string]string{
		"username": "user",
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		User domain.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.User.ID
}

func createEvent(t *testing.T, r http.Handler, createdBy int64) int64 {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/events", map[string]any{
		"title":      "Conference",
		"date":       "2026-10-01T18:00:00Z",
		"time":       "18:00",
		"created_by": createdBy,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Event domain.Event `json:"event"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Event.ID
}

func TestHandler_SignUpAndLogin(t *testing.T) {
	_, r := setupRouter(t)

	signUp(t, r, "alice@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/login", map[string]string{
		"email":    "alice@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Token)
}

func TestHandler_SignUp_DuplicateEmail(t *testing.T) {
	_, r := setupRouter(t)

	signUp(t, r, "alice@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/register", map[string]string{
		"username": "other",
		"email":    "alice@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "detail")
}

func TestHandler_Login_WrongPassword(t *testing.T) {
	_, r := setupRouter(t)

	signUp(t, r, "alice@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/login", map[string]string{
		"email":    "alice@example.com",
		"password": "wrong-pass",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_EventCRUD(t *testing.T) {
	_, r := setupRouter(t)

	userID := signUp(t, r, "alice@example.com")
	eventID := createEvent(t, r, userID)

	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/events/%d", eventID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/events/%d", eventID), map[string]any{
		"title": "Renamed",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Renamed")

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/events/%d", eventID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/events/%d", eventID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_Register_OwnEventForbidden(t *testing.T) {
	_, r := setupRouter(t)

	organizer := signUp(t, r, "organizer@example.com")
	eventID := createEvent(t, r, organizer)

	w := doJSON(t, r, http.MethodPost, "/api/registrations", map[string]any{
		"event_id": eventID,
		"user_id":  organizer,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_Register_DuplicateBadRequest(t *testing.T) {
	_, r := setupRouter(t)

	organizer := signUp(t, r, "organizer@example.com")
	attendee := signUp(t, r, "attendee@example.com")
	eventID := createEvent(t, r, organizer)

	body := map[string]any{"event_id": eventID, "user_id": attendee}

	w := doJSON(t, r, http.MethodPost, "/api/registrations", body)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/registrations", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Register_SeedsNotification(t *testing.T) {
	_, r := setupRouter(t)

	organizer := signUp(t, r, "organizer@example.com")
	attendee := signUp(t, r, "attendee@example.com")
	eventID := createEvent(t, r, organizer)

	w := doJSON(t, r, http.MethodPost, "/api/registrations", map[string]any{
		"event_id": eventID,
		"user_id":  attendee,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/notifications/%d", attendee), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Notifications []domain.Notification `json:"notifications"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Notifications, 1)
	assert.Equal(t, "registration_confirmed", resp.Notifications[0].Type)
	assert.False(t, resp.Notifications[0].Read)
}

func TestHandler_RegistrationStatus(t *testing.T) {
	_, r := setupRouter(t)

	organizer := signUp(t, r, "organizer@example.com")
	attendee := signUp(t, r, "attendee@example.com")
	eventID := createEvent(t, r, organizer)

	path := fmt.Sprintf("/api/registrations/user/%d/event/%d", attendee, eventID)

	w := doJSON(t, r, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"registered":false`)

	w = doJSON(t, r, http.MethodPost, "/api/registrations", map[string]any{
		"event_id": eventID,
		"user_id":  attendee,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"registered":true`)
}

func TestHandler_TaskToggleAndStageFilter(t *testing.T) {
	_, r := setupRouter(t)

	userID := signUp(t, r, "alice@example.com")
	eventID := createEvent(t, r, userID)

	w := doJSON(t, r, http.MethodPost, "/api/stages", map[string]any{
		"name": "Planning", "order": 0,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var stageResp struct {
		Stage domain.Stage `json:"stage"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stageResp))

	w = doJSON(t, r, http.MethodPost, "/api/tasks", map[string]any{
		"event_id":   eventID,
		"stage_id":   stageResp.Stage.ID,
		"title":      "Book venue",
		"created_by": userID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var taskResp struct {
		Task domain.Task `json:"task"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &taskResp))
	assert.Equal(t, domain.PriorityMedium, taskResp.Task.Priority)

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/tasks/%d/toggle", taskResp.Task.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &taskResp))
	assert.True(t, taskResp.Task.Completed)

	// filtered list only returns tasks in the stage
	w = doJSON(t, r, http.MethodGet,
		fmt.Sprintf("/api/events/%d/tasks?stage_id=%d", eventID, stageResp.Stage.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listResp struct {
		Tasks []domain.Task `json:"tasks"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	assert.Len(t, listResp.Tasks, 1)

	w = doJSON(t, r, http.MethodGet,
		fmt.Sprintf("/api/events/%d/tasks?stage_id=999", eventID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	assert.Empty(t, listResp.Tasks)
}

func TestHandler_NotificationReadFlow(t *testing.T) {
	mem, r := setupRouter(t)

	userID := signUp(t, r, "alice@example.com")

	for i := 0; i < 3; i++ {
		require.NoError(t, mem.CreateNotification(context.Background(), &domain.Notification{
			UserID: userID,
			Title:  fmt.Sprintf("n%d", i),
		}))
	}

	w := doJSON(t, r, http.MethodGet,
		fmt.Sprintf("/api/notifications/%d?unread_only=true", userID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Notifications []domain.Notification `json:"notifications"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Notifications, 3)

	// responses carry both read flags
	assert.Contains(t, w.Body.String(), `"is_read":false`)
	assert.Contains(t, w.Body.String(), `"read":false`)

	first := resp.Notifications[0].ID
	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/notifications/%d/read", first), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet,
		fmt.Sprintf("/api/notifications/%d?unread_only=true", userID), nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Notifications, 2)

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/notifications/%d/read-all", userID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet,
		fmt.Sprintf("/api/notifications/%d?unread_only=true", userID), nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Notifications)
}

func TestHandler_CreateReminder(t *testing.T) {
	mem, r := setupRouter(t)

	userID := signUp(t, r, "alice@example.com")
	eventID := createEvent(t, r, userID)

	w := doJSON(t, r, http.MethodPost, "/api/reminders", map[string]any{
		"event_id":      eventID,
		"user_id":       userID,
		"reminder_type": "1_day_before",
		"remind_at":     "2026-09-30T18:00:00Z",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	reminders := mem.Reminders()
	require.Len(t, reminders, 1)
	assert.Equal(t, domain.ReminderDayBefore, reminders[0].Kind)
}

func TestHandler_FeedbackFlow(t *testing.T) {
	_, r := setupRouter(t)

	userID := signUp(t, r, "alice@example.com")
	eventID := createEvent(t, r, userID)

	w := doJSON(t, r, http.MethodPost, "/api/feedback", map[string]any{
		"event_id": eventID,
		"user_id":  userID,
		"rating":   5,
		"comment":  "great",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/feedback", map[string]any{
		"event_id": eventID,
		"user_id":  userID,
		"rating":   9,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, "rating outside 1..5 rejected")

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/feedback/event/%d", eventID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "great")
}
