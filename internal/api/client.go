// Package api is the HTTP client for the event-management backend. The
// backend is the source of truth for every entity; this client maps its
// REST surface onto domain types and its error responses onto domain
// sentinels. Requests are never retried here: the user re-triggers the
// action after a failure.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dev-kelz/Event-Management-System/internal/domain"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// StatusError carries a non-2xx response. Detail is taken from the body's
// "detail" field, falling back to "message".
type StatusError struct {
	Code   int
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return http.StatusText(e.Code)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var errBody struct {
			Detail  string `json:"detail"`
			Message string `json:"message"`
		}
		_ = json.Unmarshal(raw, &errBody)
		detail := errBody.Detail
		if detail == "" {
			detail = errBody.Message
		}
		return &StatusError{Code: resp.StatusCode, Detail: detail}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}

// mapStatus rewrites a StatusError into the sentinel registered for its
// code, keeping the server-provided detail as context.
func mapStatus(err error, sentinels map[int]error) error {
	var se *StatusError
	if !errors.As(err, &se) {
		return err
	}
	sentinel, ok := sentinels[se.Code]
	if !ok {
		return err
	}
	if se.Detail == "" {
		return sentinel
	}
	return fmt.Errorf("%w: %s", sentinel, se.Detail)
}

// Auth

func (c *Client) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	req := map[string]string{"email": email, "password": password}
	var resp struct {
		User  *domain.User `json:"user"`
		Token string       `json:"token"`
	}
	err := c.do(ctx, http.MethodPost, "/api/login", req, &resp)
	if err != nil {
		return nil, "", mapStatus(err, map[int]error{
			http.StatusUnauthorized: domain.ErrInvalidCredentials,
		})
	}
	return resp.User, resp.Token, nil
}

func (c *Client) SignUp(ctx context.Context, input domain.SignUpInput) (*domain.User, string, error) {
	req := map[string]string{
		"username": input.Username,
		"email":    input.Email,
		"password": input.Password,
	}
	var resp struct {
		User  *domain.User `json:"user"`
		Token string       `json:"token"`
	}
	err := c.do(ctx, http.MethodPost, "/api/register", req, &resp)
	if err != nil {
		return nil, "", mapStatus(err, map[int]error{
			http.StatusBadRequest: domain.ErrEmailTaken,
		})
	}
	return resp.User, resp.Token, nil
}

// Events

func (c *Client) Events(ctx context.Context) ([]domain.Event, error) {
	var resp struct {
		Events []domain.Event `json:"events"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/events", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Events, nil
}

func (c *Client) Event(ctx context.Context, id int64) (*domain.Event, error) {
	var resp struct {
		Event *domain.Event `json:"event"`
	}
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/events/%d", id), nil, &resp)
	if err != nil {
		return nil, mapStatus(err, map[int]error{
			http.StatusNotFound: domain.ErrEventNotFound,
		})
	}
	return resp.Event, nil
}

func (c *Client) CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	req := map[string]any{
		"title":       input.Title,
		"date":        input.Date.Format(time.RFC3339),
		"time":        input.TimeOfDay,
		"location":    input.Location,
		"description": input.Description,
		"category":    input.Category,
		"created_by":  input.CreatedBy,
	}
	var resp struct {
		Event *domain.Event `json:"event"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/events", req, &resp); err != nil {
		return nil, err
	}
	return resp.Event, nil
}

func (c *Client) UpdateEvent(ctx context.Context, id int64, input domain.UpdateEventInput) (*domain.Event, error) {
	req := map[string]any{}
	if input.Title != nil {
		req["title"] = *input.Title
	}
	if input.Date != nil {
		req["date"] = input.Date.Format(time.RFC3339)
	}
	if input.TimeOfDay != nil {
		req["time"] = *input.TimeOfDay
	}
	if input.Location != nil {
		req["location"] = *input.Location
	}
	if input.Description != nil {
		req["description"] = *input.Description
	}
	if input.Category != nil {
		req["category"] = *input.Category
	}
	var resp struct {
		Event *domain.Event `json:"event"`
	}
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/events/%d", id), req, &resp)
	if err != nil {
		return nil, mapStatus(err, map[int]error{
			http.StatusNotFound: domain.ErrEventNotFound,
		})
	}
	return resp.Event, nil
}

func (c *Client) DeleteEvent(ctx context.Context, id int64) error {
	err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/events/%d", id), nil, nil)
	return mapStatus(err, map[int]error{
		http.StatusNotFound: domain.ErrEventNotFound,
	})
}

// Registrations

func (c *Client) RegisterForEvent(ctx context.Context, eventID, userID int64) (*domain.Registration, error) {
	req := map[string]int64{"event_id": eventID, "user_id": userID}
	var resp struct {
		Registration *domain.Registration `json:"registration"`
	}
	err := c.do(ctx, http.MethodPost, "/api/registrations", req, &resp)
	if err != nil {
		return nil, mapStatus(err, map[int]error{
			http.StatusForbidden:  domain.ErrOwnEvent,
			http.StatusBadRequest: domain.ErrAlreadyRegistered,
			http.StatusNotFound:   domain.ErrEventNotFound,
		})
	}
	return resp.Registration, nil
}

// RegistrationStatus reports whether userID already holds a registration
// for eventID.
func (c *Client) RegistrationStatus(ctx context.Context, userID, eventID int64) (bool, error) {
	var resp struct {
		Registered bool `json:"registered"`
	}
	path := fmt.Sprintf("/api/registrations/user/%d/event/%d", userID, eventID)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return false, err
	}
	return resp.Registered, nil
}

func (c *Client) CheckIn(ctx context.Context, registrationID int64) error {
	path := fmt.Sprintf("/api/registrations/check-in/%d", registrationID)
	err := c.do(ctx, http.MethodPost, path, nil, nil)
	return mapStatus(err, map[int]error{
		http.StatusNotFound: domain.ErrRegistrationNotFound,
	})
}

// Tasks

func (c *Client) CreateTask(ctx context.Context, input domain.CreateTaskInput) (*domain.Task, error) {
	req := map[string]any{
		"event_id":    input.EventID,
		"title":       input.Title,
		"description": input.Description,
		"priority":    input.Priority,
		"stage_id":    input.StageID,
		"created_by":  input.CreatedBy,
	}
	if input.DueDate != nil {
		req["due_date"] = input.DueDate.Format(time.RFC3339)
	}
	var resp struct {
		Task *domain.Task `json:"task"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/tasks", req, &resp); err != nil {
		return nil, err
	}
	return resp.Task, nil
}

func (c *Client) EventTasks(ctx context.Context, eventID int64, stageID *int64) ([]domain.Task, error) {
	path := fmt.Sprintf("/api/events/%d/tasks", eventID)
	if stageID != nil {
		path = fmt.Sprintf("%s?stage_id=%d", path, *stageID)
	}
	var resp struct {
		Tasks []domain.Task `json:"tasks"`
	}
	err := c.do(ctx, http.MethodGet, path, nil, &resp)
	if err != nil {
		return nil, mapStatus(err, map[int]error{
			http.StatusNotFound: domain.ErrEventNotFound,
		})
	}
	return resp.Tasks, nil
}

func (c *Client) ToggleTask(ctx context.Context, taskID int64) (*domain.Task, error) {
	var resp struct {
		Task *domain.Task `json:"task"`
	}
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/tasks/%d/toggle", taskID), nil, &resp)
	if err != nil {
		return nil, mapStatus(err, map[int]error{
			http.StatusNotFound: domain.ErrTaskNotFound,
		})
	}
	return resp.Task, nil
}

func (c *Client) DeleteTask(ctx context.Context, taskID int64) error {
	err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/tasks/%d", taskID), nil, nil)
	return mapStatus(err, map[int]error{
		http.StatusNotFound: domain.ErrTaskNotFound,
	})
}

// Stages

func (c *Client) Stages(ctx context.Context) ([]domain.Stage, error) {
	var resp struct {
		Stages []domain.Stage `json:"stages"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/stages", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Stages, nil
}

func (c *Client) CreateStage(ctx context.Context, stage domain.Stage) (*domain.Stage, error) {
	req := map[string]any{
		"name":        stage.Name,
		"description": stage.Description,
		"order":       stage.Order,
	}
	var resp struct {
		Stage *domain.Stage `json:"stage"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/stages", req, &resp); err != nil {
		return nil, err
	}
	return resp.Stage, nil
}

// Notifications

func (c *Client) Notifications(ctx context.Context, userID int64, unreadOnly bool) ([]domain.Notification, error) {
	path := fmt.Sprintf("/api/notifications/%d", userID)
	if unreadOnly {
		path += "?unread_only=true"
	}
	var resp struct {
		Notifications []domain.Notification `json:"notifications"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Notifications, nil
}

func (c *Client) MarkNotificationRead(ctx context.Context, id int64) error {
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/notifications/%d/read", id), nil, nil)
	return mapStatus(err, map[int]error{
		http.StatusNotFound: domain.ErrNotificationNotFound,
	})
}

func (c *Client) MarkAllNotificationsRead(ctx context.Context, userID int64) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/notifications/%d/read-all", userID), nil, nil)
}

func (c *Client) DeleteNotification(ctx context.Context, id int64) error {
	err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/notifications/%d", id), nil, nil)
	return mapStatus(err, map[int]error{
		http.StatusNotFound: domain.ErrNotificationNotFound,
	})
}

// Reminders

func (c *Client) CreateReminder(ctx context.Context, r domain.Reminder) error {
	req := map[string]any{
		"event_id":      r.EventID,
		"user_id":       r.UserID,
		"remind_at":     r.RemindAt.Format(time.RFC3339),
		"reminder_type": r.Kind,
	}
	err := c.do(ctx, http.MethodPost, "/api/reminders", req, nil)
	return mapStatus(err, map[int]error{
		http.StatusNotFound: domain.ErrEventNotFound,
	})
}

// Push tokens

func (c *Client) RegisterPushToken(ctx context.Context, token domain.PushToken) error {
	return c.do(ctx, http.MethodPost, "/api/push-tokens", token, nil)
}

// Feedback

func (c *Client) SubmitFeedback(ctx context.Context, f domain.Feedback) error {
	req := map[string]any{
		"event_id": f.EventID,
		"user_id":  f.UserID,
		"rating":   f.Rating,
		"comment":  f.Comment,
	}
	err := c.do(ctx, http.MethodPost, "/api/feedback", req, nil)
	return mapStatus(err, map[int]error{
		http.StatusNotFound: domain.ErrEventNotFound,
	})
}

func (c *Client) EventFeedback(ctx context.Context, eventID int64) ([]domain.Feedback, error) {
	var resp struct {
		Feedback []domain.Feedback `json:"feedback"`
	}
	path := fmt.Sprintf("/api/feedback/event/%d", eventID)
	err := c.do(ctx, http.MethodGet, path, nil, &resp)
	if err != nil {
		return nil, mapStatus(err, map[int]error{
			http.StatusNotFound: domain.ErrEventNotFound,
		})
	}
	return resp.Feedback, nil
}
