package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dev-kelz/Event-Management-System/internal/domain"
)

// Memory is the offline-mode store: everything lives in maps behind one
// mutex. It backs the SDK's tests and `devserver` runs without Postgres.
type Memory struct {
	mu sync.Mutex

	users         map[int64]memoryUser
	events        map[int64]domain.Event
	registrations map[int64]domain.Registration
	tasks         map[int64]domain.Task
	stages        []domain.Stage
	notifications map[int64]domain.Notification
	reminders     []domain.Reminder
	pushTokens    map[string]domain.PushToken
	feedback      []domain.Feedback

	nextID int64
}

type memoryUser struct {
	user domain.User
	hash string
}

func NewMemory() *Memory {
	return &Memory{
		users:         make(map[int64]memoryUser),
		events:        make(map[int64]domain.Event),
		registrations: make(map[int64]domain.Registration),
		tasks:         make(map[int64]domain.Task),
		notifications: make(map[int64]domain.Notification),
		pushTokens:    make(map[string]domain.PushToken),
	}
}

func (m *Memory) id() int64 {
	m.nextID++
	return m.nextID
}

// Users

func (m *Memory) CreateUser(_ context.Context, input domain.SignUpInput, passwordHash string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if strings.EqualFold(u.user.Email, input.Email) {
			return nil, domain.ErrEmailTaken
		}
	}

	user := domain.User{
		ID:        m.id(),
		Username:  input.Username,
		Email:     input.Email,
		CreatedAt: time.Now().UTC(),
	}
	m.users[user.ID] = memoryUser{user: user, hash: passwordHash}
	return &user, nil
}

func (m *Memory) UserByEmail(_ context.Context, email string) (*domain.User, string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if strings.EqualFold(u.user.Email, email) {
			user := u.user
			return &user, u.hash, nil
		}
	}
	return nil, "", domain.ErrUserNotFound
}

func (m *Memory) UserByID(_ context.Context, id int64) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	user := u.user
	return &user, nil
}

// Events

func (m *Memory) CreateEvent(_ context.Context, e *domain.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e.ID = m.id()
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now
	m.events[e.ID] = *e
	return nil
}

func (m *Memory) EventByID(_ context.Context, id int64) (*domain.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return &e, nil
}

func (m *Memory) ListEvents(_ context.Context) ([]domain.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]domain.Event, 0, len(m.events))
	for _, e := range m.events {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (m *Memory) UpdateEvent(_ context.Context, e *domain.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.events[e.ID]; !ok {
		return domain.ErrEventNotFound
	}
	e.UpdatedAt = time.Now().UTC()
	m.events[e.ID] = *e
	return nil
}

func (m *Memory) DeleteEvent(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.events[id]; !ok {
		return domain.ErrEventNotFound
	}
	delete(m.events, id)
	for rid, r := range m.registrations {
		if r.EventID == id {
			delete(m.registrations, rid)
		}
	}
	for tid, t := range m.tasks {
		if t.EventID == id {
			delete(m.tasks, tid)
		}
	}
	return nil
}

// Registrations

func (m *Memory) CreateRegistration(_ context.Context, r *domain.Registration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.events[r.EventID]; !ok {
		return domain.ErrEventNotFound
	}
	for _, existing := range m.registrations {
		if existing.EventID == r.EventID && existing.UserID == r.UserID {
			return domain.ErrAlreadyRegistered
		}
	}

	r.ID = m.id()
	r.CreatedAt = time.Now().UTC()
	m.registrations[r.ID] = *r
	return nil
}

func (m *Memory) RegistrationByUserEvent(_ context.Context, userID, eventID int64) (*domain.Registration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, r := range m.registrations {
		if r.UserID == userID && r.EventID == eventID {
			reg := r
			return &reg, nil
		}
	}
	return nil, domain.ErrRegistrationNotFound
}

func (m *Memory) CheckIn(_ context.Context, registrationID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.registrations[registrationID]
	if !ok {
		return domain.ErrRegistrationNotFound
	}
	r.CheckedIn = true
	m.registrations[registrationID] = r
	return nil
}

// Tasks and stages

func (m *Memory) CreateTask(_ context.Context, t *domain.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.events[t.EventID]; !ok {
		return domain.ErrEventNotFound
	}

	t.ID = m.id()
	t.CreatedAt = time.Now().UTC()
	m.tasks[t.ID] = *t
	return nil
}

func (m *Memory) TaskByID(_ context.Context, id int64) (*domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	return &t, nil
}

func (m *Memory) TasksByEvent(_ context.Context, eventID int64, stageID *int64) ([]domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []domain.Task
	for _, t := range m.tasks {
		if t.EventID != eventID {
			continue
		}
		if stageID != nil && (t.StageID == nil || *t.StageID != *stageID) {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *Memory) ToggleTask(_ context.Context, id int64) (*domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	t.Completed = !t.Completed
	m.tasks[id] = t
	return &t, nil
}

func (m *Memory) DeleteTask(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.tasks[id]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(m.tasks, id)
	return nil
}

func (m *Memory) ListStages(_ context.Context) ([]domain.Stage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]domain.Stage, len(m.stages))
	copy(out, m.stages)
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (m *Memory) CreateStage(_ context.Context, s *domain.Stage) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s.ID = m.id()
	m.stages = append(m.stages, *s)
	return nil
}

// Notifications

func (m *Memory) CreateNotification(_ context.Context, n *domain.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	n.ID = m.id()
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	m.notifications[n.ID] = *n
	return nil
}

func (m *Memory) NotificationsByUser(_ context.Context, userID int64, unreadOnly bool) ([]domain.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []domain.Notification
	for _, n := range m.notifications {
		if n.UserID != userID {
			continue
		}
		if unreadOnly && n.Read {
			continue
		}
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *Memory) MarkNotificationRead(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	n, ok := m.notifications[id]
	if !ok {
		return domain.ErrNotificationNotFound
	}
	n.Read = true
	m.notifications[id] = n
	return nil
}

func (m *Memory) MarkAllNotificationsRead(_ context.Context, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, n := range m.notifications {
		if n.UserID == userID {
			n.Read = true
			m.notifications[id] = n
		}
	}
	return nil
}

func (m *Memory) DeleteNotification(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.notifications[id]; !ok {
		return domain.ErrNotificationNotFound
	}
	delete(m.notifications, id)
	return nil
}

// Reminders

func (m *Memory) CreateReminder(_ context.Context, r *domain.Reminder) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.events[r.EventID]; !ok {
		return domain.ErrEventNotFound
	}
	r.ID = m.id()
	m.reminders = append(m.reminders, *r)
	return nil
}

// Reminders returns everything registered so far, oldest first. Test hook.
func (m *Memory) Reminders() []domain.Reminder {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]domain.Reminder, len(m.reminders))
	copy(out, m.reminders)
	return out
}

// Push tokens and feedback

func (m *Memory) UpsertPushToken(_ context.Context, t domain.PushToken) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.pushTokens[t.Token] = t
	return nil
}

func (m *Memory) CreateFeedback(_ context.Context, f *domain.Feedback) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.events[f.EventID]; !ok {
		return domain.ErrEventNotFound
	}
	f.ID = m.id()
	f.CreatedAt = time.Now().UTC()
	m.feedback = append(m.feedback, *f)
	return nil
}

func (m *Memory) FeedbackByEvent(_ context.Context, eventID int64) ([]domain.Feedback, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []domain.Feedback
	for _, f := range m.feedback {
		if f.EventID == eventID {
			out = append(out, f)
		}
	}
	return out, nil
}
