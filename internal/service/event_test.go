package service

import (
	"context"
	"testing"
	"time"

	"github.com/dev-kelz/Event-Management-System/internal/domain"
	"github.com/dev-kelz/Event-Management-System/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEventService_Create(t *testing.T) {
	api := mocks.NewMockEventAPI(t)
	svc := NewEventService(api)

	input := domain.CreateEventInput{
		Title:     "Hackathon",
		Date:      time.Date(2026, 11, 2, 9, 0, 0, 0, time.UTC),
		CreatedBy: 7,
	}
	api.EXPECT().CreateEvent(mock.Anything, input).
		Return(&domain.Event{ID: 1, Title: "Hackathon"}, nil)

	event, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, int64(1), event.ID)
}

func TestEventService_Create_MissingTitle(t *testing.T) {
	api := mocks.NewMockEventAPI(t)
	svc := NewEventService(api)

	_, err := svc.Create(context.Background(), domain.CreateEventInput{
		Date: time.Date(2026, 11, 2, 9, 0, 0, 0, time.UTC),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Create_MissingDate(t *testing.T) {
	api := mocks.NewMockEventAPI(t)
	svc := NewEventService(api)

	_, err := svc.Create(context.Background(), domain.CreateEventInput{Title: "Hackathon"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Get_NotFound(t *testing.T) {
	api := mocks.NewMockEventAPI(t)
	svc := NewEventService(api)

	api.EXPECT().Event(mock.Anything, int64(99)).Return(nil, domain.ErrEventNotFound)

	_, err := svc.Get(context.Background(), 99)

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}
