package service

import (
	"context"
	"errors"
	"testing"

	"github.com/dev-kelz/Event-Management-System/internal/domain"
	"github.com/dev-kelz/Event-Management-System/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTaskBoard_EnsureStages_ExistingStagesUntouched(t *testing.T) {
	tasks := mocks.NewMockTaskAPI(t)
	stages := mocks.NewMockStageAPI(t)
	board := NewTaskBoard(tasks, stages, newTestLogger(t))

	existing := []domain.Stage{{ID: 1, Name: "Planning"}}
	stages.EXPECT().Stages(mock.Anything).Return(existing, nil).Once()

	got, err := board.EnsureStages(context.Background())

	require.NoError(t, err)
	assert.Equal(t, existing, got)
}

func TestTaskBoard_EnsureStages_BootstrapsDefaultsInOrder(t *testing.T) {
	tasks := mocks.NewMockTaskAPI(t)
	stages := mocks.NewMockStageAPI(t)
	board := NewTaskBoard(tasks, stages, newTestLogger(t))

	stages.EXPECT().Stages(mock.Anything).Return(nil, nil).Once()

	var created []string
	for _, stage := range domain.DefaultStages {
		stage := stage
		stages.EXPECT().CreateStage(mock.Anything, stage).
			RunAndReturn(func(_ context.Context, s domain.Stage) (*domain.Stage, error) {
				created = append(created, s.Name)
				return &s, nil
			}).Once()
	}

	bootstrapped := []domain.Stage{
		{ID: 1, Name: "Planning", Order: 0},
		{ID: 2, Name: "Promotion", Order: 1},
		{ID: 3, Name: "Execution", Order: 2},
		{ID: 4, Name: "Post-Event", Order: 3},
	}
	stages.EXPECT().Stages(mock.Anything).Return(bootstrapped, nil).Once()

	got, err := board.EnsureStages(context.Background())

	require.NoError(t, err)
	assert.Equal(t, bootstrapped, got)
	assert.Equal(t, []string{"Planning", "Promotion", "Execution", "Post-Event"}, created)
}

func TestTaskBoard_EnsureStages_CreateFailureAborts(t *testing.T) {
	tasks := mocks.NewMockTaskAPI(t)
	stages := mocks.NewMockStageAPI(t)
	board := NewTaskBoard(tasks, stages, newTestLogger(t))

	stages.EXPECT().Stages(mock.Anything).Return([]domain.Stage{}, nil).Once()
	stages.EXPECT().CreateStage(mock.Anything, domain.DefaultStages[0]).
		Return(nil, errors.New("500")).Once()

	_, err := board.EnsureStages(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Planning")
}

func stageID(id int64) *int64 { return &id }

func TestProgress(t *testing.T) {
	stages := []domain.Stage{
		{ID: 1, Name: "Planning"},
		{ID: 2, Name: "Promotion"},
		{ID: 3, Name: "Execution"},
	}
	tasks := []domain.Task{
		{ID: 1, StageID: stageID(1), Completed: true},
		{ID: 2, StageID: stageID(1), Completed: true},
		{ID: 3, StageID: stageID(1)},
		{ID: 4, StageID: stageID(2)},
		{ID: 5}, // no stage, counted nowhere
	}

	got := Progress(stages, tasks)

	require.Len(t, got, 3)

	assert.Equal(t, 3, got[0].Total)
	assert.Equal(t, 2, got[0].Completed)
	assert.InDelta(t, 66.66, got[0].Percent, 0.01)

	assert.Equal(t, 1, got[1].Total)
	assert.Equal(t, 0, got[1].Completed)
	assert.Equal(t, 0.0, got[1].Percent)

	// stage with no tasks reports zero, not NaN
	assert.Equal(t, 0, got[2].Total)
	assert.Equal(t, 0.0, got[2].Percent)
}

func TestTaskBoard_CreateTask_Validation(t *testing.T) {
	tasks := mocks.NewMockTaskAPI(t)
	stages := mocks.NewMockStageAPI(t)
	board := NewTaskBoard(tasks, stages, newTestLogger(t))

	_, err := board.CreateTask(context.Background(), domain.CreateTaskInput{EventID: 1})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTaskBoard_CreateTask_DefaultsPriority(t *testing.T) {
	tasks := mocks.NewMockTaskAPI(t)
	stages := mocks.NewMockStageAPI(t)
	board := NewTaskBoard(tasks, stages, newTestLogger(t))

	tasks.EXPECT().CreateTask(mock.Anything, mock.MatchedBy(func(input domain.CreateTaskInput) bool {
		return input.Priority == domain.PriorityMedium
	})).Return(&domain.Task{ID: 1, Title: "Book venue", Priority: domain.PriorityMedium}, nil)

	task, err := board.CreateTask(context.Background(), domain.CreateTaskInput{
		EventID: 1,
		Title:   "Book venue",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.PriorityMedium, task.Priority)
}
