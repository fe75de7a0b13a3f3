package service

import (
	"context"
	"fmt"

	"github.com/dev-kelz/Event-Management-System/internal/domain"
	"github.com/dev-kelz/Event-Management-System/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// TaskBoard groups an event's tasks by stage and computes per-stage
// completion statistics. It also owns stage bootstrapping: a backend with
// zero stages gets the four canonical ones created in order before any
// grouping happens.
type TaskBoard struct {
	tasks  ports.TaskAPI
	stages ports.StageAPI
	log    logger.Logger
}

func NewTaskBoard(tasks ports.TaskAPI, stages ports.StageAPI, log logger.Logger) *TaskBoard {
	return &TaskBoard{tasks: tasks, stages: stages, log: log}
}

// EnsureStages returns the stage list, bootstrapping the canonical four
// (Planning, Promotion, Execution, Post-Event) when the backend has none.
func (b *TaskBoard) EnsureStages(ctx context.Context) ([]domain.Stage, error) {
	stages, err := b.stages.Stages(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stages: %w", err)
	}
	if len(stages) > 0 {
		return stages, nil
	}

	b.log.Info("no stages on backend, creating defaults")
	for _, stage := range domain.DefaultStages {
		if _, err := b.stages.CreateStage(ctx, stage); err != nil {
			return nil, fmt.Errorf("create stage %q: %w", stage.Name, err)
		}
	}

	stages, err = b.stages.Stages(ctx)
	if err != nil {
		return nil, fmt.Errorf("refetch stages: %w", err)
	}
	return stages, nil
}

// StageProgress is one stage's completion statistics.
type StageProgress struct {
	Stage     domain.Stage
	Total     int
	Completed int
	Percent   float64
}

// Progress computes per-stage statistics over the full task list. A stage
// with no tasks reports 0 percent; tasks without a stage reference are
// counted in no bucket.
func Progress(stages []domain.Stage, tasks []domain.Task) []StageProgress {
	out := make([]StageProgress, 0, len(stages))
	for _, stage := range stages {
		p := StageProgress{Stage: stage}
		for _, t := range tasks {
			if t.StageID == nil || *t.StageID != stage.ID {
				continue
			}
			p.Total++
			if t.Completed {
				p.Completed++
			}
		}
		if p.Total > 0 {
			p.Percent = float64(p.Completed) / float64(p.Total) * 100
		}
		out = append(out, p)
	}
	return out
}

func (b *TaskBoard) Tasks(ctx context.Context, eventID int64, stageID *int64) ([]domain.Task, error) {
	return b.tasks.EventTasks(ctx, eventID, stageID)
}

func (b *TaskBoard) CreateTask(ctx context.Context, input domain.CreateTaskInput) (*domain.Task, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: task title is required", domain.ErrValidation)
	}
	if input.Priority == "" {
		input.Priority = domain.PriorityMedium
	}
	return b.tasks.CreateTask(ctx, input)
}

func (b *TaskBoard) ToggleTask(ctx context.Context, taskID int64) (*domain.Task, error) {
	return b.tasks.ToggleTask(ctx, taskID)
}

func (b *TaskBoard) DeleteTask(ctx context.Context, taskID int64) error {
	return b.tasks.DeleteTask(ctx, taskID)
}
