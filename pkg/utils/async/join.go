package async

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"
)

// Task is a named unit of work run by Join
type Task struct {
	Name string
	Run  func(ctx context.Context) error
}

// Outcome reports how a single task ended
type Outcome struct {
	Name     string
	Err      error
	Duration time.Duration
}

// Join runs every task concurrently and returns only after all of them have finished.
// A failing task does not cancel the others. Outcomes are returned in task order.
// When any task fails, the error of the first failed task (in task order) is returned
// annotated with the names of all failed tasks.
func Join(ctx context.Context, tasks ...Task) ([]Outcome, error) {
	outcomes := make([]Outcome, len(tasks))

	var g errgroup.Group
	for i, task := range tasks {
		g.Go(func() error {
			start := time.Now()
			err := runTask(ctx, task)
			outcomes[i] = Outcome{
				Name:     task.Name,
				Err:      err,
				Duration: time.Since(start),
			}
			return err
		})
	}
	_ = g.Wait()

	var first error
	var failed []string
	for _, o := range outcomes {
		if o.Err == nil {
			continue
		}
		if first == nil {
			first = o.Err
		}
		failed = append(failed, o.Name)
	}

	if first != nil {
		return outcomes, goerr.Wrap(first, "joined task failed",
			goerr.V("failed_tasks", failed),
			goerr.V("task_count", len(tasks)))
	}
	return outcomes, nil
}

func runTask(ctx context.Context, task Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			ctxlog.From(ctx).Error("Panic in joined task",
				"task", task.Name,
				"recover", r,
				"stack", string(debug.Stack()),
			)
			err = goerr.New(fmt.Sprintf("panic in task: %v", r), goerr.V("task", task.Name))
		}
	}()

	if err := task.Run(ctx); err != nil {
		return goerr.Wrap(err, "task failed", goerr.V("task", task.Name))
	}
	return nil
}
