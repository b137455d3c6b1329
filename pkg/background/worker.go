package background

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"shipledger/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// Task — периодическая фоновая задача.
type Task interface {
	// TTL возвращает интервал между запусками.
	TTL() time.Duration

	// Do выполняет одну итерацию задачи.
	Do(context.Context) error

	// Info возвращает читаемое имя задачи для логов.
	Info() string
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Worker держит набор фоновых задач и гоняет их по тикеру.
type Worker struct {
	log   handlerLogger
	tasks []Task
}

// New прогревает все задачи и запускает их периодическое выполнение.
//
// Прогрев: каждая задача выполняется один раз синхронно, и если хотя бы
// одна вернула ошибку или запаниковала, New возвращает ошибку и Worker
// не создается. Дальше задачи крутятся в фоне до отмены контекста.
func New(ctx context.Context, log handlerLogger, tasks []Task) (*Worker, error) {
	worker := &Worker{
		log:   log,
		tasks: tasks,
	}
	if len(tasks) == 0 {
		return worker, nil
	}

	if err := warmUp(ctx, log, tasks); err != nil {
		return nil, fmt.Errorf("failed to initialize tasks: %w", err)
	}

	for _, task := range tasks {
		go worker.runPeriodic(ctx, task)
	}

	return worker, nil
}

func warmUp(ctx context.Context, log handlerLogger, tasks []Task) error {
	group, groupCtx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		group.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					stack := debug.Stack()
					err = fmt.Errorf("init panic: %v\n%s", r, stack)
					log.Error("Task panic during init",
						logger.NewField("task", task.Info()),
						logger.NewField("recover", r),
						logger.NewField("stack", stack),
					)
				}
			}()
			log.Info("Initializing",
				logger.NewField("task", task.Info()),
			)
			return task.Do(groupCtx)
		})
	}
	return group.Wait()
}

func (w *Worker) runPeriodic(ctx context.Context, task Task) {
	ttl := task.TTL()
	if ttl <= 0 {
		w.log.Warn("invalid TTL, skipping periodic execution",
			logger.NewField("task", task.Info()),
			logger.NewField("TTL", ttl),
		)
		return
	}
	w.log.Info("Starting periodic execution",
		logger.NewField("task", task.Info()),
		logger.NewField("TTL", ttl),
	)

	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info("Stopping task (context cancelled)",
				logger.NewField("task", task.Info()),
			)
			return
		case <-ticker.C:
			w.runOnce(ctx, task)
		}
	}
}

func (w *Worker) runOnce(ctx context.Context, task Task) {
	defer func() {
		if r := recover(); r != nil {
			w.log.Error("Background task panic",
				logger.NewField("task", task.Info()),
				logger.NewField("recover", r),
				logger.NewField("stack", debug.Stack()),
			)
		}
	}()

	if err := task.Do(ctx); err != nil {
		w.log.Error("Background task failed",
			logger.NewField("task", task.Info()),
			logger.NewField("error", err),
		)
	}
}
