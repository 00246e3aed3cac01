// Package sandbox hands code submissions to an isolated execution worker
// over Redis. Tasks go onto a list the worker pops; results come back on a
// per-task pub/sub channel.
package sandbox

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"ai-interview-be/internal/pkg/logger"
)

const queueKey = "code_execution_queue"

// ExecutionResult is what the worker reports back for one run.
type ExecutionResult struct {
	Stdout          string `json:"stdout"`
	Stderr          string `json:"stderr"`
	ExitCode        int    `json:"exit_code"`
	TimedOut        bool   `json:"timed_out"`
	ExecutionTimeMs int64  `json:"execution_time_ms"`
}

type executionTask struct {
	TaskID   string `json:"task_id"`
	Code     string `json:"code"`
	Language string `json:"language"`
	Stdin    string `json:"stdin"`
}

type Executor struct {
	rdb     *redis.Client
	timeout time.Duration
	log     logger.ILogger
}

func NewExecutor(rdb *redis.Client, timeout time.Duration, log logger.ILogger) *Executor {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Executor{rdb: rdb, timeout: timeout, log: log}
}

// Execute queues the code for the sandbox worker and waits for its result.
// A missing or overloaded worker surfaces as a timed-out result, not an
// error, so callers can still report something to the candidate.
func (e *Executor) Execute(ctx context.Context, code, language, stdin string) (*ExecutionResult, error) {
	taskID := uuid.NewString()
	resultChannel := fmt.Sprintf("code_result:%s", taskID)

	// 1. Subscribe before pushing so the result cannot slip past us
	pubsub := e.rdb.Subscribe(ctx, resultChannel)
	defer pubsub.Close()
	if _, err := pubsub.Receive(ctx); err != nil {
		return nil, fmt.Errorf("subscribe to result channel: %w", err)
	}

	// 2. Queue the task
	task := executionTask{
		TaskID:   taskID,
		Code:     code,
		Language: language,
		Stdin:    stdin,
	}
	payload, err := json.Marshal(task)
	if err != nil {
		return nil, fmt.Errorf("marshal execution task: %w", err)
	}
	if err := e.rdb.LPush(ctx, queueKey, payload).Err(); err != nil {
		return nil, fmt.Errorf("queue execution task: %w", err)
	}

	e.log.Debug("Sandbox", "Execution task queued", map[string]interface{}{
		"task_id":  taskID,
		"language": language,
	})

	// 3. Wait for the worker's verdict
	select {
	case msg := <-pubsub.Channel():
		var result ExecutionResult
		if err := json.Unmarshal([]byte(msg.Payload), &result); err != nil {
			return nil, fmt.Errorf("unmarshal execution result: %w", err)
		}
		return &result, nil
	case <-time.After(e.timeout):
		e.log.Warn("Sandbox", "Execution timed out waiting for worker", map[string]interface{}{
			"task_id": taskID,
			"timeout": e.timeout.String(),
		})
		return &ExecutionResult{
			Stderr:          "Execution timed out waiting for worker",
			ExitCode:        -1,
			TimedOut:        true,
			ExecutionTimeMs: e.timeout.Milliseconds(),
		}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
