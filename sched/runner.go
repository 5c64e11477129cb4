package sched

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"sync"
	"time"
)

// Time sources recorded for a task.
const (
	SourceOutput = "output"
	SourceWall   = "wall"
)

type Record struct {
	Policy   string
	TaskID   int
	PID      int
	Start    time.Time
	End      time.Time
	Wall     time.Duration
	TaskTime float64
	Source   string
	ExitCode int
	Err      string
}

type Runner struct {
	// Command is the benchmark binary followed by its arguments.
	Command  []string
	Tasks    int
	Policies []Policy
	// Env is appended to the current environment of every task.
	Env    []string
	Logger *slog.Logger
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.Default()
	}

	return r.Logger
}

// Run executes the policies one after another. Within a policy all Tasks
// copies start together and Run waits for every one before moving on.
func (r *Runner) Run(ctx context.Context) ([]Record, error) {
	if len(r.Command) == 0 {
		return nil, errors.New("sched: no command to run")
	}

	if r.Tasks < 1 {
		return nil, fmt.Errorf("sched: task count must be positive, got %d", r.Tasks)
	}

	var records []Record
	for _, p := range r.Policies {
		if err := ctx.Err(); err != nil {
			return records, err
		}

		r.logger().Info("running policy", "policy", p.Name, "tasks", r.Tasks)
		records = append(records, r.runPolicy(ctx, p)...)
	}

	return records, nil
}

func (r *Runner) runPolicy(ctx context.Context, p Policy) []Record {
	records := make([]Record, r.Tasks)

	var wg sync.WaitGroup
	for i := range records {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			records[i] = r.runTask(ctx, p, i+1)
		}(i)
	}
	wg.Wait()

	return records
}

func (r *Runner) runTask(ctx context.Context, p Policy, id int) Record {
	log := r.logger().With("policy", p.Name, "task", id)

	argv := append(append([]string(nil), p.Prefix...), r.Command...)
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	if len(r.Env) > 0 {
		cmd.Env = append(os.Environ(), r.Env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	rec := Record{Policy: p.Name, TaskID: id, ExitCode: -1}

	rec.Start = time.Now()
	if err := cmd.Start(); err != nil {
		rec.End = time.Now()
		rec.Err = err.Error()
		rec.Source = SourceWall
		log.Error("failed to start task", "error", err)
		return rec
	}

	rec.PID = cmd.Process.Pid
	err := cmd.Wait()
	rec.End = time.Now()
	rec.Wall = rec.End.Sub(rec.Start)
	rec.ExitCode = cmd.ProcessState.ExitCode()

	if err != nil {
		rec.Err = err.Error()
		log.Warn("task failed", "pid", rec.PID, "error", err, "stderr", stderr.String())
	}

	if v, ok := ParseTaskTime(stdout.String()); ok {
		rec.TaskTime = v
		rec.Source = SourceOutput
	} else {
		rec.TaskTime = rec.Wall.Seconds()
		rec.Source = SourceWall
	}

	log.Debug("task finished", "pid", rec.PID, "wall", rec.Wall, "task_time", rec.TaskTime, "source", rec.Source)

	return rec
}
