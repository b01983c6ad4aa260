// Package jobs registers the core's three background tasks (index
// rebuild, phase-detection sweep, list generation) plus pairwise
// session cleanup as asynq.Tasks, and schedules the periodic ones on
// asynq's own scheduler rather than a second cron dependency, per spec
// §5. The teacher's services/scheduler.Frequency concept is the model
// for the cron specs below, translated to asynq's native registration.
package jobs

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const (
	// TypeRebuildIndex rebuilds the dense (C4) and multi-vector (C5)
	// ANN indexes from the current active candidate set.
	TypeRebuildIndex = "index:rebuild"
	// TypePhaseSweep runs detect_all_phases for one user, or every
	// active user when Payload.UserID is zero.
	TypePhaseSweep = "phase:sweep"
	// TypeGenerateList runs generate_chat_list in the background and
	// caches the result under the list's own id.
	TypeGenerateList = "list:generate"
	// TypeSessionCleanup marks pairwise sessions idle past a timeout as
	// abandoned.
	TypeSessionCleanup = "pairwise:cleanup_sessions"
)

// RebuildIndexPayload carries no fields: a rebuild always considers the
// full active candidate set.
type RebuildIndexPayload struct{}

// PhaseSweepPayload targets one user, or every active user when UserID
// is zero.
type PhaseSweepPayload struct {
	UserID uint64 `json:"userId,omitempty"`
}

// GenerateListPayload is one generate_chat_list invocation to run
// off the request path and cache by ListID.
type GenerateListPayload struct {
	ListID    uint64 `json:"listId"`
	UserID    uint64 `json:"userId"`
	Prompt    string `json:"prompt"`
	ItemLimit int    `json:"itemLimit"`
}

// SessionCleanupPayload carries no fields: cleanup always sweeps every
// session idle past the configured timeout.
type SessionCleanupPayload struct{}

// Enqueuer wraps an asynq.Client with one typed method per task,
// keeping task-type strings and payload shapes out of callers.
type Enqueuer struct {
	client *asynq.Client
}

// NewEnqueuer builds an Enqueuer over an asynq redis connection.
func NewEnqueuer(redisOpt asynq.RedisClientOpt) *Enqueuer {
	return &Enqueuer{client: asynq.NewClient(redisOpt)}
}

// Close releases the underlying asynq client connection.
func (e *Enqueuer) Close() error {
	return e.client.Close()
}

func newTask(taskType string, payload interface{}) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("jobs: marshaling %s payload: %w", taskType, err)
	}
	return asynq.NewTask(taskType, b), nil
}

// EnqueueRebuildIndex schedules an immediate index rebuild.
func (e *Enqueuer) EnqueueRebuildIndex(opts ...asynq.Option) (*asynq.TaskInfo, error) {
	task, err := newTask(TypeRebuildIndex, RebuildIndexPayload{})
	if err != nil {
		return nil, err
	}
	return e.client.Enqueue(task, opts...)
}

// EnqueuePhaseSweep schedules detect_all_phases for one user (or every
// active user when userID is zero).
func (e *Enqueuer) EnqueuePhaseSweep(userID uint64, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	task, err := newTask(TypePhaseSweep, PhaseSweepPayload{UserID: userID})
	if err != nil {
		return nil, err
	}
	return e.client.Enqueue(task, opts...)
}

// EnqueueGenerateList schedules a background generate_chat_list run,
// deduplicated per ListID via asynq's own TaskID option so a caller
// retrying a slow request never double-enqueues the same generation.
func (e *Enqueuer) EnqueueGenerateList(p GenerateListPayload, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	task, err := newTask(TypeGenerateList, p)
	if err != nil {
		return nil, err
	}
	opts = append(opts, asynq.TaskID(fmt.Sprintf("list-%d", p.ListID)))
	return e.client.Enqueue(task, opts...)
}

// EnqueueSessionCleanup schedules a pairwise-session cleanup sweep.
func (e *Enqueuer) EnqueueSessionCleanup(opts ...asynq.Option) (*asynq.TaskInfo, error) {
	task, err := newTask(TypeSessionCleanup, SessionCleanupPayload{})
	if err != nil {
		return nil, err
	}
	return e.client.Enqueue(task, opts...)
}

// RegisterPeriodic wires the recurring tasks onto asynq's own
// Scheduler: nightly index rebuild, hourly phase sweep across every
// active user, and an hourly session-cleanup pass. Using asynq's
// scheduler directly (rather than adding a standalone cron dependency)
// is the choice spec §5 calls for.
func RegisterPeriodic(scheduler *asynq.Scheduler) error {
	rebuild, err := newTask(TypeRebuildIndex, RebuildIndexPayload{})
	if err != nil {
		return err
	}
	if _, err := scheduler.Register("0 3 * * *", rebuild); err != nil {
		return fmt.Errorf("jobs: registering index rebuild: %w", err)
	}

	sweep, err := newTask(TypePhaseSweep, PhaseSweepPayload{})
	if err != nil {
		return err
	}
	if _, err := scheduler.Register("@hourly", sweep); err != nil {
		return fmt.Errorf("jobs: registering phase sweep: %w", err)
	}

	cleanup, err := newTask(TypeSessionCleanup, SessionCleanupPayload{})
	if err != nil {
		return err
	}
	if _, err := scheduler.Register("@hourly", cleanup); err != nil {
		return fmt.Errorf("jobs: registering session cleanup: %w", err)
	}
	return nil
}
