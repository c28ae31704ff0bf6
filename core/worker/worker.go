package worker

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"social-events-api/core/config"
	"social-events-api/core/logger"
)

// Task types
const (
	TypeModerationReview = "moderation:review"
)

// ModerationReviewPayload describes a recorded moderation alert that needs
// human review.
type ModerationReviewPayload struct {
	AlertID     uuid.UUID `json:"alert_id"`
	ClientID    uuid.UUID `json:"client_id"`
	SubjectKind string    `json:"subject_kind"` // "post" or "comment"
	SubjectID   uuid.UUID `json:"subject_id"`
}

// Enqueuer is the queue surface services depend on; kept small so tests can
// fake it.
type Enqueuer interface {
	EnqueueModerationReview(ctx context.Context, payload ModerationReviewPayload) error
}

type Client struct {
	client *asynq.Client
}

func NewClient(cfg config.RedisConfig) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
	}
}

func (c *Client) EnqueueModerationReview(ctx context.Context, payload ModerationReviewPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	task := asynq.NewTask(TypeModerationReview, data, asynq.MaxRetry(3))
	if _, err := c.client.EnqueueContext(ctx, task); err != nil {
		return err
	}
	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

// ModerationReviewHandler processes a moderation review task.
type ModerationReviewHandler func(ctx context.Context, payload ModerationReviewPayload) error

// Server wraps the asynq consumer side.
type Server struct {
	srv *asynq.Server
	mux *asynq.ServeMux
}

func NewServer(cfg config.RedisConfig, onModerationReview ModerationReviewHandler) *Server {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		},
		asynq.Config{
			Concurrency: 5,
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeModerationReview, func(ctx context.Context, t *asynq.Task) error {
		var payload ModerationReviewPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			logger.Error("Worker:ModerationReview:Unmarshal", err)
			return err
		}
		return onModerationReview(ctx, payload)
	})

	return &Server{srv: srv, mux: mux}
}

// Start runs the consumer in its own goroutine. Failures are logged only;
// the queue is a best-effort side channel and must not take the API down.
func (s *Server) Start() {
	go func() {
		if err := s.srv.Run(s.mux); err != nil {
			logger.Error("Worker:Server:Run", err)
		}
	}()
}

func (s *Server) Shutdown() {
	s.srv.Shutdown()
}
