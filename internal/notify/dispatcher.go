package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/collabotree/collabotree/internal/config"
	"github.com/collabotree/collabotree/internal/domain"
	"github.com/collabotree/collabotree/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

var inFlight sync.Map

type NotificationRepo interface {
	FindUndelivered(ctx context.Context, limit uint32) ([]domain.Notification, error)
	MarkDelivered(ctx context.Context, id int) error
}

type webhookEvent struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Kind      string    `json:"kind"`
	Payload   string    `json:"payload"`
	CreatedAt time.Time `json:"created_at"`
}

// Dispatcher drains undelivered notifications and pushes them to the
// configured webhook. Without a webhook it only logs and marks them delivered.
type Dispatcher struct {
	url              string
	notificationRepo NotificationRepo
	client           clients.HTTPClientI
	limit            uint32
	workerPool       WorkerPoolI
	updateInterval   time.Duration
}

func New(cfg *config.Config, notificationRepo NotificationRepo, client clients.HTTPClientI) *Dispatcher {
	return &Dispatcher{
		url:              cfg.NotifyWebhookURL,
		notificationRepo: notificationRepo,
		client:           client,
		limit:            1000,
		workerPool:       NewWorkerPool(10),
		updateInterval:   cfg.NotifyInterval,
	}
}

func (d *Dispatcher) Start(ctx context.Context) {
	zap.L().Info("Notification dispatcher started")
	go d.run(ctx)
}

func (d *Dispatcher) run(ctx context.Context) {
	ticker := time.NewTicker(d.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping dispatcher")
			return
		case <-ticker.C:
			d.processNotifications(ctx)
		}
	}
}

func (d *Dispatcher) processNotifications(ctx context.Context) {
	notifications, err := d.notificationRepo.FindUndelivered(ctx, atomic.LoadUint32(&d.limit))
	if err != nil {
		zap.L().Error("Failed to fetch undelivered notifications", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, n := range notifications {
		n := n

		if _, loaded := inFlight.LoadOrStore(n.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := d.workerPool.AddTask(ctx, func() error {
				defer inFlight.Delete(n.ID)
				return d.deliver(ctx, n)
			})
			if err != nil {
				inFlight.Delete(n.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error dispatching notifications", zap.Error(err))
	}
}

func (d *Dispatcher) deliver(ctx context.Context, n domain.Notification) error {
	if d.url == "" {
		zap.L().Info("Notification",
			zap.Int("id", n.ID),
			zap.Int("userID", n.UserID),
			zap.String("kind", n.Kind),
			zap.String("payload", n.Payload),
		)
		return d.notificationRepo.MarkDelivered(ctx, n.ID)
	}

	body, err := json.Marshal(webhookEvent{
		ID:        n.ID,
		UserID:    n.UserID,
		Kind:      n.Kind,
		Payload:   n.Payload,
		CreatedAt: n.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to encode notification %d: %w", n.ID, err)
	}

	headers := http.Header{"Content-Type": []string{"application/json"}}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			statusCode, _, respHeaders, err := d.client.Post(d.url, headers, body)
			if err != nil {
				if attempt < maxRetries {
					time.Sleep(retryInterval * time.Duration(attempt))
					continue
				}
				return fmt.Errorf("failed to deliver notification %d after %d retries: %w", n.ID, maxRetries, err)
			}

			switch {
			case statusCode == http.StatusTooManyRequests:
				d.handleRateLimit(n, respHeaders, attempt)
			case statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices:
				return d.notificationRepo.MarkDelivered(ctx, n.ID)
			default:
				zap.L().Warn("Webhook rejected notification",
					zap.Int("status", statusCode),
					zap.Int("id", n.ID),
					zap.Int("attempt", attempt),
				)
				if attempt < maxRetries {
					time.Sleep(retryInterval * time.Duration(attempt))
					continue
				}
				return fmt.Errorf("webhook rejected notification %d after %d retries", n.ID, maxRetries)
			}
		}
	}
	return nil
}

func (d *Dispatcher) handleRateLimit(n domain.Notification, respHeaders http.Header, attempt int) {
	retryAfterHeader := respHeaders.Get("Retry-After")
	retryAfter := retryInterval * time.Duration(attempt)

	if retryAfterHeader != "" {
		if seconds, err := strconv.Atoi(retryAfterHeader); err == nil {
			retryAfter = time.Duration(seconds) * time.Second
		}
	}
	zap.L().Warn(
		"Rate limit detected, retrying",
		zap.Int("id", n.ID),
		zap.Int("attempt", attempt),
		zap.Duration("retryAfter", retryAfter),
	)
	time.Sleep(retryAfter)
}
