package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/internhub/intake-backend/internal/domain"
)

// RedisSender publishes notifications as JSON to per-recipient Redis
// channels (`notifications:user:<id>`), where in-app clients subscribe.
type RedisSender struct {
	rdb *redis.Client
}

// NewRedisSender creates a RedisSender.
func NewRedisSender(rdb *redis.Client) *RedisSender {
	return &RedisSender{rdb: rdb}
}

type payload struct {
	Title    string `json:"title"`
	Message  string `json:"message"`
	Priority string `json:"priority"`
	SentAt   string `json:"sentAt"`
}

// Send publishes the notification to the recipient's channel.
func (s *RedisSender) Send(ctx context.Context, n domain.Notification) error {
	body, err := json.Marshal(payload{
		Title:    n.Title,
		Message:  n.Message,
		Priority: string(n.Priority),
		SentAt:   time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	channel := fmt.Sprintf("notifications:user:%s", n.RecipientID)
	if err := s.rdb.Publish(ctx, channel, body).Err(); err != nil {
		return fmt.Errorf("publish to %s: %w", channel, err)
	}
	return nil
}
