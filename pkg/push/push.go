// Package push delivers notifications to user devices.
package push

//go:generate mockgen -source=push.go -destination=mocks/push_mocks.go -package=mocks

import (
	"context"
	"errors"
	"log/slog"
)

var ErrEmptyToken = errors.New("empty push token")

type Message struct {
	Token string
	Title string
	Body  string
	Data  map[string]string
}

type BatchResult struct {
	Success int
	Failure int
}

type Sender interface {
	// Delivers one message
	Send(ctx context.Context, msg Message) error
	// Delivers messages in one go, without retries. Individual failures only show up in the result
	SendBatch(ctx context.Context, msgs []Message) (BatchResult, error)
}

// LogSender only logs messages. Used when no push provider is configured.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSender{logger: logger}
}

func (ls *LogSender) Send(ctx context.Context, msg Message) error {
	if msg.Token == "" {
		return ErrEmptyToken
	}
	ls.logger.InfoContext(ctx, "push message", slog.String("title", msg.Title), slog.String("body", msg.Body))
	return nil
}

func (ls *LogSender) SendBatch(ctx context.Context, msgs []Message) (BatchResult, error) {
	res := BatchResult{}
	for _, m := range msgs {
		if err := ls.Send(ctx, m); err != nil {
			res.Failure++
			continue
		}
		res.Success++
	}
	return res, nil
}
