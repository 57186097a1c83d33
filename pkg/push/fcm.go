package push

import (
	"context"
	"errors"
	"log/slog"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// FCM accepts at most this many messages per SendEach call
const fcmBatchLimit = 500

type fcmClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
	SendEach(ctx context.Context, messages []*messaging.Message) (*messaging.BatchResponse, error)
}

type FCMSender struct {
	client fcmClient
	logger *slog.Logger
}

// NewFCMSender builds sender from service account credentials file
func NewFCMSender(ctx context.Context, credentialsFile string, logger *slog.Logger) (*FCMSender, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, errors.New("initializing firebase app error: " + err.Error())
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.New("initializing firebase messaging error: " + err.Error())
	}
	return newFCMSenderWithClient(client, logger), nil
}

func newFCMSenderWithClient(client fcmClient, logger *slog.Logger) *FCMSender {
	if logger == nil {
		logger = slog.Default()
	}
	return &FCMSender{client: client, logger: logger}
}

func toFCM(msg Message) *messaging.Message {
	return &messaging.Message{
		Token: msg.Token,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
	}
}

func (fs *FCMSender) Send(ctx context.Context, msg Message) error {
	if msg.Token == "" {
		return ErrEmptyToken
	}
	if _, err := fs.client.Send(ctx, toFCM(msg)); err != nil {
		return errors.New("fcm send error: " + err.Error())
	}
	return nil
}

func (fs *FCMSender) SendBatch(ctx context.Context, msgs []Message) (BatchResult, error) {
	res := BatchResult{}
	for start := 0; start < len(msgs); start += fcmBatchLimit {
		end := min(start+fcmBatchLimit, len(msgs))
		chunk := make([]*messaging.Message, 0, end-start)
		for _, m := range msgs[start:end] {
			chunk = append(chunk, toFCM(m))
		}
		br, err := fs.client.SendEach(ctx, chunk)
		if err != nil {
			return res, errors.New("fcm batch send error: " + err.Error())
		}
		res.Success += br.SuccessCount
		res.Failure += br.FailureCount
		for i, r := range br.Responses {
			if r != nil && !r.Success && r.Error != nil {
				fs.logger.DebugContext(ctx, "push delivery failed", slog.Int("index", start+i), slog.String("error", r.Error.Error()))
			}
		}
	}
	return res, nil
}
