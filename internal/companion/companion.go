package companion

//go:generate mockgen -source=companion.go -destination=mocks/companion_mocks.go -package=mocks

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"

	"github.com/limbo/serene/internal/wellness"
	"github.com/limbo/serene/pkg/entity"
	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

const (
	DefaultModel = "gpt-4o-mini"
	// Previous messages passed to the model as context
	historyContext = 10
	maxReplyTokens = 300
)

const systemPrompt = `You are Serene, a warm and supportive wellness companion inside a mood tracking app.

- Reply in 2-4 short sentences, in the language the user writes in.
- Listen, validate feelings and suggest one small, practical step (breathing, journaling, a walk, reaching out).
- Never diagnose, never give medical advice, never claim to be a therapist.
- If the user mentions self-harm or suicide, encourage them to contact a crisis line or emergency services right away.`

type Generator interface {
	Reply(ctx context.Context, text string, history []entity.ChatMessage) string
}

type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Companion answers with the model when configured, with the rule-based
// replies otherwise or whenever the model fails. Crisis input always gets CrisisMessage.
type Companion struct {
	client *openai.Client
	model  string
	logger *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Companion {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Companion{logger: logger}
	if cfg.APIKey == "" {
		return c
	}
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(strings.TrimRight(cfg.BaseURL, "/")+"/"))
	}
	client := openai.NewClient(opts...)
	c.client = &client
	c.model = cfg.Model
	if c.model == "" {
		c.model = DefaultModel
	}
	return c
}

func (c *Companion) Reply(ctx context.Context, text string, history []entity.ChatMessage) string {
	if wellness.DetectCrisis(text) {
		return wellness.CrisisMessage
	}
	if c.client != nil {
		reply, err := c.aiReply(ctx, text, history)
		if err == nil {
			return reply
		}
		c.logger.WarnContext(ctx, "ai reply failed, using rules", slog.String("error", err.Error()))
	}
	return RuleReply(text, history)
}

// history comes newest first
func (c *Companion) aiReply(ctx context.Context, text string, history []entity.ChatMessage) (string, error) {
	recent := history
	if len(recent) > historyContext {
		recent = recent[:historyContext]
	}
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(recent)+2)
	messages = append(messages, openai.SystemMessage(systemPrompt))
	for _, m := range slices.Backward(recent) {
		if m.Role == entity.ChatRoleCompanion {
			messages = append(messages, openai.AssistantMessage(m.Text))
		} else {
			messages = append(messages, openai.UserMessage(m.Text))
		}
	}
	messages = append(messages, openai.UserMessage(text))

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:               openai.ChatModel(c.model),
		Messages:            messages,
		MaxCompletionTokens: openai.Int(maxReplyTokens),
	})
	if err != nil {
		return "", errors.New("chat completion error: " + err.Error())
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	reply := strings.TrimSpace(resp.Choices[0].Message.Content)
	if reply == "" {
		return "", errors.New("chat completion returned empty reply")
	}
	// The model may still answer a crisis-adjacent message casually
	if wellness.DetectCrisis(reply) {
		return wellness.CrisisMessage, nil
	}
	return reply, nil
}
