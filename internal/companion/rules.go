// Package companion generates the chat companion's replies.
package companion

import (
	"strings"

	"github.com/limbo/serene/pkg/entity"
)

type Topic string

const (
	TopicAnxiety    Topic = "anxiety"
	TopicSadness    Topic = "sadness"
	TopicStress     Topic = "stress"
	TopicLoneliness Topic = "loneliness"
	TopicSleep      Topic = "sleep"
	TopicGratitude  Topic = "gratitude"
	TopicGreeting   Topic = "greeting"
	TopicDefault    Topic = "default"
)

type topicRule struct {
	topic    Topic
	keywords []string
}

// Checked in order, first match wins
var topicRules = []topicRule{
	{TopicAnxiety, []string{"anxious", "anxiety", "panic", "nervous", "worried", "worry", "scared", "afraid"}},
	{TopicSadness, []string{"sad", "depressed", "down", "cry", "crying", "unhappy", "hopeless", "empty"}},
	{TopicStress, []string{"stress", "stressed", "overwhelmed", "pressure", "burnout", "exhausted", "too much"}},
	{TopicLoneliness, []string{"lonely", "alone", "isolated", "no friends", "nobody"}},
	{TopicSleep, []string{"sleep", "insomnia", "tired", "can't rest", "awake", "nightmare"}},
	{TopicGratitude, []string{"grateful", "thankful", "thank you", "thanks", "happy", "good day", "better"}},
	{TopicGreeting, []string{"hello", "hi ", "hey", "good morning", "good evening"}},
}

var topicReplies = map[Topic][]string{
	TopicAnxiety: {
		"It sounds like anxiety is weighing on you. Let's try something together: breathe in for 4 seconds, hold for 4, and breathe out for 6. What is on your mind right now?",
		"Feeling anxious can be really uncomfortable. Try naming five things you can see around you, it can help bring you back to the present moment.",
	},
	TopicSadness: {
		"I'm sorry you're feeling this way. Your feelings are valid, and it's okay to not be okay. Would you like to talk about what's been happening?",
		"That sounds really hard. Sometimes writing down what we feel in the journal helps a little. I'm here to listen whenever you want.",
	},
	TopicStress: {
		"It sounds like you have a lot on your plate. What is one small thing you could set aside for today?",
		"Stress can build up quietly. A short walk or a few minutes of the breathing exercise might give you some space.",
	},
	TopicLoneliness: {
		"Feeling lonely is painful, and I'm glad you reached out. Is there someone you could send a short message to today?",
		"You're not as alone as it feels right now. The community space is full of people who understand what you're going through.",
	},
	TopicSleep: {
		"Sleep troubles can affect everything. Try keeping screens away for 30 minutes before bed and keeping a regular bedtime.",
		"Rest matters. A slow breathing exercise before bed can help your body wind down.",
	},
	TopicGratitude: {
		"That's wonderful to hear! Noticing the good moments really matters. What made today feel better?",
		"I love that. Maybe save this moment as an affirmation so you can come back to it later.",
	},
	TopicGreeting: {
		"Hi there! I'm here to listen. How are you feeling today?",
		"Hello! It's good to hear from you. What's on your mind?",
	},
	TopicDefault: {
		"Thank you for sharing that with me. Can you tell me more about how it makes you feel?",
		"I'm here with you. Take your time, what would help you most right now?",
	},
}

// DetectTopic picks the first matching topic for text
func DetectTopic(text string) Topic {
	lower := " " + strings.ToLower(text) + " "
	for _, rule := range topicRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.topic
			}
		}
	}
	return TopicDefault
}

// RuleReply picks a topic reply. The variant rotates with the conversation length.
func RuleReply(text string, history []entity.ChatMessage) string {
	variants := topicReplies[DetectTopic(text)]
	return variants[len(history)%len(variants)]
}
