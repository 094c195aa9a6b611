package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Adityavardhan394/chatbot-restarunt/internal/domain"
	"github.com/Adityavardhan394/chatbot-restarunt/internal/intent"
	"github.com/Adityavardhan394/chatbot-restarunt/internal/response"
	"github.com/Adityavardhan394/chatbot-restarunt/internal/session"
)

// ChatService runs one conversation turn: record the user message, detect an
// eco-mode toggle or classify the intent, generate the reply and record it.
type ChatService struct {
	classifier *intent.Classifier
	generator  *response.Generator
	sessions   *session.Manager
}

func NewChatService(classifier *intent.Classifier, generator *response.Generator, sessions *session.Manager) *ChatService {
	return &ChatService{classifier: classifier, generator: generator, sessions: sessions}
}

func (s *ChatService) Chat(ctx context.Context, sessionID, message string) (domain.Reply, error) {
	sess := s.sessions.GetOrCreate(sessionID)
	sess.Memory.Add("user", message)

	var reply domain.Reply
	var detected domain.IntentType
	if intent.EcoToggle(message) {
		reply = ecoReply(sess.ToggleEco())
		detected = "eco_toggle"
	} else {
		it := s.classifier.Classify(message)
		reply = s.generator.Handle(it, sess)
		detected = it.Type
	}
	sess.Memory.Add("assistant", reply.Text)

	log.Info().
		Str("session_id", sessionID).
		Str("intent", string(detected)).
		Str("action", string(reply.Action)).
		Msg("chat turn handled")
	return reply, nil
}

// ecoReply handles the toggle out of band; it takes priority over every
// classification rule.
func ecoReply(enabled bool) domain.Reply {
	text := "Eco-friendly mode deactivated."
	if enabled {
		text = "🌱 Eco-friendly mode activated! I'll help you find sustainable dining options."
	}
	return domain.Reply{
		Text:   text,
		Action: domain.ActionToggleEcoMode,
		Data:   domain.EcoModeData{Enabled: enabled},
	}
}

const (
	thinkingBase     = time.Second
	thinkingPerToken = 150 * time.Millisecond
	thinkingCeiling  = 3 * time.Second
)

// ThinkingDelay is a pacing hint for the transport layer so replies do not
// arrive unnaturally fast. The engine itself never sleeps.
func ThinkingDelay(message string) time.Duration {
	d := thinkingBase + time.Duration(len(strings.Fields(message)))*thinkingPerToken
	if d > thinkingCeiling {
		return thinkingCeiling
	}
	return d
}
