package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ai4life/career-advisor-go/internal/advisor"
	"github.com/ai4life/career-advisor-go/internal/constants"
	"github.com/ai4life/career-advisor-go/internal/domain"
	"github.com/ai4life/career-advisor-go/internal/prompt"
	"github.com/ai4life/career-advisor-go/internal/service/ai"
	"github.com/ai4life/career-advisor-go/pkg/errors"
)

// TextGenerator is the live language-model capability. It may fail or
// be disabled entirely; the rule engine picks up either way.
type TextGenerator interface {
	Enabled() bool
	GenerateText(ctx context.Context, prompt string, preset ai.ModelPreset, opts *ai.GenerateOptions) (string, *ai.GenerateMetadata, error)
}

// Classifier is the rule-engine fallback for chat turns.
type Classifier interface {
	Classify(message string) advisor.Result
}

// SessionStore keeps live conversation state.
type SessionStore interface {
	GetChatSession(ctx context.Context, sessionID string) (*domain.ChatSession, error)
	SaveChatSession(ctx context.Context, session *domain.ChatSession) error
	DeleteChatSession(ctx context.Context, sessionID string) error
}

// ReplyCache memoizes rule-engine answers by normalized message.
type ReplyCache interface {
	GetAdvisorReply(ctx context.Context, normalized string, dest any) bool
	SetAdvisorReply(ctx context.Context, normalized string, reply any)
}

// ChatLogStore is the durable audit trail. Optional.
type ChatLogStore interface {
	SaveMessage(ctx context.Context, sessionID string, m *domain.ChatMessage) error
}

type ChatService struct {
	models   TextGenerator
	engine   Classifier
	sessions SessionStore
	replies  ReplyCache
	log      ChatLogStore
	logger   *zap.Logger
}

func NewChatService(models TextGenerator, engine Classifier, sessions SessionStore, replies ReplyCache, log ChatLogStore, logger *zap.Logger) *ChatService {
	return &ChatService{
		models:   models,
		engine:   engine,
		sessions: sessions,
		replies:  replies,
		log:      log,
		logger:   logger,
	}
}

// HandleMessage answers one chat turn. The live model is attempted
// first; any failure falls through to the rule engine, so the reply is
// never an error for well-formed input.
func (s *ChatService) HandleMessage(ctx context.Context, sessionID, message string) (*domain.ChatReply, error) {
	cleaned := advisor.Sanitize(message)
	if cleaned == "" {
		return nil, errors.NewValidationError("message must not be empty", "message", message)
	}

	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	session := s.loadSession(ctx, sessionID)
	history := session.LastMessages(constants.AIInputLimits.MaxHistoryTurns * 2)

	reply := &domain.ChatReply{
		SessionID: sessionID,
		MessageID: uuid.NewString(),
	}

	if s.models != nil && s.models.Enabled() {
		text, metadata, err := s.models.GenerateText(ctx,
			prompt.BuildChatPrompt(cleaned, history), ai.PresetCreative, nil)
		if err == nil {
			reply.Response = text
			reply.Provider = metadata.Provider
			reply.Model = metadata.Model
			reply.UsedFallback = metadata.UsedFallback
		} else {
			s.logger.Warn("live model failed, using rule engine",
				zap.String("session_id", sessionID),
				zap.Error(err))
		}
	}

	if reply.Response == "" {
		result := s.classify(ctx, cleaned)
		reply.Response = result.Response
		reply.Provider = "rule-engine"
		reply.UsedFallback = true
		reply.Category = result.Category
		reply.Confidence = result.Confidence
	}

	s.recordTurn(ctx, session, cleaned, reply)
	return reply, nil
}

func (s *ChatService) classify(ctx context.Context, message string) advisor.Result {
	if s.replies == nil {
		return s.engine.Classify(message)
	}

	normalized := advisor.Normalize(message)
	var cached advisor.Result
	if s.replies.GetAdvisorReply(ctx, normalized, &cached) && cached.Response != "" {
		return cached
	}

	result := s.engine.Classify(message)
	s.replies.SetAdvisorReply(ctx, normalized, &result)
	return result
}

// GetHistory returns the live session, or nil when none exists.
func (s *ChatService) GetHistory(ctx context.Context, sessionID string) (*domain.ChatSession, error) {
	if sessionID == "" {
		return nil, errors.NewValidationError("session id must not be empty", "sessionId", sessionID)
	}
	return s.sessions.GetChatSession(ctx, sessionID)
}

// ClearSession drops the live conversation state. Audit rows in the
// database are kept.
func (s *ChatService) ClearSession(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return errors.NewValidationError("session id must not be empty", "sessionId", sessionID)
	}
	return s.sessions.DeleteChatSession(ctx, sessionID)
}

func (s *ChatService) loadSession(ctx context.Context, sessionID string) *domain.ChatSession {
	if s.sessions != nil {
		session, err := s.sessions.GetChatSession(ctx, sessionID)
		if err != nil {
			s.logger.Warn("failed to load chat session", zap.String("session_id", sessionID), zap.Error(err))
		}
		if session != nil {
			return session
		}
	}
	return &domain.ChatSession{
		SessionID: sessionID,
		CreatedAt: time.Now(),
	}
}

// recordTurn persists the exchange best-effort: a storage hiccup must
// not lose an already-produced reply.
func (s *ChatService) recordTurn(ctx context.Context, session *domain.ChatSession, userText string, reply *domain.ChatReply) {
	now := time.Now()
	userMsg := domain.ChatMessage{
		ID:        uuid.NewString(),
		Role:      domain.RoleUser,
		Content:   userText,
		Timestamp: now,
	}
	assistantMsg := domain.ChatMessage{
		ID:        reply.MessageID,
		Role:      domain.RoleAssistant,
		Content:   reply.Response,
		Timestamp: now,
	}

	session.Messages = append(session.Messages, userMsg, assistantMsg)
	session.UpdatedAt = now

	if s.sessions != nil {
		if err := s.sessions.SaveChatSession(ctx, session); err != nil {
			s.logger.Warn("failed to save chat session",
				zap.String("session_id", session.SessionID), zap.Error(err))
		}
	}
	if s.log != nil {
		for _, m := range []*domain.ChatMessage{&userMsg, &assistantMsg} {
			if err := s.log.SaveMessage(ctx, session.SessionID, m); err != nil {
				s.logger.Warn("failed to log chat message",
					zap.String("session_id", session.SessionID), zap.Error(err))
			}
		}
	}
}
