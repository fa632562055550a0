package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"testing"

	"go.uber.org/zap"

	"github.com/ai4life/career-advisor-go/internal/advisor"
	"github.com/ai4life/career-advisor-go/internal/domain"
	"github.com/ai4life/career-advisor-go/internal/service/ai"
)

type fakeTextGenerator struct {
	enabled  bool
	text     string
	err      error
	prompts  []string
	metadata *ai.GenerateMetadata
}

func (f *fakeTextGenerator) Enabled() bool { return f.enabled }

func (f *fakeTextGenerator) GenerateText(ctx context.Context, prompt string, preset ai.ModelPreset, opts *ai.GenerateOptions) (string, *ai.GenerateMetadata, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", nil, f.err
	}
	metadata := f.metadata
	if metadata == nil {
		metadata = &ai.GenerateMetadata{Provider: "gemini", Model: "gemini-2.5-flash"}
	}
	return f.text, metadata, nil
}

type fakeSessionStore struct {
	sessions map[string]*domain.ChatSession
	saves    int
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]*domain.ChatSession)}
}

func (f *fakeSessionStore) GetChatSession(ctx context.Context, sessionID string) (*domain.ChatSession, error) {
	return f.sessions[sessionID], nil
}

func (f *fakeSessionStore) SaveChatSession(ctx context.Context, session *domain.ChatSession) error {
	f.saves++
	f.sessions[session.SessionID] = session
	return nil
}

func (f *fakeSessionStore) DeleteChatSession(ctx context.Context, sessionID string) error {
	delete(f.sessions, sessionID)
	return nil
}

type fakeReplyCache struct {
	entries map[string][]byte
	hits    int
}

func newFakeReplyCache() *fakeReplyCache {
	return &fakeReplyCache{entries: make(map[string][]byte)}
}

func (f *fakeReplyCache) GetAdvisorReply(ctx context.Context, normalized string, dest any) bool {
	data, ok := f.entries[normalized]
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false
	}
	f.hits++
	return true
}

func (f *fakeReplyCache) SetAdvisorReply(ctx context.Context, normalized string, reply any) {
	data, err := json.Marshal(reply)
	if err != nil {
		return
	}
	f.entries[normalized] = data
}

func newTestClassifier(t *testing.T) Classifier {
	t.Helper()
	engine, err := advisor.NewEngine(nil, zap.NewNop(), advisor.WithRandSource(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	return engine
}

func TestHandleMessageUsesLiveModel(t *testing.T) {
	models := &fakeTextGenerator{enabled: true, text: "Chào bạn, mình có thể giúp gì?"}
	sessions := newFakeSessionStore()
	svc := NewChatService(models, newTestClassifier(t), sessions, nil, nil, zap.NewNop())

	reply, err := svc.HandleMessage(context.Background(), "", "xin chào")
	if err != nil {
		t.Fatalf("HandleMessage failed: %v", err)
	}
	if reply.Response != "Chào bạn, mình có thể giúp gì?" {
		t.Fatalf("unexpected response: %q", reply.Response)
	}
	if reply.UsedFallback {
		t.Fatal("expected live model path, got fallback")
	}
	if reply.Provider != "gemini" {
		t.Fatalf("unexpected provider: %q", reply.Provider)
	}
	if reply.SessionID == "" {
		t.Fatal("expected generated session id")
	}
	if sessions.saves != 1 {
		t.Fatalf("expected 1 session save, got %d", sessions.saves)
	}
}

func TestHandleMessageFallsBackOnModelError(t *testing.T) {
	models := &fakeTextGenerator{enabled: true, err: fmt.Errorf("quota exceeded")}
	svc := NewChatService(models, newTestClassifier(t), newFakeSessionStore(), nil, nil, zap.NewNop())

	reply, err := svc.HandleMessage(context.Background(), "s1", "xin chào")
	if err != nil {
		t.Fatalf("HandleMessage failed: %v", err)
	}
	if !reply.UsedFallback {
		t.Fatal("expected fallback reply")
	}
	if reply.Provider != "rule-engine" {
		t.Fatalf("unexpected provider: %q", reply.Provider)
	}
	if reply.Response == "" {
		t.Fatal("fallback reply must not be empty")
	}
	if reply.Category != "greetings" {
		t.Fatalf("unexpected category: %q", reply.Category)
	}
}

func TestHandleMessageDisabledModelGoesStraightToRules(t *testing.T) {
	models := &fakeTextGenerator{enabled: false}
	svc := NewChatService(models, newTestClassifier(t), newFakeSessionStore(), nil, nil, zap.NewNop())

	reply, err := svc.HandleMessage(context.Background(), "s1", "tôi dốt toán nhưng muốn học công nghệ thông tin")
	if err != nil {
		t.Fatalf("HandleMessage failed: %v", err)
	}
	if len(models.prompts) != 0 {
		t.Fatalf("disabled model must not be called, got %d calls", len(models.prompts))
	}
	if !reply.UsedFallback || reply.Provider != "rule-engine" {
		t.Fatalf("expected rule-engine reply, got provider %q", reply.Provider)
	}
	if reply.Category != "specific_concerns" {
		t.Fatalf("unexpected category: %q", reply.Category)
	}
}

func TestHandleMessageRejectsEmptyMessage(t *testing.T) {
	svc := NewChatService(nil, newTestClassifier(t), newFakeSessionStore(), nil, nil, zap.NewNop())

	if _, err := svc.HandleMessage(context.Background(), "s1", "   "); err == nil {
		t.Fatal("expected validation error for blank message")
	}
}

func TestFallbackRepliesAreCachedByNormalizedMessage(t *testing.T) {
	replies := newFakeReplyCache()
	svc := NewChatService(nil, newTestClassifier(t), newFakeSessionStore(), replies, nil, zap.NewNop())

	first, err := svc.HandleMessage(context.Background(), "s1", "Điều kiện tuyển sinh như thế nào")
	if err != nil {
		t.Fatalf("HandleMessage failed: %v", err)
	}
	second, err := svc.HandleMessage(context.Background(), "s1", "điều kiện tuyển sinh NHƯ THẾ NÀO")
	if err != nil {
		t.Fatalf("second HandleMessage failed: %v", err)
	}
	if replies.hits != 1 {
		t.Fatalf("expected 1 cache hit, got %d", replies.hits)
	}
	if first.Response != second.Response {
		t.Fatal("cached reply must match the original")
	}
}

func TestClearSessionDropsLiveState(t *testing.T) {
	sessions := newFakeSessionStore()
	svc := NewChatService(nil, newTestClassifier(t), sessions, nil, nil, zap.NewNop())

	reply, err := svc.HandleMessage(context.Background(), "", "xin chào")
	if err != nil {
		t.Fatalf("HandleMessage failed: %v", err)
	}
	if err := svc.ClearSession(context.Background(), reply.SessionID); err != nil {
		t.Fatalf("ClearSession failed: %v", err)
	}
	session, err := svc.GetHistory(context.Background(), reply.SessionID)
	if err != nil {
		t.Fatalf("GetHistory failed: %v", err)
	}
	if session != nil {
		t.Fatal("session should be gone after clear")
	}
}

func TestHandleMessageAppendsHistory(t *testing.T) {
	sessions := newFakeSessionStore()
	svc := NewChatService(&fakeTextGenerator{enabled: true, text: "ok"}, newTestClassifier(t), sessions, nil, nil, zap.NewNop())

	reply, err := svc.HandleMessage(context.Background(), "s1", "xin chào")
	if err != nil {
		t.Fatalf("HandleMessage failed: %v", err)
	}
	if _, err := svc.HandleMessage(context.Background(), reply.SessionID, "em muốn học ngành gì"); err != nil {
		t.Fatalf("second HandleMessage failed: %v", err)
	}

	session := sessions.sessions[reply.SessionID]
	if session == nil {
		t.Fatal("session not persisted")
	}
	if len(session.Messages) != 4 {
		t.Fatalf("expected 4 messages after two turns, got %d", len(session.Messages))
	}
	if session.Messages[0].Role != domain.RoleUser || session.Messages[1].Role != domain.RoleAssistant {
		t.Fatal("message roles out of order")
	}
}
