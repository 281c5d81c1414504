package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/pgvector/pgvector-go"

	"lankatrip/internal/models/db_models"
	"lankatrip/internal/models/request_models"
	"lankatrip/pkg/memcache"
	"lankatrip/pkg/metrics"
	"lankatrip/pkg/utils"
)

type fakeAIClient struct {
	embedErr    error
	replyErr    error
	reply       string
	userPrompts []string
}

func (f *fakeAIClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	if f.embedErr != nil {
		return pgvector.Vector{}, f.embedErr
	}
	return pgvector.NewVector([]float32{0.1, 0.2, 0.3}), nil
}

func (f *fakeAIClient) GenerateReply(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if f.replyErr != nil {
		return "", f.replyErr
	}
	f.userPrompts = append(f.userPrompts, userPrompt)
	return f.reply, nil
}

type fakeEmbeddingRepo struct {
	matches []db_models.AttractionEmbedding
}

func (f *fakeEmbeddingRepo) SearchByVector(vector pgvector.Vector, limit int) ([]db_models.AttractionEmbedding, error) {
	return f.matches, nil
}

func (f *fakeEmbeddingRepo) CreateEmbedding(embedding db_models.AttractionEmbedding) error {
	return nil
}

func newChatFixture(ai *fakeAIClient) ChatServiceInterface {
	embeddings := &fakeEmbeddingRepo{
		matches: []db_models.AttractionEmbedding{
			{AttractionID: "att-1", Name: "Temple of the Tooth", Description: "Sacred Buddhist temple in Kandy"},
		},
	}
	attractions := &fakeAttractionRepo{
		result: []db_models.Attraction{{Name: "Temple of the Tooth"}},
	}
	sessions := memcache.NewChatSessions(30*time.Minute, 10)
	return NewChatService(ai, embeddings, attractions, sessions, metrics.NewRegistry())
}

func TestSendMessageEmptyMessageRejected(t *testing.T) {
	chat := newChatFixture(&fakeAIClient{reply: "hello"})

	_, err := chat.SendMessage(context.Background(), "user-1", request_models.ChatMessageRequest{Message: "   "})
	if !errors.Is(err, utils.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSendMessageGroundsReplyOnMatches(t *testing.T) {
	ai := &fakeAIClient{reply: "Visit the Temple of the Tooth in the morning."}
	chat := newChatFixture(ai)

	resp, err := chat.SendMessage(context.Background(), "user-1", request_models.ChatMessageRequest{Message: "What should I see in Kandy?"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.SessionID == "" {
		t.Fatal("expected a session id to be assigned")
	}
	if resp.Reply != ai.reply {
		t.Fatalf("reply not passed through: %q", resp.Reply)
	}
	if len(resp.Suggestions) != 1 || resp.Suggestions[0].Name != "Temple of the Tooth" {
		t.Fatalf("expected matched attraction as suggestion, got %+v", resp.Suggestions)
	}

	if len(ai.userPrompts) != 1 {
		t.Fatalf("expected one completion call, got %d", len(ai.userPrompts))
	}
	if !strings.Contains(ai.userPrompts[0], "Temple of the Tooth") {
		t.Fatal("expected matched attractions in the model prompt")
	}
	if !strings.Contains(ai.userPrompts[0], "What should I see in Kandy?") {
		t.Fatal("expected visitor message in the model prompt")
	}
}

func TestSendMessageCarriesSessionHistory(t *testing.T) {
	ai := &fakeAIClient{reply: "The gardens open at 7:30."}
	chat := newChatFixture(ai)

	first, err := chat.SendMessage(context.Background(), "user-1", request_models.ChatMessageRequest{Message: "Tell me about the botanical gardens"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = chat.SendMessage(context.Background(), "user-1", request_models.ChatMessageRequest{
		SessionID: first.SessionID,
		Message:   "And when do they open?",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(ai.userPrompts) != 2 {
		t.Fatalf("expected two completion calls, got %d", len(ai.userPrompts))
	}
	if !strings.Contains(ai.userPrompts[1], "Tell me about the botanical gardens") {
		t.Fatal("expected first turn in the follow-up prompt")
	}
	if !strings.Contains(ai.userPrompts[1], "Conversation so far") {
		t.Fatal("expected history preamble in the follow-up prompt")
	}
}

func TestSendMessageEmbeddingFailureIsAIUnavailable(t *testing.T) {
	chat := newChatFixture(&fakeAIClient{embedErr: errors.New("quota exceeded")})

	_, err := chat.SendMessage(context.Background(), "user-1", request_models.ChatMessageRequest{Message: "hello"})
	if !errors.Is(err, utils.ErrAIUnavailable) {
		t.Fatalf("expected ErrAIUnavailable, got %v", err)
	}
}

func TestSendMessageCompletionFailureIsAIUnavailable(t *testing.T) {
	chat := newChatFixture(&fakeAIClient{replyErr: errors.New("model overloaded")})

	_, err := chat.SendMessage(context.Background(), "user-1", request_models.ChatMessageRequest{Message: "hello"})
	if !errors.Is(err, utils.ErrAIUnavailable) {
		t.Fatalf("expected ErrAIUnavailable, got %v", err)
	}
}
