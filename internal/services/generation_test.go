package services

import (
	"context"
	"errors"
	"testing"

	"github.com/als8921/InfoU-backend/internal/repos"
	"github.com/als8921/InfoU-backend/internal/types"
)

type fakeLLMClient struct {
	text   string
	tokens int
	err    error
}

func (f *fakeLLMClient) Generate(ctx context.Context, prompt string) (*LLMResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &LLMResult{Text: f.text, TokensUsed: f.tokens}, nil
}

func (f *fakeLLMClient) Model() string { return "fake-model" }

func newGenerationFixture(t *testing.T, llm LLMClient) (GenerationService, repos.GeneratedSubTopicRepo) {
	t.Helper()
	db := testDB(t)
	log := testLogger(t)
	seedPath(t, db, []int{1})

	generatedRepo := repos.NewGeneratedSubTopicRepo(db, log)
	svc := NewGenerationService(
		db,
		log,
		repos.NewMainTopicRepo(db, log),
		repos.NewGenerationRequestRepo(db, log),
		generatedRepo,
		llm,
	)
	return svc, generatedRepo
}

func TestSubmitCompletesWithParsedItems(t *testing.T) {
	llm := &fakeLLMClient{
		text: "```json\n{\"sub_topics\": [{\"title\": \"Goroutines in depth\", \"description\": \"How goroutines are scheduled and used.\", \"keywords\": [\"goroutine\"], \"learning_objectives\": [\"understand scheduling\"]}]}\n```",
		tokens: 400000,
	}
	svc, generatedRepo := newGenerationFixture(t, llm)

	ctx := context.Background()
	request, err := svc.Submit(ctx, "u1", 1, nil, nil)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if request.Status != types.GenerationStatusCompleted {
		t.Fatalf("status = %s, want completed", request.Status)
	}
	if request.TotalGenerated != 1 {
		t.Fatalf("total_generated = %d, want 1", request.TotalGenerated)
	}
	if request.TokensUsed != 400000 {
		t.Fatalf("tokens_used = %d, want 400000", request.TokensUsed)
	}
	if request.ModelUsed != "fake-model" {
		t.Fatalf("model_used = %s", request.ModelUsed)
	}
	if request.CompletedAt == nil {
		t.Fatal("completed_at not set")
	}
	if request.QualityScore == nil || *request.QualityScore != 10.0 {
		t.Fatalf("quality_score = %v, want 10.0", request.QualityScore)
	}

	items, err := generatedRepo.ListActive(ctx, nil, repos.GeneratedSubTopicFilter{})
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(items) != 1 || items[0].Title != "Goroutines in depth" {
		t.Fatalf("generated items = %v", items)
	}
	if items[0].GenerationRequestID != request.ID {
		t.Fatalf("item request id = %d, want %d", items[0].GenerationRequestID, request.ID)
	}
}

func TestSubmitProviderFailure(t *testing.T) {
	llm := &fakeLLMClient{err: errors.New("upstream timeout")}
	svc, generatedRepo := newGenerationFixture(t, llm)

	ctx := context.Background()
	request, err := svc.Submit(ctx, "u1", 1, nil, nil)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if request.Status != types.GenerationStatusFailed {
		t.Fatalf("status = %s, want failed", request.Status)
	}
	if request.ErrorMessage == "" {
		t.Fatal("error_message not recorded")
	}
	if request.CompletedAt != nil {
		t.Fatalf("completed_at set on failure: %v", request.CompletedAt)
	}
	if request.TotalGenerated != 0 {
		t.Fatalf("total_generated = %d, want 0", request.TotalGenerated)
	}

	items, err := generatedRepo.ListActive(ctx, nil, repos.GeneratedSubTopicFilter{})
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no generated items, got %d", len(items))
	}
}

func TestSubmitUnparsableResponseCompletes(t *testing.T) {
	llm := &fakeLLMClient{text: "Sorry, I cannot help with that.", tokens: 120}
	svc, _ := newGenerationFixture(t, llm)

	request, err := svc.Submit(context.Background(), "u1", 1, nil, nil)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if request.Status != types.GenerationStatusCompleted {
		t.Fatalf("status = %s, want completed", request.Status)
	}
	if request.TotalGenerated != 0 {
		t.Fatalf("total_generated = %d, want 0", request.TotalGenerated)
	}
	if request.QualityScore == nil || *request.QualityScore != 0.0 {
		t.Fatalf("quality_score = %v, want 0.0", request.QualityScore)
	}
	if request.TokensUsed != 120 {
		t.Fatalf("tokens_used = %d, want 120", request.TokensUsed)
	}
	if request.CompletedAt == nil {
		t.Fatal("completed_at not set")
	}
}

func TestSubmitUnknownMainTopic(t *testing.T) {
	svc, _ := newGenerationFixture(t, &fakeLLMClient{})

	if _, err := svc.Submit(context.Background(), "u1", 999, nil, nil); err == nil {
		t.Fatal("expected error for unknown main topic")
	}
}

func TestDeleteGeneratedSubTopic(t *testing.T) {
	llm := &fakeLLMClient{
		text:   `{"sub_topics": [{"title": "Channels basics", "description": "Buffered and unbuffered channels."}]}`,
		tokens: 100,
	}
	svc, generatedRepo := newGenerationFixture(t, llm)

	ctx := context.Background()
	if _, err := svc.Submit(ctx, "u1", 1, nil, nil); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	items, err := generatedRepo.ListActive(ctx, nil, repos.GeneratedSubTopicFilter{})
	if err != nil || len(items) != 1 {
		t.Fatalf("ListActive: items=%d err=%v", len(items), err)
	}

	deletedID := items[0].ID
	if err := svc.DeleteGeneratedSubTopic(ctx, deletedID); err != nil {
		t.Fatalf("DeleteGeneratedSubTopic: %v", err)
	}

	items, err = generatedRepo.ListActive(ctx, nil, repos.GeneratedSubTopicFilter{})
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("soft deleted item still listed: %v", items)
	}

	// Deleting again reports not found, not success.
	if err := svc.DeleteGeneratedSubTopic(ctx, deletedID); err == nil {
		t.Fatal("expected error deleting an already deleted item")
	}
}
