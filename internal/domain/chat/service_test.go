package chat

import (
	"context"
	"errors"
	"testing"
	"time"
)

// -------------------------
// Fakes in-package
// -------------------------

type testRepo struct {
	byPet   map[string][]Message
	appends int
}

func newTestRepo() *testRepo {
	return &testRepo{byPet: map[string][]Message{}}
}

func (r *testRepo) AppendMessage(ctx context.Context, petID string, m Message) error {
	r.appends++
	r.byPet[petID] = append(r.byPet[petID], m)
	return nil
}

func (r *testRepo) GetHistory(ctx context.Context, petID string) ([]Message, error) {
	return r.byPet[petID], nil
}

type fakeAssistant struct {
	calls    int
	reply    string
	err      error
	received []Message // historial del último Converse
}

func (f *fakeAssistant) Converse(ctx context.Context, petID string, history []Message) (string, error) {
	f.calls++
	f.received = history
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

// -------------------------
// Tests
// -------------------------

func TestService_SendTurn_AppendsBothMessagesInOrder(t *testing.T) {
	repo := newTestRepo()
	assistant := &fakeAssistant{reply: "Milo necesita más paseos."}

	svc := NewService(repo, assistant, nil)
	now := time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	reply, err := svc.SendTurn(context.Background(), "pet-1", "¿Cuánto ejercicio necesita?")
	if err != nil {
		t.Fatalf("SendTurn returned error: %v", err)
	}
	if reply.Role != RoleAssistant || reply.Content != assistant.reply {
		t.Fatalf("unexpected reply: %+v", reply)
	}

	history := repo.byPet["pet-1"]
	if len(history) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(history))
	}
	if history[0].Role != RoleUser || history[1].Role != RoleAssistant {
		t.Fatalf("history out of order: %+v", history)
	}

	// El asistente ve el historial incluyendo el turno recién enviado.
	if len(assistant.received) != 1 || assistant.received[0].Role != RoleUser {
		t.Fatalf("assistant must receive history ending with the user turn, got %+v", assistant.received)
	}
}

func TestService_SendTurn_UserMessageSurvivesAssistantFailure(t *testing.T) {
	repo := newTestRepo()
	assistant := &fakeAssistant{err: errors.New("model unavailable")}

	svc := NewService(repo, assistant, nil)

	_, err := svc.SendTurn(context.Background(), "pet-1", "hola")
	if !errors.Is(err, ErrAssistantFailed) {
		t.Fatalf("expected ErrAssistantFailed, got %v", err)
	}
	// Sin reintentos.
	if assistant.calls != 1 {
		t.Fatalf("expected exactly 1 assistant call, got %d", assistant.calls)
	}

	// El mensaje del usuario quedó registrado igual.
	history := repo.byPet["pet-1"]
	if len(history) != 1 || history[0].Role != RoleUser || history[0].Content != "hola" {
		t.Fatalf("user message must survive assistant failure, got %+v", history)
	}
}

func TestService_SendTurn_RejectsEmptyContent(t *testing.T) {
	svc := NewService(newTestRepo(), &fakeAssistant{}, nil)

	if _, err := svc.SendTurn(context.Background(), "pet-1", "   "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.SendTurn(context.Background(), "", "hola"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_SendTurn_TreatsEmptyReplyAsFailure(t *testing.T) {
	repo := newTestRepo()
	assistant := &fakeAssistant{reply: "  "}

	svc := NewService(repo, assistant, nil)

	_, err := svc.SendTurn(context.Background(), "pet-1", "hola")
	if !errors.Is(err, ErrAssistantFailed) {
		t.Fatalf("expected ErrAssistantFailed, got %v", err)
	}
	if len(repo.byPet["pet-1"]) != 1 {
		t.Fatalf("only the user message must be stored")
	}
}

func TestService_GetHistory_EmptyIsAnError(t *testing.T) {
	svc := NewService(newTestRepo(), &fakeAssistant{}, nil)

	_, err := svc.GetHistory(context.Background(), "pet-1")
	if !errors.Is(err, ErrEmptyHistory) {
		t.Fatalf("expected ErrEmptyHistory, got %v", err)
	}
}

func TestService_GetHistory_ReturnsChronologicalOrder(t *testing.T) {
	repo := newTestRepo()
	repo.byPet["pet-1"] = []Message{
		{Role: RoleUser, Content: "hola"},
		{Role: RoleAssistant, Content: "¡Hola! ¿En qué ayudo?"},
		{Role: RoleUser, Content: "¿comidas?"},
	}

	svc := NewService(repo, &fakeAssistant{}, nil)

	history, err := svc.GetHistory(context.Background(), "pet-1")
	if err != nil {
		t.Fatalf("GetHistory returned error: %v", err)
	}
	if len(history) != 3 || history[2].Content != "¿comidas?" {
		t.Fatalf("unexpected history: %+v", history)
	}
}
