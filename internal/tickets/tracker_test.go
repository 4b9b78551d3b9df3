package tickets

import (
	"context"
	"errors"
	"testing"
	"time"

	"supportflow/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAPI struct {
	sentiment  entity.Sentiment
	analyzeErr error
	chatErr    error
	chatReqs   []entity.SupportRequest
}

func (f *fakeAPI) Analyze(_ context.Context, message string) (*entity.SentimentResult, error) {
	if f.analyzeErr != nil {
		return nil, f.analyzeErr
	}
	return &entity.SentimentResult{Sentiment: f.sentiment, Score: f.sentiment.Score(), Message: message}, nil
}

func (f *fakeAPI) Chat(_ context.Context, req entity.SupportRequest) (*entity.SupportResponse, error) {
	f.chatReqs = append(f.chatReqs, req)
	if f.chatErr != nil {
		return nil, f.chatErr
	}
	return &entity.SupportResponse{Reply: "respuesta automática", Confidence: 0.85}, nil
}

func newTracker(api SupportAPI) *Tracker {
	tr := NewTracker(api, zap.NewNop())
	tr.now = func() time.Time { return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC) }
	return tr
}

func TestCreateTicketEscalatesNegative(t *testing.T) {
	api := &fakeAPI{sentiment: entity.SentimentNegative}
	tr := newTracker(api)

	tk := tr.CreateTicket(context.Background(), "Juan", "Tengo un problema urgente", "")

	assert.Equal(t, 1, tk.ID)
	assert.Equal(t, PriorityHigh, tk.Priority)
	assert.Equal(t, entity.SentimentNegative, tk.Sentiment)
	assert.Equal(t, StatusPending, tk.Status)
	assert.Equal(t, "respuesta automática", tk.AIReply)
	assert.Equal(t, "2026-03-01T10:00:00Z", tk.CreatedAt)

	require.Len(t, api.chatReqs, 1)
	assert.Equal(t, "Juan", api.chatReqs[0].Context["user"])
	assert.Equal(t, PriorityHigh, api.chatReqs[0].Context["priority"])
}

func TestCreateTicketKeepsExplicitPriority(t *testing.T) {
	tr := newTracker(&fakeAPI{sentiment: entity.SentimentNegative})

	tk := tr.CreateTicket(context.Background(), "Ana", "todo mal", "low")
	assert.Equal(t, "low", tk.Priority)
}

func TestCreateTicketDegradesOnErrors(t *testing.T) {
	tr := newTracker(&fakeAPI{analyzeErr: errors.New("down"), chatErr: errors.New("down")})

	tk := tr.CreateTicket(context.Background(), "Carlos", "¿Cómo cambio mi plan?", PriorityNormal)

	assert.Equal(t, entity.SentimentNeutral, tk.Sentiment)
	assert.Equal(t, PriorityNormal, tk.Priority)
	assert.Equal(t, fallbackReply, tk.AIReply)
}

func TestTrackerLookupAndStatus(t *testing.T) {
	tr := newTracker(&fakeAPI{sentiment: entity.SentimentPositive})
	ctx := context.Background()
	tr.CreateTicket(ctx, "a", "gracias", "")
	tr.CreateTicket(ctx, "b", "genial", "")
	tr.CreateTicket(ctx, "c", "perfecto", "")

	got, ok := tr.GetTicket(2)
	require.True(t, ok)
	assert.Equal(t, "b", got.User)

	_, ok = tr.GetTicket(99)
	assert.False(t, ok)

	updated, ok := tr.UpdateTicketStatus(2, "resolved")
	require.True(t, ok)
	assert.Equal(t, "resolved", updated.Status)

	_, ok = tr.UpdateTicketStatus(42, "resolved")
	assert.False(t, ok)

	assert.Len(t, tr.ListTickets(""), 3)
	assert.Len(t, tr.ListTickets(StatusPending), 2)
	assert.Len(t, tr.ListTickets("resolved"), 1)
}

func TestGetTicketReturnsCopy(t *testing.T) {
	tr := newTracker(&fakeAPI{sentiment: entity.SentimentNeutral})
	tk := tr.CreateTicket(context.Background(), "a", "hola", "")
	tk.Status = "tampered"

	got, _ := tr.GetTicket(tk.ID)
	assert.Equal(t, StatusPending, got.Status)
}
