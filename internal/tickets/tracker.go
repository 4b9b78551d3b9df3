// Package tickets is the in-memory ticket tracker used by the CLI demo to
// show how a helpdesk would call SupportFlow. Tickets live only as long as
// the Tracker.
package tickets

import (
	"context"
	"sync"
	"time"

	"supportflow/internal/domain/entity"

	"go.uber.org/zap"
)

const (
	PriorityNormal = "normal"
	PriorityHigh   = "high"

	StatusPending = "pending"
)

// fallbackReply is stored when the chat call itself fails.
const fallbackReply = "Hemos recibido tu consulta. Un agente te contactará pronto."

type Ticket struct {
	ID        int              `json:"id"`
	User      string           `json:"user"`
	Issue     string           `json:"issue"`
	AIReply   string           `json:"aiReply"`
	Sentiment entity.Sentiment `json:"sentiment"`
	Priority  string           `json:"priority"`
	Status    string           `json:"status"`
	CreatedAt string           `json:"createdAt"`
}

// SupportAPI is the part of the SupportFlow client the tracker needs.
type SupportAPI interface {
	Analyze(ctx context.Context, message string) (*entity.SentimentResult, error)
	Chat(ctx context.Context, req entity.SupportRequest) (*entity.SupportResponse, error)
}

type Tracker struct {
	api SupportAPI
	log *zap.Logger
	now func() time.Time

	mu      sync.RWMutex
	tickets []*Ticket
}

func NewTracker(api SupportAPI, log *zap.Logger) *Tracker {
	return &Tracker{api: api, log: log, now: time.Now}
}

// CreateTicket classifies the issue, raises a normal priority to high when
// the sentiment is negative, asks for an automatic reply and stores the
// ticket. Failures of either call degrade to neutral / a canned reply.
func (t *Tracker) CreateTicket(ctx context.Context, user, issue, priority string) Ticket {
	if priority == "" {
		priority = PriorityNormal
	}

	sentiment := entity.SentimentNeutral
	if res, err := t.api.Analyze(ctx, issue); err != nil {
		t.log.Warn("sentiment analysis failed, assuming neutral", zap.Error(err))
	} else {
		sentiment = res.Sentiment
	}
	if sentiment == entity.SentimentNegative && priority == PriorityNormal {
		priority = PriorityHigh
	}

	reply := fallbackReply
	resp, err := t.api.Chat(ctx, entity.SupportRequest{
		Message: issue,
		Context: map[string]any{"user": user, "priority": priority},
	})
	if err != nil {
		t.log.Warn("automatic reply failed, using canned reply", zap.Error(err))
	} else {
		reply = resp.Reply
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	ticket := &Ticket{
		ID:        len(t.tickets) + 1,
		User:      user,
		Issue:     issue,
		AIReply:   reply,
		Sentiment: sentiment,
		Priority:  priority,
		Status:    StatusPending,
		CreatedAt: t.now().Format(time.RFC3339),
	}
	t.tickets = append(t.tickets, ticket)
	return *ticket
}

func (t *Tracker) GetTicket(id int) (Ticket, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, tk := range t.tickets {
		if tk.ID == id {
			return *tk, true
		}
	}
	return Ticket{}, false
}

// ListTickets returns every ticket, or only those with the given status
// when status is non-empty.
func (t *Tracker) ListTickets(status string) []Ticket {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Ticket, 0, len(t.tickets))
	for _, tk := range t.tickets {
		if status == "" || tk.Status == status {
			out = append(out, *tk)
		}
	}
	return out
}

func (t *Tracker) UpdateTicketStatus(id int, status string) (Ticket, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, tk := range t.tickets {
		if tk.ID == id {
			tk.Status = status
			return *tk, true
		}
	}
	return Ticket{}, false
}
