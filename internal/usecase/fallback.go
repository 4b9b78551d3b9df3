package usecase

import (
	"math/rand/v2"
)

var cannedReplies = []string{
	"He recibido tu consulta. Un agente de soporte te contactará pronto.",
	"Estamos procesando tu solicitud. Gracias por tu paciencia.",
	"Tu consulta ha sido registrada. Te responderemos lo antes posible.",
}

// CannedReplies returns a copy of the fixed fallback sentences.
func CannedReplies() []string {
	out := make([]string, len(cannedReplies))
	copy(out, cannedReplies)
	return out
}

// CannedResponder answers with one of the canned replies, chosen uniformly
// at random. It ignores the message.
type CannedResponder struct {
	pick func(n int) int
}

func NewCannedResponder() *CannedResponder {
	return &CannedResponder{pick: rand.IntN}
}

// NewCannedResponderWithPicker lets tests fix the choice. pick must return a
// value in [0, n).
func NewCannedResponderWithPicker(pick func(n int) int) *CannedResponder {
	return &CannedResponder{pick: pick}
}

func (r *CannedResponder) Respond(_ string) string {
	return cannedReplies[r.pick(len(cannedReplies))]
}
