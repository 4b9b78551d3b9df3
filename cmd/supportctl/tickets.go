package main

import (
	"encoding/json"

	"supportflow/internal/tickets"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var demoTickets = []struct {
	user, issue, priority string
}{
	{"Juan Pérez", "Mi cuenta no inicia sesión, ya intenté varias veces", tickets.PriorityNormal},
	{"María González", "Gracias por el excelente servicio, todo funcionó perfectamente", ""},
	{"Carlos Rodriguez", "¿Cómo cambio mi plan de suscripción?", ""},
}

func ticketsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tickets",
		Short: "Simulate a ticket desk that triages issues through SupportFlow",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c := newClient()
			if _, err := c.Health(ctx); err != nil {
				return connectionHint(err)
			}

			tracker := tickets.NewTracker(c, zap.NewNop())
			for _, d := range demoTickets {
				tk := tracker.CreateTicket(ctx, d.user, d.issue, d.priority)
				cmd.Printf("Ticket creado: #%d\n", tk.ID)
				cmd.Printf("  Usuario: %s\n", tk.User)
				cmd.Printf("  Sentimiento: %s\n", tk.Sentiment)
				cmd.Printf("  Prioridad: %s\n", tk.Priority)
				cmd.Printf("  Respuesta IA: %s\n\n", truncate(tk.AIReply, 80))
			}

			cmd.Println("Resumen de tickets:")
			cmd.Printf("  Total: %d\n", len(tracker.ListTickets("")))
			cmd.Printf("  Pendientes: %d\n\n", len(tracker.ListTickets(tickets.StatusPending)))

			first, ok := tracker.GetTicket(1)
			if !ok {
				return nil
			}
			out, err := json.MarshalIndent(first, "", "  ")
			if err != nil {
				return err
			}
			cmd.Println("Detalles del ticket #1:")
			cmd.Println(string(out))
			return nil
		},
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
