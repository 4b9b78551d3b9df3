package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"supportflow/internal/adapter/client"
	"supportflow/internal/domain/entity"

	"github.com/spf13/cobra"
)

var (
	apiURL  string
	timeout time.Duration
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "supportctl",
		Short: "Command-line client for the SupportFlow API",
		Long: `supportctl talks to a running SupportFlow server. It can check health,
send a chat message, classify sentiment, run the API walkthrough (demo) and
simulate a ticket desk that uses SupportFlow for triage (tickets).`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&apiURL, "api-url", "http://localhost:8000", "SupportFlow base URL")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 2*time.Minute, "per-request timeout")

	root.SetOut(os.Stdout)

	root.AddCommand(healthCmd(), chatCmd(), analyzeCmd(), demoCmd(), ticketsCmd())
	return root
}

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func newClient() *client.SupportFlowClient {
	return client.NewSupportFlowClient(apiURL, timeout)
}

func healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Show server status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printHealth(cmd.Context(), cmd, newClient())
		},
	}
}

func chatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat MESSAGE",
		Short: "Send a support message and print the reply",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printChat(cmd.Context(), cmd, newClient(), strings.Join(args, " "))
		},
	}
}

func analyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze MESSAGE",
		Short: "Classify the sentiment of a message",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printSentiment(cmd.Context(), cmd, newClient(), strings.Join(args, " "))
		},
	}
}

func printHealth(ctx context.Context, cmd *cobra.Command, c *client.SupportFlowClient) error {
	h, err := c.Health(ctx)
	if err != nil {
		return connectionHint(err)
	}
	cmd.Printf("Estado: %s\n", h.Status)
	cmd.Printf("Cerebras disponible: %t\n", h.CerebrasAvailable)
	cmd.Printf("Modelo local disponible: %t\n\n", h.LocalModelAvailable)
	return nil
}

func printChat(ctx context.Context, cmd *cobra.Command, c *client.SupportFlowClient, message string) error {
	cmd.Printf("Enviando mensaje: %q\n", message)
	resp, err := c.Chat(ctx, entity.SupportRequest{Message: message, Context: map[string]any{}})
	if err != nil {
		return connectionHint(err)
	}
	cmd.Printf("Respuesta: %s\n", resp.Reply)
	cmd.Printf("Modelo usado: %s\n", resp.ModelUsed)
	cmd.Printf("Confianza: %.0f%%\n\n", resp.Confidence*100)
	return nil
}

func printSentiment(ctx context.Context, cmd *cobra.Command, c *client.SupportFlowClient, message string) error {
	cmd.Printf("Analizando sentimiento de: %q\n", message)
	res, err := c.Analyze(ctx, message)
	if err != nil {
		return connectionHint(err)
	}
	cmd.Printf("Sentimiento: %s\n", res.Sentiment)
	cmd.Printf("Score: %.0f%%\n\n", res.Score*100)
	return nil
}

// connectionHint adds the usual remedy to transport failures. Answers from
// the server and cancellations are returned as they are.
func connectionHint(err error) error {
	var se *client.StatusError
	if errors.As(err, &se) || errors.Is(err, context.Canceled) {
		return err
	}
	return fmt.Errorf("%w\nis the server running at %s? start it with: go run ./cmd/server", err, apiURL)
}
