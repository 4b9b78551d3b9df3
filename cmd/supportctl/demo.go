package main

import (
	"github.com/spf13/cobra"
)

func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through every endpoint with sample messages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c := newClient()

			cmd.Println("============================================================")
			cmd.Println("PRUEBAS DE SUPPORTFLOW API")
			cmd.Println("============================================================")

			steps := []func() error{
				func() error { return printHealth(ctx, cmd, c) },
				func() error { return printChat(ctx, cmd, c, "Hola, ¿puedes ayudarme?") },
				func() error { return printSentiment(ctx, cmd, c, "¡Gracias por la ayuda! Es excelente.") },
				func() error { return printSentiment(ctx, cmd, c, "Tengo un problema urgente, nada funciona") },
				func() error { return printChat(ctx, cmd, c, "Mi aplicación no inicia, ¿qué puedo hacer?") },
			}
			for _, step := range steps {
				if err := step(); err != nil {
					return err
				}
			}

			cmd.Println("============================================================")
			cmd.Println("Todas las pruebas completadas")
			return nil
		},
	}
}
