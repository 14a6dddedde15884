package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"horse-medical-records/internal/app"
	"horse-medical-records/internal/platform/config"
	"horse-medical-records/internal/platform/logger"

	"github.com/spf13/cobra"
)

// stderr recibe los logs del CLI.
var stderr io.Writer = os.Stderr

// Factory arma el App para los comandos que tocan el store.
type Factory func(ctx context.Context) (*app.App, error)

// RootCommand arma el CLI con la configuración del entorno (mismas vars que la API).
func RootCommand() *cobra.Command {
	return NewRoot(fromEnv)
}

func NewRoot(factory Factory) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "medctl",
		Short:         "Operaciones sobre el historial médico de caballos",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(
		seedCommand(factory),
		resetCommand(factory),
		listCommand(factory),
		flagCommand(),
		rangesCommand(),
	)
	return rootCmd
}

func fromEnv(ctx context.Context) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	// Logs a stderr para no mezclar con la salida del comando.
	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
		Out:    stderr,
	})
	return app.New(ctx, cfg, log)
}

// withApp abre el App, corre fn y lo cierra.
func withApp(cmd *cobra.Command, factory Factory, fn func(a *app.App) error) error {
	a, err := factory(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}
