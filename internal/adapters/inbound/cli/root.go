package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/abdidvp/stockroom/internal/adapters/outbound/config"
	"github.com/abdidvp/stockroom/internal/adapters/outbound/logging"
	"github.com/abdidvp/stockroom/internal/adapters/outbound/tui"
	"github.com/abdidvp/stockroom/internal/application"
	"github.com/abdidvp/stockroom/internal/domain"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

// app holds the state shared by every command of one process: the flags
// and, once built, the live catalog session.
type app struct {
	configDir string
	logLevel  string
	loader    domain.ConfigLoader
	sess      *application.Session
}

func newApp() *app {
	return &app{loader: config.New()}
}

// session loads configuration and seeds the catalog on first use.
func (a *app) session(cmd *cobra.Command) (*application.Session, error) {
	if a.sess != nil {
		return a.sess, nil
	}

	cfg, err := a.loader.Load(a.configDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}

	log, err := logging.New(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	sess, err := application.NewSession(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("seeding catalog: %w", err)
	}
	a.sess = sess
	return sess, nil
}

func newRootCmd() *cobra.Command {
	a := newApp()

	cmd := &cobra.Command{
		Use:           "stockroom",
		Short:         "Track a small product catalog and its stock",
		Long:          "Stockroom keeps an in-memory product catalog, places procurement orders against it, and reports stock statistics and low-stock notifications.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&a.configDir, "config", ".", "Directory containing .stockroom.yaml and .env")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (overrides config)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(catalogCommands(a)...)
	cmd.AddCommand(newShellCmd(a))
	cmd.AddCommand(newMCPCmd(a))
	return cmd
}

// catalogCommands returns the commands that operate on the catalog. They are
// shared between the top-level CLI and the interactive shell.
func catalogCommands(a *app) []*cobra.Command {
	return []*cobra.Command{
		newListCmd(a),
		newAddCmd(a),
		newUpdateCmd(a),
		newRestockCmd(a),
		newProcureCmd(a),
		newStatsCmd(a),
		newLowStockCmd(a),
	}
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	err := newRootCmd().Execute()
	if err != nil {
		fmt.Fprint(os.Stderr, tui.RenderError(err))
	}
	return err
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
