// Command liftoff generates a project scaffold from a natural-language
// description.
//
// Examples:
//
//	export OPENAI_API_KEY=...
//	liftoff "a todo app with a cli"
//
//	export HUGGINGFACE_TOKEN=...
//	liftoff --model microsoft/Phi-3-mini-4k-instruct -o ./todo "a todo app"
package main

import (
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	liftoff "github.com/liftoff-labs/liftoff"
	"github.com/liftoff-labs/liftoff/pkg/config"
)

var (
	flagOutput      string
	flagModel       string
	flagOpenAIModel string
	flagAPIKey      string
	flagToken       string
	flagDebug       bool
)

var rootCmd = &cobra.Command{
	Use:          "liftoff \"project description\"",
	Short:        "Generate a project scaffold from a natural-language description",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output directory (default: liftoff_output)")
	rootCmd.Flags().StringVar(&flagModel, "model", "", "model id for managed inference")
	rootCmd.Flags().StringVar(&flagOpenAIModel, "openai-model", "", "chat model for the direct API backend")
	rootCmd.Flags().StringVar(&flagAPIKey, "api-key", "", "direct API key (overrides "+config.EnvAPIKey+")")
	rootCmd.Flags().StringVar(&flagToken, "hf-token", "", "hosted inference token (overrides "+config.EnvHFToken+")")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(flagDebug)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(
		config.WithAPIKey(flagAPIKey),
		config.WithHFToken(flagToken),
		config.WithModelID(flagModel),
		config.WithOpenAIModel(flagOpenAIModel),
	)
	if err != nil {
		return err
	}

	app, err := liftoff.New(liftoff.Options{Config: cfg, Logger: logger})
	if err != nil {
		return err
	}

	return app.Create(ctx, strings.Join(args, " "), flagOutput)
}

func newLogger(debug bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.Encoding = "console"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if debug {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zcfg.Build()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
