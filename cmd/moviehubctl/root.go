package main

import (
	"fmt"
	"os"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/yong/moviehub/pkg/client"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	envURL         = "MOVIEHUB_URL"
	defaultURL     = "http://localhost:3000"
	defaultTimeout = 30 * time.Second
)

// globalOptions are shared by every subcommand.
type globalOptions struct {
	url     string
	timeout time.Duration
	verbose bool

	logger *zap.Logger
}

func (o *globalOptions) client() (*client.Client, error) {
	c, err := client.New(o.url,
		client.WithTimeout(o.timeout),
		client.WithLogger(o.logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return c, nil
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{logger: zap.NewNop()}

	cmd := &cobra.Command{
		Use:   "moviehubctl",
		Short: "Manage movies, news and twitter posts on a MovieHub server",
		Long: `moviehubctl talks to the MovieHub REST API.

Every command loads or changes one entity kind and prints the resulting
records as JSON. The server address is taken from --url or $MOVIEHUB_URL.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			config := zap.NewProductionConfig()
			config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			if opts.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}

			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			opts.logger = logger
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = opts.logger.Sync()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.url, "url", lo.CoalesceOrEmpty(os.Getenv(envURL), defaultURL), "MovieHub server URL")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", defaultTimeout, "Timeout of each command")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(
		newResourceCmd(opts, resourceSpec[client.Movie]{
			name:       "movies",
			short:      "Manage movies",
			resource:   (*client.Client).Movies,
			attachable: true,
		}),
		newResourceCmd(opts, resourceSpec[client.News]{
			name:       "news",
			short:      "Manage news",
			resource:   (*client.Client).News,
			attachable: true,
		}),
		newResourceCmd(opts, resourceSpec[client.Twitter]{
			name:     "twitters",
			short:    "Manage twitter posts",
			resource: (*client.Client).Twitters,
		}),
	)

	return cmd
}
