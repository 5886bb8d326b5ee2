package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/rigup/pkg/bootstrap"
	"github.com/arthur-debert/rigup/pkg/config"
	"github.com/arthur-debert/rigup/pkg/errors"
	"github.com/arthur-debert/rigup/pkg/executor"
	"github.com/arthur-debert/rigup/pkg/filesystem"
	"github.com/arthur-debert/rigup/pkg/logging"
	"github.com/arthur-debert/rigup/pkg/style"
)

var (
	verbosity int
	dryRun    bool
)

// NewRootCmd builds the rigup command tree. The bare `rigup` invocation
// runs the full bootstrap; behavior beyond flags is controlled by the
// environment toggles folded into the config at startup.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rigup",
		Short: MsgRootShort,
		Long:  MsgRootLong,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			style.AutoDetectColor()
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE:          runBootstrap,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview changes without executing them")

	rootCmd.AddCommand(newDoctorCmd())
	rootCmd.AddCommand(newGenconfigCmd())
	rootCmd.AddCommand(newGuideCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func runBootstrap(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if dryRun {
		cfg.DryRun = true
	}

	catalog, err := config.Catalog()
	if err != nil {
		return err
	}

	files, err := config.ManagedFiles()
	if err != nil {
		return err
	}

	result, err := bootstrap.Run(ctx, bootstrap.Options{
		Config:  cfg,
		Catalog: catalog,
		Files:   files,
		FS:      filesystem.NewOS(),
		Runner:  executor.NewRunner(cfg.TimeoutDuration()),
		AsRoot:  os.Geteuid() == 0,
	})
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), style.RenderRunResult(result))

	if result.Failed() {
		return errors.New(errors.ErrInternal, MsgRunFailed)
	}
	return nil
}
