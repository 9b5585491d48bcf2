package cmd

import (
	"fmt"
	"os"

	"github.com/Johannes-Berggren/goblin-prune/internal/app"
	"github.com/Johannes-Berggren/goblin-prune/internal/logging"
	"github.com/spf13/cobra"
)

var (
	logLevel string
	logFile  string
)

var rootCmd = &cobra.Command{
	Use:   "goblin-prune",
	Short: "Review local git branches one at a time",
	Long: `goblin-prune walks the local branches of the current repository, oldest
commit first, and asks what to do with each one:

  s  show the last commit
  k  keep the branch
  d  delete the branch (asks for confirmation)
  q  quit
  ?  help`,
	// Positional arguments are accepted and ignored.
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.Configure(logLevel, logFile); err != nil {
			return err
		}

		return app.Run(app.Config{
			Dir:    ".",
			Stdin:  os.Stdin,
			Stdout: os.Stdout,
			Logger: logging.Default(),
		})
	},
}

func init() {
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "write diagnostic logs to this file (\"stderr\" for standard error)")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		logging.Default().Error("fatal error", "error", err)
	}
	if cerr := logging.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
