package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	find "gofind.dev/gofind/internal/find"
)

var version = "0.1.0"

// rootCmd implements the find-compatible surface. Expression predicates use
// find's single-dash syntax (-name, -exec ... ;), which pflag cannot
// represent, so flag parsing is disabled and the raw argv goes through
// parseArgs.
var rootCmd = &cobra.Command{
	Use:   "gofind [-L] [-C] [path] [expression]",
	Short: "A find-compatible filesystem search tool",
	Long: `gofind walks a directory tree and evaluates a find-style expression
against every entry, printing matching paths or executing a command for each.

Supported expression tokens:
  -name PATTERN    match the basename against a glob pattern
  -mtime 0         match entries modified within the last 24 hours
  -type T          match entries of type T (b, c, d, p, f, l, s)
  -print           print the matched path (default action)
  -exec CMD ... ;  run CMD for each match, substituting {} with the path

Traversal flags:
  -L               follow symbolic links (with loop detection)
  -C               canonicalize the start path before walking`,
	Version:            version,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		switch {
		case len(args) == 1 && (args[0] == "--help" || args[0] == "-h"):
			return cmd.Help()
		case len(args) == 1 && args[0] == "--version":
			cmd.Printf("gofind version %s\n", version)
			return nil
		}
		return runFind(args)
	},
}

// Execute runs the command tree. The caller maps the returned error to the
// process exit code; diagnostics have already been written by then.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)
}

// initConfig reads the optional ~/.gofind.yaml config file and GOFIND_*
// environment variables. Config supplies ambient defaults only (verbosity,
// follow-symlinks); the expression always comes from argv.
func initConfig() {
	home, err := os.UserHomeDir()
	if err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".gofind")
	}

	viper.SetEnvPrefix("gofind")
	viper.AutomaticEnv()

	// A missing config file is the normal case; stdout must stay clean
	// either way.
	_ = viper.ReadInConfig()
}

func runFind(args []string) error {
	parsed, err := parseArgs(args)
	if err != nil {
		return err
	}

	logLevel := find.LogLevelSilent
	if viper.GetBool("verbose") {
		logLevel = find.LogLevelDebug
	}

	walker := find.NewWalker(&parsed.expr, find.Options{
		FollowSymlinks: parsed.follow || viper.GetBool("follow-symlinks"),
		Canonicalize:   parsed.canonical,
		Logger:         find.NewLogger(logLevel),
	})
	return walker.Run(parsed.root)
}
