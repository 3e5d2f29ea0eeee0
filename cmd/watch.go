package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	find "gofind.dev/gofind/internal/find"
)

// watchCmd is the live counterpart of the root command: instead of a
// one-shot traversal it evaluates the expression against filesystem events.
// It uses regular double-dash flags, not find syntax.
var watchCmd = &cobra.Command{
	Use:   "watch [options] <path>",
	Short: "Watch a tree and print paths matching an expression",
	Long: `Watch a directory tree for filesystem events and evaluate each event's
path against the expression built from the flags, printing matches (or
running --exec for them).

Examples:
  gofind watch /tmp --name="*.log"
  gofind watch . --type=f --events=create
  gofind watch . --name="*.txt" --exec="echo {}"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWatch(args[0])
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().String("name", "", "Match basenames against a glob pattern")
	watchCmd.Flags().String("type", "", "Match entries of this type letter")
	watchCmd.Flags().String("exec", "", "Command to run for each match ({} is the path)")
	watchCmd.Flags().StringSlice("events", []string{"create", "modify"}, "Events to evaluate")
	watchCmd.Flags().Duration("timeout", 0, "Stop watching after this duration (0 = forever)")
	watchCmd.Flags().Bool("follow-symlinks", false, "Follow symbolic links when inspecting events")

	viper.BindPFlag("watch.name", watchCmd.Flags().Lookup("name"))
	viper.BindPFlag("watch.type", watchCmd.Flags().Lookup("type"))
	viper.BindPFlag("watch.exec", watchCmd.Flags().Lookup("exec"))
	viper.BindPFlag("watch.events", watchCmd.Flags().Lookup("events"))
	viper.BindPFlag("watch.timeout", watchCmd.Flags().Lookup("timeout"))
	viper.BindPFlag("watch.follow-symlinks", watchCmd.Flags().Lookup("follow-symlinks"))
}

func runWatch(root string) error {
	var expr find.Expression

	if pattern := viper.GetString("watch.name"); pattern != "" {
		expr.Predicates = append(expr.Predicates, find.NamePredicate(pattern))
	}
	if t := viper.GetString("watch.type"); t != "" {
		if len(t) != 1 || !find.ValidTypeLetter(t[0]) {
			return fmt.Errorf("invalid argument ‘%s’ to ‘--type’", t)
		}
		expr.Predicates = append(expr.Predicates, find.TypePredicate(find.TypeLetter(t[0])))
	}
	if execStr := viper.GetString("watch.exec"); execStr != "" {
		expr.Actions = append(expr.Actions, find.ExecAction(splitCommand(execStr)))
	}

	var events []find.WatchEvent
	for _, e := range viper.GetStringSlice("watch.events") {
		switch find.WatchEvent(e) {
		case find.EventCreate, find.EventModify, find.EventRename, find.EventChmod:
			events = append(events, find.WatchEvent(e))
		default:
			return fmt.Errorf("invalid argument ‘%s’ to ‘--events’", e)
		}
	}

	logLevel := find.LogLevelSilent
	if viper.GetBool("verbose") {
		logLevel = find.LogLevelDebug
	}

	return find.Watch(context.Background(), root, &expr, find.WatchOptions{
		Events:         events,
		FollowSymlinks: viper.GetBool("watch.follow-symlinks"),
		Timeout:        viper.GetDuration("watch.timeout"),
		Logger:         find.NewLogger(logLevel),
	})
}

// splitCommand tokenizes a --exec value on whitespace. Watch mode has no ";"
// terminator, so the whole flag value is the template.
func splitCommand(s string) []string {
	return strings.Fields(s)
}
