package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/mobileinf/repocp/pkg/mirror"
	"github.com/spf13/cobra"
)

func InitializeCommands() *cobra.Command {
	cobra.OnInitialize(initConfig)

	var (
		flagApply    bool
		flagJobs     int
		flagInsecure bool
	)

	var rootCmd = &cobra.Command{
		Use:   "repocp [source repo] [destination repo]",
		Short: "Repocp copies every tag of an image repository to another repository.",
		Long: `Repocp enumerates all tags of a source image repository and copies each
tagged image to a destination repository, possibly on a different registry.
By default it performs a dry run that reports the planned copies; pass
--apply to execute them.`,
		Args:                       cobra.ExactArgs(2),
		SuggestionsMinimumDistance: 2,
		SilenceErrors:              true,
		SilenceUsage:               true,
		RunE: func(cmd *cobra.Command, args []string) error {
			src := TheAppConfig.Override(args[0])
			dst := TheAppConfig.Override(args[1])

			jobs := flagJobs
			if !cmd.Flags().Changed("jobs") && TheAppConfig.Jobs > 0 {
				jobs = TheAppConfig.Jobs
			}
			opts := []mirror.Option{
				mirror.WithContext(cmd.Context()),
				mirror.WithApply(flagApply),
				mirror.WithJobs(jobs),
				mirror.WithVerbose(TheAppConfig.Verbose),
			}
			if flagInsecure || TheAppConfig.Insecure {
				opts = append(opts, mirror.WithInsecure())
			}

			res, err := mirror.Copy(src, dst, opts...)
			if res != nil && flagApply {
				fmt.Printf("copied %d of %d tags\n", res.Copied, res.Planned)
			} else if res != nil {
				fmt.Printf("planned %d copies, use --apply to execute them\n", res.Planned)
			}
			return err
		},
	}

	rootCmd.Flags().BoolVar(&flagApply, "apply", false,
		"Perform the copies instead of only reporting them")
	rootCmd.Flags().IntVar(&flagJobs, "jobs", 1,
		"Number of tags copied at the same time")
	rootCmd.Flags().BoolVar(&flagInsecure, "insecure", false,
		"Allow registries served over plain HTTP")
	rootCmd.PersistentFlags().StringVar(&flagConfigFile, "config", "",
		"Config file (default is ~/.repocp/config.yaml)")

	rootCmd.AddCommand(
		NewCmdTags(),
		NewCmdCatalog(),
		NewCmdRetag(),
		NewCmdAuthLogin(),
		NewCmdAuthLogout(),
		NewCmdVersion(),
	)

	return rootCmd
}

func Execute(rootCmd *cobra.Command) {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		cancel()
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
