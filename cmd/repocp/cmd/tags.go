package cmd

import (
	"fmt"

	"github.com/mobileinf/repocp/pkg/mirror"
	"github.com/spf13/cobra"
)

func NewCmdTags() *cobra.Command {
	var flagInsecure bool

	var tagsCmd = &cobra.Command{
		Use:   "tags [repository]",
		Short: "List all tags of a remote repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo := TheAppConfig.Override(args[0])
			opts := []mirror.Option{
				mirror.WithContext(cmd.Context()),
			}
			if flagInsecure || TheAppConfig.Insecure {
				opts = append(opts, mirror.WithInsecure())
			}
			tags, err := mirror.ListTags(repo, opts...)
			if err != nil {
				return err
			}
			for _, tag := range tags {
				fmt.Println(tag)
			}
			return nil
		},
	}

	tagsCmd.Flags().BoolVar(&flagInsecure, "insecure", false,
		"Allow registries served over plain HTTP")

	return tagsCmd
}
