package cmd

import (
	"fmt"

	"github.com/mobileinf/repocp/pkg/mirror"
	"github.com/spf13/cobra"
)

func NewCmdCatalog() *cobra.Command {
	var flagInsecure bool

	var catalogCmd = &cobra.Command{
		Use:   "catalog [registry]",
		Short: "List repositories of a remote registry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []mirror.Option{
				mirror.WithContext(cmd.Context()),
			}
			if flagInsecure || TheAppConfig.Insecure {
				opts = append(opts, mirror.WithInsecure())
			}
			repos, err := mirror.Catalog(args[0], opts...)
			if err != nil {
				return err
			}
			for _, repo := range repos {
				fmt.Println(repo)
			}
			return nil
		},
	}

	catalogCmd.Flags().BoolVar(&flagInsecure, "insecure", false,
		"Allow registries served over plain HTTP")

	return catalogCmd
}
