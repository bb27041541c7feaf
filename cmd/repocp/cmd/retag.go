package cmd

import (
	"fmt"

	"github.com/mobileinf/repocp/pkg/mirror"
	"github.com/spf13/cobra"
)

func NewCmdRetag() *cobra.Command {
	var flagInsecure bool

	var retagCmd = &cobra.Command{
		Use:   "retag [src image] [dst image]",
		Short: "Copy a single tagged image to a new reference",
		Long: `Copies one tagged image to a new reference, which may live in a different
repository or registry. Blobs already present at the destination are not
transferred again.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := TheAppConfig.Override(args[0])
			dst := TheAppConfig.Override(args[1])
			opts := []mirror.Option{
				mirror.WithContext(cmd.Context()),
			}
			if flagInsecure || TheAppConfig.Insecure {
				opts = append(opts, mirror.WithInsecure())
			}
			if err := mirror.Retag(src, dst, opts...); err != nil {
				return err
			}
			fmt.Printf("retagged %s as %s\n", src, dst)
			return nil
		},
	}

	retagCmd.Flags().BoolVar(&flagInsecure, "insecure", false,
		"Allow registries served over plain HTTP")

	return retagCmd
}
