package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/scamguard/internal/domain/services"
)

func newSimilarCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "similar <text>",
		Short: "Find past scans similar to a message",
		Long:  "Searches the similar-scan index for previously scanned messages close to the given text. Requires index.enabled.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(deps *Deps) error {
				scans, err := deps.SimilarHandler.Handle(cmd.Context(), strings.Join(args, " "), limit)
				if err != nil {
					return err
				}
				displaySimilar(cmd.OutOrStdout(), scans)
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", services.DefaultSimilarLimit, "Maximum number of results")

	return cmd
}
