package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/scamguard/internal/application/handlers"
	"github.com/ersonp/scamguard/internal/domain/ports"
	"github.com/ersonp/scamguard/internal/infrastructure/config"
	"github.com/ersonp/scamguard/internal/infrastructure/vectordb/qdrant"
)

func newInitCmd() *cobra.Command {
	var withIndex bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration",
		Long:  "Creates .scamguard/config.yaml under the base directory. With --with-index, also creates the Qdrant collection.",
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := basePath()
			if err != nil {
				return err
			}

			var manager ports.CollectionManager
			if withIndex {
				repo, err := qdrant.NewRepository(config.Default().Index)
				if err != nil {
					return fmt.Errorf("creating qdrant repository: %w", err)
				}
				defer repo.Close()
				manager = repo
			}

			result, err := handlers.NewInitHandler(manager).Handle(cmd.Context(), base)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote %s\n", result.ConfigPath)
			fmt.Fprintf(out, "History will be stored in %s\n", result.HistoryPath)
			if result.CollectionName != "" {
				fmt.Fprintf(out, "Created collection %s (set index.enabled: true to use it)\n", result.CollectionName)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&withIndex, "with-index", false, "Create the Qdrant collection for similar-scan search")

	return cmd
}
