package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/statledger-dev/statledger/internal/analysis"
	"github.com/statledger-dev/statledger/internal/blob"
	"github.com/statledger-dev/statledger/internal/config"
	"github.com/statledger-dev/statledger/internal/extract"
)

func newExtractCommand() *cobra.Command {
	var blocksPath string
	var prefix string
	var storeDir string

	cmd := &cobra.Command{
		Use:   "extract <document.pdf>",
		Short: "Extract statement tables into per-table CSV artifacts",
		Long: `Runs the document through analysis and writes one CSV artifact per
detected table. With --blocks, a saved analysis response is replayed instead
of calling the live service.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.FromEnv()
			if err != nil {
				return err
			}

			if blocksPath == "" {
				return fmt.Errorf("no analysis client configured: pass --blocks with a saved response")
			}
			client, err := analysis.NewFileClient(blocksPath, settings.PageSize)
			if err != nil {
				return err
			}

			svc := &extract.Service{
				Client:       client,
				Store:        blob.NewDirStore(storeDir),
				Bucket:       settings.Bucket,
				KeyPrefix:    settings.KeyPrefix,
				PollInterval: settings.PollInterval,
			}

			result, err := svc.Run(cmd.Context(), args[0], prefix)
			if err != nil {
				return err
			}

			fmt.Printf("Wrote %d table(s), skipped %d\n", len(result.Written), result.Skipped)
			for _, name := range result.Written {
				fmt.Printf("  %s\n", name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&blocksPath, "blocks", "", "saved analysis response JSON to replay")
	cmd.Flags().StringVar(&prefix, "prefix", "output/table", "artifact name prefix")
	cmd.Flags().StringVar(&storeDir, "store", ".statledger-store", "local blob store directory")

	return cmd
}
