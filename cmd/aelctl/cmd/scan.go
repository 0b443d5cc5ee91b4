package cmd

import (
	"github.com/ael-launcher/catalog/pkg/aelmodel"
	"github.com/ael-launcher/catalog/pkg/clog"
	"github.com/ael-launcher/catalog/pkg/romscan"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
)

var (
	scanRoot         string
	scanExtensions   []string
	scanPlatform     string
	scanScannerID    string
	scanCollectionID string
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan a directory for ROMs",
	Long: `Scan walks --root for files with one of the --ext extensions. Without --collection
the ROMs found are printed. With --collection the collection is synced: new files are
stored as scanned ROMs and ROMs whose file is gone are stored as dead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := homedir.Expand(scanRoot)
		if err != nil {
			return err
		}

		scanner := &romscan.Scanner{
			Root:       root,
			Extensions: scanExtensions,
			Platform:   scanPlatform,
			ScannerID:  scanScannerID,
		}

		if scanCollectionID == "" {
			roms, err := scanner.Scan(cmd.Context())
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), aelmodel.ROMsData(roms))
		}

		syncer := romscan.NewSyncer(newClient(), clog.UsingCtx(clog.ScannerCtx))
		report, err := syncer.Sync(cmd.Context(), scanCollectionID, scanner)
		if err != nil {
			return err
		}

		return printJSON(cmd.OutOrStdout(), report)
	},
}

func init() {
	scanCmd.Flags().StringVar(&scanRoot, "root", ".", "directory to scan")
	scanCmd.Flags().StringSliceVar(&scanExtensions, "ext", nil, "file extensions to accept, all files when empty")
	scanCmd.Flags().StringVar(&scanPlatform, "platform", "", "platform to set on scanned ROMs")
	scanCmd.Flags().StringVar(&scanScannerID, "scanner-id", "", "scanner id to record on scanned ROMs")
	scanCmd.Flags().StringVar(&scanCollectionID, "collection", "", "collection to sync against")
	rootCmd.AddCommand(scanCmd)
}
