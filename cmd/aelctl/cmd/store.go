package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ael-launcher/catalog/pkg/aelapi"
	"github.com/ael-launcher/catalog/pkg/aelmodel"
	"github.com/ael-launcher/catalog/pkg/decoder"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Post a JSON body to one of the catalog store routes",
}

// storeSubcommand builds a "store <name> <file.json>" command that posts the file with
// the given client operation. A non-nil validate runs on the file before anything is sent.
func storeSubcommand(name, short string, validate func(data map[string]any) error, store func(api aelapi.CatalogAPI, data map[string]any) bool) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <file.json>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readJSONFile(args[0])
			if err != nil {
				return err
			}

			if validate != nil {
				if err := validate(data); err != nil {
					return errors.Wrapf(err, "%s is not a valid %s body", args[0], name)
				}
			}

			if !store(newClient(), data) {
				return fmt.Errorf("catalog did not accept %s", args[0])
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "stored")
			return err
		},
	}
}

func readJSONFile(path string) (map[string]any, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data map[string]any
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, errors.Wrapf(err, "%s is not a JSON object", path)
	}

	return data, nil
}

// strictBody rejects files that don't decode as T, including keys T doesn't declare, so
// a misspelled key fails here instead of being dropped by the server.
func strictBody[T any](data map[string]any) error {
	_, err := decoder.DecodeMapStrict[T](data)
	return err
}

func init() {
	storeCmd.AddCommand(
		storeSubcommand("launcher", "Store launcher settings", strictBody[aelmodel.LauncherSettings], aelapi.CatalogAPI.StoreLauncherSettings),
		storeSubcommand("scanner", "Store scanner settings", strictBody[aelmodel.ScannerSettings], aelapi.CatalogAPI.StoreScannerSettings),
		storeSubcommand("scanned", "Store newly scanned ROMs", strictBody[aelmodel.ScannedROMs], aelapi.CatalogAPI.StoreScannedROMs),
		storeSubcommand("dead", "Store dead ROMs", strictBody[aelmodel.DeadROMs], aelapi.CatalogAPI.StoreDeadROMs),
		storeSubcommand("scraped-rom", "Store one scraped ROM", nil, aelapi.CatalogAPI.StoreScrapedROM),
		storeSubcommand("scraped-roms", "Store a batch of scraped ROMs", strictBody[aelmodel.ScrapedROMs], aelapi.CatalogAPI.StoreScrapedROMs),
	)
	rootCmd.AddCommand(storeCmd)
}
