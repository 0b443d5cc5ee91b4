package cmd

import (
	"github.com/ael-launcher/catalog/pkg/aelmodel"
	"github.com/spf13/cobra"
)

var romCmd = &cobra.Command{
	Use:   "rom",
	Short: "ROM queries",
}

var romGetCmd = &cobra.Command{
	Use:   "get <rom-id>",
	Short: "Print a single ROM",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rom, err := newClient().GetROM(args[0])
		if err != nil {
			return err
		}

		return printJSON(cmd.OutOrStdout(), rom)
	},
}

var collectionCmd = &cobra.Command{
	Use:   "collection",
	Short: "ROM collection queries",
}

var collectionROMsCmd = &cobra.Command{
	Use:   "roms <collection-id>",
	Short: "Print the ROMs of a collection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		roms, err := newClient().GetROMsInCollection(args[0])
		if err != nil {
			return err
		}

		if outputFormat == "table" {
			return printROMTable(cmd.OutOrStdout(), roms)
		}

		return printJSON(cmd.OutOrStdout(), aelmodel.ROMsData(roms))
	},
}

var collectionLaunchersCmd = &cobra.Command{
	Use:   "launchers <collection-id>",
	Short: "Print the launchers configured for a collection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		launchers, err := newClient().GetCollectionLaunchers(args[0])
		if err != nil {
			return err
		}

		return printJSON(cmd.OutOrStdout(), launchers)
	},
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Launcher and scanner settings queries",
}

var romLauncherSettingsCmd = &cobra.Command{
	Use:   "rom-launcher <rom-id> <launcher-id>",
	Short: "Print the settings of a launcher for one ROM",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := newClient().GetROMLauncherSettings(args[0], args[1])
		if err != nil {
			return err
		}

		return printJSON(cmd.OutOrStdout(), settings)
	},
}

var collectionLauncherSettingsCmd = &cobra.Command{
	Use:   "collection-launcher <collection-id> <launcher-id>",
	Short: "Print the settings of a launcher for a collection",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := newClient().GetCollectionLauncherSettings(args[0], args[1])
		if err != nil {
			return err
		}

		return printJSON(cmd.OutOrStdout(), settings)
	},
}

var collectionScannerSettingsCmd = &cobra.Command{
	Use:   "collection-scanner <collection-id> <scanner-id>",
	Short: "Print the settings of a scanner for a collection",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := newClient().GetCollectionScannerSettings(args[0], args[1])
		if err != nil {
			return err
		}

		return printJSON(cmd.OutOrStdout(), settings)
	},
}

var outputFormat string

func init() {
	collectionROMsCmd.Flags().StringVarP(&outputFormat, "output", "o", "json", "output format (json, table)")
	romCmd.AddCommand(romGetCmd)
	collectionCmd.AddCommand(collectionROMsCmd, collectionLaunchersCmd)
	settingsCmd.AddCommand(romLauncherSettingsCmd, collectionLauncherSettingsCmd, collectionScannerSettingsCmd)
	rootCmd.AddCommand(romCmd, collectionCmd, settingsCmd)
}
