package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ael-launcher/catalog/pkg/aelmodel"
	"github.com/ael-launcher/catalog/pkg/clog"
	"github.com/gosimple/slug"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
)

var exportDir string

var exportCmd = &cobra.Command{
	Use:   "export <collection-id>",
	Short: "Write every ROM of a collection to its own JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := homedir.Expand(exportDir)
		if err != nil {
			return err
		}

		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}

		roms, err := newClient().GetROMsInCollection(args[0])
		if err != nil {
			return err
		}

		used := make(map[string]bool, len(roms))
		for _, rom := range roms {
			path := filepath.Join(dir, exportFileName(rom, used))
			if err := writeROM(path, rom); err != nil {
				return err
			}
			clog.Global().Infof("Exported %s", path)
		}

		_, err = fmt.Fprintf(cmd.OutOrStdout(), "exported %d roms to %s\n", len(roms), dir)
		return err
	},
}

// exportFileName names the file after the ROM title, falling back to the id. Names
// already handed out get the id appended.
func exportFileName(rom *aelmodel.ROM, used map[string]bool) string {
	id, _ := rom.GetID()

	base, ok := rom.GetName()
	if !ok || base == "" {
		base = id
	}

	name := slug.Make(base)
	if name == "" {
		name = "rom"
	}

	if used[name] {
		name = slug.Make(name + "-" + id)
	}
	used[name] = true

	return name + ".json"
}

func writeROM(path string, rom *aelmodel.ROM) error {
	b, err := json.MarshalIndent(rom, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, b, 0644)
}

func init() {
	exportCmd.Flags().StringVar(&exportDir, "dir", ".", "directory to write the ROM files to")
	rootCmd.AddCommand(exportCmd)
}
