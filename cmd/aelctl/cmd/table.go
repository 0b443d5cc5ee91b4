package cmd

import (
	"fmt"
	"io"

	"github.com/ael-launcher/catalog/pkg/aelmodel"
	"github.com/olekukonko/tablewriter"
)

var romTableHeaders = []string{"ID", "Name", "Platform", "Year", "Genre", "File"}

func printROMTable(w io.Writer, roms []*aelmodel.ROM) error {
	table := tablewriter.NewWriter(w)
	defer table.Close()

	table.Header(romTableHeaders)

	for _, rom := range roms {
		if err := table.Append(romTableRow(rom)); err != nil {
			return err
		}
	}

	table.Footer([]string{fmt.Sprintf("Total: %d", len(roms)), "", "", "", "", ""})

	return table.Render()
}

func romTableRow(rom *aelmodel.ROM) []string {
	id, _ := rom.GetID()
	name, _ := rom.GetName()
	platform, _ := rom.GetPlatform()
	year, _ := rom.GetReleaseYear()
	genre, _ := rom.GetGenre()
	file, _ := rom.GetFile()

	return []string{id, name, platform, year, genre, file.Base()}
}
