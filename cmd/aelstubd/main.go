package main

import "github.com/ael-launcher/catalog/cmd/aelstubd/cmd"

func main() {
	cmd.Execute()
}
