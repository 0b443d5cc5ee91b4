package main

import "github.com/ael-launcher/catalog/cmd/aelctl/cmd"

func main() {
	cmd.Execute()
}
