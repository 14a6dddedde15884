package main

import (
	"os"

	"horse-medical-records/cmd/medctl/cli"
)

func main() {
	if err := cli.RootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
