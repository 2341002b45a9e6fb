package main

import (
	"os"

	"github.com/GasserElSawaf/UniCloudTest/cli"
)

func main() {
	if err := cli.RootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
