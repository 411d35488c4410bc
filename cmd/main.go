package main

import (
	"fmt"
	"os"

	"github.com/mar-cial/whitelist/cmd/whitelist"
)

func main() {
	rootCmd := whitelist.BuildWhitelistCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
