package main

import (
	"log"
	"os"

	"seocrawler/cmd/urlgen/app"
)

func main() {
	err := app.Run(os.Args, os.Stdout, os.Stderr)
	if err != nil {
		log.Print(err)
		os.Exit(1)
	}
}
