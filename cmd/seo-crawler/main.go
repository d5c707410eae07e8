package main

import (
	"log"
	"net/http"
	"os"

	"seocrawler/cmd/seo-crawler/app"
	"seocrawler/internal/clock"
)

func main() {
	httpClient := &http.Client{}

	err := app.Run(os.Args, os.Stdout, os.Stderr, httpClient, clock.New())
	if err != nil {
		log.Print(err)
		os.Exit(1)
	}
}
