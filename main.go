package main

import (
	"log"

	"booruscrape/cli"
)

func main() {
	booruCmd := cli.NewCommand()
	if err := booruCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
