// Command-line front-end for blockdown.
//
// Usage:
//
//	blockdown [flags] [inputfile [outputfile]]
//	blockdown serve [--addr host:port] [--root dir]
//	blockdown config [generate]
package main

import (
	"log"

	"github.com/russross/blockdown/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatal(err)
	}
}
