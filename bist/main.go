// Command bist reads Borsa Istanbul market data and simulates the returns
// of contribution plans into single stocks.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/borsatools/bist/cmd"
	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
