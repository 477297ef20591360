// Command xps is a terminal expense tracker.
//
// With no command it runs the interactive menu, see 'xps topic shell'.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/etnz/expense/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
)

func main() {
	// Exits when invoked by the shell for completion.
	complete.Complete("xps", completion())

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	if err := cmd.LoadEnv(flag.CommandLine); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(int(subcommands.ExitUsageError))
	}
	flag.Parse()
	cmd.SetupLogging()

	ctx := context.Background()
	if flag.NArg() == 0 {
		os.Exit(int(cmd.RunShell(ctx, os.Stdin, os.Stdout, false)))
	}
	os.Exit(int(commander.Execute(ctx)))
}
