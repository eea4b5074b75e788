package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(run(newApp(os.Getenv), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the exit code.
func run(a *app, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand(a)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return ExitSuccess
	}

	if cliErr, ok := err.(*CLIError); ok {
		fmt.Fprintf(stderr, "giturl: %s\n", cliErr.Message)
		if cliErr.Cause != nil {
			fmt.Fprintf(stderr, "  Cause: %v\n", cliErr.Cause)
		}
		return cliErr.ExitCode()
	}

	fmt.Fprintf(stderr, "giturl: %v\n", err)
	return exitCode(err)
}
