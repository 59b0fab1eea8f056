package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/danmuck/wirecodec/internal/logging"
	"github.com/danmuck/wirecodec/internal/observability"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

const defaultConfigPath = "wirectl.toml"

var errUsage = errors.New("usage")

type command struct {
	name    string
	summary string
	run     func(args []string, stdin io.Reader, stdout io.Writer) error
}

func commands() []command {
	return []command{
		{"inspect", "decode frames from hex or a file against the catalog", runInspect},
		{"encode", "build a frame from literal field values", runEncode},
		{"serve", "run the HTTP inspection server", runServe},
		{"configgen", "write or validate a config template", runConfigGen},
	}
}

func main() {
	logging.ConfigureRuntime()
	observability.InitLogger("wirectl")

	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		log.Error().Err(err).Msg("wirectl failed")
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) == 0 || args[0] == "-h" || args[0] == "--help" || args[0] == "help" {
		printUsage(os.Stderr)
		if len(args) == 0 {
			return errUsage
		}
		return nil
	}
	for _, cmd := range commands() {
		if cmd.name == args[0] {
			err := cmd.run(args[1:], stdin, stdout)
			if errors.Is(err, pflag.ErrHelp) {
				return nil
			}
			return err
		}
	}
	printUsage(os.Stderr)
	return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "wirectl inspects and builds framed binary codec messages.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  wirectl <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands() {
		fmt.Fprintf(w, "  %-10s %s\n", cmd.name, cmd.summary)
	}
}

func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet("wirectl "+name, pflag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	return fs
}
