package main

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/danmuck/wirecodec/internal/config"
)

func runEncode(args []string, _ io.Reader, stdout io.Writer) error {
	fs := newFlagSet("encode")
	configPath := fs.StringP("config", "c", defaultConfigPath, "config path")
	id := fs.Uint16("id", 0, "message id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if !fs.Changed("id") {
		return fmt.Errorf("%w: --id is required", errUsage)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	cat, err := cfg.Catalog()
	if err != nil {
		return err
	}
	msg, err := cat.EncodeText(*id, fs.Args())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, hex.EncodeToString(msg))
	return err
}
