package main

import (
	"fmt"
	"io"

	"github.com/danmuck/wirecodec/internal/config"
	"github.com/rs/zerolog/log"
)

func runConfigGen(args []string, _ io.Reader, stdout io.Writer) error {
	fs := newFlagSet("configgen")
	output := fs.StringP("output", "o", defaultConfigPath, "output path for config template")
	validate := fs.Bool("validate", false, "validate an existing config file")
	input := fs.StringP("input", "i", defaultConfigPath, "config path for validation")
	force := fs.Bool("force", false, "overwrite existing config file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *validate {
		cfg, err := config.Load(*input)
		if err != nil {
			return err
		}
		log.Info().Str("path", *input).Int("messages", len(cfg.Messages)).Msg("validated config")
		_, err = fmt.Fprintf(stdout, "ok %s (%d messages)\n", *input, len(cfg.Messages))
		return err
	}

	if err := config.WriteTemplate(*output, *force); err != nil {
		return err
	}
	log.Info().Str("path", *output).Msg("wrote config template")
	_, err := fmt.Fprintf(stdout, "wrote %s\n", *output)
	return err
}
