package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/danmuck/wirecodec/internal/config"
	"github.com/rs/zerolog/log"
)

func runInspect(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := newFlagSet("inspect")
	configPath := fs.StringP("config", "c", defaultConfigPath, "config path")
	hexInput := fs.String("hex", "", "frames as hex text (\"-\" reads hex from stdin)")
	file := fs.StringP("file", "f", "", "file of raw frames (\"-\" reads stdin)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if (*hexInput == "") == (*file == "") {
		return fmt.Errorf("%w: exactly one of --hex or --file is required", errUsage)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	cat, err := cfg.Catalog()
	if err != nil {
		return err
	}
	data, err := readInput(*hexInput, *file, stdin)
	if err != nil {
		return err
	}

	results, inspectErr := cat.Inspect(data, cfg.FrameLimits())
	enc := json.NewEncoder(stdout)
	for _, in := range results {
		if err := enc.Encode(in); err != nil {
			return err
		}
	}
	log.Debug().Int("frames", len(results)).Int("bytes", len(data)).Msg("inspect complete")
	return inspectErr
}

func readInput(hexInput, file string, stdin io.Reader) ([]byte, error) {
	if hexInput != "" {
		text := hexInput
		if hexInput == "-" {
			raw, err := io.ReadAll(stdin)
			if err != nil {
				return nil, fmt.Errorf("read stdin: %w", err)
			}
			text = string(raw)
		}
		data, err := hex.DecodeString(strings.Join(strings.Fields(text), ""))
		if err != nil {
			return nil, fmt.Errorf("decode hex: %w", err)
		}
		return data, nil
	}
	if file == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read frames: %w", err)
	}
	return data, nil
}
