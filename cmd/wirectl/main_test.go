package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danmuck/wirecodec/internal/testutil/testlog"
)

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wirectl.toml")
	var out bytes.Buffer
	if err := run([]string{"configgen", "--output", path}, nil, &out); err != nil {
		t.Fatalf("configgen: %v", err)
	}
	return path
}

func TestConfigGenWritesAndValidates(t *testing.T) {
	testlog.Start(t)
	path := writeConfig(t)

	var out bytes.Buffer
	if err := run([]string{"configgen", "--validate", "--input", path}, nil, &out); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !strings.HasPrefix(out.String(), "ok ") {
		t.Fatalf("validate output: %q", out.String())
	}
	if err := run([]string{"configgen", "--output", path}, nil, &out); err == nil {
		t.Fatalf("expected overwrite refusal without --force")
	}
}

func TestEncodeThenInspect(t *testing.T) {
	testlog.Start(t)
	path := writeConfig(t)

	var encoded bytes.Buffer
	if err := run([]string{"encode", "--config", path, "--id", "7", "300", "truck"}, nil, &encoded); err != nil {
		t.Fatalf("encode: %v", err)
	}
	hexFrame := strings.TrimSpace(encoded.String())
	if !strings.HasPrefix(hexFrame, "0700090000002c01") {
		t.Fatalf("encode output: %q", hexFrame)
	}

	var inspected bytes.Buffer
	if err := run([]string{"inspect", "--config", path, "--hex", "-"}, strings.NewReader(hexFrame+hexFrame), &inspected); err != nil {
		t.Fatalf("inspect: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(inspected.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("inspect lines=%d output=%q", len(lines), inspected.String())
	}
	var first map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("inspect json: %v", err)
	}
	if first["name"] != "vehicle.spawn" || first["outcome"] != "ok" {
		t.Fatalf("inspect record: %v", first)
	}
}

func TestInspectFile(t *testing.T) {
	testlog.Start(t)
	path := writeConfig(t)
	frames := filepath.Join(t.TempDir(), "frames.bin")
	if err := os.WriteFile(frames, []byte{0x07, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01}, 0o600); err != nil {
		t.Fatalf("write frames: %v", err)
	}
	var out bytes.Buffer
	if err := run([]string{"inspect", "-c", path, "-f", frames}, nil, &out); err != nil {
		t.Fatalf("inspect: %v", err)
	}
	if !strings.Contains(out.String(), `"outcome":"decode_failed"`) {
		t.Fatalf("inspect output: %s", out.String())
	}
}

func TestUsageErrors(t *testing.T) {
	testlog.Start(t)
	var out bytes.Buffer
	if err := run(nil, nil, &out); !errors.Is(err, errUsage) {
		t.Fatalf("no args: %v", err)
	}
	if err := run([]string{"bogus"}, nil, &out); !errors.Is(err, errUsage) {
		t.Fatalf("unknown command: %v", err)
	}
	if err := run([]string{"inspect"}, nil, &out); !errors.Is(err, errUsage) {
		t.Fatalf("inspect without input: %v", err)
	}
	if err := run([]string{"encode"}, nil, &out); !errors.Is(err, errUsage) {
		t.Fatalf("encode without id: %v", err)
	}
	if err := run([]string{"encode", "--help"}, nil, &out); err != nil {
		t.Fatalf("help: %v", err)
	}
}
