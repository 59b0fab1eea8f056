package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/wirecodec/internal/catalog"
)

// MaxInitialCapacity bounds codec.initial_capacity.
const MaxInitialCapacity = 1 << 20

type Config struct {
	Codec    CodecConfig     `toml:"codec"`
	Limits   LimitsConfig    `toml:"limits"`
	Server   ServerConfig    `toml:"server"`
	Messages []MessageConfig `toml:"messages"`
}

type CodecConfig struct {
	InitialCapacity int  `toml:"initial_capacity"`
	Framed          bool `toml:"framed"`
}

type LimitsConfig struct {
	MaxPayloadBytes uint32 `toml:"max_payload_bytes"`
	// MaxBodyBytes caps an HTTP request body, which may carry several frames
	// or their hex text.
	MaxBodyBytes int64 `toml:"max_body_bytes"`
}

type ServerConfig struct {
	Node        string   `toml:"node"`
	Addr        string   `toml:"addr"`
	CorsOrigins []string `toml:"cors_origins"`
	// AuthToken, when set, is required as a bearer token on POST routes.
	AuthToken string `toml:"auth_token"`
}

type MessageConfig struct {
	ID     uint16        `toml:"id"`
	Name   string        `toml:"name"`
	Fields []FieldConfig `toml:"fields"`
}

type FieldConfig struct {
	Name string `toml:"name"`
	Type string `toml:"type"`
}

func DefaultConfig() Config {
	return Config{
		Codec: CodecConfig{
			InitialCapacity: 256,
			Framed:          true,
		},
		Limits: LimitsConfig{
			MaxPayloadBytes: 8 << 20,
			MaxBodyBytes:    32 << 20,
		},
		Server: ServerConfig{
			Node: "wirectl",
			Addr: ":9300",
		},
	}
}

// Load reads path over DefaultConfig, rejects unknown keys and validates
// the result.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return finish(cfg, meta, path)
}

// Parse is Load for in-memory TOML.
func Parse(data string) (Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config parse failed: %w", err)
	}
	return finish(cfg, meta, "<inline>")
}

func finish(cfg Config, meta toml.MetaData, source string) (Config, error) {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return Config{}, fmt.Errorf("config %s: unknown keys: %s", source, strings.Join(keys, ", "))
	}
	cfg.Server.Node = strings.TrimSpace(cfg.Server.Node)
	cfg.Server.Addr = strings.TrimSpace(cfg.Server.Addr)
	cfg.Server.AuthToken = strings.TrimSpace(cfg.Server.AuthToken)
	cfg.Server.CorsOrigins = normalizeOrigins(cfg.Server.CorsOrigins)
	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("config %s invalid: %w", source, err)
	}
	return cfg, nil
}

func Validate(cfg Config) error {
	if cfg.Codec.InitialCapacity < 0 || cfg.Codec.InitialCapacity > MaxInitialCapacity {
		return fmt.Errorf("codec.initial_capacity must be within 0..%d, got %d", MaxInitialCapacity, cfg.Codec.InitialCapacity)
	}
	if cfg.Limits.MaxPayloadBytes == 0 {
		return fmt.Errorf("limits.max_payload_bytes must be positive")
	}
	if cfg.Limits.MaxBodyBytes <= 0 {
		return fmt.Errorf("limits.max_body_bytes must be positive, got %d", cfg.Limits.MaxBodyBytes)
	}
	if cfg.Server.Node == "" {
		return fmt.Errorf("server.node is required")
	}
	if cfg.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if _, err := catalog.New(cfg.Definitions()); err != nil {
		return fmt.Errorf("messages: %w", err)
	}
	return nil
}

func normalizeOrigins(in []string) []string {
	out := make([]string, 0, len(in))
	for _, origin := range in {
		v := strings.TrimSpace(origin)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}
