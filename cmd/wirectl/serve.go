package main

import (
	"io"

	"github.com/danmuck/wirecodec/internal/config"
	"github.com/danmuck/wirecodec/internal/server"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func runServe(args []string, _ io.Reader, _ io.Writer) error {
	fs := newFlagSet("serve")
	configPath := fs.StringP("config", "c", defaultConfigPath, "config path")
	addr := fs.String("addr", "", "listen address (overrides server.addr)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	log.Info().Str("path", *configPath).Msg("loaded wirectl config")

	gin.SetMode(gin.ReleaseMode)
	srv, err := server.New(cfg)
	if err != nil {
		return err
	}
	return srv.Serve()
}
