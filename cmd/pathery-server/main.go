// Command pathery-server serves shortest-path queries over HTTP and WebSocket.
// See internal/config for the environment variables it reads.
package main

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/pathery/internal/config"
	"github.com/katalvlaran/pathery/internal/logger"
	"github.com/katalvlaran/pathery/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}
	l := logger.New(cfg.Log)

	srv := server.New(cfg, l)
	l.WithFields(log.Fields{
		"port":      cfg.Port,
		"max_cells": cfg.MaxCells,
		"timeout":   cfg.Timeout,
	}).Info("listening")
	l.Fatalln(http.ListenAndServe(":"+cfg.Port, srv))
}
