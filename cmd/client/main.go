package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-docs-keeper/internal/client"
	"github.com/MKhiriev/go-docs-keeper/internal/config"
	"github.com/MKhiriev/go-docs-keeper/internal/logger"
	"github.com/MKhiriev/go-docs-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("docs-keeper-client", cfg.Log.File)
	log.Info().
		Str("version", buildInfo.Version).
		Str("commit", buildInfo.Commit).
		Msg("starting client")

	app := client.NewApp(cfg, buildInfo, log)
	if err = app.Run(context.Background()); err != nil {
		log.Err(err).Msg("client run error")
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
