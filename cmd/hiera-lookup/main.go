package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-hiera-client/internal/cli"
	"github.com/MKhiriev/go-hiera-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := cli.Execute(ctx, os.Args[1:], models.NewBuildInfo(buildVersion, buildDate, buildCommit), os.Stdout, os.Stderr)

	stop()
	os.Exit(code)
}
