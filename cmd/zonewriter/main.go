package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/afero"

	"github.com/draganm/zonewriter/internal/command"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	app := &command.App{
		Fs:     afero.NewOsFs(),
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Logger: log,
	}

	os.Exit(app.Run(context.Background(), os.Args))
}
