package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/fieldbind/modules/imageform"
	"github.com/dmitrymomot/fieldbind/pkg/config"
	"github.com/dmitrymomot/fieldbind/pkg/logger"
)

func main() {
	envFile := flag.String("env", "", "additional .env file to load")
	interactive := flag.Bool("i", false, "edit the form with prompts instead of reading field=value lines from stdin")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := config.LoadEnv(optional(*envFile)...); err != nil {
		log.Fatalf("Failed to load env file: %v", err)
	}
	cfg, err := imageform.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Invalid log level: %v", err)
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		log.Fatalf("Invalid log format: %v", err)
	}
	l := logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(os.Stderr),
		logger.WithAttr(logger.Component("imageform-cli")),
	)
	logger.SetAsDefault(l)

	form, err := imageform.FromConfig(ctx, cfg, l, func(msg string) {
		fmt.Println(msg)
	})
	if err != nil {
		log.Fatalf("Failed to build form: %v", err)
	}

	var driver imageform.Driver = imageform.NewScriptDriver(os.Stdin)
	if *interactive || cfg.Interactive {
		driver = imageform.NewPromptDriver(nil)
	}

	if err := driver.Run(ctx, form); err != nil && !errors.Is(err, imageform.ErrAborted) {
		log.Fatalf("Failed to edit form: %v", err)
	}

	data := form.Data()
	fmt.Printf("Final image data: text=%q size=%d valid=%t\n", data.Text, data.Size, form.Valid())
}

func optional(path string) []string {
	if path == "" {
		return nil
	}
	return []string{path}
}
