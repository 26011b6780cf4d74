package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/OWENATOR-3000/staffPortal/internal/config"
	"github.com/OWENATOR-3000/staffPortal/internal/formgen"
	"github.com/OWENATOR-3000/staffPortal/internal/leaveform"
	"github.com/OWENATOR-3000/staffPortal/internal/shared/apperror"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	runner := formgen.NewRunner(
		leaveform.NewRenderer(cfg.Forms.LogoPath),
		cfg.Forms.TemplateDir,
		os.Stdout,
		logger,
	)
	if err := runner.Run(context.Background(), os.Args[1:]); err != nil {
		var appErr *apperror.AppError
		switch {
		case errors.Is(err, formgen.ErrUsage):
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		case errors.As(err, &appErr):
			fmt.Fprintln(os.Stderr, appErr.Message)
		default:
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

