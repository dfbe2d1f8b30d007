package main

import (
	"os"

	"github.com/lite-lake/cf-empty-email/internal/infrastructure/logger"
	"github.com/lite-lake/cf-empty-email/internal/interfaces/cli"
)

func main() {
	logger.Init(os.Getenv("CF_EMPTY_EMAIL_LOG_FORMAT"), os.Stderr)
	cli.Execute()
}
