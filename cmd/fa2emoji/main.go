package main

import (
	"github.com/haytac/fa2emoji/internal/cli"
	"github.com/haytac/fa2emoji/internal/logging"
)

func main() {
	// Basic logger for anything that happens before PersistentPreRunE
	// configures logging from the loaded config.
	logging.Setup(logging.Config{Level: "info", Console: true, TimeFormat: "15:04:05"})

	cli.Execute()
}
