package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/malusev998/coinavg/cli/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Execute(&cmd.Config{Ctx: ctx}); err != nil {
		stop()
		log.Fatalf("Error: %v", err)
	}
}
