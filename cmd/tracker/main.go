package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/kjannette/trahn-ticker/internal/config"
	"github.com/kjannette/trahn-ticker/internal/display"
	"github.com/kjannette/trahn-ticker/internal/external"
	"github.com/kjannette/trahn-ticker/internal/tracker"
)

func main() {
	fmt.Println("Cryptocurrency Price Tracker")
	fmt.Println("Press Ctrl+C to exit")

	log := logrus.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	log.WithField("component", "tracker").Info(cfg.Summary())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := external.NewCoinGeckoClient(external.WithBaseURL(cfg.BaseURL))
	t := tracker.New(client, display.NewRenderer(os.Stdout),
		tracker.WithAssets(cfg.Assets),
		tracker.WithInterval(cfg.RefreshInterval),
		tracker.WithLogger(log),
	)

	t.Run(ctx)
}
