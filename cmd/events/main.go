package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"

	"smartbyte-be/pkg/events"
	pkgNats "smartbyte-be/pkg/nats"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

// Tails the sales event stream. Useful when checking that recommendations
// and catalog imports actually reach the broker.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	natsURL := os.Getenv("NATS_URL")
	if natsURL == "" {
		natsURL = "nats://localhost:4222"
	}

	sub, err := pkgNats.NewSubscriber(natsURL)
	if err != nil {
		log.Fatalf("Error: failed to connect to NATS: %v", err)
	}
	defer sub.Close()

	err = sub.Subscribe("events.>", "events-tail", func(_ context.Context, event events.Event) error {
		payload, _ := json.Marshal(event.Payload())
		color.Cyan("%s %s %s", event.Timestamp().Format("15:04:05"), event.EventType(), payload)
		return nil
	})
	if err != nil {
		log.Fatalf("Error: failed to subscribe: %v", err)
	}

	color.Green("✓ tailing events.> on %s (Ctrl+C to stop)", natsURL)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
}
