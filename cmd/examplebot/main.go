// cmd/examplebot/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/keshon/commandkit/internal/command"

	"github.com/bwmarrin/discordgo"
	"github.com/keshon/commandkit"
	"github.com/keshon/commandkit/convert"
	"github.com/keshon/commandkit/discord"
	"github.com/keshon/commandkit/internal/config"
	"github.com/keshon/commandkit/internal/storage"
)

func main() {
	log.Println("[INFO] Starting example bot...")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New()
	if err != nil {
		log.Fatal(err)
	}

	store, err := storage.New(cfg.StoragePath)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	errCh := make(chan error, 1)
	go func() {
		if err := run(ctx, cfg, store); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Printf("[INFO] Received signal %s, shutting down...", s)
		cancel()
	case err := <-errCh:
		if err != nil {
			log.Println("[ERR] Bot error:", err)
		}
		cancel()
	case <-ctx.Done():
	}

	log.Println("[INFO] Bot exited cleanly")
}

// run opens the Discord session and blocks until ctx is cancelled.
func run(ctx context.Context, cfg *config.Config, store *storage.Storage) error {
	dg, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentsDirectMessages | discordgo.IntentsMessageContent

	dispatcher := &discord.Dispatcher{
		Registry:   commandkit.DefaultRegistry,
		Converters: convert.Default,
		Data:       store,
		PrefixFor: func(guildID string) string {
			if p := store.Prefix(guildID); p != "" {
				return p
			}
			return cfg.Prefix
		},
	}
	dg.AddHandler(dispatcher.HandleMessage)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer dg.Close()

	<-ctx.Done()
	log.Println("[INFO] Shutdown signal received. Cleaning up...")
	return nil
}
