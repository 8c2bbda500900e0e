package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/idanyas/amdrates/config"
	"github.com/idanyas/amdrates/exchange"
	"github.com/idanyas/amdrates/metrics"
	"github.com/idanyas/amdrates/rates"
	"github.com/idanyas/amdrates/sources"
	"github.com/idanyas/amdrates/telegram"
)

const version = "1.4.2"

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := rootCmd().Execute(); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func rootCmd() *cobra.Command {
	var configPath string
	root := &cobra.Command{
		Use:           "amdrates",
		Short:         "Exchange-rate aggregator bot for the Armenian market",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBot(cmd.Context(), configPath)
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"path to config.toml (defaults to $BOT_CONFIG)")
	root.AddCommand(queryCmd(&configPath), sourcesCmd(), versionCmd())
	return root
}

func runBot(ctx context.Context, configPath string) error {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	token := os.Getenv("BOT_TOKEN")
	if token == "" {
		return fmt.Errorf("BOT_TOKEN is not set")
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srcClient := &http.Client{Timeout: cfg.RequestTimeout()}
	// Long polls hold the connection longer than any source fetch may take.
	tgClient := telegram.NewClient(&http.Client{Timeout: 40 * time.Second}, token)

	store := exchange.NewStore()
	facade := exchange.NewFacade(store, cfg.UpdateInterval(), version)
	reg := metrics.NewRegistry()
	collector := sources.NewCollector(srcClient, cfg, reg)

	go collector.RunRefreshLoop(ctx, store)

	bot := telegram.NewBot(tgClient, facade.HandleCommand)
	log.Info().Str("version", version).Bool("polling", cfg.Bot.Polling).
		Int("sources", cfg.EnabledCount()).Msg("starting bot")
	if cfg.Bot.Polling {
		return bot.RunPolling(ctx)
	}
	return bot.RunWebhook(ctx, cfg.Bot.Webhook, reg.Handler())
}

func queryCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "query COMMAND [ARGS...]",
		Short: "Fetch rates once and answer a single bot command",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			store := exchange.NewStore()
			collector := sources.NewCollector(&http.Client{Timeout: cfg.RequestTimeout()}, cfg, nil)
			collector.RefreshOnce(ctx, store)

			facade := exchange.NewFacade(store, cfg.UpdateInterval(), version)
			fmt.Println(facade.HandleCommand(strings.Join(args, " ")))
			return nil
		},
	}
}

func sourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "List known sources and their table markers",
		Run: func(*cobra.Command, []string) {
			for _, s := range rates.All() {
				fmt.Printf("%c %s\n", s.Prefix(), s.Key())
			}
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Run: func(*cobra.Command, []string) {
			fmt.Println(version)
		},
	}
}
