package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"disbot/internal/adapters/discord"
	"disbot/internal/adapters/generator"
	"disbot/internal/adapters/handler"
	"disbot/internal/adapters/source"
	"disbot/internal/config"
	"disbot/internal/core/domain/command"
	"disbot/internal/core/service"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func main() {
	log.Info().Msg("starting disbot...")

	viper.AddConfigPath(".")
	viper.SetConfigType("toml")

	log.Info().Msg("reading config file...")
	err := viper.ReadInConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("could not read config file")
	}

	var logLevel zerolog.Level

	switch viper.GetString("bot.log_level") {
	case "info":
		logLevel = zerolog.InfoLevel
	case "debug":
		logLevel = zerolog.DebugLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	secrets, err := config.LoadSecrets()
	if err != nil {
		log.Fatal().Err(err).Msg("could not load secrets from environment")
	}

	httpTimeout, err := time.ParseDuration(viper.GetString("discord.http_timeout"))
	if err != nil {
		log.Panic().Err(err).Msg("invalid http timeout in config")
	}

	client := &http.Client{Timeout: httpTimeout}
	api := discord.NewAPI()

	authorizer, err := service.NewAuthorizer(api)
	if err != nil {
		log.Panic().Err(err).Msg("failed initializing authorizer")
	}

	prefix := viper.GetString("bot.command_prefix")
	if prefix == "" {
		prefix = "!"
	}

	router := command.NewRouter()

	router.Register(prefix+"ping", command.NewPing(api, prefix+"ping"))
	router.Register(prefix+"help", command.NewHelp(api, router, prefix+"help"))
	router.Register(prefix+"echo", command.NewEcho(api, prefix+"echo"))
	router.Register(prefix+"roll", command.NewRoll(api, prefix+"roll"))
	router.Register(prefix+"whois", command.NewWhois(api, api, prefix+"whois"))
	router.Register(prefix+"kick", command.NewKick(api, api, api, authorizer, prefix+"kick"))
	router.Register(prefix+"ban", command.NewBan(api, api, api, authorizer, prefix+"ban"))
	router.Register(prefix+"debug", command.NewDebug(api, prefix+"debug"))

	if secrets.OpenRouterAPIKey != "" {
		orGenerator := generator.NewOpenRouter(secrets.OpenRouterAPIKey,
			viper.GetString("openrouter.system_prompt"),
			viper.GetString("openrouter.model"))

		tracker := service.NewUsageTracker(ctx, api)

		router.Register(prefix+"ask", command.NewAsk(orGenerator, api, tracker, prefix+"ask"))
		router.Register(prefix+"spent", command.NewSpent(tracker, api, prefix+"spent"))
	} else {
		log.Warn().Msg("OPENROUTER_API_KEY not set, ask and spent commands disabled")
	}

	handlerTimeout, err := time.ParseDuration(viper.GetString("handler.timeout"))
	if err != nil {
		log.Panic().Err(err).Msg("invalid timeout for handler in config")
	}

	dispatcher := handler.NewDispatcher(router, client, secrets.DiscordToken, handlerTimeout)

	console := source.NewConsole(os.Stdin, viper.GetString("discord.default_channel_id"))
	go console.Run(ctx)

	log.Info().Msg("bot listening")
	dispatcher.Run(ctx, console)
}
