package main

import (
	"context"
	"errors"
	"log/slog"
	"miniAppRelay/internal/application/relayservice"
	"miniAppRelay/internal/infrastructure/cache/redis"
	"miniAppRelay/internal/infrastructure/database/sql"
	"miniAppRelay/internal/infrastructure/database/sql/journal"
	"miniAppRelay/internal/infrastructure/kafka/producer"
	"miniAppRelay/internal/infrastructure/metrics"
	"miniAppRelay/internal/infrastructure/relayconf"
	"miniAppRelay/internal/infrastructure/relayhandlers"
	"miniAppRelay/internal/infrastructure/telegram"
	"miniAppRelay/internal/infrastructure/webhookreg"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 10 * time.Second

func main() {
	var logLevel = new(slog.LevelVar)

	logLevel.Set(slog.LevelInfo)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))

	if err := godotenv.Load(); err != nil {
		logger.Debug(".env файл не загружен, используются переменные окружения", "err", err.Error())
	}

	appConf, err := relayconf.New()
	if err != nil {
		logger.Error("ошибка при получении конфига релея", "err", err.Error())
		return
	}

	if appConf.Debug {
		logLevel.Set(slog.LevelDebug)
	}

	if appConf.BotToken == "" {
		logger.Warn("BOT_TOKEN не задан, все функции будут отвечать ошибкой конфигурации")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	relayMetrics := metrics.New(prometheus.DefaultRegisterer)

	tgClient := telegram.NewClient(&http.Client{Timeout: time.Minute}, appConf.BotToken, appConf.APIHost)
	tgClient.SetObserver(relayMetrics)

	var relayClient relayservice.TgClient = tgClient

	journalHandler, closeJournal, err := initJournal(ctx, logger, relayMetrics, &relayClient)
	if err != nil {
		logger.Error("ошибка при инициализации журнала запросов", "err", err.Error())
		return
	}

	defer closeJournal()

	relay := relayservice.New(appConf.Relay(), relayClient, logger)

	closeCache, err := initDeduper(relay, logger)
	if err != nil {
		logger.Error("ошибка при создании redis хранилища", "err", err.Error())
		return
	}

	defer closeCache()

	closeProducer, err := initForwarder(relay, logger)
	if err != nil {
		logger.Error("ошибка при создании kafka продюсера", "err", err.Error())
		return
	}

	defer closeProducer()

	if err = initWebhookRegistrar(ctx, tgClient, appConf, logger); err != nil {
		logger.Error("ошибка при запуске регистрации вебхука", "err", err.Error())
		return
	}

	r := relayhandlers.NewRouter(
		relayhandlers.NewWebhookHandler(relay, relayMetrics, logger),
		relayhandlers.NewChannelHandler(relay, relayMetrics, logger),
		relayhandlers.NewPostHandler(relay, relayMetrics, logger),
		journalHandler,
		promhttp.Handler(),
	)

	srv := &http.Server{
		Addr:         appConf.Addr,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("ошибка при остановке сервера", "err", err.Error())
		}
	}()

	logger.Info("сервер релея запущен", "addr", appConf.Addr)

	if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("сервер релея закончил работу", "err", err.Error())
		return
	}

	logger.Info("сервер релея остановлен")
}

func initJournal(ctx context.Context, logger *slog.Logger, observer relayhandlers.Observer,
	client *relayservice.TgClient) (*relayhandlers.JournalHandler, func(), error) {
	dbConf, err := sql.NewConfig()
	if err != nil {
		return nil, nil, err
	}

	if !dbConf.JournalEnabled {
		return nil, func() {}, nil
	}

	dsn := dbConf.ToDSN()

	if err = sql.RunMigrations(dsn, dbConf.MigrationsPath); err != nil {
		return nil, nil, err
	}

	pgxPool, err := sql.ConnectToDB(ctx, dsn)
	if err != nil {
		return nil, nil, err
	}

	callJournal := journal.New(pgxPool)

	*client = relayservice.NewJournaledClient(*client, callJournal, logger)

	logger.Info("журнал запросов к Bot API включен")

	if dbConf.ReadToken == "" {
		logger.Warn("JOURNAL_READ_TOKEN не задан, чтение журнала по http отключено")
		return nil, pgxPool.Close, nil
	}

	return relayhandlers.NewJournalHandler(callJournal, dbConf.ReadToken, observer, logger), pgxPool.Close, nil
}

func initDeduper(relay *relayservice.Relay, logger *slog.Logger) (func(), error) {
	redisConf, err := redis.NewConfig()
	if err != nil {
		return nil, err
	}

	if redisConf.RedisAddr == "" {
		return func() {}, nil
	}

	store, err := redis.NewStore(redisConf)
	if err != nil {
		return nil, err
	}

	relay.SetDeduper(store)
	logger.Info("дедупликация апдейтов через redis включена", "ttl", redisConf.UpdateTTL.String())

	return func() {
		if err := store.Close(); err != nil {
			logger.Error("ошибка при закрытии redis клиента", "err", err.Error())
		}
	}, nil
}

func initForwarder(relay *relayservice.Relay, logger *slog.Logger) (func(), error) {
	conf, err := producer.NewConfig()
	if err != nil {
		return nil, err
	}

	if !conf.Enabled() {
		return func() {}, nil
	}

	updatesProducer := producer.New(conf)

	relay.SetForwarder(updatesProducer)
	logger.Info("пересылка апдейтов в kafka включена", "topic", conf.Topic)

	return func() {
		if err := updatesProducer.Close(); err != nil {
			logger.Error("ошибка при закрытии продюсера", "err", err.Error())
		}
	}, nil
}

func initWebhookRegistrar(ctx context.Context, tg webhookreg.WebhookClient, appConf *relayconf.Config, logger *slog.Logger) error {
	conf, err := webhookreg.NewConfig()
	if err != nil {
		return err
	}

	if !conf.Enabled() {
		return nil
	}

	if appConf.BotToken == "" {
		logger.Warn("регистрация вебхука пропущена, BOT_TOKEN не задан")
		return nil
	}

	s, err := webhookreg.New(tg, conf.WebhookURL, logger).Schedule(ctx, conf.CheckInterval)
	if err != nil {
		return err
	}

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	logger.Info("планировщик с проверкой вебхука, успешно запущен", "interval", conf.CheckInterval.String())

	return nil
}
