package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Adityavardhan394/chatbot-restarunt/config"
	httpapi "github.com/Adityavardhan394/chatbot-restarunt/internal/api/http"
	"github.com/Adityavardhan394/chatbot-restarunt/internal/catalog"
	"github.com/Adityavardhan394/chatbot-restarunt/internal/intent"
	"github.com/Adityavardhan394/chatbot-restarunt/internal/order"
	"github.com/Adityavardhan394/chatbot-restarunt/internal/response"
	"github.com/Adityavardhan394/chatbot-restarunt/internal/service"
	"github.com/Adityavardhan394/chatbot-restarunt/internal/session"
	"github.com/Adityavardhan394/chatbot-restarunt/internal/storage"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).With().
		Str("service", "foodiebot").Logger()

	cfg := config.Load()

	cat := loadCatalog(cfg)

	var store order.Store = storage.NewMemoryStore()
	if cfg.RedisEnabled {
		store = storage.NewRedisStore(config.MustInitRedis(), cfg.OrderTTL)
		log.Info().Msg("using Redis order store")
	}

	var publisher order.Publisher
	if cfg.KafkaEnabled {
		publisher = storage.NewKafkaPublisher(config.NewKafkaWriter(config.OrderEventsTopic))
		log.Info().Str("topic", config.OrderEventsTopic).Msg("publishing order events to Kafka")
	}

	notifier := service.LogNotifier{}
	scheduler := order.NewScheduler()
	newEngine := func() *order.Engine {
		return order.NewEngine(store, publisher, notifier, scheduler)
	}

	sessions := session.NewManager(newEngine)
	chatSvc := service.NewChatService(
		intent.NewClassifier(),
		response.NewGenerator(cat, cfg.Location),
		sessions,
	)
	orderSvc := service.NewOrderService(store, &service.DefaultQRGenerator{BaseURL: cfg.BaseURL})

	handler := httpapi.NewHandler(chatSvc, orderSvc, sessions, cat)
	httpapi.StartServer(cfg.Addr, httpapi.NewRouter(handler))
}

// loadCatalog prefers Postgres when configured and falls back to the
// built-in seed data.
func loadCatalog(cfg config.Config) *catalog.Catalog {
	if cfg.PostgresEnabled {
		repo := storage.NewCatalogRepository(config.MustInitPostgres())
		restaurants, err := repo.LoadRestaurants()
		if err != nil {
			log.Error().Err(err).Msg("failed to load catalog from Postgres, using seed data")
			return catalog.Default()
		}
		log.Info().Int("restaurants", len(restaurants)).Msg("catalog loaded from Postgres")
		return catalog.New(restaurants)
	}
	return catalog.Default()
}
