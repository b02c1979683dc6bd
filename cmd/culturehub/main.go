package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"culturehub/internal/broker"
	"culturehub/internal/checkout"
	"culturehub/internal/config"
	"culturehub/internal/http-server/handlers/admin/createArtist"
	"culturehub/internal/http-server/handlers/admin/deleteEvent"
	"culturehub/internal/http-server/handlers/admin/getStats"
	"culturehub/internal/http-server/handlers/admin/listEvents"
	"culturehub/internal/http-server/handlers/admin/moderateEvent"
	"culturehub/internal/http-server/handlers/artists/getArtist"
	"culturehub/internal/http-server/handlers/artists/listArtists"
	"culturehub/internal/http-server/handlers/auth/demoLogin"
	"culturehub/internal/http-server/handlers/auth/getMe"
	"culturehub/internal/http-server/handlers/auth/login"
	"culturehub/internal/http-server/handlers/auth/register"
	"culturehub/internal/http-server/handlers/checkout/confirmPayment"
	"culturehub/internal/http-server/handlers/checkout/getCheckout"
	"culturehub/internal/http-server/handlers/checkout/selectTickets"
	"culturehub/internal/http-server/handlers/checkout/setAttendee"
	"culturehub/internal/http-server/handlers/checkout/startCheckout"
	"culturehub/internal/http-server/handlers/checkout/startPayment"
	"culturehub/internal/http-server/handlers/checkout/stepBack"
	"culturehub/internal/http-server/handlers/culture/createContent"
	"culturehub/internal/http-server/handlers/culture/getContent"
	"culturehub/internal/http-server/handlers/culture/listContent"
	"culturehub/internal/http-server/handlers/event/getAllEvents"
	"culturehub/internal/http-server/handlers/event/getEventInfo"
	"culturehub/internal/http-server/handlers/favorites/addFavorite"
	"culturehub/internal/http-server/handlers/favorites/listFavorites"
	"culturehub/internal/http-server/handlers/favorites/removeFavorite"
	"culturehub/internal/http-server/handlers/orders/getOrder"
	"culturehub/internal/http-server/handlers/orders/listOrders"
	"culturehub/internal/http-server/handlers/payments/createIntent"
	"culturehub/internal/http-server/handlers/payments/webhook"
	"culturehub/internal/http-server/handlers/reviews/createReview"
	"culturehub/internal/http-server/handlers/reviews/listReviews"
	"culturehub/internal/http-server/handlers/wizard/deleteDraft"
	"culturehub/internal/http-server/handlers/wizard/getDraft"
	"culturehub/internal/http-server/handlers/wizard/moveStep"
	"culturehub/internal/http-server/handlers/wizard/saveDraft"
	"culturehub/internal/http-server/handlers/wizard/submitEvent"
	mwauth "culturehub/internal/http-server/middleware/auth"
	"culturehub/internal/http-server/middleware/mwlogger"
	"culturehub/internal/lib/auth"
	"culturehub/internal/lib/logger/handlers/slogpretty"
	"culturehub/internal/lib/logger/sl"
	"culturehub/internal/lib/markdown"
	"culturehub/internal/models"
	"culturehub/internal/payment/stripe"
	"culturehub/internal/storage/postgres"
	"culturehub/internal/storage/redis"
	"culturehub/internal/wizard"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting culture hub", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	cache, err := redis.New(&cfg.Redis, cfg.Wizard.DraftTTL, cfg.Checkout.SessionTTL)
	if err != nil {
		log.Error("failed to init redis", sl.Err(err))
		os.Exit(1)
	}

	var (
		notifier checkout.Notifier
		mq       *broker.Broker
	)
	if cfg.Broker.URL != "" {
		mq, err = broker.New(log, cfg.Broker.URL, cfg.Broker.Exchange, cfg.Broker.Queue)
		if err != nil {
			log.Error("failed to init broker", sl.Err(err))
			os.Exit(1)
		}
		notifier = mq
	} else {
		log.Warn("broker url is not set, order confirmations will not be published")
	}

	gateway := stripe.New(log, cfg.Stripe.SecretKey, cfg.Stripe.WebhookSecret)
	tokens := auth.NewManager(cfg.Auth.TokenSecret, cfg.Auth.TokenTTL)
	drafts := wizard.NewAutosaver(log, cache, cfg.Wizard.AutosaveInterval)
	md := markdown.New()

	flow := checkout.NewFlow(log, storage, storage, gateway, cache, notifier, checkout.Options{
		MaxTicketsPerOrder: cfg.Checkout.MaxTicketsPerOrder,
	})

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	fs := http.FileServer(http.Dir(cfg.HTTPServer.StaticDir))
	router.Handle("/static/*", http.StripPrefix("/static/", fs))

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/static/index.html", http.StatusFound)
	})

	router.Post("/auth/register", register.New(log, storage, tokens))
	router.Post("/auth/login", login.New(log, storage, tokens))
	router.Post("/auth/demo", demoLogin.New(log, cfg.Auth.DemoUser, storage, tokens))

	router.Get("/events", getAllEvents.New(log, storage))
	router.Get("/events/{id}", getEventInfo.New(log, storage))
	router.Get("/events/{id}/reviews", listReviews.New(log, storage))
	router.Get("/culture", listContent.New(log, storage))
	router.Get("/culture/{id}", getContent.New(log, storage, md))
	router.Get("/artists", listArtists.New(log, storage))
	router.Get("/artists/{id}", getArtist.New(log, storage))

	router.Post("/payments/webhook", webhook.New(log, gateway, flow))

	router.Group(func(r chi.Router) {
		r.Use(mwauth.New(log, tokens))

		r.Get("/me", getMe.New(log, storage))
		r.Get("/me/orders", listOrders.New(log, storage))
		r.Get("/me/orders/{id}", getOrder.New(log, storage))
		r.Get("/me/favorites", listFavorites.New(log, storage))
		r.Put("/me/favorites/{eventID}", addFavorite.New(log, storage))
		r.Delete("/me/favorites/{eventID}", removeFavorite.New(log, storage))

		r.Post("/events/{id}/reviews", createReview.New(log, storage))
		r.Post("/culture", createContent.New(log, storage))

		r.Post("/payments/intents", createIntent.New(log, cfg.Stripe.Currency, gateway))

		r.Route("/checkout", func(r chi.Router) {
			r.Post("/", startCheckout.New(log, flow))
			r.Get("/{id}", getCheckout.New(log, flow))
			r.Post("/{id}/tickets", selectTickets.New(log, flow))
			r.Post("/{id}/attendee", setAttendee.New(log, flow))
			r.Post("/{id}/payment", startPayment.New(log, flow))
			r.Post("/{id}/confirm", confirmPayment.New(log, flow))
			r.Post("/{id}/back", stepBack.New(log, flow))
		})

		r.Route("/wizard", func(r chi.Router) {
			r.Use(mwauth.RequireRole(models.RoleOrganizer, models.RoleAdmin))

			r.Get("/draft", getDraft.New(log, drafts))
			r.Put("/draft", saveDraft.New(log, drafts))
			r.Delete("/draft", deleteDraft.New(log, drafts))
			r.Post("/step", moveStep.New(log, drafts))
			r.Post("/submit", submitEvent.New(log, drafts, storage))
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(mwauth.RequireRole(models.RoleAdmin))

			r.Get("/events", listEvents.New(log, storage))
			r.Post("/events/{id}/moderate", moderateEvent.New(log, storage))
			r.Delete("/events/{id}", deleteEvent.New(log, storage))
			r.Get("/stats", getStats.New(log, storage))
			r.Post("/artists", createArtist.New(log, storage))
		})
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	ctx, cancel := context.WithCancel(context.Background())

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	autosaveDone := make(chan struct{})
	go func() {
		defer close(autosaveDone)
		drafts.Run(ctx)
	}()

	go func() {
		ticker := time.NewTicker(cfg.Checkout.SweepInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				released, err := storage.CancelExpiredOrders(ctx, cfg.Checkout.HoldMinutes)
				if err != nil {
					log.Error("failed to cancel expired orders", sl.Err(err))
					continue
				}
				if released > 0 {
					log.Info("expired orders cancelled", slog.Int64("released_seats", released))
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	cancel()
	<-autosaveDone

	log.Info("application stopped")

	if mq != nil {
		if err = mq.Close(); err != nil {
			log.Error("failed to close broker connection", sl.Err(err))
		}
	}

	if err = cache.Close(); err != nil {
		log.Error("failed to close redis connection", sl.Err(err))
	}

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("connections closed")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
