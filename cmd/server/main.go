package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/99designs/gqlgen/graphql/playground"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/messagenode/messagenode/graph"
	"github.com/messagenode/messagenode/internal/config"
	"github.com/messagenode/messagenode/internal/events"
	"github.com/messagenode/messagenode/internal/images"
	"github.com/messagenode/messagenode/internal/infra/memory"
	"github.com/messagenode/messagenode/internal/infra/mongodb"
	"github.com/messagenode/messagenode/internal/middleware"
	"github.com/messagenode/messagenode/internal/ports/crypto"
	"github.com/messagenode/messagenode/internal/ports/repository"
)

func main() {
	log := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}

func run(ctx context.Context, cfg *config.Config, log *logrus.Logger) error {
	var (
		users repository.UserStore
		posts repository.PostStore
	)
	switch cfg.StoreBackend {
	case "memory":
		log.Warn("using the in-memory store, data will not survive a restart")
		users = memory.NewUserStore()
		posts = memory.NewPostStore()
	default:
		client, err := mongodb.Connect(ctx, cfg.MongoURI)
		if err != nil {
			return err
		}
		defer func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := client.Disconnect(disconnectCtx); err != nil {
				log.WithError(err).Warn("mongodb disconnect failed")
			}
		}()
		db := client.Database(cfg.MongoDB)
		users = mongodb.NewUserStore(db)
		posts = mongodb.NewPostStore(db)
	}

	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.EventsEnabled() {
		kafkaPublisher := events.NewKafkaPublisher(cfg.KafkaBroker, cfg.KafkaTopic)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
		log.WithField("topic", cfg.KafkaTopic).Info("post events enabled")
	}

	signer := crypto.NewJWTSigner([]byte(cfg.JWTSecret))
	cleaner := images.NewCleaner(cfg.ImagesDir, log)

	resolver := graph.NewResolver(graph.Deps{
		Users:  users,
		Posts:  posts,
		Hasher: crypto.NewArgon2Hasher(nil),
		Tokens: signer,
		Images: cleaner,
		Events: publisher,
		Log:    log,
	})
	schema := graphql.MustParseSchema(graph.Schema, resolver)

	auth := middleware.NewAuth(signer, log)

	mux := http.NewServeMux()
	mux.Handle("/", playground.Handler("GraphQL", "/graphql"))
	mux.Handle("/graphql", auth.Handler(&relay.Handler{Schema: schema}))
	mux.Handle("/post-image", auth.Handler(images.NewUploadHandler(cfg.ImagesDir, cleaner, log)))
	mux.Handle("/images/", images.FileServer(cfg.ImagesDir))

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: middleware.CORS(mux),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.WithField("addr", cfg.HTTPAddr).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
