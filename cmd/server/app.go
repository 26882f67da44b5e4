package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/salmansheikhutk/readarabicbackend/internal/config"
	"github.com/salmansheikhutk/readarabicbackend/internal/domain/srs"
	"github.com/salmansheikhutk/readarabicbackend/internal/platform/content"
	"github.com/salmansheikhutk/readarabicbackend/internal/platform/dictionary"
	"github.com/salmansheikhutk/readarabicbackend/internal/platform/postgres"
	"github.com/salmansheikhutk/readarabicbackend/internal/service/auth"
	"github.com/salmansheikhutk/readarabicbackend/internal/service/review"
	"github.com/salmansheikhutk/readarabicbackend/internal/service/vocabulary"
	"github.com/salmansheikhutk/readarabicbackend/internal/store"
)

// application holds the resolved dependency graph of the server.
type application struct {
	config *config.Config
	db     *sql.DB
	logger *slog.Logger

	userStore         store.UserStore
	vocabularyStore   store.VocabularyStore
	subscriptionStore store.SubscriptionStore

	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	googleVerifier   auth.GoogleVerifier

	vocabularyService vocabulary.Service
	reviewService     review.Service

	contentClient    content.Client
	dictionaryClient dictionary.Client
}

// newApplication wires stores, services and clients from configuration and
// an open database connection.
func newApplication(cfg *config.Config, db *sql.DB) (*application, error) {
	logger := slog.Default()

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	userStore := postgres.NewPostgresUserStore(db, logger)
	vocabularyStore := postgres.NewPostgresVocabularyStore(db, logger)
	subscriptionStore := postgres.NewPostgresSubscriptionStore(db, logger)

	return &application{
		config:            cfg,
		db:                db,
		logger:            logger,
		userStore:         userStore,
		vocabularyStore:   vocabularyStore,
		subscriptionStore: subscriptionStore,
		jwtService:        jwtService,
		passwordVerifier:  auth.NewBcryptVerifier(cfg.Auth.BcryptCost),
		googleVerifier:    auth.NewGoogleVerifier(cfg.Auth.GoogleClientID),
		vocabularyService: vocabulary.NewService(
			db,
			vocabularyStore,
			subscriptionStore,
			cfg.Vocabulary.FreeTierLimit,
		),
		reviewService:    review.NewService(db, vocabularyStore, srs.NewDefaultService()),
		contentClient:    content.NewClient(cfg.Content),
		dictionaryClient: dictionary.NewClient(cfg.Dictionary),
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
