package main

import (
	"database/sql"
	"log"

	"obmenBack/internal/cache"
	"obmenBack/internal/config"
	"obmenBack/internal/handlers"
	"obmenBack/internal/repositories"
	"obmenBack/internal/services"
	"obmenBack/utils"
)

type application struct {
	errorLog        *log.Logger
	infoLog         *log.Logger
	db              *sql.DB
	tokens          *utils.Manager
	wsManager       *WebSocketManager
	userRepo        *repositories.UserRepository
	adHandler       *handlers.AdHandler
	proposalHandler *handlers.ProposalHandler
	categoryHandler *handlers.CategoryHandler
	userHandler     *handlers.UserHandler
}

func initializeApp(db *sql.DB, c *cache.Cache, cfg config.Config, errorLog, infoLog *log.Logger) *application {
	tokens, err := utils.NewManager(cfg.JWT.SigningKey)
	if err != nil {
		errorLog.Fatal(err)
	}

	wsManager := NewWebSocketManager()

	// Repositories
	adRepo := repositories.AdRepository{DB: db}
	proposalRepo := repositories.ProposalRepository{DB: db}
	categoryRepo := repositories.CategoryRepository{DB: db}
	userRepo := repositories.UserRepository{DB: db}

	// Services
	adService := &services.AdService{AdRepo: &adRepo}
	proposalService := &services.ProposalService{
		ProposalRepo: &proposalRepo,
		AdRepo:       &adRepo,
		Statuses:     cfg.Catalog.Statuses,
		Notifier:     wsManager,
	}
	catalogService := &services.CatalogService{
		CategoryRepo: &categoryRepo,
		Cache:        c,
		Conditions:   cfg.Catalog.Conditions,
		Statuses:     cfg.Catalog.Statuses,
	}
	userService := &services.UserService{UserRepo: &userRepo, Tokens: tokens}

	// Handlers
	adHandler := &handlers.AdHandler{Service: adService}
	proposalHandler := &handlers.ProposalHandler{Service: proposalService}
	categoryHandler := &handlers.CategoryHandler{Service: catalogService}
	userHandler := &handlers.UserHandler{Service: userService}

	return &application{
		errorLog:        errorLog,
		infoLog:         infoLog,
		db:              db,
		tokens:          tokens,
		wsManager:       wsManager,
		userRepo:        &userRepo,
		adHandler:       adHandler,
		proposalHandler: proposalHandler,
		categoryHandler: categoryHandler,
		userHandler:     userHandler,
	}
}

func openDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Printf("Failed to open DB: %v", err)
		return nil, err
	}
	if err = db.Ping(); err != nil {
		log.Printf("Failed to ping DB: %v", err)
		return nil, err
	}
	db.SetMaxIdleConns(35)
	log.Println("Successfully connected to database")
	return db, nil
}
