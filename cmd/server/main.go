package main // Entry point package

import (
	"log"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/study-event-tracker/internal/config"
	"github.com/iliyamo/study-event-tracker/internal/database"
	"github.com/iliyamo/study-event-tracker/internal/graph"
	"github.com/iliyamo/study-event-tracker/internal/handler"
	"github.com/iliyamo/study-event-tracker/internal/i18n"
	"github.com/iliyamo/study-event-tracker/internal/middleware"
	"github.com/iliyamo/study-event-tracker/internal/repository"
	"github.com/iliyamo/study-event-tracker/internal/router"
)

func main() {
	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	translator, err := i18n.New()
	if err != nil {
		log.Fatalf("i18n: %v", err)
	}

	users := repository.NewUserRepo(db)
	events := repository.NewStudyEventRepo(db)

	resolver := graph.NewRootResolver(cfg.JWTSecret, translator, users, events)
	schema := graph.MustParseSchema(resolver)

	e := echo.New()
	router.RegisterRoutes(e, handler.NewGraphQLHandler(schema), middleware.Authenticate(cfg.JWTSecret, users))

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
