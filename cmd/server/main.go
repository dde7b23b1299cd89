package main

import (
	"flag"
	"fmt"
	"log"

	"gamecatalog/backend/internal/config"
	"gamecatalog/backend/internal/database"
	"gamecatalog/backend/internal/handler"
	"gamecatalog/backend/internal/repository"
	"gamecatalog/backend/internal/service"

	// Swagger imports
	_ "gamecatalog/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//go:generate swag init -d ../.. -g cmd/server/main.go -o ../../docs

// @title           Game Catalog API
// @version         1.0
// @description     CRUD API for games and their genres.
// @host            localhost:8080
// @BasePath        /api/v1
func main() {
	migrateOnly := flag.Bool("migrate-only", false, "apply pending migrations and exit")
	rollback := flag.Bool("rollback", false, "revert the most recent migration and exit")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Unable to load config: %v", err)
	}

	// Connect to the database (pending migrations are applied here)
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}

	switch {
	case *rollback:
		if err := database.RollbackLast(db); err != nil {
			log.Fatalf("Failed to roll back migration: %v", err)
		}
		log.Println("Last migration rolled back.")
		return
	case *migrateOnly:
		return
	}

	games := repository.NewGameRepository(db)
	genres := repository.NewGenreRepository(db)
	catalog := service.NewGameService(repository.NewTransactor(db), games, genres)

	router := handler.NewRouter(handler.New(catalog))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	addr := ":" + cfg.Port
	fmt.Printf("Server is running on %s\n", addr)
	fmt.Printf("Swagger UI is available at http://localhost%s/swagger/index.html\n", addr)
	log.Fatal(router.Run(addr))
}
