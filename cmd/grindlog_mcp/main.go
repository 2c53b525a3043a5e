// Package main runs the grindlog MCP server over stdio for one user.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/ggrinberger/grindlog-sub000/internal/api"
	"github.com/ggrinberger/grindlog-sub000/internal/config"
	"github.com/ggrinberger/grindlog-sub000/internal/dashboard"
	"github.com/ggrinberger/grindlog-sub000/internal/db"
	"github.com/ggrinberger/grindlog-sub000/internal/diet"
	grindlogmcp "github.com/ggrinberger/grindlog-sub000/internal/mcp"
	"github.com/ggrinberger/grindlog-sub000/internal/workouts"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development | test]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	userID := flag.Int64("user-id", 0, "id of the user whose data the tools expose")
	flag.Parse()

	if *userID <= 0 {
		log.Fatal("--user-id must be a positive integer")
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     os.Getenv("GRINDLOG_DB_PASSWORD"),
		TracingEnabled: false,
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	dashboardHandler := dashboard.NewHandler(
		dashboard.NewRepo(dbPool),
		cfg.Compliance,
		cfg.NutritionDefaults,
		api.NewResponder(false),
	)
	service := grindlogmcp.NewUserService(
		*userID,
		dashboardHandler,
		workouts.NewRepo(dbPool),
		diet.NewRepo(dbPool),
		cfg.NutritionDefaults,
	)

	server := grindlogmcp.NewServer(service)
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}
