package main

import (
	"flag"
	"os"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/semla/internal/app"
	"github.com/shrimpsizemoose/semla/internal/importer"
)

func main() {
	var configPath = flag.String("config", "config.toml", "Path to config file")
	var filePath = flag.String("file", "", "Path to CSV file with students")
	flag.Parse()

	if *filePath == "" {
		logger.Error.Fatalf("No input file specified, use -file")
	}

	service, err := app.NewService(*configPath)
	if err != nil {
		logger.Error.Fatalf("Failed to init service: %v", err)
	}
	defer service.Close()

	if err := service.Students.ApplyMigrations(service.Config.Database.MigrationsDir); err != nil {
		logger.Error.Fatalf("Failed to apply migrations: %v", err)
	}

	f, err := os.Open(*filePath)
	if err != nil {
		logger.Error.Fatalf("Failed to open %s: %v", *filePath, err)
	}

	students, err := importer.ReadStudents(f)
	f.Close()
	if err != nil {
		logger.Error.Fatalf("Failed to parse %s: %v", *filePath, err)
	}

	if err := service.Students.BulkInsertStudents(students); err != nil {
		logger.Error.Fatalf("Failed to import students: %v", err)
	}

	logger.Info.Printf("Imported %d students from %s", len(students), *filePath)
}
