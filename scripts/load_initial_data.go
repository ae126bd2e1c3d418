package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"shoot-planner-backend/internal/config"
	"shoot-planner-backend/internal/database"
	"shoot-planner-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type BlueprintData struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	StartTime   string `yaml:"start_time"`
	EndTime     string `yaml:"end_time,omitempty"`
	Category    string `yaml:"category,omitempty"`
	Location    string `yaml:"location,omitempty"`
	Notes       string `yaml:"notes,omitempty"`
}

type TemplateData struct {
	Name        string          `yaml:"name"`
	Description string          `yaml:"description,omitempty"`
	Blueprints  []BlueprintData `yaml:"blueprints"`
}

// File structure
type TemplatesFile struct {
	Templates []TemplateData `yaml:"templates"`
}

func main() {
	log.Println("🚀 Loading schedule template catalog from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadTemplatesFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load templates from YAML files: %v", err)
	}

	log.Println("✅ Template catalog loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadTemplatesFromYAMLFiles(db *gorm.DB, dataDir string) error {
	templates, err := loadTemplates(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}

	created := 0
	for _, templateData := range templates {
		_, wasCreated, err := createTemplate(db, templateData)
		if err != nil {
			return fmt.Errorf("failed to create template %s: %w", templateData.Name, err)
		}
		if wasCreated {
			created++
		}
	}
	log.Printf("📋 Templates: %d created, %d total", created, len(templates))

	return nil
}

func loadTemplates(dataDir string) ([]TemplateData, error) {
	var allTemplates []TemplateData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "templates") {
			var file TemplatesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allTemplates = append(allTemplates, file.Templates...)
		}
		return nil
	})

	return allTemplates, err
}

func createTemplate(db *gorm.DB, templateData TemplateData) (*models.ScheduleTemplate, bool, error) {
	var template models.ScheduleTemplate
	if err := db.Where("name = ?", templateData.Name).First(&template).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			template = models.ScheduleTemplate{
				Name:        templateData.Name,
				Description: templateData.Description,
			}
			for i, bp := range templateData.Blueprints {
				category := models.ScheduleCategory(bp.Category)
				if bp.Category == "" {
					category = models.ScheduleCategoryGeneral
				}
				if !category.IsValid() {
					return nil, false, fmt.Errorf("blueprint %q has unknown category %q", bp.Title, bp.Category)
				}
				template.Blueprints = append(template.Blueprints, models.TemplateBlueprint{
					Position:    i,
					Title:       bp.Title,
					Description: bp.Description,
					StartTime:   bp.StartTime,
					EndTime:     bp.EndTime,
					Category:    category,
					Location:    bp.Location,
					Notes:       bp.Notes,
				})
			}

			if err := db.Create(&template).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create template: %w", err)
			}
			return &template, true, nil // created = true
		}
		return nil, false, fmt.Errorf("failed to query template: %w", err)
	}

	return &template, false, nil // created = false (existing)
}
