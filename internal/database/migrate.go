package database

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"brandsap_careers/internal/config"
	"brandsap_careers/internal/logger"
	"brandsap_careers/internal/models"
	"brandsap_careers/internal/repositories"
)

var gormDB *gorm.DB

// ConnectGorm opens the GORM connection using the configured DSN.
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()
	dsn := cfg.Database.DSN

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate creates the schema for all models. The uuid extension comes
// first because the id columns default to uuid_generate_v4().
func AutoMigrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return fmt.Errorf("failed to create uuid extension: %w", err)
	}

	return db.AutoMigrate(
		&models.User{},
		&models.Job{},
		&models.Application{},
	)
}

type seedJob struct {
	Title            string
	Department       string
	Level            string
	Type             string
	Location         string
	Description      string
	Responsibilities []string
	Requirements     []string
}

var seedJobs = []seedJob{
	{
		Title:       "Marketing Analyst",
		Department:  "Growth",
		Level:       "Mid",
		Type:        "Full-time",
		Location:    "Remote / India",
		Description: "As a Marketing Analyst at Brandsap, you will turn campaign and customer data into clear insights that drive growth. You'll track acquisition performance, measure funnel conversion, and support experimentation across channels. You will work closely with growth, content, and product teams to improve ROI, increase qualified leads, and identify what's working (and what isn't).",
		Responsibilities: []string{
			"Track CAC, ROAS, conversion rate, and retention across acquisition channels",
			"Build weekly and monthly performance dashboards and reporting",
			"Analyze campaigns (Google/Meta/email) and recommend optimizations",
			"Support A/B test analysis and experimentation reporting",
			"Maintain clean tracking setup (UTMs, events, goal funnels) and data QA",
		},
		Requirements: []string{
			"2+ years in marketing analytics, growth analytics, or performance analysis",
			"Strong Excel/Sheets and solid SQL fundamentals",
			"Familiarity with Google Analytics, Ads platforms, and attribution basics",
			"Ability to explain insights clearly to non-technical stakeholders",
		},
	},
	{
		Title:       "Developer Analyst",
		Department:  "Engineering",
		Level:       "Entry / Mid",
		Type:        "Full-time",
		Location:    "Remote",
		Description: "As a Developer Analyst at Brandsap, you'll support engineering and product teams by analyzing product usage, web performance, and key technical metrics. You'll help monitor KPIs, identify bottlenecks, and improve user experience through data-driven insights. This role blends analytical thinking with strong technical curiosity. You'll work with APIs, event data, and dashboards to help the team ship smarter and faster.",
		Responsibilities: []string{
			"Analyze web/app usage metrics and user behavior patterns",
			"Support KPI tracking (performance, reliability, feature adoption)",
			"Work with APIs/logs to extract and validate analytics data",
			"Create dashboards and reporting to support product decisions",
			"Assist with A/B test analysis and experimentation measurement",
		},
		Requirements: []string{
			"Comfortable with JavaScript basics and strong analytical mindset",
			"Basic understanding of APIs and JSON data",
			"Experience with SQL or willingness to learn quickly",
			"Good communication and ability to document findings clearly",
		},
	},
}

// SeedJobsIfEmpty inserts the initial postings on a fresh database and does
// nothing once any job row exists.
func SeedJobsIfEmpty(db *gorm.DB) error {
	jobRepo := repositories.NewJobRepository(db)

	count, err := jobRepo.CountAll()
	if err != nil {
		return fmt.Errorf("failed to count jobs: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, s := range seedJobs {
		respJSON, err := json.Marshal(s.Responsibilities)
		if err != nil {
			return fmt.Errorf("failed to marshal responsibilities: %w", err)
		}
		reqJSON, err := json.Marshal(s.Requirements)
		if err != nil {
			return fmt.Errorf("failed to marshal requirements: %w", err)
		}

		job := &models.Job{
			Title:            s.Title,
			Department:       s.Department,
			Level:            s.Level,
			Type:             s.Type,
			Location:         s.Location,
			Description:      s.Description,
			Responsibilities: datatypes.JSON(respJSON),
			Requirements:     datatypes.JSON(reqJSON),
			IsActive:         true,
		}
		if err := jobRepo.Create(job); err != nil {
			return fmt.Errorf("failed to seed job %q: %w", s.Title, err)
		}
		logger.Info("Seeded job", "title", s.Title)
	}

	return nil
}
