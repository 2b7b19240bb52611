package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dkueng01/team-rule-tracker/internal/config"
	"github.com/dkueng01/team-rule-tracker/internal/database"
	"github.com/dkueng01/team-rule-tracker/internal/database/models"
	"github.com/dkueng01/team-rule-tracker/internal/service"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match the demo YAML schema
type MemberData struct {
	UserID string `yaml:"user_id"`
	Name   string `yaml:"name"`
	Email  string `yaml:"email"`
	Role   string `yaml:"role"`
}

type RuleData struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Amount      string `yaml:"amount"`
}

type RuleBreakData struct {
	RuleName    string `yaml:"rule_name"`
	UserID      string `yaml:"user_id"`
	Description string `yaml:"description"`
	DaysAgo     int    `yaml:"days_ago"`
}

type PaymentData struct {
	UserID      string `yaml:"user_id"`
	Amount      string `yaml:"amount"`
	Description string `yaml:"description"`
	DaysAgo     int    `yaml:"days_ago"`
}

type ExpenseData struct {
	Amount      string `yaml:"amount"`
	Description string `yaml:"description"`
	DaysAgo     int    `yaml:"days_ago"`
}

type TeamData struct {
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
	JoinEnabled *bool           `yaml:"join_enabled,omitempty"`
	Members     []MemberData    `yaml:"members"`
	Rules       []RuleData      `yaml:"rules,omitempty"`
	RuleBreaks  []RuleBreakData `yaml:"rule_breaks,omitempty"`
	Payments    []PaymentData   `yaml:"payments,omitempty"`
	Expenses    []ExpenseData   `yaml:"expenses,omitempty"`
}

type DemoFile struct {
	Teams []TeamData `yaml:"teams"`
}

func main() {
	log.Println("🚀 Loading demo data from YAML...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	path := "scripts/data/demo.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	if err := loadDemoFile(db, path); err != nil {
		log.Fatalf("Failed to load demo data: %v", err)
	}

	log.Println("✅ Demo data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDemoFile(db *gorm.DB, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	var file DemoFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	for _, teamData := range file.Teams {
		if err := loadTeam(db, teamData); err != nil {
			return fmt.Errorf("failed to load team %s: %w", teamData.Name, err)
		}
	}
	return nil
}

func loadTeam(db *gorm.DB, data TeamData) error {
	team, created, err := findOrCreateTeam(db, data)
	if err != nil {
		return err
	}
	if !created {
		log.Printf("📋 Team %q already exists, skipping", data.Name)
		return nil
	}

	for _, m := range data.Members {
		member := &models.TeamMember{
			TeamID: team.ID,
			UserID: m.UserID,
			Name:   m.Name,
			Email:  m.Email,
			Role:   models.MemberRole(m.Role),
		}
		if member.Role == "" {
			member.Role = models.RoleMember
		}
		if err := db.Create(member).Error; err != nil {
			return fmt.Errorf("member %s: %w", m.UserID, err)
		}
	}

	ruleIDs := make(map[string]*models.Rule)
	for _, r := range data.Rules {
		amount, err := decimal.NewFromString(r.Amount)
		if err != nil {
			return fmt.Errorf("rule %s amount: %w", r.Name, err)
		}
		rule := &models.Rule{
			TeamID:      team.ID,
			Name:        r.Name,
			Description: r.Description,
			Amount:      amount,
		}
		if err := db.Create(rule).Error; err != nil {
			return fmt.Errorf("rule %s: %w", r.Name, err)
		}
		ruleIDs[r.Name] = rule
	}

	for _, b := range data.RuleBreaks {
		rule, ok := ruleIDs[b.RuleName]
		if !ok {
			return fmt.Errorf("rule break references unknown rule %q", b.RuleName)
		}
		ruleBreak := &models.RuleBreak{
			TeamID:      team.ID,
			RuleID:      rule.ID,
			UserID:      b.UserID,
			Description: b.Description,
			Date:        daysAgo(b.DaysAgo),
		}
		if err := db.Create(ruleBreak).Error; err != nil {
			return fmt.Errorf("rule break for %s: %w", b.UserID, err)
		}
	}

	for _, p := range data.Payments {
		amount, err := decimal.NewFromString(p.Amount)
		if err != nil {
			return fmt.Errorf("payment amount %q: %w", p.Amount, err)
		}
		payment := &models.Payment{
			TeamID:      team.ID,
			UserID:      p.UserID,
			Amount:      amount,
			Description: p.Description,
			Date:        daysAgo(p.DaysAgo),
		}
		if err := db.Create(payment).Error; err != nil {
			return fmt.Errorf("payment for %s: %w", p.UserID, err)
		}
	}

	for _, e := range data.Expenses {
		amount, err := decimal.NewFromString(e.Amount)
		if err != nil {
			return fmt.Errorf("expense amount %q: %w", e.Amount, err)
		}
		expense := &models.Expense{
			TeamID:      team.ID,
			Amount:      amount,
			Description: e.Description,
			Date:        daysAgo(e.DaysAgo),
		}
		if err := db.Create(expense).Error; err != nil {
			return fmt.Errorf("expense %q: %w", e.Description, err)
		}
	}

	log.Printf("📋 Team %q: %d members, %d rules, %d breaks, %d payments, %d expenses",
		data.Name, len(data.Members), len(data.Rules), len(data.RuleBreaks),
		len(data.Payments), len(data.Expenses))
	return nil
}

func findOrCreateTeam(db *gorm.DB, data TeamData) (*models.Team, bool, error) {
	var existing models.Team
	err := db.Where("name = ?", data.Name).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	code, err := service.GenerateJoinCode()
	if err != nil {
		return nil, false, err
	}

	team := &models.Team{
		Name:        data.Name,
		Description: data.Description,
		JoinCode:    code,
		JoinEnabled: data.JoinEnabled == nil || *data.JoinEnabled,
	}
	if err := db.Create(team).Error; err != nil {
		return nil, false, err
	}
	return team, true, nil
}

func daysAgo(days int) time.Time {
	return time.Now().AddDate(0, 0, -days)
}
