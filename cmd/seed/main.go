package main

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	"clubsite/internal/config"
	"clubsite/internal/db"
	"clubsite/internal/model"
)

// Seeds a handful of demo events and team members so a fresh deployment has
// something to render. Existing rows are matched by title/name and updated in
// place, so the script is safe to re-run.

const seedPhotoPlaceholder = "/assets/team/placeholder.jpg"

func main() {
	log.Println("Starting seed script...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()

	created, updated, err := seedEvents(ctx, gormDB, demoEvents())
	if err != nil {
		log.Fatalf("Failed to seed events: %v", err)
	}
	log.Printf("Events: %d created, %d updated", created, updated)

	created, updated, err = seedMembers(ctx, gormDB, demoMembers())
	if err != nil {
		log.Fatalf("Failed to seed team members: %v", err)
	}
	log.Printf("Team members: %d created, %d updated", created, updated)

	log.Println("Seed completed successfully!")
}

func demoEvents() []model.Event {
	now := time.Now()
	return []model.Event{
		{
			Title:            "Startup Pitch Night",
			Date:             now.AddDate(0, 1, 0),
			Description:      "Pitch your idea to a panel of founders and win incubation support.",
			Status:           model.EventStatusUpcoming,
			RegistrationLink: "https://forms.example.com/pitch-night",
		},
		{
			Title:            "Founder Fireside Chat",
			Date:             now.AddDate(0, 0, 14),
			Description:      "An evening with alumni founders on building from a college dorm.",
			Status:           model.EventStatusUpcoming,
			RegistrationLink: "https://forms.example.com/fireside",
		},
		{
			Title:       "E-Summit",
			Date:        now.AddDate(0, -3, 0),
			Description: "Our flagship two-day entrepreneurship summit.",
			Status:      model.EventStatusPast,
			Summary:     "Over 400 students attended workshops, a startup expo, and keynotes from twelve founders across fintech and climate tech.",
		},
		{
			Title:       "Ideathon 24h",
			Date:        now.AddDate(0, -6, 0),
			Description: "A 24-hour idea sprint across campus.",
			Status:      model.EventStatusPast,
			Summary:     "Thirty teams prototyped solutions for local businesses; the top three received seed grants.",
		},
	}
}

func demoMembers() []model.TeamMember {
	return []model.TeamMember{
		{Name: "Aarav Mehta", Role: "President", ImageURL: seedPhotoPlaceholder, IsFeatured: true, DisplayOrder: 1},
		{Name: "Diya Sharma", Role: "Vice President", ImageURL: seedPhotoPlaceholder, IsFeatured: true, DisplayOrder: 2},
		{Name: "Rohan Gupta", Role: "Events Lead", ImageURL: seedPhotoPlaceholder, DisplayOrder: 3},
		{Name: "Sneha Reddy", Role: "Design Lead", ImageURL: seedPhotoPlaceholder, DisplayOrder: 4},
	}
}

func seedEvents(ctx context.Context, gormDB *gorm.DB, events []model.Event) (created, updated int, err error) {
	for _, event := range events {
		var existing model.Event
		findErr := gormDB.WithContext(ctx).Where("title = ?", event.Title).First(&existing).Error
		switch {
		case findErr == gorm.ErrRecordNotFound:
			if err := gormDB.WithContext(ctx).Create(&event).Error; err != nil {
				return created, updated, err
			}
			created++
		case findErr != nil:
			return created, updated, findErr
		default:
			existing.Date = event.Date
			existing.Description = event.Description
			existing.Status = event.Status
			existing.RegistrationLink = event.RegistrationLink
			existing.Summary = event.Summary
			if err := gormDB.WithContext(ctx).Save(&existing).Error; err != nil {
				return created, updated, err
			}
			updated++
		}
	}
	return created, updated, nil
}

func seedMembers(ctx context.Context, gormDB *gorm.DB, members []model.TeamMember) (created, updated int, err error) {
	for _, member := range members {
		var existing model.TeamMember
		findErr := gormDB.WithContext(ctx).Where("name = ?", member.Name).First(&existing).Error
		switch {
		case findErr == gorm.ErrRecordNotFound:
			if err := gormDB.WithContext(ctx).Create(&member).Error; err != nil {
				return created, updated, err
			}
			created++
		case findErr != nil:
			return created, updated, findErr
		default:
			existing.Role = member.Role
			existing.IsFeatured = member.IsFeatured
			existing.DisplayOrder = member.DisplayOrder
			if err := gormDB.WithContext(ctx).Save(&existing).Error; err != nil {
				return created, updated, err
			}
			updated++
		}
	}
	return created, updated, nil
}
