package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gearshare-backend/internal/domain"
)

// Seed loads the default accounts, payment plans and sample inventory.
// Seeded records keep the fixed short ids the mobile clients were built
// against; everything created at runtime gets a uuid.
func (s *Store) Seed(ctx context.Context) error {
	now := time.Now().Format(time.RFC3339)

	users := []domain.User{
		{ID: "1", Email: "admin@gmail.com", Password: "admin", Role: domain.RoleAdmin, CreatedOn: now},
		{ID: "2", Email: "shop@gmail.com", Password: "shop", Role: domain.RoleShopkeeper, CreatedOn: now},
		{ID: "3", Email: "renter@gmail.com", Password: "renter", Role: domain.RoleRenter, CreatedOn: now},
	}
	for i := range users {
		if err := s.UserRepository.Create(ctx, &users[i]); err != nil {
			return err
		}
	}

	plans := []domain.PaymentPlan{
		{ID: "1", Title: "Weekly", DurationDays: 7},
		{ID: "2", Title: "Monthly", DurationDays: 30},
	}
	for i := range plans {
		if err := s.PlanRepository.Create(ctx, &plans[i]); err != nil {
			return err
		}
	}

	inventory := []domain.Equipment{
		{
			Name:           "Federschwert",
			Description:    "Blunt steel training longsword, flexible blade",
			Categories:     []string{"Longsword"},
			PriceCents:     35000,
			PaymentPlanIDs: []string{"1", "2"},
			Images:         []string{"https://gearshare.example/img/federschwert.jpg"},
		},
		{
			Name:           "Shinai",
			Description:    "39 bamboo shinai for kendo practice",
			Categories:     []string{"Other"},
			PriceCents:     8000,
			PaymentPlanIDs: []string{"1"},
			Images:         []string{"https://gearshare.example/img/shinai.jpg"},
		},
		{
			Name:           "Buckler",
			Description:    "Round steel buckler, 30cm",
			Categories:     []string{"Shield"},
			PriceCents:     20000,
			PaymentPlanIDs: []string{"1", "2"},
			Images:         []string{"https://gearshare.example/img/buckler.jpg"},
		},
		{
			Name:           "Bogu Set",
			Description:    "Complete kendo armor set, adult size",
			Categories:     []string{"Armor"},
			PriceCents:     60000,
			PaymentPlanIDs: []string{"2"},
			Images:         []string{"https://gearshare.example/img/bogu.jpg"},
		},
	}
	for i := range inventory {
		inventory[i].ID = uuid.NewString()
		inventory[i].OwnerID = "2"
		inventory[i].Status = domain.EquipmentStatusRenting
		inventory[i].CreatedOn = now
		if err := s.EquipmentRepository.Create(ctx, &inventory[i]); err != nil {
			return err
		}
	}

	return nil
}
