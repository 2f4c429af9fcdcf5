package app

import (
	"context"

	"github.com/Keyroamos/hunt/internal/services"
	"github.com/Keyroamos/hunt/internal/utils"
)

// SeedAdmin creates the bootstrap staff account if SEED_ADMIN_EMAIL and
// SEED_ADMIN_PASSWORD are set and no account exists for that email yet.
func (a *App) SeedAdmin(ctx context.Context) error {
	if a.Config.SeedAdminEmail == "" || a.Config.SeedAdminPassword == "" {
		return nil
	}

	existing, err := a.UserRepo.GetByEmail(ctx, a.Config.SeedAdminEmail)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	user, err := a.AdminService.CreateStaffUser(ctx, services.RegisterInput{
		Email:     a.Config.SeedAdminEmail,
		Password:  a.Config.SeedAdminPassword,
		FirstName: "Admin",
		LastName:  "User",
	})
	if err != nil {
		return err
	}

	utils.Logger.Infof("Seeded staff account %s", user.Email)
	return nil
}
