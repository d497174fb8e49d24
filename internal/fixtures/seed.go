package fixtures

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hrconsole/hr-console-backend/internal/domain/event"
	"github.com/hrconsole/hr-console-backend/internal/domain/holiday"
	"github.com/hrconsole/hr-console-backend/internal/domain/team"
	"github.com/hrconsole/hr-console-backend/internal/domain/user"
	"github.com/hrconsole/hr-console-backend/internal/pkg/utils"
)

// SuperAdmin describes the bootstrap superadmin account.
type SuperAdmin struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

// Seeder writes fixture data through the repositories. Every step skips
// records that already exist, so running it twice is harmless.
type Seeder struct {
	Users    user.UserRepository
	Holidays holiday.HolidayRepository
	Teams    team.TeamRepository
	Events   event.EventRepository
}

// SeedResult counts the records a run created.
type SeedResult struct {
	Users    int
	Teams    int
	Holidays int
	Events   int
}

// EnsureSuperAdmin creates the superadmin unless the email is already
// registered. It reports whether a record was created.
func (s *Seeder) EnsureSuperAdmin(ctx context.Context, sa SuperAdmin) (user.User, bool, error) {
	if strings.TrimSpace(sa.Email) == "" || sa.Password == "" {
		return user.User{}, false, errors.New("superadmin email and password are required")
	}

	existing, err := s.Users.GetByEmail(ctx, sa.Email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return user.User{}, false, fmt.Errorf("look up superadmin: %w", err)
	}

	hash, err := utils.HashPassword(sa.Password)
	if err != nil {
		return user.User{}, false, fmt.Errorf("failed to hash password: %w", err)
	}
	created, err := s.Users.Create(ctx, user.User{
		Name:         sa.Name,
		Email:        strings.TrimSpace(sa.Email),
		PasswordHash: hash,
		Role:         user.RoleSuperAdmin,
		Phone:        sa.Phone,
		Position:     "Super Admin",
	})
	if err != nil {
		return user.User{}, false, fmt.Errorf("create superadmin: %w", err)
	}
	return created, true, nil
}

// SeedDemo loads the demo dataset for year.
func (s *Seeder) SeedDemo(ctx context.Context, year int) (SeedResult, error) {
	var result SeedResult

	hash, err := utils.HashPassword(DemoPassword)
	if err != nil {
		return result, fmt.Errorf("failed to hash password: %w", err)
	}

	people := append(GetDefaultAdmins(), GetDefaultEmployees()...)
	idByEmail := make(map[string]string, len(people))
	for _, p := range people {
		p.PasswordHash = hash
		u, created, err := s.ensureUser(ctx, p)
		if err != nil {
			return result, err
		}
		if created {
			result.Users++
		}
		idByEmail[strings.ToLower(u.Email)] = u.ID
	}

	for _, t := range GetDefaultTeams() {
		members := make([]string, 0, len(t.MemberEmails))
		for _, email := range t.MemberEmails {
			members = append(members, idByEmail[email])
		}
		_, err := s.Teams.Create(ctx, team.Team{Name: t.Name, MemberIDs: members})
		switch {
		case errors.Is(err, team.ErrTeamNameExists):
		case err != nil:
			return result, fmt.Errorf("seed team %q: %w", t.Name, err)
		default:
			result.Teams++
		}
	}

	for _, h := range GetDefaultHolidays(year) {
		_, err := s.Holidays.Create(ctx, h)
		switch {
		case errors.Is(err, holiday.ErrDuplicateDate):
		case err != nil:
			return result, fmt.Errorf("seed holiday %q: %w", h.Name, err)
		default:
			result.Holidays++
		}
	}

	existing, err := s.Events.List(ctx)
	if err != nil {
		return result, fmt.Errorf("list events: %w", err)
	}
	seen := make(map[string]bool, len(existing))
	for _, e := range existing {
		seen[eventKey(e)] = true
	}
	for _, e := range GetDefaultEvents(year) {
		if seen[eventKey(e)] {
			continue
		}
		e.CreatedBy = idByEmail[e.CreatedBy]
		if _, err := s.Events.Create(ctx, e); err != nil {
			return result, fmt.Errorf("seed event %q: %w", e.Title, err)
		}
		result.Events++
	}

	slog.Info("Demo data seeded",
		"users", result.Users,
		"teams", result.Teams,
		"holidays", result.Holidays,
		"events", result.Events,
	)
	return result, nil
}

func (s *Seeder) ensureUser(ctx context.Context, u user.User) (user.User, bool, error) {
	existing, err := s.Users.GetByEmail(ctx, u.Email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return user.User{}, false, fmt.Errorf("look up %s: %w", u.Email, err)
	}
	created, err := s.Users.Create(ctx, u)
	if err != nil {
		return user.User{}, false, fmt.Errorf("seed user %s: %w", u.Email, err)
	}
	return created, true, nil
}

func eventKey(e event.Event) string {
	return e.Title + "|" + e.Date.Format("2006-01-02")
}
