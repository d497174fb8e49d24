package fixtures

import (
	"context"
	"testing"

	"github.com/hrconsole/hr-console-backend/internal/domain/user"
	"github.com/hrconsole/hr-console-backend/internal/pkg/utils"
	"github.com/hrconsole/hr-console-backend/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeeder() *Seeder {
	return &Seeder{
		Users:    memory.NewUserRepository(),
		Holidays: memory.NewHolidayRepository(),
		Teams:    memory.NewTeamRepository(),
		Events:   memory.NewEventRepository(),
	}
}

func TestEnsureSuperAdmin(t *testing.T) {
	ctx := context.Background()
	s := newSeeder()
	sa := SuperAdmin{Name: "Super Admin", Email: "root@corp.com", Password: "s3cret-pass", Phone: "0000000000"}

	created, ok, err := s.EnsureSuperAdmin(ctx, sa)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, user.RoleSuperAdmin, created.Role)
	assert.True(t, utils.CheckPassword(created.PasswordHash, "s3cret-pass"))

	again, ok, err := s.EnsureSuperAdmin(ctx, sa)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, created.ID, again.ID)

	_, _, err = s.EnsureSuperAdmin(ctx, SuperAdmin{Email: "x@corp.com"})
	assert.Error(t, err)
}

func TestSeedDemo_Idempotent(t *testing.T) {
	ctx := context.Background()
	s := newSeeder()

	first, err := s.SeedDemo(ctx, 2024)
	require.NoError(t, err)
	assert.Equal(t, SeedResult{Users: 8, Teams: 3, Holidays: 5, Events: 3}, first)

	second, err := s.SeedDemo(ctx, 2024)
	require.NoError(t, err)
	assert.Equal(t, SeedResult{}, second)

	tony, err := s.Users.GetByEmail(ctx, "tony@corp.com")
	require.NoError(t, err)
	alpha, err := s.Teams.GetByMember(ctx, tony.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alpha Squad - R&D", alpha.Name)

	events, err := s.Events.List(ctx)
	require.NoError(t, err)
	root, err := s.Users.GetByEmail(ctx, "superadmin@corp.com")
	require.NoError(t, err)
	assert.Equal(t, root.ID, events[0].CreatedBy)
}
