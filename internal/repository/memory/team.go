package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/hrconsole/hr-console-backend/internal/domain/team"
)

type teamRepository struct {
	mu    sync.RWMutex
	teams map[string]team.Team
}

func NewTeamRepository() team.TeamRepository {
	return &teamRepository{teams: make(map[string]team.Team)}
}

func cloneTeam(t team.Team) team.Team {
	t.MemberIDs = append([]string(nil), t.MemberIDs...)
	return t
}

func (r *teamRepository) nameTakenLocked(name, exceptID string) bool {
	for id, t := range r.teams {
		if id != exceptID && strings.EqualFold(t.Name, name) {
			return true
		}
	}
	return false
}

func (r *teamRepository) Create(ctx context.Context, t team.Team) (team.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.nameTakenLocked(t.Name, "") {
		return team.Team{}, team.ErrTeamNameExists
	}
	if t.ID == "" {
		t.ID = newID()
	}
	ts := now()
	t.CreatedAt, t.UpdatedAt = ts, ts
	r.teams[t.ID] = cloneTeam(t)
	return cloneTeam(t), nil
}

func (r *teamRepository) GetByID(ctx context.Context, id string) (team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.teams[id]
	if !ok {
		return team.Team{}, team.ErrTeamNotFound
	}
	return cloneTeam(t), nil
}

func (r *teamRepository) GetByMember(ctx context.Context, userID string) (team.Team, error) {
	teams, _ := r.List(ctx)
	for _, t := range teams {
		if t.HasMember(userID) {
			return t, nil
		}
	}
	return team.Team{}, team.ErrTeamNotFound
}

func (r *teamRepository) List(ctx context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]team.Team, 0, len(r.teams))
	for _, t := range r.teams {
		result = append(result, cloneTeam(t))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *teamRepository) Update(ctx context.Context, t team.Team) (team.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.teams[t.ID]
	if !ok {
		return team.Team{}, team.ErrTeamNotFound
	}
	if r.nameTakenLocked(t.Name, t.ID) {
		return team.Team{}, team.ErrTeamNameExists
	}
	t.CreatedAt = existing.CreatedAt
	t.UpdatedAt = now()
	r.teams[t.ID] = cloneTeam(t)
	return cloneTeam(t), nil
}

func (r *teamRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.teams[id]; !ok {
		return team.ErrTeamNotFound
	}
	delete(r.teams, id)
	return nil
}

func (r *teamRepository) DeleteAll(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := int64(len(r.teams))
	r.teams = make(map[string]team.Team)
	return n, nil
}
