package team

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hrconsole/hr-console-backend/internal/domain/team"
	"github.com/hrconsole/hr-console-backend/internal/domain/user"
)

type TeamServiceImpl struct {
	team.TeamRepository
	user.UserRepository
}

func NewTeamService(teamRepository team.TeamRepository, userRepository user.UserRepository) team.TeamService {
	return &TeamServiceImpl{
		TeamRepository: teamRepository,
		UserRepository: userRepository,
	}
}

// Create implements team.TeamService.
func (s *TeamServiceImpl) Create(ctx context.Context, caller user.Principal, req team.CreateTeamRequest) (team.TeamResponse, error) {
	if err := caller.Authorize(user.PermissionTeamManage); err != nil {
		return team.TeamResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return team.TeamResponse{}, err
	}

	members := dedupe(req.MemberIDs)
	if _, err := s.resolveMembers(ctx, members, true); err != nil {
		return team.TeamResponse{}, err
	}

	created, err := s.TeamRepository.Create(ctx, team.Team{Name: req.Name, MemberIDs: members})
	if err != nil {
		return team.TeamResponse{}, err
	}

	slog.Info("Team created", "team_id", created.ID, "members", len(members), "by", caller.ID)
	return s.toResponse(ctx, created)
}

// List implements team.TeamService.
func (s *TeamServiceImpl) List(ctx context.Context, caller user.Principal) ([]team.TeamResponse, error) {
	if err := caller.Authorize(user.PermissionTeamManage); err != nil {
		return nil, err
	}

	teams, err := s.TeamRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	responses := make([]team.TeamResponse, 0, len(teams))
	for _, t := range teams {
		resp, err := s.toResponse(ctx, t)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// Get implements team.TeamService.
func (s *TeamServiceImpl) Get(ctx context.Context, caller user.Principal, id string) (team.TeamResponse, error) {
	if err := caller.Authorize(user.PermissionTeamManage); err != nil {
		return team.TeamResponse{}, err
	}

	t, err := s.TeamRepository.GetByID(ctx, id)
	if err != nil {
		return team.TeamResponse{}, err
	}
	return s.toResponse(ctx, t)
}

// Update implements team.TeamService.
func (s *TeamServiceImpl) Update(ctx context.Context, caller user.Principal, req team.UpdateTeamRequest) (team.TeamResponse, error) {
	if err := caller.Authorize(user.PermissionTeamManage); err != nil {
		return team.TeamResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return team.TeamResponse{}, err
	}

	existing, err := s.TeamRepository.GetByID(ctx, req.ID)
	if err != nil {
		return team.TeamResponse{}, err
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.MemberIDs != nil {
		members := dedupe(*req.MemberIDs)
		if _, err := s.resolveMembers(ctx, members, true); err != nil {
			return team.TeamResponse{}, err
		}
		existing.MemberIDs = members
	}

	updated, err := s.TeamRepository.Update(ctx, existing)
	if err != nil {
		return team.TeamResponse{}, err
	}
	return s.toResponse(ctx, updated)
}

// Delete implements team.TeamService.
func (s *TeamServiceImpl) Delete(ctx context.Context, caller user.Principal, id string) error {
	if err := caller.Authorize(user.PermissionTeamManage); err != nil {
		return err
	}
	return s.TeamRepository.Delete(ctx, id)
}

// DeleteAll implements team.TeamService.
func (s *TeamServiceImpl) DeleteAll(ctx context.Context, caller user.Principal) (int64, error) {
	if err := caller.Authorize(user.PermissionTeamManage); err != nil {
		return 0, err
	}

	deleted, err := s.TeamRepository.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete teams: %w", err)
	}
	slog.Info("Teams deleted", "count", deleted, "by", caller.ID)
	return deleted, nil
}

// MyTeam implements team.TeamService.
func (s *TeamServiceImpl) MyTeam(ctx context.Context, caller user.Principal) (team.TeamResponse, error) {
	if err := caller.Authorize(user.PermissionTeamViewOwn); err != nil {
		return team.TeamResponse{}, err
	}

	t, err := s.TeamRepository.GetByMember(ctx, caller.ID)
	if err != nil {
		if errors.Is(err, team.ErrTeamNotFound) {
			return team.TeamResponse{}, team.ErrNoTeamAssigned
		}
		return team.TeamResponse{}, err
	}
	return s.toResponse(ctx, t)
}

// resolveMembers loads the members in ids order. With strict set, an unknown
// id fails with ErrMemberNotFound; otherwise it is skipped.
func (s *TeamServiceImpl) resolveMembers(ctx context.Context, ids []string, strict bool) ([]user.Owner, error) {
	if len(ids) == 0 {
		return []user.Owner{}, nil
	}

	users, err := s.UserRepository.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve team members: %w", err)
	}
	byID := user.IndexByID(users)

	members := make([]user.Owner, 0, len(ids))
	for _, id := range ids {
		u, ok := byID[id]
		if !ok {
			if strict {
				return nil, fmt.Errorf("%w: %s", team.ErrMemberNotFound, id)
			}
			continue
		}
		members = append(members, u.Owner())
	}
	return members, nil
}

func (s *TeamServiceImpl) toResponse(ctx context.Context, t team.Team) (team.TeamResponse, error) {
	members, err := s.resolveMembers(ctx, t.MemberIDs, false)
	if err != nil {
		return team.TeamResponse{}, err
	}

	ids := t.MemberIDs
	if ids == nil {
		ids = []string{}
	}
	return team.TeamResponse{
		ID:        t.ID,
		Name:      t.Name,
		MemberIDs: ids,
		Members:   members,
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
		UpdatedAt: t.UpdatedAt.Format(time.RFC3339),
	}, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
