package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hrconsole/hr-console-backend/internal/domain/team"
	"github.com/hrconsole/hr-console-backend/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const teamColumns = `id, team_name, member_ids, created_at, updated_at`

type teamRepositoryImpl struct {
	db *database.DB
}

func NewTeamRepository(db *database.DB) team.TeamRepository {
	return &teamRepositoryImpl{db: db}
}

func scanTeam(row pgx.Row) (team.Team, error) {
	var t team.Team
	err := row.Scan(&t.ID, &t.Name, &t.MemberIDs, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func memberIDs(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}

func (r *teamRepositoryImpl) Create(ctx context.Context, t team.Team) (team.Team, error) {
	q := GetQuerier(ctx, r.db)

	if t.ID == "" {
		t.ID = newID()
	}

	created, err := scanTeam(q.QueryRow(ctx, `
		INSERT INTO teams (id, team_name, member_ids)
		VALUES ($1, $2, $3)
		RETURNING `+teamColumns,
		t.ID, t.Name, memberIDs(t.MemberIDs),
	))
	if err != nil {
		if isUniqueViolation(err, "teams_team_name_key") {
			return team.Team{}, team.ErrTeamNameExists
		}
		return team.Team{}, fmt.Errorf("insert team: %w", err)
	}
	return created, nil
}

func (r *teamRepositoryImpl) GetByID(ctx context.Context, id string) (team.Team, error) {
	if !validID(id) {
		return team.Team{}, team.ErrTeamNotFound
	}
	q := GetQuerier(ctx, r.db)

	t, err := scanTeam(q.QueryRow(ctx, `SELECT `+teamColumns+` FROM teams WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return team.Team{}, team.ErrTeamNotFound
	}
	return t, err
}

func (r *teamRepositoryImpl) GetByMember(ctx context.Context, userID string) (team.Team, error) {
	q := GetQuerier(ctx, r.db)

	t, err := scanTeam(q.QueryRow(ctx,
		`SELECT `+teamColumns+` FROM teams WHERE $1 = ANY(member_ids) ORDER BY team_name LIMIT 1`, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return team.Team{}, team.ErrTeamNotFound
	}
	return t, err
}

func (r *teamRepositoryImpl) List(ctx context.Context) ([]team.Team, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+teamColumns+` FROM teams ORDER BY team_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []team.Team
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

func (r *teamRepositoryImpl) Update(ctx context.Context, t team.Team) (team.Team, error) {
	if !validID(t.ID) {
		return team.Team{}, team.ErrTeamNotFound
	}
	q := GetQuerier(ctx, r.db)

	updated, err := scanTeam(q.QueryRow(ctx, `
		UPDATE teams SET team_name = $2, member_ids = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING `+teamColumns,
		t.ID, t.Name, memberIDs(t.MemberIDs),
	))
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return team.Team{}, team.ErrTeamNotFound
		case isUniqueViolation(err, "teams_team_name_key"):
			return team.Team{}, team.ErrTeamNameExists
		}
		return team.Team{}, fmt.Errorf("update team: %w", err)
	}
	return updated, nil
}

func (r *teamRepositoryImpl) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return team.ErrTeamNotFound
	}
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return team.ErrTeamNotFound
	}
	return nil
}

func (r *teamRepositoryImpl) DeleteAll(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM teams`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
