package team

import "errors"

var (
	ErrTeamNotFound   = errors.New("team not found")
	ErrTeamNameExists = errors.New("team name already exists")
	ErrNoTeamAssigned = errors.New("no team assigned")
	ErrMemberNotFound = errors.New("team member not found")
)
