package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/emre/staffhub/internal/app/models"
	"github.com/emre/staffhub/internal/app/models/dto"
	"github.com/emre/staffhub/internal/app/repositories"
	"github.com/emre/staffhub/internal/pkg/apperrors"
)

// TeamService handles team allocation operations. Member lists are stored as
// a serialized JSON array, so ordering survives the round trip; member ids
// are not checked against the employees table.
type TeamService interface {
	CreateTeam(ctx context.Context, req *dto.CreateTeamRequest) (int64, error)
	GetTeamByID(ctx context.Context, teamID int64) (*models.Team, error)
	GetAllTeams(ctx context.Context) ([]*models.Team, error)
	UpdateTeam(ctx context.Context, teamID int64, req *dto.EditTeamRequest) error
	DeleteTeam(ctx context.Context, teamID int64) error
}

// teamStore is the repository surface the service needs
type teamStore interface {
	Create(ctx context.Context, teamName string, membersJSON []byte, departmentID int64) (int64, error)
	GetByID(ctx context.Context, teamID int64) (*repositories.TeamRow, error)
	GetAll(ctx context.Context) ([]*repositories.TeamRow, error)
	Update(ctx context.Context, teamID int64, teamName string, membersJSON []byte) error
	Delete(ctx context.Context, teamID int64) error
}

type teamService struct {
	teamRepo teamStore
}

// NewTeamService creates a new team service instance
func NewTeamService(teamRepo teamStore) TeamService {
	return &teamService{
		teamRepo: teamRepo,
	}
}

// CreateTeam validates and persists a new team, returning the generated id
func (s *teamService) CreateTeam(ctx context.Context, req *dto.CreateTeamRequest) (int64, error) {
	if strings.TrimSpace(req.TeamName) == "" {
		return 0, apperrors.NewValidationError("team name cannot be empty")
	}
	if len(req.TeamMembers) == 0 {
		return 0, apperrors.NewValidationError("team must have at least one member")
	}

	membersJSON, err := json.Marshal(req.TeamMembers)
	if err != nil {
		return 0, fmt.Errorf("error serializing team members: %w", err)
	}

	teamID, err := s.teamRepo.Create(ctx, req.TeamName, membersJSON, req.DepartmentID)
	if err != nil {
		return 0, fmt.Errorf("error creating team: %w", err)
	}

	return teamID, nil
}

// decodeTeam deserializes a raw team row back into an ordered member list
func decodeTeam(row *repositories.TeamRow) (*models.Team, error) {
	var members []int64
	if len(row.TeamMembers) > 0 {
		if err := json.Unmarshal(row.TeamMembers, &members); err != nil {
			return nil, fmt.Errorf("error deserializing team members: %w", err)
		}
	}

	return &models.Team{
		TeamID:       row.TeamID,
		TeamName:     row.TeamName,
		TeamMembers:  members,
		DepartmentID: row.DepartmentID,
		CreatedAt:    row.CreatedAt,
	}, nil
}

// GetTeamByID retrieves a single team
func (s *teamService) GetTeamByID(ctx context.Context, teamID int64) (*models.Team, error) {
	if teamID <= 0 {
		return nil, apperrors.NewValidationError("invalid team ID")
	}

	row, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("error retrieving team: %w", err)
	}

	return decodeTeam(row)
}

// GetAllTeams retrieves every team with members deserialized
func (s *teamService) GetAllTeams(ctx context.Context) ([]*models.Team, error) {
	rows, err := s.teamRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving teams: %w", err)
	}

	teams := make([]*models.Team, 0, len(rows))
	for _, row := range rows {
		team, err := decodeTeam(row)
		if err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}

	return teams, nil
}

// UpdateTeam renames a team and replaces its member list
func (s *teamService) UpdateTeam(ctx context.Context, teamID int64, req *dto.EditTeamRequest) error {
	if teamID <= 0 {
		return apperrors.NewValidationError("invalid team ID")
	}
	if strings.TrimSpace(req.TeamName) == "" {
		return apperrors.NewValidationError("team name cannot be empty")
	}
	if len(req.TeamMembers) == 0 {
		return apperrors.NewValidationError("team must have at least one member")
	}

	membersJSON, err := json.Marshal(req.TeamMembers)
	if err != nil {
		return fmt.Errorf("error serializing team members: %w", err)
	}

	if err := s.teamRepo.Update(ctx, teamID, req.TeamName, membersJSON); err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("error updating team: %w", err)
	}

	return nil
}

// DeleteTeam removes a team
func (s *teamService) DeleteTeam(ctx context.Context, teamID int64) error {
	if teamID <= 0 {
		return apperrors.NewValidationError("invalid team ID")
	}

	if err := s.teamRepo.Delete(ctx, teamID); err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("error deleting team: %w", err)
	}

	return nil
}
