package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// Team error types
var (
	ErrTeamNotFound = errors.New("team not found")
)

// TeamRow is the raw team record; team_members stays serialized at this layer
// and is decoded by the service
type TeamRow struct {
	TeamID       int64
	TeamName     string
	TeamMembers  []byte
	DepartmentID int64
	CreatedAt    time.Time
}

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db Querier
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db Querier) *TeamRepository {
	return &TeamRepository{
		db: db,
	}
}

// Create inserts a new team and returns the generated id
func (r *TeamRepository) Create(ctx context.Context, teamName string, membersJSON []byte, departmentID int64) (int64, error) {
	query := `
		INSERT INTO teams (team_name, team_members, department_id, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING team_id
	`

	var teamID int64
	err := r.db.QueryRow(ctx, query, teamName, membersJSON, departmentID).Scan(&teamID)
	if err != nil {
		return 0, fmt.Errorf("error creating team: %w", err)
	}

	return teamID, nil
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (*TeamRow, error) {
	query := `
		SELECT team_id, team_name, team_members, department_id, created_at
		FROM teams
		WHERE team_id = $1
	`

	var row TeamRow
	err := r.db.QueryRow(ctx, query, teamID).Scan(
		&row.TeamID,
		&row.TeamName,
		&row.TeamMembers,
		&row.DepartmentID,
		&row.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("error retrieving team: %w", err)
	}

	return &row, nil
}

// GetAll retrieves all teams
func (r *TeamRepository) GetAll(ctx context.Context) ([]*TeamRow, error) {
	query := `
		SELECT team_id, team_name, team_members, department_id, created_at
		FROM teams
		ORDER BY team_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []*TeamRow
	for rows.Next() {
		var row TeamRow
		if err := rows.Scan(
			&row.TeamID,
			&row.TeamName,
			&row.TeamMembers,
			&row.DepartmentID,
			&row.CreatedAt,
		); err != nil {
			return nil, err
		}
		teams = append(teams, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return teams, nil
}

// Update renames a team and replaces its serialized member list
func (r *TeamRepository) Update(ctx context.Context, teamID int64, teamName string, membersJSON []byte) error {
	query := `
		UPDATE teams
		SET team_name = $1, team_members = $2
		WHERE team_id = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, teamName, membersJSON, teamID)
	if err != nil {
		return fmt.Errorf("error updating team: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrTeamNotFound
	}

	return nil
}

// Delete deletes a team by ID
func (r *TeamRepository) Delete(ctx context.Context, teamID int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM teams WHERE team_id = $1`, teamID)
	if err != nil {
		return fmt.Errorf("error deleting team: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrTeamNotFound
	}

	return nil
}
