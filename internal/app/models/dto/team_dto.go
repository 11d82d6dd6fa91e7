package dto

// CreateTeamRequest creates a team with an ordered, non-empty member list
type CreateTeamRequest struct {
	TeamName     string  `json:"team_name" binding:"required"`
	TeamMembers  []int64 `json:"team_members" binding:"required,min=1"`
	DepartmentID int64   `json:"department_id"`
}

// EditTeamRequest renames a team and replaces its member list
type EditTeamRequest struct {
	TeamName    string  `json:"team_name" binding:"required"`
	TeamMembers []int64 `json:"team_members" binding:"required,min=1"`
}
