package models

import "time"

// Team is a named, ordered set of employees owned by a department.
// Members are persisted as a jsonb array of employee ids; membership is not
// checked against the employees table.
type Team struct {
	TeamID       int64     `json:"team_id"`
	TeamName     string    `json:"team_name"`
	TeamMembers  []int64   `json:"team_members"`
	DepartmentID int64     `json:"department_id"`
	CreatedAt    time.Time `json:"created_at"`
}
