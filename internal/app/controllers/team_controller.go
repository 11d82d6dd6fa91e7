package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/emre/staffhub/internal/app/models/dto"
	"github.com/emre/staffhub/internal/app/services"
	"github.com/emre/staffhub/internal/middleware"
)

// TeamController handles team allocation operations
type TeamController struct {
	teamService services.TeamService
}

// NewTeamController creates a new TeamController
func NewTeamController(teamService services.TeamService) *TeamController {
	return &TeamController{teamService: teamService}
}

// CreateTeam creates a team from an ordered member list
func (c *TeamController) CreateTeam(ctx *gin.Context) {
	var req dto.CreateTeamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Missing required fields"))
		return
	}

	teamID, err := c.teamService.CreateTeam(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TeamCreatedResponse{
		Status:  true,
		Message: "Team created successfully",
		TeamID:  teamID,
	})
}

// GetTeams lists every team with members deserialized in stored order
func (c *TeamController) GetTeams(ctx *gin.Context) {
	teams, err := c.teamService.GetAllTeams(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(teams))
}

// GetTeam retrieves a single team
func (c *TeamController) GetTeam(ctx *gin.Context) {
	teamID, err := strconv.ParseInt(ctx.Param("team_id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid team ID"))
		return
	}

	team, err := c.teamService.GetTeamByID(ctx, teamID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(team))
}

// EditTeam renames a team and replaces its member list
func (c *TeamController) EditTeam(ctx *gin.Context) {
	teamID, err := strconv.ParseInt(ctx.Param("team_id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid team ID"))
		return
	}

	var req dto.EditTeamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Missing required fields"))
		return
	}

	if err := c.teamService.UpdateTeam(ctx, teamID, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OKMessage("Team updated successfully"))
}

// DeleteTeam removes a team
func (c *TeamController) DeleteTeam(ctx *gin.Context) {
	teamID, err := strconv.ParseInt(ctx.Param("team_id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid team ID"))
		return
	}

	if err := c.teamService.DeleteTeam(ctx, teamID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OKMessage("Team deleted successfully"))
}
