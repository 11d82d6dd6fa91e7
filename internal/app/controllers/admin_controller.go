package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emre/staffhub/internal/app/models/dto"
	"github.com/emre/staffhub/internal/app/services"
	"github.com/emre/staffhub/internal/middleware"
	"github.com/emre/staffhub/internal/pkg/apperrors"
)

// tokenMaxAge matches the signed token expiry of one day
const tokenMaxAge = 24 * 60 * 60

// AdminController handles authentication, admin accounts and the dashboard
type AdminController struct {
	authService    services.AuthService
	metricsService services.MetricsService
}

// NewAdminController creates a new AdminController
func NewAdminController(authService services.AuthService, metricsService services.MetricsService) *AdminController {
	return &AdminController{
		authService:    authService,
		metricsService: metricsService,
	}
}

// AdminLogin checks the credentials and sets the session token cookie.
// The response carries loginStatus rather than the usual envelope.
func (c *AdminController) AdminLogin(ctx *gin.Context) {
	var req dto.AdminLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.LoginResponse{
			LoginStatus: false,
			Error:       "Missing required fields",
		})
		return
	}

	token, err := c.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			ctx.JSON(http.StatusOK, dto.LoginResponse{
				LoginStatus: false,
				Error:       "Wrong email or password",
			})
			return
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.SetCookie("token", token, tokenMaxAge, "/", "", false, true)
	ctx.JSON(http.StatusOK, dto.LoginResponse{LoginStatus: true})
}

// GetAdmins lists the dashboard accounts
func (c *AdminController) GetAdmins(ctx *gin.Context) {
	admins, err := c.authService.GetAllAdmins(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AdminsResponse{Status: true, Admins: admins})
}

// AddAdmin registers a new dashboard account
func (c *AdminController) AddAdmin(ctx *gin.Context) {
	var req dto.AddAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Missing required fields"))
		return
	}

	if err := c.authService.CreateAdmin(ctx, req.Email, req.Password); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OKMessage("Admin created successfully"))
}

// GetDashboardMetrics returns the landing page counters
func (c *AdminController) GetDashboardMetrics(ctx *gin.Context) {
	metrics, err := c.metricsService.GetDashboardMetrics(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MetricsResponse{Status: true, Metrics: metrics})
}
