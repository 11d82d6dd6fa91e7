package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/emre/staffhub/internal/app/models/dto"
	"github.com/emre/staffhub/internal/app/services"
	"github.com/emre/staffhub/internal/middleware"
)

// DepartmentController handles department CRUD and cascade deletion
type DepartmentController struct {
	departmentService services.DepartmentService
	cascadeService    services.CascadeService
}

// NewDepartmentController creates a new DepartmentController
func NewDepartmentController(departmentService services.DepartmentService, cascadeService services.CascadeService) *DepartmentController {
	return &DepartmentController{
		departmentService: departmentService,
		cascadeService:    cascadeService,
	}
}

// AddDepartment creates a department with a unique name
func (c *DepartmentController) AddDepartment(ctx *gin.Context) {
	var req dto.AddDepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Missing required fields"))
		return
	}

	department, err := c.departmentService.CreateDepartment(ctx, req.Department)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(dto.InsertResult{InsertID: department.ID}))
}

// GetDepartments lists every department
func (c *DepartmentController) GetDepartments(ctx *gin.Context) {
	departments, err := c.departmentService.GetAllDepartments(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(departments))
}

// DeleteDepartment removes a department together with its employees and
// everything those employees own
func (c *DepartmentController) DeleteDepartment(ctx *gin.Context) {
	departmentID, err := strconv.ParseInt(ctx.Param("departmentId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid department ID"))
		return
	}

	if err := c.cascadeService.DeleteDepartment(ctx, departmentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OKMessage("Department deleted successfully"))
}
