package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/emre/staffhub/internal/app/models/dto"
	"github.com/emre/staffhub/internal/app/services"
	"github.com/emre/staffhub/internal/middleware"
)

// EmployeeController handles employee CRUD including file uploads
type EmployeeController struct {
	employeeService services.EmployeeService
	cascadeService  services.CascadeService
}

// NewEmployeeController creates a new EmployeeController
func NewEmployeeController(employeeService services.EmployeeService, cascadeService services.CascadeService) *EmployeeController {
	return &EmployeeController{
		employeeService: employeeService,
		cascadeService:  cascadeService,
	}
}

// AddEmployee creates an employee from a multipart form. The resume and
// profile image files are optional and ride under "resume" and "profile_img".
func (c *EmployeeController) AddEmployee(ctx *gin.Context) {
	var req dto.AddEmployeeRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Missing required fields"))
		return
	}

	// both files are optional, a missing part is not an error
	resume, _ := ctx.FormFile("resume")
	profileImg, _ := ctx.FormFile("profile_img")

	employee, err := c.employeeService.CreateEmployee(ctx, &req, resume, profileImg)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(dto.InsertResult{InsertID: employee.ID}))
}

// EditEmployee overwrites an employee record. An empty password keeps the
// stored hash.
func (c *EmployeeController) EditEmployee(ctx *gin.Context) {
	employeeID, err := strconv.ParseInt(ctx.Param("employeeId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid employee ID"))
		return
	}

	var req dto.EditEmployeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Missing required fields"))
		return
	}

	if err := c.employeeService.UpdateEmployee(ctx, employeeID, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OKMessage("Employee updated successfully"))
}

// DeleteEmployee removes an employee and everything that references them
func (c *EmployeeController) DeleteEmployee(ctx *gin.Context) {
	employeeID, err := strconv.ParseInt(ctx.Param("employeeId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid employee ID"))
		return
	}

	if err := c.cascadeService.DeleteEmployee(ctx, employeeID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OKMessage("Employee deleted successfully"))
}

// GetEmployees lists employee summaries with the department name joined in
func (c *EmployeeController) GetEmployees(ctx *gin.Context) {
	employees, err := c.employeeService.GetAllEmployees(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(employees))
}

// GetEmployeeByID retrieves a full employee record
func (c *EmployeeController) GetEmployeeByID(ctx *gin.Context) {
	employeeID, err := strconv.ParseInt(ctx.Param("employeeId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid employee ID"))
		return
	}

	employee, err := c.employeeService.GetEmployeeByID(ctx, employeeID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(employee))
}

// GetEmployeeDetails retrieves an employee with stored file paths rewritten
// to servable URLs
func (c *EmployeeController) GetEmployeeDetails(ctx *gin.Context) {
	employeeID, err := strconv.ParseInt(ctx.Param("employeeId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid employee ID"))
		return
	}

	employee, err := c.employeeService.GetEmployeeDetails(ctx, employeeID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(employee))
}

// GetEmployeesByDepartment lists the employees of one department
func (c *EmployeeController) GetEmployeesByDepartment(ctx *gin.Context) {
	departmentID, err := strconv.ParseInt(ctx.Param("departmentId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid department ID"))
		return
	}

	employees, err := c.employeeService.GetEmployeesByDepartment(ctx, departmentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(employees))
}
