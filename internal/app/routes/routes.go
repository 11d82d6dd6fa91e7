package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/emre/staffhub/internal/app/controllers"
	"github.com/emre/staffhub/internal/middleware"
	"github.com/emre/staffhub/internal/pkg/events"
)

// SetupRouter configures all application routes. Paths match the dashboard
// client verbatim, so they keep the flat legacy naming rather than a
// versioned REST layout.
func SetupRouter(
	router *gin.Engine,
	adminController *controllers.AdminController,
	departmentController *controllers.DepartmentController,
	employeeController *controllers.EmployeeController,
	taskController *controllers.TaskController,
	teamController *controllers.TeamController,
	reviewController *controllers.ReviewController,
	eventsHandler *events.Handler,
	authMiddleware *middleware.AuthMiddleware,
) {
	// login is the only public endpoint
	router.POST("/adminLogin", adminController.AdminLogin)

	authenticated := router.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// admin accounts and dashboard
		authenticated.GET("/admins", adminController.GetAdmins)
		authenticated.POST("/add_admin", adminController.AddAdmin)
		authenticated.GET("/dashboard_metrics", adminController.GetDashboardMetrics)

		// departments
		authenticated.POST("/add_department", departmentController.AddDepartment)
		authenticated.GET("/get_departments", departmentController.GetDepartments)
		authenticated.DELETE("/delete_department/:departmentId", departmentController.DeleteDepartment)

		// employees
		authenticated.POST("/add_employee", employeeController.AddEmployee)
		authenticated.PUT("/edit_employee/:employeeId", employeeController.EditEmployee)
		authenticated.DELETE("/delete_employee/:employeeId", employeeController.DeleteEmployee)
		authenticated.GET("/get_employees", employeeController.GetEmployees)
		authenticated.GET("/get_employee_by_id/:employeeId", employeeController.GetEmployeeByID)
		authenticated.GET("/get_employee_details/:employeeId", employeeController.GetEmployeeDetails)
		authenticated.GET("/get_employees_by_department/:departmentId", employeeController.GetEmployeesByDepartment)

		// work allocation
		authenticated.POST("/allocate_work", taskController.AllocateWork)
		authenticated.GET("/get_tasks", taskController.GetTasks)
		authenticated.GET("/get_task/:taskId", taskController.GetTask)
		authenticated.PUT("/edit_task/:taskId", taskController.EditTask)
		authenticated.PUT("/update_task_status/:taskId", taskController.UpdateTaskStatus)
		authenticated.DELETE("/delete_task/:taskId", taskController.DeleteTask)
		authenticated.GET("/task_events", eventsHandler.Subscribe)

		// teams
		authenticated.POST("/create_team", teamController.CreateTeam)
		authenticated.GET("/get_teams", teamController.GetTeams)
		authenticated.GET("/get_team/:team_id", teamController.GetTeam)
		authenticated.PUT("/edit_team/:team_id", teamController.EditTeam)
		authenticated.DELETE("/delete_team/:team_id", teamController.DeleteTeam)

		// review queues
		authenticated.GET("/leave_requests", reviewController.GetLeaveRequests)
		authenticated.PUT("/leave_requests/:id", reviewController.ReviewLeaveRequest)
		authenticated.GET("/feedback", reviewController.GetFeedback)
		authenticated.PUT("/feedback/:id", reviewController.ReviewFeedback)
		authenticated.PUT("/feedback/:id/solution", reviewController.ResolveFeedback)
	}
}
