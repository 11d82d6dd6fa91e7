package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/emre/staffhub/internal/app/models/dto"
	"github.com/emre/staffhub/internal/app/services"
	"github.com/emre/staffhub/internal/middleware"
)

// TaskController handles work allocation operations
type TaskController struct {
	taskService services.TaskService
}

// NewTaskController creates a new TaskController
func NewTaskController(taskService services.TaskService) *TaskController {
	return &TaskController{taskService: taskService}
}

// AllocateWork assigns a new task to an employee
func (c *TaskController) AllocateWork(ctx *gin.Context) {
	var req dto.AllocateWorkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Missing required fields"))
		return
	}

	task, err := c.taskService.AllocateWork(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(dto.InsertResult{InsertID: task.ID}))
}

// GetTasks lists every task with the assignee name joined in
func (c *TaskController) GetTasks(ctx *gin.Context) {
	tasks, err := c.taskService.GetAllTasks(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(tasks))
}

// GetTask retrieves a single task
func (c *TaskController) GetTask(ctx *gin.Context) {
	taskID, err := strconv.ParseInt(ctx.Param("taskId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid task ID"))
		return
	}

	task, err := c.taskService.GetTaskByID(ctx, taskID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(task))
}

// EditTask overwrites the four editable task fields; status is untouched
func (c *TaskController) EditTask(ctx *gin.Context) {
	taskID, err := strconv.ParseInt(ctx.Param("taskId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid task ID"))
		return
	}

	var req dto.EditTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Missing required fields"))
		return
	}

	if err := c.taskService.UpdateTask(ctx, taskID, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OKMessage("Task updated successfully"))
}

// UpdateTaskStatus moves a task through its lifecycle
func (c *TaskController) UpdateTaskStatus(ctx *gin.Context) {
	taskID, err := strconv.ParseInt(ctx.Param("taskId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid task ID"))
		return
	}

	var req dto.UpdateTaskStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Missing required fields"))
		return
	}

	if err := c.taskService.UpdateTaskStatus(ctx, taskID, req.Status); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OKMessage("Task status updated successfully"))
}

// DeleteTask removes a task
func (c *TaskController) DeleteTask(ctx *gin.Context) {
	taskID, err := strconv.ParseInt(ctx.Param("taskId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid task ID"))
		return
	}

	if err := c.taskService.DeleteTask(ctx, taskID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OKMessage("Task deleted successfully"))
}
