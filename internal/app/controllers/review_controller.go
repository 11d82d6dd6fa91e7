package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/emre/staffhub/internal/app/models/dto"
	"github.com/emre/staffhub/internal/app/services"
	"github.com/emre/staffhub/internal/middleware"
)

// ReviewController handles the leave request and feedback review queues
type ReviewController struct {
	reviewService services.ReviewService
}

// NewReviewController creates a new ReviewController
func NewReviewController(reviewService services.ReviewService) *ReviewController {
	return &ReviewController{reviewService: reviewService}
}

// GetLeaveRequests lists every leave request
func (c *ReviewController) GetLeaveRequests(ctx *gin.Context) {
	requests, err := c.reviewService.GetAllLeaveRequests(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(requests))
}

// ReviewLeaveRequest applies an approved/rejected decision to a leave request
func (c *ReviewController) ReviewLeaveRequest(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid leave request ID"))
		return
	}

	var req dto.ReviewDecisionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Missing required fields"))
		return
	}

	if err := c.reviewService.ReviewLeaveRequest(ctx, id, req.Status); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OKMessage("Leave request updated successfully"))
}

// GetFeedback lists every feedback entry
func (c *ReviewController) GetFeedback(ctx *gin.Context) {
	feedback, err := c.reviewService.GetAllFeedback(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(feedback))
}

// ReviewFeedback applies an approved/rejected decision to a feedback entry
func (c *ReviewController) ReviewFeedback(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid feedback ID"))
		return
	}

	var req dto.ReviewDecisionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Missing required fields"))
		return
	}

	if err := c.reviewService.ReviewFeedback(ctx, id, req.Status); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OKMessage("Feedback updated successfully"))
}

// ResolveFeedback attaches the admin's written solution to a feedback entry
func (c *ReviewController) ResolveFeedback(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid feedback ID"))
		return
	}

	var req dto.FeedbackSolutionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Missing required fields"))
		return
	}

	if err := c.reviewService.ResolveFeedback(ctx, id, req.Solution); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OKMessage("Solution saved successfully"))
}
