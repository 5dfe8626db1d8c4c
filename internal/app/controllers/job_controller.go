package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appauth "github.com/alumniconnect/backend/internal/app/auth"
	"github.com/alumniconnect/backend/internal/app/models"
	"github.com/alumniconnect/backend/internal/app/models/dto"
	"github.com/alumniconnect/backend/internal/app/services"
	"github.com/alumniconnect/backend/internal/middleware"
)

// JobController handles job and internship postings
type JobController struct {
	jobService *services.JobService
	logger     zerolog.Logger
}

// NewJobController creates a new JobController
func NewJobController(jobService *services.JobService, logger zerolog.Logger) *JobController {
	return &JobController{
		jobService: jobService,
		logger:     logger,
	}
}

// ListJobs returns postings filtered by status and type
// @Summary List job postings
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param status query string false "Posting status (default open)"
// @Param type query string false "Posting type (job or internship)"
// @Success 200 {object} dto.JobListResponse
// @Router /jobs [get]
func (c *JobController) ListJobs(ctx *gin.Context) {
	filter := dto.JobListFilter{
		Status: models.JobStatus(ctx.Query("status")),
		Type:   models.JobType(ctx.Query("type")),
	}

	jobs, err := c.jobService.ListJobs(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.JobListResponse{
		Success: true,
		Count:   len(jobs),
		Jobs:    jobs,
	})
}

// GetJob returns a single posting
// @Summary Get a job posting
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param jobId path string true "Job id"
// @Success 200 {object} dto.JobResponse
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Router /jobs/{jobId} [get]
func (c *JobController) GetJob(ctx *gin.Context) {
	job, err := c.jobService.GetJob(ctx.Request.Context(), ctx.Param("jobId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.JobResponse{
		Success: true,
		Job:     job,
	})
}

// CreateJob creates a posting owned by the caller
// @Summary Create a job posting
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateJobRequest true "Job payload"
// @Success 201 {object} dto.JobResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /jobs [post]
func (c *JobController) CreateJob(ctx *gin.Context) {
	identity, _ := appauth.FromContext(ctx)

	var req dto.CreateJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.BindingErrorMessage(err)))
		return
	}

	job, err := c.jobService.CreateJob(ctx.Request.Context(), identity, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.JobResponse{
		Success: true,
		Job:     job,
	})
}

// UpdateJob applies a partial update to a posting
// @Summary Update a job posting
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param jobId path string true "Job id"
// @Param request body dto.UpdateJobRequest true "Fields to update"
// @Success 200 {object} dto.JobResponse
// @Failure 403 {object} dto.ErrorResponse "Not authorized to modify this job"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Router /jobs/{jobId} [patch]
func (c *JobController) UpdateJob(ctx *gin.Context) {
	identity, _ := appauth.FromContext(ctx)

	var req dto.UpdateJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.BindingErrorMessage(err)))
		return
	}

	job, err := c.jobService.UpdateJob(ctx.Request.Context(), identity, ctx.Param("jobId"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.JobResponse{
		Success: true,
		Job:     job,
	})
}

// DeleteJob removes a posting
// @Summary Delete a job posting
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param jobId path string true "Job id"
// @Success 200 {object} dto.SuccessResponse
// @Failure 403 {object} dto.ErrorResponse "Not authorized to delete this job"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Router /jobs/{jobId} [delete]
func (c *JobController) DeleteJob(ctx *gin.Context) {
	identity, _ := appauth.FromContext(ctx)

	if err := c.jobService.DeleteJob(ctx.Request.Context(), identity, ctx.Param("jobId")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
