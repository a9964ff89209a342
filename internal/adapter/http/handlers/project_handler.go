package handlers

import (
	"errors"
	"net/http"

	request "brickonomics/internal/adapter/http/dto/request"
	response "brickonomics/internal/adapter/http/dto/response"
	"brickonomics/internal/usecase"
	"brickonomics/pkg"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	usecase usecase.IProjectUseCase
}

func NewProjectHandler(uc usecase.IProjectUseCase) *ProjectHandler {
	return &ProjectHandler{usecase: uc}
}

// ListProjects godoc
// @Summary      List projects with their cost analysis
// @Tags         projects
// @Produce      json
// @Success      200  {array}  response.ProjectWithAnalysisResponse
// @Router       /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	items, err := h.usecase.ListProjects(c.Request.Context())
	if err != nil {
		respondError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProjectsWithAnalysis(items))
}

// CreateProject godoc
// @Summary      Create a project without a cost analysis
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        body  body      request.ProjectRequest  true  "Project"
// @Success      201   {object}  response.ProjectResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var payload request.ProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}

	p, err := h.usecase.CreateProject(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromProject(p))
}

// GetProject godoc
// @Summary      Get a project
// @Tags         projects
// @Produce      json
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  response.ProjectResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	p, err := h.usecase.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProject(p))
}

func mapProjectError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProject),
		errors.Is(err, usecase.ErrInvalidProjectID),
		errors.Is(err, usecase.ErrInvalidProjectType),
		errors.Is(err, usecase.ErrInvalidArea),
		errors.Is(err, usecase.ErrInvalidLocation):
		return validationError(err)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return notFound("Project not found")
	default:
		return internalError(err)
	}
}
