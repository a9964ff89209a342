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

type MaterialHandler struct {
	usecase usecase.IMaterialUseCase
}

func NewMaterialHandler(uc usecase.IMaterialUseCase) *MaterialHandler {
	return &MaterialHandler{usecase: uc}
}

// ListMaterials godoc
// @Summary      List materials
// @Tags         materials
// @Produce      json
// @Param        category  query     string  false  "Filter by category"
// @Success      200       {array}   response.MaterialResponse
// @Router       /materials [get]
func (h *MaterialHandler) ListMaterials(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		respondError(c, mapMaterialError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMaterials(items))
}

// GetMaterial godoc
// @Summary      Get a material
// @Tags         materials
// @Produce      json
// @Param        id   path      string  true  "Material ID"
// @Success      200  {object}  response.MaterialResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /materials/{id} [get]
func (h *MaterialHandler) GetMaterial(c *gin.Context) {
	m, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapMaterialError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMaterial(m))
}

// CreateMaterial godoc
// @Summary      Create a material
// @Tags         materials
// @Accept       json
// @Produce      json
// @Param        body  body      request.MaterialRequest  true  "Material"
// @Success      201   {object}  response.MaterialResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /materials [post]
func (h *MaterialHandler) CreateMaterial(c *gin.Context) {
	var payload request.MaterialRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}

	m, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, mapMaterialError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromMaterial(m))
}

// UpdateMaterial godoc
// @Summary      Replace a material's fields
// @Tags         materials
// @Accept       json
// @Produce      json
// @Param        id    path      string                   true  "Material ID"
// @Param        body  body      request.MaterialRequest  true  "Material"
// @Success      200   {object}  response.MaterialResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /materials/{id} [put]
func (h *MaterialHandler) UpdateMaterial(c *gin.Context) {
	var payload request.MaterialRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}

	m, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		respondError(c, mapMaterialError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMaterial(m))
}

// DeleteMaterial godoc
// @Summary      Delete a material
// @Tags         materials
// @Param        id   path  string  true  "Material ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /materials/{id} [delete]
func (h *MaterialHandler) DeleteMaterial(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapMaterialError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapMaterialError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMaterial), errors.Is(err, usecase.ErrInvalidMaterialID):
		return validationError(err)
	case errors.Is(err, usecase.ErrMaterialNotFound):
		return notFound("Material not found")
	default:
		return internalError(err)
	}
}
