package handlers

import (
	"errors"
	"net/http"

	request "brickonomics/internal/adapter/http/dto/request"
	response "brickonomics/internal/adapter/http/dto/response"
	"brickonomics/internal/usecase"
	"brickonomics/internal/usecase/interfaces"
	"brickonomics/pkg"

	"github.com/gin-gonic/gin"
)

type LaborRateHandler struct {
	usecase usecase.ILaborRateUseCase
}

func NewLaborRateHandler(uc usecase.ILaborRateUseCase) *LaborRateHandler {
	return &LaborRateHandler{usecase: uc}
}

// ListLaborRates godoc
// @Summary      List labor rates
// @Tags         labor-rates
// @Produce      json
// @Param        category  query     string  false  "Filter by category"
// @Param        location  query     string  false  "Filter by exact location"
// @Success      200       {array}   response.LaborRateResponse
// @Router       /labor-rates [get]
func (h *LaborRateHandler) ListLaborRates(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context(), interfaces.LaborRateFilter{
		Category: c.Query("category"),
		Location: c.Query("location"),
	})
	if err != nil {
		respondError(c, mapLaborRateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLaborRates(items))
}

// GetLaborRate godoc
// @Summary      Get a labor rate
// @Tags         labor-rates
// @Produce      json
// @Param        id   path      string  true  "Labor rate ID"
// @Success      200  {object}  response.LaborRateResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /labor-rates/{id} [get]
func (h *LaborRateHandler) GetLaborRate(c *gin.Context) {
	l, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapLaborRateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLaborRate(l))
}

// CreateLaborRate godoc
// @Summary      Create a labor rate
// @Tags         labor-rates
// @Accept       json
// @Produce      json
// @Param        body  body      request.LaborRateRequest  true  "Labor rate"
// @Success      201   {object}  response.LaborRateResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /labor-rates [post]
func (h *LaborRateHandler) CreateLaborRate(c *gin.Context) {
	var payload request.LaborRateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}

	l, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, mapLaborRateError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromLaborRate(l))
}

// UpdateLaborRate godoc
// @Summary      Replace a labor rate's fields
// @Tags         labor-rates
// @Accept       json
// @Produce      json
// @Param        id    path      string                    true  "Labor rate ID"
// @Param        body  body      request.LaborRateRequest  true  "Labor rate"
// @Success      200   {object}  response.LaborRateResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /labor-rates/{id} [put]
func (h *LaborRateHandler) UpdateLaborRate(c *gin.Context) {
	var payload request.LaborRateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBindError(c, err)
		return
	}

	l, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		respondError(c, mapLaborRateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLaborRate(l))
}

// DeleteLaborRate godoc
// @Summary      Delete a labor rate
// @Tags         labor-rates
// @Param        id   path  string  true  "Labor rate ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /labor-rates/{id} [delete]
func (h *LaborRateHandler) DeleteLaborRate(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapLaborRateError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapLaborRateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLaborRate), errors.Is(err, usecase.ErrInvalidLaborRateID):
		return validationError(err)
	case errors.Is(err, usecase.ErrLaborRateNotFound):
		return notFound("Labor rate not found")
	default:
		return internalError(err)
	}
}
