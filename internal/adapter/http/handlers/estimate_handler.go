package handlers

import (
	"errors"
	"net/http"

	request "paint_estimator/internal/adapter/http/dto/request"
	response "paint_estimator/internal/adapter/http/dto/response"
	"paint_estimator/internal/usecase"
	"paint_estimator/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
)

// EstimateHandler handles HTTP requests for room and project estimates.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// EstimateRoom godoc
// @Summary      Estimate one room
// @Description  Paint quantities, material cost and labor band for a single room.
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        request  body      request.RoomEstimateRequest  true  "Room geometry and options"
// @Success      200      {object}  response.EstimateResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /estimates [post]
func (h *EstimateHandler) EstimateRoom(c *gin.Context) {
	var payload request.RoomEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, pkg.NewDomainError(errInvalidEstimatePayload.Code, errInvalidEstimatePayload.Message, err, http.StatusBadRequest))
		return
	}
	if err := payload.Complete(); err != nil {
		writeError(c, mapEstimateError(err))
		return
	}

	res, err := h.usecase.EstimateRoom(c.Request.Context(), payload.ToCommand())
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromEstimationResult(res))
}

// EstimateProject godoc
// @Summary      Estimate a multi-room project
// @Description  Rooms with incomplete input are returned with status "incomplete" and a null result.
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        request  body      request.ProjectEstimateRequest  true  "Rooms"
// @Success      200      {object}  response.ProjectEstimateResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /estimates/project [post]
func (h *EstimateHandler) EstimateProject(c *gin.Context) {
	var payload request.ProjectEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, pkg.NewDomainError(errInvalidEstimatePayload.Code, errInvalidEstimatePayload.Message, err, http.StatusBadRequest))
		return
	}

	project, err := h.usecase.EstimateProject(c.Request.Context(), payload.ToCommands())
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromProjectEstimate(project))
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, request.ErrIncompleteEstimate),
		errors.Is(err, usecase.ErrInvalidRoomInput),
		errors.Is(err, usecase.ErrInvalidEstimateOptions),
		errors.Is(err, usecase.ErrEmptyProject),
		errors.Is(err, usecase.ErrTooManyRooms):
		return pkg.NewDomainError("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductCategory):
		return pkg.NewDomainError("INVALID_PRODUCT_CATEGORY", "Product cannot be used for this surface", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainError("PRODUCT_NOT_FOUND", "Product not found", err, http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// writeError renders an AppError. Internal causes are logged, not returned.
func writeError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.Code == "INTERNAL_ERROR" {
		zap.S().Named("http").Errorw("request failed", "path", c.FullPath(), "error", appErr.Err)
		c.JSON(appErr.HTTPStatus, pkg.NewDomainErrorSimple(appErr.Code, appErr.Message, appErr.HTTPStatus).ToHTTPError())
		return
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
