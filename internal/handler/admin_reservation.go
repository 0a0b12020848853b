package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/petmart/petmart-api/internal/model"
	"github.com/petmart/petmart-api/internal/service"
)

// AdminReservationHandler is the admin triage surface over reservations.
type AdminReservationHandler struct {
	Reservations *service.ReservationService
}

func NewAdminReservationHandler(s *service.ReservationService) *AdminReservationHandler {
	return &AdminReservationHandler{Reservations: s}
}

// List returns every reservation, pending ones first so the triage queue
// sits at the top.
//
// GET /api/admin/reservations
func (h *AdminReservationHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	list, err := h.Reservations.ListAll(ctx)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": list})
}

type statusReq struct {
	Status string `json:"status"`
}

// SetStatus resolves a pending reservation to ACCEPTED or REJECTED.
//
// PUT /api/admin/reservations/:id/status {status}
func (h *AdminReservationHandler) SetStatus(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}
	var req statusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if _, err := model.ParseReservationStatus(req.Status); err != nil {
		return respondError(c, &model.ValidationError{Fields: map[string]string{
			"status": "status must be ACCEPTED or REJECTED",
		}})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	res, err := h.Reservations.SetStatus(ctx, id, req.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
