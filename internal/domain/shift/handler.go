package shift

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/rotahq/rota/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("", auth.RequireRole("admin", "scheduler", "physician"))
	g.POST("/shifts", h.CreateShift)
	g.GET("/shifts", h.ListShifts)
	g.GET("/shifts/:id", h.GetShift)
	g.PUT("/shifts/:id", h.UpdateShift)
	g.DELETE("/shifts/:id", h.DeleteShift)
}

type shiftRequest struct {
	DoctorID uuid.UUID `json:"doctorId"`
	Start    TimeOfDay `json:"start"`
	End      TimeOfDay `json:"end"`
	Room     string    `json:"room"`
}

func (h *Handler) CreateShift(c echo.Context) error {
	var req shiftRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	sh, err := h.svc.Create(c.Request().Context(), req.DoctorID, req.Start, req.End, req.Room)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, sh)
}

func (h *Handler) GetShift(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	sh, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, sh)
}

func (h *Handler) ListShifts(c echo.Context) error {
	var doctorID *uuid.UUID
	if raw := c.QueryParam("doctorId"); raw != "" {
		did, err := uuid.Parse(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid doctorId")
		}
		doctorID = &did
	}
	items, err := h.svc.List(c.Request().Context(), doctorID)
	if err != nil {
		return httpError(err)
	}
	if items == nil {
		items = []*Shift{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) UpdateShift(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req shiftRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	sh, err := h.svc.Update(c.Request().Context(), id, req.DoctorID, req.Start, req.End, req.Room)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, sh)
}

func (h *Handler) DeleteShift(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// httpError maps each lifecycle failure variant to its status code. The
// variant set is closed, so anything unmatched is a store-level fault.
func httpError(err error) error {
	var (
		invalidSlot *InvalidTimeSlotError
		noDoctor    *DoctorNotFoundError
		noShift     *ShiftNotFoundError
		conflict    *ShiftConflictError
	)
	switch {
	case errors.As(err, &invalidSlot):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.As(err, &noDoctor):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.As(err, &noShift):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.As(err, &conflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
