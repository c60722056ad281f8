package reservation

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clinicore/clinic-api/internal/handler"
	"github.com/clinicore/clinic-api/internal/model"
	"github.com/clinicore/clinic-api/internal/service/medical"
	"github.com/clinicore/clinic-api/internal/service/scheduling"
)

type Handler struct {
	scheduling *scheduling.Service
	medical    *medical.Service
}

func NewHandler(schedulingSvc *scheduling.Service, medicalSvc *medical.Service) *Handler {
	return &Handler{scheduling: schedulingSvc, medical: medicalSvc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	reservations := r.Group("/reservations")
	{
		reservations.POST("", h.BookReservation)
		reservations.GET("", h.ListByDate)
		reservations.POST("/:id/cancel", h.CancelReservation)
		reservations.POST("/:id/records", h.AddMedicalRecord)
	}
}

func (h *Handler) BookReservation(c *gin.Context) {
	var req model.BookReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	date, err := time.Parse(model.DateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("date must be YYYY-MM-DD"))
		return
	}

	created, err := h.scheduling.BookReservation(c.Request.Context(), req.PatientID, req.DoctorID, date, req.Time)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(created))
}

func (h *Handler) ListByDate(c *gin.Context) {
	date, err := time.Parse(model.DateLayout, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("date query parameter must be YYYY-MM-DD"))
		return
	}

	reservations, err := h.scheduling.ReservationsByDate(c.Request.Context(), date)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(reservations))
}

func (h *Handler) CancelReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid reservation ID"))
		return
	}

	if err := h.scheduling.CancelReservation(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}

func (h *Handler) AddMedicalRecord(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid reservation ID"))
		return
	}

	var req model.AddMedicalRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	record, err := h.medical.AddRecord(c.Request.Context(), id, req.Diagnosis, req.Prescription)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(record))
}
