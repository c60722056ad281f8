package patient

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clinicore/clinic-api/internal/handler"
	"github.com/clinicore/clinic-api/internal/model"
	"github.com/clinicore/clinic-api/internal/service/medical"
	"github.com/clinicore/clinic-api/internal/service/patient"
	"github.com/clinicore/clinic-api/internal/service/scheduling"
)

type Handler struct {
	service    *patient.Service
	scheduling *scheduling.Service
	medical    *medical.Service
}

func NewHandler(service *patient.Service, schedulingSvc *scheduling.Service, medicalSvc *medical.Service) *Handler {
	return &Handler{
		service:    service,
		scheduling: schedulingSvc,
		medical:    medicalSvc,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	patients := r.Group("/patients")
	{
		patients.POST("", h.RegisterPatient)
		patients.GET("", h.ListPatients)
		patients.GET("/search", h.SearchPatients)
		patients.GET("/:id", h.GetPatient)
		patients.DELETE("/:id", h.DeletePatient)

		patients.GET("/:id/reservations", h.ListReservations)
		patients.GET("/:id/records", h.MedicalHistory)
	}
}

func (h *Handler) RegisterPatient(c *gin.Context) {
	var req model.RegisterPatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	birthDate, err := time.Parse(model.DateLayout, req.BirthDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("birth_date must be YYYY-MM-DD"))
		return
	}

	created, err := h.service.Register(c.Request.Context(), req.Name, birthDate, req.Phone, model.Gender(req.Gender))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(created))
}

func (h *Handler) GetPatient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid patient ID"))
		return
	}

	found, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(found))
}

func (h *Handler) ListPatients(c *gin.Context) {
	patients, err := h.service.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(patients))
}

func (h *Handler) SearchPatients(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("name query parameter is required"))
		return
	}

	patients, err := h.service.Search(c.Request.Context(), name)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(patients))
}

// DeletePatient removes the patient and, transitively, all reservations
// and medical records that reference them.
func (h *Handler) DeletePatient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid patient ID"))
		return
	}

	if err := h.scheduling.DeletePatient(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}

func (h *Handler) ListReservations(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid patient ID"))
		return
	}

	reservations, err := h.scheduling.ReservationsByPatient(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(reservations))
}

func (h *Handler) MedicalHistory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid patient ID"))
		return
	}

	records, err := h.medical.History(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(records))
}
