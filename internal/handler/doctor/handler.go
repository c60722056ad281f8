package doctor

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clinicore/clinic-api/internal/handler"
	"github.com/clinicore/clinic-api/internal/model"
	"github.com/clinicore/clinic-api/internal/service/doctor"
	"github.com/clinicore/clinic-api/internal/service/scheduling"
)

type Handler struct {
	service    *doctor.Service
	scheduling *scheduling.Service
}

func NewHandler(service *doctor.Service, schedulingSvc *scheduling.Service) *Handler {
	return &Handler{service: service, scheduling: schedulingSvc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	doctors := r.Group("/doctors")
	{
		doctors.POST("", h.RegisterDoctor)
		doctors.GET("", h.ListDoctors)
		doctors.GET("/:id", h.GetDoctor)
		doctors.GET("/:id/slots", h.AvailableSlots)
	}
}

func (h *Handler) RegisterDoctor(c *gin.Context) {
	var req model.RegisterDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	created, err := h.service.Register(c.Request.Context(), req.Name, req.Department, req.Phone)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(created))
}

func (h *Handler) GetDoctor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid doctor ID"))
		return
	}

	found, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(found))
}

// ListDoctors returns the full roster, or one department's doctors when
// the department query parameter is set.
func (h *Handler) ListDoctors(c *gin.Context) {
	if department := c.Query("department"); department != "" {
		doctors, err := h.service.ListByDepartment(c.Request.Context(), department)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, handler.NewSuccessResponse(doctors))
		return
	}

	doctors, err := h.service.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(doctors))
}

func (h *Handler) AvailableSlots(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid doctor ID"))
		return
	}

	date, err := time.Parse(model.DateLayout, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("date query parameter must be YYYY-MM-DD"))
		return
	}

	slots, err := h.scheduling.AvailableSlots(c.Request.Context(), id, date)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(slots))
}
