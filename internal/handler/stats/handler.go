package stats

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clinicore/clinic-api/internal/handler"
	"github.com/clinicore/clinic-api/internal/model"
	"github.com/clinicore/clinic-api/internal/service/medical"
)

type Handler struct {
	medical *medical.Service
}

func NewHandler(medicalSvc *medical.Service) *Handler {
	return &Handler{medical: medicalSvc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	statistics := r.Group("/statistics")
	{
		statistics.GET("/diagnoses", h.DiagnosisStatistics)
	}
}

func (h *Handler) DiagnosisStatistics(c *gin.Context) {
	start, err := time.Parse(model.DateLayout, c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("start query parameter must be YYYY-MM-DD"))
		return
	}
	end, err := time.Parse(model.DateLayout, c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("end query parameter must be YYYY-MM-DD"))
		return
	}

	statistics, err := h.medical.DiagnosisStatistics(c.Request.Context(), start, end)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(statistics))
}
