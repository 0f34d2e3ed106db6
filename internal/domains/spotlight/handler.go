package spotlight

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"blogarchive-backend/internal/shared/response"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid spotlight id")
		return
	}

	res, err := h.service.Get(c.Request.Context(), c.Param("type"), id)
	response.Respond(c, res, err)
}

type batchRequest struct {
	IDs []uuid.UUID `json:"ids"`
}

func (h *Handler) GetMany(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	res, err := h.service.GetMany(c.Request.Context(), c.Param("type"), req.IDs)
	response.Respond(c, res, err)
}

func (h *Handler) Revalidate(c *gin.Context) {
	res, err := h.service.Revalidate(c.Request.Context(), c.Param("type"))
	response.Respond(c, res, err)
}
