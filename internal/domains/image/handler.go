package image

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"blogarchive-backend/internal/shared/query"
	"blogarchive-backend/internal/shared/response"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	var params query.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "invalid list parameters")
		return
	}

	res, err := h.service.List(c.Request.Context(), params)
	response.Respond(c, res, err)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid image id")
		return
	}

	res, err := h.service.GetByID(c.Request.Context(), id)
	response.Respond(c, res, err)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	res, err := h.service.Create(c.Request.Context(), req)
	response.Respond(c, res, err)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid image id")
		return
	}

	res, err := h.service.Delete(c.Request.Context(), id)
	response.Respond(c, res, err)
}
