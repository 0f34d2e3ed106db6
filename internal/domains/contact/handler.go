package contact

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

func (h *Handler) CreateMessage(c *gin.Context) {
	var req CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	res, err := h.service.CreateMessage(c.Request.Context(), req)
	response.Respond(c, res, err)
}

func (h *Handler) ListMessages(c *gin.Context) {
	var params query.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "invalid list parameters")
		return
	}

	res, err := h.service.ListMessages(c.Request.Context(), params)
	response.Respond(c, res, err)
}

func (h *Handler) MarkRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid message id")
		return
	}

	res, err := h.service.MarkRead(c.Request.Context(), id)
	response.Respond(c, res, err)
}

func (h *Handler) DeleteMessage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid message id")
		return
	}

	res, err := h.service.DeleteMessage(c.Request.Context(), id)
	response.Respond(c, res, err)
}

func (h *Handler) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	res, err := h.service.Subscribe(c.Request.Context(), req)
	response.Respond(c, res, err)
}

func (h *Handler) ListSubscribers(c *gin.Context) {
	var params query.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "invalid list parameters")
		return
	}

	res, err := h.service.ListSubscribers(c.Request.Context(), params)
	response.Respond(c, res, err)
}

func (h *Handler) Unsubscribe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid subscriber id")
		return
	}

	res, err := h.service.Unsubscribe(c.Request.Context(), id)
	response.Respond(c, res, err)
}
