package article

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

func (h *Handler) List(c *gin.Context) {
	var req ListArticlesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid list parameters")
		return
	}

	res, err := h.service.List(c.Request.Context(), req)
	response.Respond(c, res, err)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid article id")
		return
	}

	res, err := h.service.GetByID(c.Request.Context(), id)
	response.Respond(c, res, err)
}

func (h *Handler) GetBySlug(c *gin.Context) {
	res, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	response.Respond(c, res, err)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	res, err := h.service.Create(c.Request.Context(), req)
	response.Respond(c, res, err)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid article id")
		return
	}

	var req UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	res, err := h.service.Update(c.Request.Context(), id, req)
	response.Respond(c, res, err)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid article id")
		return
	}

	res, err := h.service.Delete(c.Request.Context(), id)
	response.Respond(c, res, err)
}

func (h *Handler) IncrementViews(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid article id")
		return
	}

	res, err := h.service.IncrementViews(c.Request.Context(), id)
	response.Respond(c, res, err)
}
