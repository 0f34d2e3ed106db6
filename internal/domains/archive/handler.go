package archive

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"blogarchive-backend/internal/shared/query"
	"blogarchive-backend/internal/shared/response"
)

// Handler exposes one media family over HTTP. Update loads the current row
// first and binds the body over it, so partial payloads keep existing values.
type Handler[T Resource] struct {
	service Service[T]
	fresh   func() T
	label   string
}

func NewHandler[T Resource](service Service[T], fresh func() T, label string) *Handler[T] {
	return &Handler[T]{service: service, fresh: fresh, label: label}
}

func (h *Handler[T]) List(c *gin.Context) {
	var params query.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "invalid list parameters")
		return
	}

	res, err := h.service.List(c.Request.Context(), params)
	response.Respond(c, res, err)
}

func (h *Handler[T]) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid "+h.label+" id")
		return
	}

	res, err := h.service.GetByID(c.Request.Context(), id)
	response.Respond(c, res, err)
}

func (h *Handler[T]) Create(c *gin.Context) {
	item := h.fresh()
	if err := c.ShouldBindJSON(item); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	res, err := h.service.Create(c.Request.Context(), item)
	response.Respond(c, res, err)
}

func (h *Handler[T]) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid "+h.label+" id")
		return
	}

	current, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Respond(c, current, err)
		return
	}
	if !current.Success {
		response.Respond(c, current, nil)
		return
	}

	item := current.Data
	if err := c.ShouldBindJSON(item); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	item.Base().ID = id

	res, err := h.service.Update(c.Request.Context(), item)
	response.Respond(c, res, err)
}

func (h *Handler[T]) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid "+h.label+" id")
		return
	}

	res, err := h.service.Delete(c.Request.Context(), id)
	response.Respond(c, res, err)
}

// Register mounts the public read routes and the admin write routes for one
// family under its path segment.
func (h *Handler[T]) Register(public, admin *gin.RouterGroup, segment string) {
	public.GET("/"+segment, h.List)
	public.GET("/"+segment+"/:id", h.Get)
	admin.POST("/"+segment, h.Create)
	admin.PUT("/"+segment+"/:id", h.Update)
	admin.DELETE("/"+segment+"/:id", h.Delete)
}
