package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/dashpulse/internal/domain/dto"
	"github.com/guttosm/dashpulse/internal/graph"
	"github.com/guttosm/dashpulse/internal/middleware"
)

func (h *Handler) respondGraph(c *gin.Context, status int, st graph.State, err error) {
	if err != nil {
		middleware.AbortWithDomainError(c, "graph request failed", err)
		return
	}
	c.JSON(status, dto.NewGraphResponse(st))
}

// CreateGraph godoc
// @Summary      Open a graph session
// @Description  Creates a graph in the loading state; it becomes ready (or error) after the load delay. A blank type uses the default graph type preference.
// @Tags         graphs
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateGraphRequest  true  "Symbol and type"
// @Success      201   {object}  dto.GraphResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /api/v1/graphs [post]
func (h *Handler) CreateGraph(c *gin.Context) {
	var req dto.CreateGraphRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	st, err := h.svc.OpenGraph(req.Symbol, req.Type)
	h.respondGraph(c, http.StatusCreated, st, err)
}

// GetGraph godoc
// @Summary      Get graph state
// @Tags         graphs
// @Produce      json
// @Param        id   path      string  true  "Graph id"
// @Success      200  {object}  dto.GraphResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/graphs/{id} [get]
func (h *Handler) GetGraph(c *gin.Context) {
	st, err := h.svc.Graph(c.Param("id"))
	h.respondGraph(c, http.StatusOK, st, err)
}

// CloseGraph godoc
// @Summary      Close a graph session
// @Tags         graphs
// @Param        id  path  string  true  "Graph id"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/graphs/{id} [delete]
func (h *Handler) CloseGraph(c *gin.Context) {
	if err := h.svc.CloseGraph(c.Param("id")); err != nil {
		middleware.AbortWithDomainError(c, "graph request failed", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ZoomGraph godoc
// @Summary      Zoom a graph in or out
// @Description  One step multiplies or divides the zoom by 1.2, clamped to [0.5, 5]
// @Tags         graphs
// @Accept       json
// @Produce      json
// @Param        id    path      string           true  "Graph id"
// @Param        body  body      dto.ZoomRequest  true  "in or out"
// @Success      200   {object}  dto.GraphResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/graphs/{id}/zoom [post]
func (h *Handler) ZoomGraph(c *gin.Context) {
	var req dto.ZoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "direction must be in or out", err)
		return
	}
	st, err := h.svc.ZoomGraph(c.Param("id"), req.Direction == "in")
	h.respondGraph(c, http.StatusOK, st, err)
}

// PanGraph godoc
// @Summary      Pan a graph
// @Description  Moves the offset by 50/zoom pixels: left -x, right +x, up -y, down +y
// @Tags         graphs
// @Accept       json
// @Produce      json
// @Param        id    path      string          true  "Graph id"
// @Param        body  body      dto.PanRequest  true  "Direction"
// @Success      200   {object}  dto.GraphResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/graphs/{id}/pan [post]
func (h *Handler) PanGraph(c *gin.Context) {
	var req dto.PanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "direction is required", err)
		return
	}
	st, err := h.svc.PanGraph(c.Param("id"), req.Direction)
	h.respondGraph(c, http.StatusOK, st, err)
}

// ResetGraph godoc
// @Summary      Reset zoom and pan
// @Tags         graphs
// @Produce      json
// @Param        id   path      string  true  "Graph id"
// @Success      200  {object}  dto.GraphResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/graphs/{id}/reset [post]
func (h *Handler) ResetGraph(c *gin.Context) {
	st, err := h.svc.ResetGraph(c.Param("id"))
	h.respondGraph(c, http.StatusOK, st, err)
}

// RetryGraph godoc
// @Summary      Retry a failed load
// @Description  Only a graph in the error state starts a new load
// @Tags         graphs
// @Produce      json
// @Param        id   path      string  true  "Graph id"
// @Success      200  {object}  dto.GraphResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/graphs/{id}/retry [post]
func (h *Handler) RetryGraph(c *gin.Context) {
	st, err := h.svc.RetryGraph(c.Param("id"))
	h.respondGraph(c, http.StatusOK, st, err)
}

// SetGraphView godoc
// @Summary      Change graph symbol or type
// @Description  Blank fields keep their current value; a change reloads the graph
// @Tags         graphs
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Graph id"
// @Param        body  body      dto.GraphViewRequest  true  "Symbol and/or type"
// @Success      200   {object}  dto.GraphResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/graphs/{id}/view [put]
func (h *Handler) SetGraphView(c *gin.Context) {
	var req dto.GraphViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	st, err := h.svc.SetGraphView(c.Param("id"), req.Symbol, req.Type)
	h.respondGraph(c, http.StatusOK, st, err)
}
