package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Antonio13050/im-backoffice-api/internal/client"
	"github.com/Antonio13050/im-backoffice-api/internal/loader"
	"github.com/Antonio13050/im-backoffice-api/internal/models"
	"github.com/Antonio13050/im-backoffice-api/internal/pipeline"
)

// VisitaHandler handles visit scheduling operations
type VisitaHandler struct {
	api     *client.Client
	visitas *loader.Loader[[]models.Visita]
}

func NewVisitaHandler(api *client.Client, visitas *loader.Loader[[]models.Visita]) *VisitaHandler {
	return &VisitaHandler{api: api, visitas: visitas}
}

// List aceita, além dos filtros comuns, o filtro de período
// (periodo=hoje|semana|mes) sobre a data agendada.
func (h *VisitaHandler) List(c *gin.Context) {
	sess, ok := sessao(c)
	if !ok {
		return
	}

	visitas, err := h.visitas.Load(c.Request.Context(), sess, forceRefresh(c))
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, aplicarQuery(c, pipeline.DescritorVisitas(), visitas))
}

func (h *VisitaHandler) GetByID(c *gin.Context) {
	sess, ok := sessao(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	visita, err := h.api.GetVisita(c.Request.Context(), sess.Token, models.ID(id))
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, visita)
}

func (h *VisitaHandler) Create(c *gin.Context) {
	sess, ok := sessao(c)
	if !ok {
		return
	}

	var req models.CreateVisitaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	visita, err := h.api.CreateVisita(c.Request.Context(), sess.Token, &req)
	if err != nil {
		respondErr(c, err)
		return
	}

	h.visitas.Invalidate(c.Request.Context())

	c.JSON(http.StatusCreated, visita)
}

func (h *VisitaHandler) Update(c *gin.Context) {
	sess, ok := sessao(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.UpdateVisitaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	visita, err := h.api.UpdateVisita(c.Request.Context(), sess.Token, models.ID(id), &req)
	if err != nil {
		respondErr(c, err)
		return
	}

	h.visitas.Invalidate(c.Request.Context())

	c.JSON(http.StatusOK, visita)
}

func (h *VisitaHandler) Delete(c *gin.Context) {
	sess, ok := sessao(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.api.DeleteVisita(c.Request.Context(), sess.Token, models.ID(id)); err != nil {
		respondErr(c, err)
		return
	}

	h.visitas.Invalidate(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{"message": "visita removida com sucesso"})
}
