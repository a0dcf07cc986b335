package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Antonio13050/im-backoffice-api/internal/client"
	"github.com/Antonio13050/im-backoffice-api/internal/loader"
	"github.com/Antonio13050/im-backoffice-api/internal/models"
	"github.com/Antonio13050/im-backoffice-api/internal/pipeline"
)

// ProcessoHandler handles sales process operations
type ProcessoHandler struct {
	api       *client.Client
	processos *loader.Loader[[]models.Processo]
}

func NewProcessoHandler(api *client.Client, processos *loader.Loader[[]models.Processo]) *ProcessoHandler {
	return &ProcessoHandler{api: api, processos: processos}
}

func (h *ProcessoHandler) List(c *gin.Context) {
	sess, ok := sessao(c)
	if !ok {
		return
	}

	processos, err := h.processos.Load(c.Request.Context(), sess, forceRefresh(c))
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, aplicarQuery(c, pipeline.DescritorProcessos(), processos))
}

func (h *ProcessoHandler) GetByID(c *gin.Context) {
	sess, ok := sessao(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	processo, err := h.api.GetProcesso(c.Request.Context(), sess.Token, models.ID(id))
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, processo)
}

func (h *ProcessoHandler) Create(c *gin.Context) {
	sess, ok := sessao(c)
	if !ok {
		return
	}

	var req models.CreateProcessoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	processo, err := h.api.CreateProcesso(c.Request.Context(), sess.Token, &req)
	if err != nil {
		respondErr(c, err)
		return
	}

	h.processos.Invalidate(c.Request.Context())

	c.JSON(http.StatusCreated, processo)
}

func (h *ProcessoHandler) Update(c *gin.Context) {
	sess, ok := sessao(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.UpdateProcessoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	processo, err := h.api.UpdateProcesso(c.Request.Context(), sess.Token, models.ID(id), &req)
	if err != nil {
		respondErr(c, err)
		return
	}

	h.processos.Invalidate(c.Request.Context())

	c.JSON(http.StatusOK, processo)
}

func (h *ProcessoHandler) Delete(c *gin.Context) {
	sess, ok := sessao(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.api.DeleteProcesso(c.Request.Context(), sess.Token, models.ID(id)); err != nil {
		respondErr(c, err)
		return
	}

	h.processos.Invalidate(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{"message": "processo removido com sucesso"})
}
