package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Antonio13050/im-backoffice-api/internal/client"
	"github.com/Antonio13050/im-backoffice-api/internal/loader"
	"github.com/Antonio13050/im-backoffice-api/internal/models"
	"github.com/Antonio13050/im-backoffice-api/internal/pipeline"
	"github.com/Antonio13050/im-backoffice-api/internal/utils"
)

// ImovelHandler handles property operations
type ImovelHandler struct {
	api     *client.Client
	imoveis *loader.Loader[[]models.Imovel]
}

func NewImovelHandler(api *client.Client, imoveis *loader.Loader[[]models.Imovel]) *ImovelHandler {
	return &ImovelHandler{api: api, imoveis: imoveis}
}

// List retorna a página corrente da carteira escopada, após busca,
// filtros (status, tipo, bairro, faixa de preço) e ordenação.
func (h *ImovelHandler) List(c *gin.Context) {
	sess, ok := sessao(c)
	if !ok {
		return
	}

	imoveis, err := h.imoveis.Load(c.Request.Context(), sess, forceRefresh(c))
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, aplicarQuery(c, pipeline.DescritorImoveis(), imoveis))
}

// GetByID busca um imóvel direto no upstream (sem cache).
func (h *ImovelHandler) GetByID(c *gin.Context) {
	sess, ok := sessao(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	imovel, err := h.api.GetImovel(c.Request.Context(), sess.Token, models.ID(id))
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, imovel)
}

// Create cadastra um imóvel e invalida o cache da carteira.
func (h *ImovelHandler) Create(c *gin.Context) {
	sess, ok := sessao(c)
	if !ok {
		return
	}

	var req models.CreateImovelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Status == "" {
		req.Status = models.StatusDisponivel
	}
	if req.CodigoRef == "" {
		req.CodigoRef = utils.GenerateCodigoRef()
	}

	imovel, err := h.api.CreateImovel(c.Request.Context(), sess.Token, &req)
	if err != nil {
		respondErr(c, err)
		return
	}

	h.imoveis.Invalidate(c.Request.Context())

	c.JSON(http.StatusCreated, imovel)
}

// Update atualiza um imóvel por inteiro e invalida o cache.
func (h *ImovelHandler) Update(c *gin.Context) {
	sess, ok := sessao(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.UpdateImovelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	imovel, err := h.api.UpdateImovel(c.Request.Context(), sess.Token, models.ID(id), &req)
	if err != nil {
		respondErr(c, err)
		return
	}

	h.imoveis.Invalidate(c.Request.Context())

	c.JSON(http.StatusOK, imovel)
}

// Delete remove um imóvel e invalida o cache.
func (h *ImovelHandler) Delete(c *gin.Context) {
	sess, ok := sessao(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.api.DeleteImovel(c.Request.Context(), sess.Token, models.ID(id)); err != nil {
		respondErr(c, err)
		return
	}

	h.imoveis.Invalidate(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{"message": "imóvel removido com sucesso"})
}
