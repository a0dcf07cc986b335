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

// ClienteHandler handles client operations
type ClienteHandler struct {
	api      *client.Client
	clientes *loader.Loader[[]models.Cliente]
}

func NewClienteHandler(api *client.Client, clientes *loader.Loader[[]models.Cliente]) *ClienteHandler {
	return &ClienteHandler{api: api, clientes: clientes}
}

func (h *ClienteHandler) List(c *gin.Context) {
	sess, ok := sessao(c)
	if !ok {
		return
	}

	clientes, err := h.clientes.Load(c.Request.Context(), sess, forceRefresh(c))
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, aplicarQuery(c, pipeline.DescritorClientes(), clientes))
}

func (h *ClienteHandler) GetByID(c *gin.Context) {
	sess, ok := sessao(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	cliente, err := h.api.GetCliente(c.Request.Context(), sess.Token, models.ID(id))
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, cliente)
}

func (h *ClienteHandler) Create(c *gin.Context) {
	sess, ok := sessao(c)
	if !ok {
		return
	}

	var req models.CreateClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.Email = utils.NormalizeEmail(req.Email)

	cliente, err := h.api.CreateCliente(c.Request.Context(), sess.Token, &req)
	if err != nil {
		respondErr(c, err)
		return
	}

	h.clientes.Invalidate(c.Request.Context())

	c.JSON(http.StatusCreated, cliente)
}

func (h *ClienteHandler) Update(c *gin.Context) {
	sess, ok := sessao(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.UpdateClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.Email = utils.NormalizeEmail(req.Email)

	cliente, err := h.api.UpdateCliente(c.Request.Context(), sess.Token, models.ID(id), &req)
	if err != nil {
		respondErr(c, err)
		return
	}

	h.clientes.Invalidate(c.Request.Context())

	c.JSON(http.StatusOK, cliente)
}

func (h *ClienteHandler) Delete(c *gin.Context) {
	sess, ok := sessao(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.api.DeleteCliente(c.Request.Context(), sess.Token, models.ID(id)); err != nil {
		respondErr(c, err)
		return
	}

	h.clientes.Invalidate(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{"message": "cliente removido com sucesso"})
}
