// Package handlers expõe a camada de dados escopados como endpoints
// REST consumidos pelo front do back-office.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Antonio13050/im-backoffice-api/internal/client"
	"github.com/Antonio13050/im-backoffice-api/internal/loader"
	"github.com/Antonio13050/im-backoffice-api/internal/middleware"
	"github.com/Antonio13050/im-backoffice-api/internal/pipeline"
	"github.com/Antonio13050/im-backoffice-api/internal/utils"
)

// sessao extrai a sessão do contexto; sem sessão a requisição é abortada
// (só acontece se o handler for registrado sem o AuthMiddleware).
func sessao(c *gin.Context) (utils.Sessao, bool) {
	sess, ok := middleware.SessaoFrom(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "sessão não encontrada"})
		return utils.Sessao{}, false
	}
	return sess, true
}

// respondErr traduz a taxonomia de erros da camada de dados em status
// HTTP: cancelamento é silencioso, 401 upstream vira "sessão expirada",
// o resto vira notificação com a mensagem original.
func respondErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, loader.ErrSuperseded), errors.Is(err, context.Canceled):
		// Requisição cancelada/substituída: nada a reportar ao usuário.
		// 499 segue a convenção "client closed request".
		c.AbortWithStatus(499)
	case errors.Is(err, client.ErrSessaoExpirada):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "sessão expirada"})
	case errors.Is(err, client.ErrTokenAusente):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "token de autenticação ausente"})
	default:
		var apiErr *client.APIError
		if errors.As(err, &apiErr) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "falha ao consultar dados", "details": apiErr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "falha ao consultar dados", "details": err.Error()})
	}
}

// parseID lê o id numérico do path.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id inválido"})
		return 0, false
	}
	return id, true
}

// aplicarQuery monta a consulta a partir da query string e devolve a
// página corrente. Parâmetros: busca, status, tipo, bairro, perfil,
// periodo, preco_min, preco_max, ordenar, direcao, pagina, tamanho.
func aplicarQuery[T any](c *gin.Context, desc pipeline.Descritor[T], itens []T) pipeline.Resultado[T] {
	q := pipeline.NewQuery(desc)
	q.SetItens(itens)
	q.SetBusca(c.Query("busca"))
	q.SetFiltros(pipeline.Filtros{
		Status:   c.Query("status"),
		Tipo:     c.Query("tipo"),
		Bairro:   c.Query("bairro"),
		Perfil:   c.Query("perfil"),
		Periodo:  c.Query("periodo"),
		PrecoMin: c.Query("preco_min"),
		PrecoMax: c.Query("preco_max"),
	})
	if campo := c.Query("ordenar"); campo != "" {
		q.SetOrdenacao(campo, pipeline.Direcao(c.DefaultQuery("direcao", "asc")))
	}
	if tamanho, err := strconv.Atoi(c.Query("tamanho")); err == nil {
		q.SetTamanhoPagina(tamanho)
	}
	if pagina, err := strconv.Atoi(c.DefaultQuery("pagina", "0")); err == nil {
		q.SetPagina(pagina)
	}
	return q.Resultado()
}

// forceRefresh lê o parâmetro que força ignorar o cache.
func forceRefresh(c *gin.Context) bool {
	return c.Query("refresh") == "true"
}
