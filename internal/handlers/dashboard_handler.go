package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Antonio13050/im-backoffice-api/internal/loader"
	"github.com/Antonio13050/im-backoffice-api/internal/models"
	"github.com/Antonio13050/im-backoffice-api/internal/pipeline"
	"github.com/Antonio13050/im-backoffice-api/internal/stats"
)

// DashboardHandler serve os agregados do painel inicial e a equipe
// visível ao usuário.
type DashboardHandler struct {
	dashboard *loader.Loader[loader.DashboardData]
}

func NewDashboardHandler(dashboard *loader.Loader[loader.DashboardData]) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Get retorna o DashboardStats calculado sobre a fotografia escopada.
func (h *DashboardHandler) Get(c *gin.Context) {
	sess, ok := sessao(c)
	if !ok {
		return
	}

	data, err := h.dashboard.Load(c.Request.Context(), sess, forceRefresh(c))
	if err != nil {
		respondErr(c, err)
		return
	}

	st := stats.Compute(stats.Input{
		Imoveis:       data.Imoveis,
		Clientes:      data.Clientes,
		TamanhoEquipe: len(data.Equipe),
	})

	c.JSON(http.StatusOK, st)
}

// Equipe lista os corretores visíveis, com busca/ordenação/paginação.
// A ordenação "vinculos" classifica os corretores pela quantidade de
// imóveis na carteira de cada um.
func (h *DashboardHandler) Equipe(c *gin.Context) {
	sess, ok := sessao(c)
	if !ok {
		return
	}

	data, err := h.dashboard.Load(c.Request.Context(), sess, forceRefresh(c))
	if err != nil {
		respondErr(c, err)
		return
	}

	vinculos := make(map[models.ID]int)
	for _, im := range data.Imoveis {
		vinculos[im.CorretorID]++
	}

	q := pipeline.NewQuery(pipeline.DescritorUsuarios())
	q.SetItens(data.Equipe)
	q.SetVinculos(vinculos)
	q.SetBusca(c.Query("busca"))
	q.SetFiltros(pipeline.Filtros{Perfil: c.Query("perfil")})
	if campo := c.Query("ordenar"); campo != "" {
		q.SetOrdenacao(campo, pipeline.Direcao(c.DefaultQuery("direcao", "asc")))
	}
	if tamanho, err := strconv.Atoi(c.Query("tamanho")); err == nil {
		q.SetTamanhoPagina(tamanho)
	}
	if pagina, err := strconv.Atoi(c.DefaultQuery("pagina", "0")); err == nil {
		q.SetPagina(pagina)
	}
	c.JSON(http.StatusOK, q.Resultado())
}
