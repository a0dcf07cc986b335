package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Antonio13050/im-backoffice-api/internal/cache"
	"github.com/Antonio13050/im-backoffice-api/internal/client"
	"github.com/Antonio13050/im-backoffice-api/internal/config"
	"github.com/Antonio13050/im-backoffice-api/internal/loader"
	"github.com/Antonio13050/im-backoffice-api/internal/middleware"
	"github.com/Antonio13050/im-backoffice-api/internal/models"
	"github.com/Antonio13050/im-backoffice-api/internal/utils"
)

func ptrID(id models.ID) *models.ID { return &id }

// upstreamFake serve as coleções brutas como a API upstream faria.
func upstreamFake(t *testing.T) *httptest.Server {
	t.Helper()

	usuarios := []models.Usuario{
		{ID: 1, Nome: "Gustavo", Papel: models.PapelGerente},
		{ID: 2, Nome: "Carla", Papel: models.PapelCorretor, GerenteID: ptrID(1)},
		{ID: 3, Nome: "Elisa", Papel: models.PapelCorretor, GerenteID: ptrID(9)},
	}
	imoveis := []models.Imovel{
		{ID: 10, Titulo: "Casa no centro", Status: models.StatusDisponivel, Preco: 100000, CorretorID: 2, CriadoEm: time.Now()},
		{ID: 11, Titulo: "Sobrado", Status: models.StatusVendido, Preco: 300000, CorretorID: 2, CriadoEm: time.Now()},
		{ID: 12, Titulo: "Cobertura", Status: models.StatusDisponivel, Preco: 900000, CorretorID: 3, CriadoEm: time.Now()},
	}
	clientes := []models.Cliente{
		{ID: 20, Nome: "João", CorretorID: 2},
		{ID: 21, Nome: "Maria", CorretorID: 3},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/users", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(usuarios)
	})
	mux.HandleFunc("/api/imoveis", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(imoveis)
	})
	mux.HandleFunc("/api/clientes", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(clientes)
	})

	return httptest.NewServer(mux)
}

func montarRouter(t *testing.T, upstreamURL string) (*gin.Engine, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		JWT: config.JWTConfig{Secret: "segredo-de-teste", ExpirationHours: 1},
	}

	api := client.New(&config.UpstreamConfig{BaseURL: upstreamURL, TimeoutSeconds: 5})
	store := cache.NewMemoryStore()
	dashboard := NewDashboardHandler(loader.NewDashboard(store, api, 60*time.Second))

	router := gin.New()
	protected := router.Group("/api/v1")
	protected.Use(middleware.AuthMiddleware(cfg))
	protected.GET("/dashboard", dashboard.Get)
	protected.GET("/equipe", dashboard.Equipe)

	return router, cfg
}

func TestDashboardEscopadoPorGerente(t *testing.T) {
	upstream := upstreamFake(t)
	defer upstream.Close()

	router, cfg := montarRouter(t, upstream.URL)

	token, err := utils.GenerateJWT(1, models.PapelGerente, cfg)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var st models.DashboardStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &st))

	// Gerente 1 enxerga apenas a carteira da Carla (corretora 2)
	assert.Equal(t, 2, st.TotalImoveis)
	assert.Equal(t, 1, st.ImoveisDisponiveis)
	assert.Equal(t, 100000.0, st.ValorTotal)
	assert.Equal(t, 1, st.TotalClientes)
	assert.Equal(t, 2, st.TamanhoEquipe, "gerente + liderada direta")
	// 1 vendido / 2 no total = 50%
	assert.Equal(t, 50, st.TaxaConversao)
}

func TestDashboardSemTokenRetorna401(t *testing.T) {
	upstream := upstreamFake(t)
	defer upstream.Close()

	router, _ := montarRouter(t, upstream.URL)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestEquipeOrdenadaPorVinculos(t *testing.T) {
	upstream := upstreamFake(t)
	defer upstream.Close()

	router, cfg := montarRouter(t, upstream.URL)

	token, err := utils.GenerateJWT(1, models.PapelGerente, cfg)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/equipe?ordenar=vinculos&direcao=desc", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Itens      []models.Usuario `json:"itens"`
		TotalItens int              `json:"totalItens"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))

	require.Equal(t, 2, res.TotalItens)
	// Carla tem 2 imóveis na carteira, o gerente nenhum
	assert.Equal(t, models.ID(2), res.Itens[0].ID)
}

func TestSessaoExpirada(t *testing.T) {
	// Upstream responde 401: o token não vale mais lá
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer upstream.Close()

	router, cfg := montarRouter(t, upstream.URL)

	token, err := utils.GenerateJWT(1, models.PapelGerente, cfg)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "sessão expirada")
}
