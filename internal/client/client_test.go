package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Antonio13050/im-backoffice-api/internal/config"
	"github.com/Antonio13050/im-backoffice-api/internal/models"
)

func novoClienteDeTeste(handler http.Handler) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := New(&config.UpstreamConfig{BaseURL: srv.URL, TimeoutSeconds: 5})
	return c, srv
}

func TestListImoveisEnviaBearerToken(t *testing.T) {
	var recebido string
	c, srv := novoClienteDeTeste(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recebido = r.Header.Get("Authorization")
		assert.Equal(t, "/api/imoveis", r.URL.Path)
		json.NewEncoder(w).Encode([]models.Imovel{{ID: 1, Titulo: "Casa"}})
	}))
	defer srv.Close()

	imoveis, err := c.ListImoveis(context.Background(), "abc123")
	require.NoError(t, err)
	require.Len(t, imoveis, 1)
	assert.Equal(t, "Bearer abc123", recebido)
	assert.Equal(t, "Casa", imoveis[0].Titulo)
}

func TestTokenAusenteFalhaSemChamarRede(t *testing.T) {
	chamado := false
	c, srv := novoClienteDeTeste(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		chamado = true
	}))
	defer srv.Close()

	_, err := c.ListClientes(context.Background(), "")
	assert.ErrorIs(t, err, ErrTokenAusente)
	assert.False(t, chamado)
}

func TestRespostaUnauthorizedViraSessaoExpirada(t *testing.T) {
	c, srv := novoClienteDeTeste(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := c.ListProcessos(context.Background(), "expirado")
	assert.ErrorIs(t, err, ErrSessaoExpirada)
}

func TestErroUpstreamCarregaStatusEMensagem(t *testing.T) {
	c, srv := novoClienteDeTeste(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "banco indisponível"})
	}))
	defer srv.Close()

	_, err := c.ListVisitas(context.Background(), "abc")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Contains(t, apiErr.Message, "banco indisponível")
}

func TestCancelamentoPropagaContexto(t *testing.T) {
	bloqueio := make(chan struct{})
	c, srv := novoClienteDeTeste(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-bloqueio
	}))
	defer srv.Close()
	defer close(bloqueio)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ListImoveis(ctx, "abc")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestIDsComoStringSaoNormalizados(t *testing.T) {
	c, srv := novoClienteDeTeste(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Upstream antigo serializa ids como string
		w.Write([]byte(`[{"id": "42", "titulo": "Loja", "corretorId": 7}]`))
	}))
	defer srv.Close()

	imoveis, err := c.ListImoveis(context.Background(), "abc")
	require.NoError(t, err)
	require.Len(t, imoveis, 1)
	assert.Equal(t, models.ID(42), imoveis[0].ID)
	assert.Equal(t, models.ID(7), imoveis[0].CorretorID)
}

func TestCreateImovelPostaJSON(t *testing.T) {
	c, srv := novoClienteDeTeste(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req models.CreateImovelRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Imovel{ID: 99, Titulo: req.Titulo})
	}))
	defer srv.Close()

	imovel, err := c.CreateImovel(context.Background(), "abc", &models.CreateImovelRequest{
		Titulo: "Casa nova",
		Tipo:   models.TipoCasa,
		Preco:  250000,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ID(99), imovel.ID)
	assert.Equal(t, "Casa nova", imovel.Titulo)
}

func TestDeleteImovel(t *testing.T) {
	c, srv := novoClienteDeTeste(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/imoveis/5", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	assert.NoError(t, c.DeleteImovel(context.Background(), "abc", 5))
}
