package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Antonio13050/im-backoffice-api/internal/models"
)

func TestComputeCarteiraVazia(t *testing.T) {
	st := Compute(Input{})

	assert.Equal(t, 0, st.TotalImoveis)
	assert.Equal(t, 0, st.TaxaConversao, "taxa de conversão deve ser 0 sem divisão por zero")
	assert.Equal(t, 0.0, st.ValorTotal)
	assert.Empty(t, st.ImoveisRecentes)
	assert.Empty(t, st.ClientesRecentes)
}

func TestComputeValorTotalEDisponiveis(t *testing.T) {
	imoveis := []models.Imovel{
		{ID: 1, Status: models.StatusDisponivel, Preco: 100000},
		{ID: 2, Status: models.StatusDisponivel, Preco: 200000},
		{ID: 3, Status: models.StatusDisponivel, Preco: 300000},
		{ID: 4, Status: models.StatusVendido, Preco: 500000},
		{ID: 5, Status: models.StatusAlugado, Preco: 2500},
	}

	st := Compute(Input{Imoveis: imoveis})

	assert.Equal(t, 5, st.TotalImoveis)
	assert.Equal(t, 3, st.ImoveisDisponiveis)
	assert.Equal(t, 600000.0, st.ValorTotal, "soma apenas os disponíveis")
	assert.Equal(t, 1, st.ImoveisVendidos)
	assert.Equal(t, 1, st.ImoveisAlugados)
	// (1 vendido + 1 alugado) / 5 = 40%
	assert.Equal(t, 40, st.TaxaConversao)
}

func TestComputeTaxaConversaoArredonda(t *testing.T) {
	imoveis := []models.Imovel{
		{ID: 1, Status: models.StatusVendido},
		{ID: 2, Status: models.StatusDisponivel},
		{ID: 3, Status: models.StatusDisponivel},
	}

	st := Compute(Input{Imoveis: imoveis})

	// 1/3 = 33.33% → 33
	assert.Equal(t, 33, st.TaxaConversao)
}

func TestComputeRecentesOrdenadosPorCriacao(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	imoveis := make([]models.Imovel, 0, 8)
	for i := 0; i < 8; i++ {
		imoveis = append(imoveis, models.Imovel{
			ID:       models.ID(i + 1),
			CriadoEm: base.Add(time.Duration(i) * time.Hour),
		})
	}

	st := Compute(Input{Imoveis: imoveis})

	require.Len(t, st.ImoveisRecentes, DefaultRecentLimit)
	assert.Equal(t, models.ID(8), st.ImoveisRecentes[0].ID, "mais recente primeiro")
	assert.Equal(t, models.ID(3), st.ImoveisRecentes[5].ID)
}

func TestComputeRecentesEmpateMantemOrdemOriginal(t *testing.T) {
	mesmoInstante := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clientes := []models.Cliente{
		{ID: 1, CriadoEm: mesmoInstante},
		{ID: 2, CriadoEm: mesmoInstante},
		{ID: 3, CriadoEm: mesmoInstante},
	}

	st := Compute(Input{Clientes: clientes, RecentLimit: 3})

	// Ordenação estável: empate preserva a ordem relativa de entrada
	assert.Equal(t, models.ID(1), st.ClientesRecentes[0].ID)
	assert.Equal(t, models.ID(2), st.ClientesRecentes[1].ID)
	assert.Equal(t, models.ID(3), st.ClientesRecentes[2].ID)
}

func TestComputeNaoAlteraEntrada(t *testing.T) {
	imoveis := []models.Imovel{
		{ID: 1, CriadoEm: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 2, CriadoEm: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)},
	}

	Compute(Input{Imoveis: imoveis})

	assert.Equal(t, models.ID(1), imoveis[0].ID, "entrada não deve ser reordenada")
}
