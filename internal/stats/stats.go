// Package stats calcula os agregados do dashboard sobre coleções já
// restritas ao escopo do usuário. Todas as funções são puras.
package stats

import (
	"math"
	"sort"

	"github.com/Antonio13050/im-backoffice-api/internal/models"
)

// DefaultRecentLimit é o tamanho padrão das listas de "recentes".
const DefaultRecentLimit = 6

// Input agrupa as coleções de entrada do cálculo.
type Input struct {
	Imoveis       []models.Imovel
	Clientes      []models.Cliente
	TamanhoEquipe int
	// RecentLimit limita as listas de recentes; 0 usa DefaultRecentLimit.
	RecentLimit int
}

// Compute monta o DashboardStats: contagem por status, valor total dos
// imóveis disponíveis, taxa de conversão e os N registros mais recentes.
func Compute(in Input) models.DashboardStats {
	limit := in.RecentLimit
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	st := models.DashboardStats{
		TotalImoveis:  len(in.Imoveis),
		TotalClientes: len(in.Clientes),
		TamanhoEquipe: in.TamanhoEquipe,
	}

	for _, im := range in.Imoveis {
		switch im.Status {
		case models.StatusDisponivel:
			st.ImoveisDisponiveis++
			st.ValorTotal += im.Preco
		case models.StatusVendido:
			st.ImoveisVendidos++
		case models.StatusAlugado:
			st.ImoveisAlugados++
		case models.StatusReservado:
			st.ImoveisReservados++
		}
	}

	// Taxa de conversão: vendidos + alugados sobre o total.
	// Carteira vazia resulta em 0, nunca divisão por zero.
	if st.TotalImoveis > 0 {
		st.TaxaConversao = int(math.Round(
			100 * float64(st.ImoveisVendidos+st.ImoveisAlugados) / float64(st.TotalImoveis),
		))
	}

	st.ImoveisRecentes = recentesImoveis(in.Imoveis, limit)
	st.ClientesRecentes = recentesClientes(in.Clientes, limit)

	return st
}

// recentesImoveis retorna os N imóveis mais recentes por CriadoEm.
// Ordenação estável: empates preservam a ordem relativa original.
func recentesImoveis(imoveis []models.Imovel, limit int) []models.Imovel {
	ordenados := append([]models.Imovel(nil), imoveis...)
	sort.SliceStable(ordenados, func(i, j int) bool {
		return ordenados[i].CriadoEm.After(ordenados[j].CriadoEm)
	})
	if len(ordenados) > limit {
		ordenados = ordenados[:limit]
	}
	return ordenados
}

func recentesClientes(clientes []models.Cliente, limit int) []models.Cliente {
	ordenados := append([]models.Cliente(nil), clientes...)
	sort.SliceStable(ordenados, func(i, j int) bool {
		return ordenados[i].CriadoEm.After(ordenados[j].CriadoEm)
	})
	if len(ordenados) > limit {
		ordenados = ordenados[:limit]
	}
	return ordenados
}
