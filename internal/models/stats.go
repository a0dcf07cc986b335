package models

// DashboardStats agrega os números exibidos no painel inicial,
// sempre calculados sobre a coleção já restrita ao escopo do usuário.
type DashboardStats struct {
	TotalImoveis       int     `json:"totalImoveis"`
	ImoveisDisponiveis int     `json:"imoveisDisponiveis"`
	ImoveisVendidos    int     `json:"imoveisVendidos"`
	ImoveisAlugados    int     `json:"imoveisAlugados"`
	ImoveisReservados  int     `json:"imoveisReservados"`
	ValorTotal         float64 `json:"valorTotal"`
	TaxaConversao      int     `json:"taxaConversao"`
	TotalClientes      int     `json:"totalClientes"`
	TamanhoEquipe      int     `json:"tamanhoEquipe"`

	ImoveisRecentes  []Imovel  `json:"imoveisRecentes"`
	ClientesRecentes []Cliente `json:"clientesRecentes"`
}
