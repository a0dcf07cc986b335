package models

import "time"

// Finalidades de interesse do cliente
const (
	FinalidadeCompra  = "compra"
	FinalidadeAluguel = "aluguel"
)

// PerfilInteresse descreve o que o cliente procura. Todos os campos são
// opcionais; limites de preço zerados significam "sem limite".
type PerfilInteresse struct {
	Tipos      []string `json:"tipos,omitempty"`
	PrecoMin   float64  `json:"precoMin,omitempty"`
	PrecoMax   float64  `json:"precoMax,omitempty"`
	Bairros    []string `json:"bairros,omitempty"`
	Finalidade string   `json:"finalidade,omitempty"`
}

// Cliente representa um cliente da imobiliária, sempre vinculado ao
// corretor responsável pelo atendimento.
type Cliente struct {
	ID         ID              `json:"id"`
	Nome       string          `json:"nome"`
	Email      string          `json:"email,omitempty"`
	Telefone   string          `json:"telefone,omitempty"`
	Endereco   *Endereco       `json:"endereco,omitempty"`
	Interesse  PerfilInteresse `json:"interesse"`
	CorretorID ID              `json:"corretorId"`
	CriadoEm   time.Time       `json:"criadoEm"`
}
