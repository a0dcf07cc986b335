package models

import "time"

// CreateImovelRequest é o corpo aceito pelo cadastro de imóvel.
// O campo CodigoRef é opcional; quando ausente é gerado na borda.
type CreateImovelRequest struct {
	Titulo    string   `json:"titulo" binding:"required"`
	Descricao string   `json:"descricao"`
	Tipo      string   `json:"tipo" binding:"required"`
	Status    string   `json:"status"`
	Preco     float64  `json:"preco" binding:"required,gt=0"`
	Endereco  Endereco `json:"endereco" binding:"required"`
	ClienteID *ID      `json:"clienteId"`
	Fotos     []string `json:"fotos"`
	CodigoRef string   `json:"codigoRef"`
}

// UpdateImovelRequest atualiza o imóvel por inteiro (PUT).
type UpdateImovelRequest struct {
	Titulo    string   `json:"titulo" binding:"required"`
	Descricao string   `json:"descricao"`
	Tipo      string   `json:"tipo" binding:"required"`
	Status    string   `json:"status" binding:"required"`
	Preco     float64  `json:"preco" binding:"required,gt=0"`
	Endereco  Endereco `json:"endereco" binding:"required"`
	ClienteID *ID      `json:"clienteId"`
	Fotos     []string `json:"fotos"`
}

type CreateClienteRequest struct {
	Nome      string          `json:"nome" binding:"required"`
	Email     string          `json:"email" binding:"omitempty,email"`
	Telefone  string          `json:"telefone"`
	Endereco  *Endereco       `json:"endereco"`
	Interesse PerfilInteresse `json:"interesse"`
}

type UpdateClienteRequest struct {
	Nome      string          `json:"nome" binding:"required"`
	Email     string          `json:"email" binding:"omitempty,email"`
	Telefone  string          `json:"telefone"`
	Endereco  *Endereco       `json:"endereco"`
	Interesse PerfilInteresse `json:"interesse"`
}

type CreateVisitaRequest struct {
	DataHora   time.Time `json:"dataHora" binding:"required"`
	ClienteID  ID        `json:"clienteId" binding:"required"`
	ImovelID   ID        `json:"imovelId" binding:"required"`
	Observacao string    `json:"observacao"`
}

type UpdateVisitaRequest struct {
	DataHora   time.Time `json:"dataHora" binding:"required"`
	Status     string    `json:"status" binding:"required"`
	Observacao string    `json:"observacao"`
	Feedback   string    `json:"feedback"`
}

type CreateProcessoRequest struct {
	ImovelID      ID      `json:"imovelId" binding:"required"`
	ClienteID     ID      `json:"clienteId" binding:"required"`
	ValorProposta float64 `json:"valorProposta"`
	Financiamento string  `json:"financiamento"`
	Observacao    string  `json:"observacao"`
}

type UpdateProcessoRequest struct {
	Status        string  `json:"status" binding:"required"`
	ValorProposta float64 `json:"valorProposta"`
	Financiamento string  `json:"financiamento"`
	Observacao    string  `json:"observacao"`
}
