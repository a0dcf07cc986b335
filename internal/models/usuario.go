package models

import "time"

// Papel define o nível de acesso do usuário no back-office
type Papel string

const (
	PapelAdmin    Papel = "ADMIN"
	PapelGerente  Papel = "GERENTE"
	PapelCorretor Papel = "CORRETOR"
)

// Usuario representa um colaborador do back-office (admin, gerente ou corretor).
// Um CORRETOR referencia no máximo um GERENTE via GerenteID;
// GERENTE e ADMIN não possuem gerente.
type Usuario struct {
	ID        ID        `json:"id"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	Telefone  string    `json:"telefone,omitempty"`
	Papel     Papel     `json:"papel"`
	GerenteID *ID       `json:"gerenteId,omitempty"`
	Ativo     bool      `json:"ativo"`
	CriadoEm  time.Time `json:"criadoEm"`
}
