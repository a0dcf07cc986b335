package models

import "time"

// Status possíveis de uma visita
const (
	VisitaAgendada   = "agendada"
	VisitaConfirmada = "confirmada"
	VisitaRealizada  = "realizada"
	VisitaCancelada  = "cancelada"
	VisitaReagendada = "reagendada"
)

// Visita representa um agendamento de visita a um imóvel.
type Visita struct {
	ID         ID        `json:"id"`
	DataHora   time.Time `json:"dataHora"`
	Status     string    `json:"status"`
	ClienteID  ID        `json:"clienteId"`
	ImovelID   ID        `json:"imovelId"`
	CorretorID ID        `json:"corretorId"`
	Observacao string    `json:"observacao,omitempty"`
	Feedback   string    `json:"feedback,omitempty"`
	CriadoEm   time.Time `json:"criadoEm"`
}
