package models

import "time"

// Funil de um processo de venda/locação, do interesse manifestado à
// conclusão (ou cancelamento).
const (
	ProcessoInteresse        = "interesse"
	ProcessoVisitaAgendada   = "visita_agendada"
	ProcessoVisitaRealizada  = "visita_realizada"
	ProcessoPropostaEnviada  = "proposta_enviada"
	ProcessoPropostaAceita   = "proposta_aceita"
	ProcessoNegociacao       = "negociacao"
	ProcessoDocumentacao     = "documentacao"
	ProcessoFinanciamento    = "financiamento"
	ProcessoContratoAssinado = "contrato_assinado"
	ProcessoCartorio         = "cartorio"
	ProcessoConcluido        = "concluido"
	ProcessoCancelado        = "cancelado"
)

// Tipos de financiamento aceitos
const (
	FinanciamentoAVista    = "a_vista"
	FinanciamentoBancario  = "bancario"
	FinanciamentoConsorcio = "consorcio"
	FinanciamentoFGTS      = "fgts"
	FinanciamentoParcelado = "parcelado_direto"
)

// Processo representa um processo de venda/locação em andamento.
type Processo struct {
	ID            ID        `json:"id"`
	Status        string    `json:"status"`
	ImovelID      ID        `json:"imovelId"`
	ClienteID     ID        `json:"clienteId"`
	CorretorID    ID        `json:"corretorId"`
	ValorProposta float64   `json:"valorProposta,omitempty"`
	Financiamento string    `json:"financiamento,omitempty"`
	Observacao    string    `json:"observacao,omitempty"`
	CriadoEm      time.Time `json:"criadoEm"`
	AtualizadoEm  time.Time `json:"atualizadoEm,omitempty"`
}
