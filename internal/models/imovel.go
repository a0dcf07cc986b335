package models

import "time"

// Status possíveis de um imóvel
const (
	StatusDisponivel = "disponivel"
	StatusVendido    = "vendido"
	StatusAlugado    = "alugado"
	StatusReservado  = "reservado"
)

// Tipos de imóvel aceitos pelo cadastro
const (
	TipoCasa        = "casa"
	TipoApartamento = "apartamento"
	TipoTerreno     = "terreno"
	TipoComercial   = "comercial"
)

// Endereco do imóvel. Latitude/Longitude são opcionais (nem todo
// cadastro passa pelo geocoding).
type Endereco struct {
	Rua       string   `json:"rua"`
	Numero    string   `json:"numero,omitempty"`
	Bairro    string   `json:"bairro"`
	Cidade    string   `json:"cidade"`
	Estado    string   `json:"estado"`
	CEP       string   `json:"cep,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// Imovel representa um imóvel da carteira. Todo imóvel pertence a
// exatamente um corretor (CorretorID); ClienteID é preenchido quando o
// imóvel está vinculado a um cliente (venda/locação em andamento).
type Imovel struct {
	ID         ID        `json:"id"`
	CodigoRef  string    `json:"codigoRef,omitempty"`
	Titulo     string    `json:"titulo"`
	Descricao  string    `json:"descricao,omitempty"`
	Tipo       string    `json:"tipo"`
	Status     string    `json:"status"`
	Preco      float64   `json:"preco"`
	Endereco   Endereco  `json:"endereco"`
	CorretorID ID        `json:"corretorId"`
	ClienteID  *ID       `json:"clienteId,omitempty"`
	Fotos      []string  `json:"fotos,omitempty"`
	CriadoEm   time.Time `json:"criadoEm"`
}
