package pipeline

import (
	"time"

	"github.com/Antonio13050/im-backoffice-api/internal/models"
)

// DescritorImoveis: busca por título, bairro e cidade; filtros de
// status, tipo, bairro e faixa de preço; ordenação por título, preço e
// data de cadastro.
func DescritorImoveis() Descritor[models.Imovel] {
	return Descritor[models.Imovel]{
		Busca: func(im models.Imovel) []string {
			return []string{im.Titulo, im.Endereco.Bairro, im.Endereco.Cidade}
		},
		Atributo: func(im models.Imovel, nome string) (string, bool) {
			switch nome {
			case "status":
				return im.Status, true
			case "tipo":
				return im.Tipo, true
			case "bairro":
				return im.Endereco.Bairro, true
			default:
				return "", false
			}
		},
		Preco: func(im models.Imovel) (float64, bool) {
			return im.Preco, true
		},
		Chave: func(im models.Imovel, campo string) (Chave, bool) {
			switch campo {
			case "titulo":
				return ChaveTexto(im.Titulo), true
			case "preco":
				return ChaveNumero(im.Preco), true
			case "criadoEm":
				return ChaveTempo(im.CriadoEm), true
			default:
				return Chave{}, false
			}
		},
		ID: func(im models.Imovel) models.ID { return im.ID },
	}
}

// DescritorClientes: busca por nome, email e telefone; filtro de perfil
// (finalidade do interesse); ordenação por nome e data de cadastro.
func DescritorClientes() Descritor[models.Cliente] {
	return Descritor[models.Cliente]{
		Busca: func(cl models.Cliente) []string {
			return []string{cl.Nome, cl.Email, cl.Telefone}
		},
		Atributo: func(cl models.Cliente, nome string) (string, bool) {
			if nome == "perfil" {
				return cl.Interesse.Finalidade, true
			}
			return "", false
		},
		Chave: func(cl models.Cliente, campo string) (Chave, bool) {
			switch campo {
			case "nome":
				return ChaveTexto(cl.Nome), true
			case "criadoEm":
				return ChaveTempo(cl.CriadoEm), true
			default:
				return Chave{}, false
			}
		},
		ID: func(cl models.Cliente) models.ID { return cl.ID },
	}
}

// DescritorUsuarios: busca por nome, email e telefone; filtro por papel
// (reutiliza a chave "perfil"); a ordenação por vínculos usa o mapa
// corretor→quantidade de imóveis injetado via SetVinculos.
func DescritorUsuarios() Descritor[models.Usuario] {
	return Descritor[models.Usuario]{
		Busca: func(u models.Usuario) []string {
			return []string{u.Nome, u.Email, u.Telefone}
		},
		Atributo: func(u models.Usuario, nome string) (string, bool) {
			if nome == "perfil" {
				return string(u.Papel), true
			}
			return "", false
		},
		Chave: func(u models.Usuario, campo string) (Chave, bool) {
			switch campo {
			case "nome":
				return ChaveTexto(u.Nome), true
			case "criadoEm":
				return ChaveTempo(u.CriadoEm), true
			default:
				return Chave{}, false
			}
		},
		ID: func(u models.Usuario) models.ID { return u.ID },
	}
}

// DescritorVisitas: filtro de status e de período (hoje/semana/mes) pela
// data agendada; ordenação por data agendada.
func DescritorVisitas() Descritor[models.Visita] {
	return Descritor[models.Visita]{
		Atributo: func(v models.Visita, nome string) (string, bool) {
			if nome == "status" {
				return v.Status, true
			}
			return "", false
		},
		Chave: func(v models.Visita, campo string) (Chave, bool) {
			switch campo {
			case "dataHora":
				return ChaveTempo(v.DataHora), true
			case "criadoEm":
				return ChaveTempo(v.CriadoEm), true
			default:
				return Chave{}, false
			}
		},
		ID:   func(v models.Visita) models.ID { return v.ID },
		Data: func(v models.Visita) (time.Time, bool) { return v.DataHora, true },
	}
}

// DescritorProcessos: filtro de status do funil; ordenação por valor da
// proposta e datas.
func DescritorProcessos() Descritor[models.Processo] {
	return Descritor[models.Processo]{
		Atributo: func(p models.Processo, nome string) (string, bool) {
			if nome == "status" {
				return p.Status, true
			}
			return "", false
		},
		Chave: func(p models.Processo, campo string) (Chave, bool) {
			switch campo {
			case "valorProposta":
				return ChaveNumero(p.ValorProposta), true
			case "criadoEm":
				return ChaveTempo(p.CriadoEm), true
			case "atualizadoEm":
				return ChaveTempo(p.AtualizadoEm), true
			default:
				return Chave{}, false
			}
		},
		ID: func(p models.Processo) models.ID { return p.ID },
	}
}
