// Package scope implementa a regra de visibilidade de registros por papel:
// ADMIN enxerga tudo, GERENTE enxerga a si e aos seus corretores diretos,
// CORRETOR enxerga apenas os próprios registros. Papel desconhecido não
// enxerga nada.
package scope

import "github.com/Antonio13050/im-backoffice-api/internal/models"

// Kind identifica o tipo de escopo. Valores fora dos conhecidos caem em
// KindDesconhecido e negam acesso a qualquer registro.
type Kind int

const (
	KindDesconhecido Kind = iota
	KindAdmin
	KindGerente
	KindCorretor
)

// Scope é a variante etiquetada (papel + usuário) usada em todas as
// decisões de visibilidade.
type Scope struct {
	Kind   Kind
	UserID models.ID
}

// FromPapel constrói o escopo a partir do papel vindo do token.
// Papéis não reconhecidos viram KindDesconhecido, nunca erro.
func FromPapel(papel models.Papel, userID models.ID) Scope {
	switch papel {
	case models.PapelAdmin:
		return Scope{Kind: KindAdmin, UserID: userID}
	case models.PapelGerente:
		return Scope{Kind: KindGerente, UserID: userID}
	case models.PapelCorretor:
		return Scope{Kind: KindCorretor, UserID: userID}
	default:
		return Scope{Kind: KindDesconhecido, UserID: userID}
	}
}

// Dados são as coleções brutas vindas da API upstream.
type Dados struct {
	Usuarios []models.Usuario
	Imoveis  []models.Imovel
	Clientes []models.Cliente
}

// Resultado são as coleções já restritas ao escopo.
type Resultado struct {
	Imoveis  []models.Imovel
	Clientes []models.Cliente
	Equipe   []models.Usuario
}

// FilterByScope restringe imóveis e clientes ao que o escopo enxerga e
// monta a equipe visível. Função pura: nunca modifica as entradas.
func FilterByScope(s Scope, d Dados) Resultado {
	switch s.Kind {
	case KindAdmin:
		equipe := make([]models.Usuario, 0)
		for _, u := range d.Usuarios {
			if u.Papel == models.PapelCorretor {
				equipe = append(equipe, u)
			}
		}
		return Resultado{
			Imoveis:  append([]models.Imovel(nil), d.Imoveis...),
			Clientes: append([]models.Cliente(nil), d.Clientes...),
			Equipe:   equipe,
		}

	case KindGerente:
		donos := AllowedOwners(s, d.Usuarios)
		equipe := make([]models.Usuario, 0)
		for _, u := range d.Usuarios {
			if u.ID == s.UserID || (u.GerenteID != nil && *u.GerenteID == s.UserID) {
				equipe = append(equipe, u)
			}
		}
		return Resultado{
			Imoveis:  filtrarImoveis(d.Imoveis, donos),
			Clientes: filtrarClientes(d.Clientes, donos),
			Equipe:   equipe,
		}

	case KindCorretor:
		donos := map[models.ID]bool{s.UserID: true}
		return Resultado{
			Imoveis:  filtrarImoveis(d.Imoveis, donos),
			Clientes: filtrarClientes(d.Clientes, donos),
			Equipe:   []models.Usuario{},
		}

	default:
		// Papel desconhecido: nega tudo em vez de lançar erro.
		return Resultado{
			Imoveis:  []models.Imovel{},
			Clientes: []models.Cliente{},
			Equipe:   []models.Usuario{},
		}
	}
}

// AllowedOwners retorna o conjunto de corretores cujos registros o escopo
// enxerga. nil significa sem restrição (ADMIN); mapa vazio nega tudo.
// Um GERENTE sem liderados ainda enxerga os próprios registros.
func AllowedOwners(s Scope, usuarios []models.Usuario) map[models.ID]bool {
	switch s.Kind {
	case KindAdmin:
		return nil
	case KindGerente:
		donos := map[models.ID]bool{s.UserID: true}
		for _, u := range usuarios {
			if u.GerenteID != nil && *u.GerenteID == s.UserID {
				donos[u.ID] = true
			}
		}
		return donos
	case KindCorretor:
		return map[models.ID]bool{s.UserID: true}
	default:
		return map[models.ID]bool{}
	}
}

// Visivel informa se um registro pertencente a um corretor é visível
// para o conjunto de donos calculado por AllowedOwners.
func Visivel(donos map[models.ID]bool, corretorID models.ID) bool {
	if donos == nil {
		return true
	}
	return donos[corretorID]
}

func filtrarImoveis(imoveis []models.Imovel, donos map[models.ID]bool) []models.Imovel {
	out := make([]models.Imovel, 0)
	for _, im := range imoveis {
		if Visivel(donos, im.CorretorID) {
			out = append(out, im)
		}
	}
	return out
}

func filtrarClientes(clientes []models.Cliente, donos map[models.ID]bool) []models.Cliente {
	out := make([]models.Cliente, 0)
	for _, cl := range clientes {
		if Visivel(donos, cl.CorretorID) {
			out = append(out, cl)
		}
	}
	return out
}
