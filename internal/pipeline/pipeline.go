// Package pipeline transforma uma coleção escopada na página exibida:
// busca textual → filtros de atributo → ordenação → fatia da página.
// O resultado é memoizado por uma chave explícita das entradas.
package pipeline

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Antonio13050/im-backoffice-api/internal/models"
)

// FiltroTodos é o valor sentinela que desliga um filtro de atributo.
const FiltroTodos = "todos"

// DefaultTamanhoPagina é o tamanho de página padrão das listagens.
const DefaultTamanhoPagina = 10

// Direcao da ordenação
type Direcao string

const (
	Asc  Direcao = "asc"
	Desc Direcao = "desc"
)

// Filtros de atributo, combinados com AND. Vazio ou "todos" desliga o
// filtro. PrecoMin/PrecoMax são texto cru: valores não numéricos são
// ignorados (sem limite).
type Filtros struct {
	Status   string
	Tipo     string
	Bairro   string
	Perfil   string
	Periodo  string
	PrecoMin string
	PrecoMax string
}

func (f Filtros) ativo(valor string) bool {
	return valor != "" && valor != FiltroTodos
}

// Descritor liga uma entidade ao pipeline: campos pesquisáveis, valores
// de atributo para filtro, chaves de ordenação e, quando aplicável,
// preço e data de referência para o filtro de período.
type Descritor[T any] struct {
	// Busca retorna os campos cobertos pela busca textual.
	Busca func(T) []string
	// Atributo resolve o valor de um filtro; ok=false ignora o filtro.
	Atributo func(item T, nome string) (valor string, ok bool)
	// Preco retorna o valor usado na faixa de preço.
	Preco func(T) (float64, bool)
	// Chave resolve a chave de ordenação de um campo.
	Chave func(item T, campo string) (Chave, bool)
	// ID identifica o item para a ordenação por vínculos.
	ID func(T) models.ID
	// Data é a referência do filtro de período (visitas).
	Data func(T) (time.Time, bool)
}

// Chave é um valor ordenável: texto (colação pt-BR), número ou instante.
type Chave struct {
	Texto   string
	Numero  float64
	Tempo   time.Time
	EhTexto bool
	EhTempo bool
}

func ChaveTexto(s string) Chave    { return Chave{Texto: s, EhTexto: true} }
func ChaveNumero(n float64) Chave  { return Chave{Numero: n} }
func ChaveTempo(t time.Time) Chave { return Chave{Tempo: t, EhTempo: true} }

// CampoVinculos ordena pelo tamanho do mapeamento id→filhos fornecido
// via SetVinculos (ex.: corretores por quantidade de imóveis).
const CampoVinculos = "vinculos"

// Resultado é a página corrente mais os metadados de paginação.
type Resultado[T any] struct {
	Itens         []T `json:"itens"`
	Pagina        int `json:"pagina"`
	TamanhoPagina int `json:"tamanhoPagina"`
	TotalPaginas  int `json:"totalPaginas"`
	TotalItens    int `json:"totalItens"`
	// Aviso sinaliza faixa de preço invertida (min > max). Os dois
	// limites continuam aplicados.
	Aviso string `json:"aviso,omitempty"`
}

// Query mantém o estado de consulta de uma coleção (busca, filtros,
// ordenação, página) e memoiza o resultado derivado. A página volta a 0
// quando a busca ou um filtro muda; ordenação e tamanho de página não
// resetam a página.
type Query[T any] struct {
	desc Descritor[T]
	col  *collate.Collator

	mu       sync.Mutex
	itens    []T
	versao   uint64
	busca    string
	filtros  Filtros
	campo    string
	direcao  Direcao
	pagina   int
	tamanho  int
	vinculos map[models.ID]int

	memoKey string
	memo    Resultado[T]
	memoOK  bool
}

func NewQuery[T any](desc Descritor[T]) *Query[T] {
	return &Query[T]{
		desc:    desc,
		col:     collate.New(language.BrazilianPortuguese, collate.IgnoreCase),
		direcao: Asc,
		tamanho: DefaultTamanhoPagina,
	}
}

// SetItens troca a coleção de entrada (tipicamente após um load).
func (q *Query[T]) SetItens(itens []T) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.itens = itens
	q.versao++
}

// SetBusca aplica o texto de busca já "assentado" (o debounce fica no
// chamador). Mudança de busca volta para a página 0.
func (q *Query[T]) SetBusca(busca string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if busca == q.busca {
		return
	}
	q.busca = busca
	q.pagina = 0
}

// SetFiltros substitui os filtros de atributo; mudança volta à página 0.
func (q *Query[T]) SetFiltros(f Filtros) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if f == q.filtros {
		return
	}
	q.filtros = f
	q.pagina = 0
}

// Ordenar alterna a ordenação: mesmo campo inverte a direção, campo novo
// reinicia em ascendente. Não mexe na página.
func (q *Query[T]) Ordenar(campo string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if campo == q.campo {
		if q.direcao == Asc {
			q.direcao = Desc
		} else {
			q.direcao = Asc
		}
		return
	}
	q.campo = campo
	q.direcao = Asc
}

// SetOrdenacao fixa campo e direção de uma vez (superfície HTTP, onde a
// direção chega explícita na query string).
func (q *Query[T]) SetOrdenacao(campo string, direcao Direcao) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.campo = campo
	if direcao == Desc {
		q.direcao = Desc
	} else {
		q.direcao = Asc
	}
}

// SetPagina muda a página corrente (base zero). Pedidos fora de
// [0, totalPaginas) são rejeitados sem efeito.
func (q *Query[T]) SetPagina(pagina int) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	total := q.totalPaginasLocked()
	if pagina < 0 || pagina >= total {
		return false
	}
	q.pagina = pagina
	return true
}

// SetTamanhoPagina muda o tamanho da página sem resetar a página.
func (q *Query[T]) SetTamanhoPagina(tamanho int) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if tamanho > 0 {
		q.tamanho = tamanho
	}
}

// SetVinculos injeta o mapeamento id→quantidade usado pela ordenação
// por vínculos.
func (q *Query[T]) SetVinculos(vinculos map[models.ID]int) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.vinculos = vinculos
	q.versao++
}

// Resultado computa (ou devolve memoizado) a página corrente.
func (q *Query[T]) Resultado() Resultado[T] {
	q.mu.Lock()
	defer q.mu.Unlock()

	key := fmt.Sprintf("%d|%s|%v|%s|%s|%d|%d",
		q.versao, q.busca, q.filtros, q.campo, q.direcao, q.pagina, q.tamanho)
	if q.memoOK && key == q.memoKey {
		return q.memo
	}

	filtrados, aviso := q.filtrarLocked()
	q.ordenarLocked(filtrados)

	total := len(filtrados)
	totalPaginas := (total + q.tamanho - 1) / q.tamanho
	if totalPaginas < 1 {
		totalPaginas = 1
	}

	inicio := q.pagina * q.tamanho
	fim := inicio + q.tamanho
	var itens []T
	switch {
	case inicio >= total:
		itens = []T{}
	case fim > total:
		itens = filtrados[inicio:total]
	default:
		itens = filtrados[inicio:fim]
	}

	q.memo = Resultado[T]{
		Itens:         itens,
		Pagina:        q.pagina,
		TamanhoPagina: q.tamanho,
		TotalPaginas:  totalPaginas,
		TotalItens:    total,
		Aviso:         aviso,
	}
	q.memoKey = key
	q.memoOK = true
	return q.memo
}

func (q *Query[T]) totalPaginasLocked() int {
	filtrados, _ := q.filtrarLocked()
	total := (len(filtrados) + q.tamanho - 1) / q.tamanho
	if total < 1 {
		total = 1
	}
	return total
}

func (q *Query[T]) filtrarLocked() ([]T, string) {
	out := make([]T, 0, len(q.itens))

	busca := strings.ToLower(strings.TrimSpace(q.busca))

	precoMin, temMin := parsePreco(q.filtros.PrecoMin)
	precoMax, temMax := parsePreco(q.filtros.PrecoMax)
	var aviso string
	if temMin && temMax && precoMin > precoMax {
		aviso = "faixa de preço invertida: mínimo maior que máximo"
	}

	for _, item := range q.itens {
		if busca != "" && !q.correspondeBusca(item, busca) {
			continue
		}
		if !q.correspondeAtributos(item) {
			continue
		}
		if (temMin || temMax) && q.desc.Preco != nil {
			preco, ok := q.desc.Preco(item)
			if ok {
				if temMin && preco < precoMin {
					continue
				}
				if temMax && preco > precoMax {
					continue
				}
			}
		}
		if q.filtros.ativo(q.filtros.Periodo) && q.desc.Data != nil {
			data, ok := q.desc.Data(item)
			if ok && !noPeriodo(data, q.filtros.Periodo, time.Now()) {
				continue
			}
		}
		out = append(out, item)
	}

	return out, aviso
}

func (q *Query[T]) correspondeBusca(item T, busca string) bool {
	if q.desc.Busca == nil {
		return true
	}
	for _, campo := range q.desc.Busca(item) {
		if strings.Contains(strings.ToLower(campo), busca) {
			return true
		}
	}
	return false
}

func (q *Query[T]) correspondeAtributos(item T) bool {
	if q.desc.Atributo == nil {
		return true
	}
	checks := []struct{ nome, filtro string }{
		{"status", q.filtros.Status},
		{"tipo", q.filtros.Tipo},
		{"bairro", q.filtros.Bairro},
		{"perfil", q.filtros.Perfil},
	}
	for _, c := range checks {
		if !q.filtros.ativo(c.filtro) {
			continue
		}
		valor, ok := q.desc.Atributo(item, c.nome)
		if !ok {
			continue
		}
		if !strings.EqualFold(valor, c.filtro) {
			return false
		}
	}
	return true
}

func (q *Query[T]) ordenarLocked(itens []T) {
	if q.campo == "" {
		return
	}

	menor := func(a, b T) bool {
		if q.campo == CampoVinculos && q.desc.ID != nil {
			return q.vinculos[q.desc.ID(a)] < q.vinculos[q.desc.ID(b)]
		}
		if q.desc.Chave == nil {
			return false
		}
		ka, okA := q.desc.Chave(a, q.campo)
		kb, okB := q.desc.Chave(b, q.campo)
		if !okA || !okB {
			return false
		}
		switch {
		case ka.EhTempo:
			return ka.Tempo.Before(kb.Tempo)
		case ka.EhTexto:
			return q.col.CompareString(ka.Texto, kb.Texto) < 0
		default:
			return ka.Numero < kb.Numero
		}
	}

	sort.SliceStable(itens, func(i, j int) bool {
		if q.direcao == Desc {
			return menor(itens[j], itens[i])
		}
		return menor(itens[i], itens[j])
	})
}

func parsePreco(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Períodos aceitos pelo filtro de data das visitas
const (
	PeriodoHoje   = "hoje"
	PeriodoSemana = "semana"
	PeriodoMes    = "mes"
)

// noPeriodo compara a data do item com hoje usando fronteiras de
// meia-noite no fuso local. Comportamento perto de transições de
// horário de verão segue indefinido.
func noPeriodo(data time.Time, periodo string, agora time.Time) bool {
	dias := diffDias(agora, data)
	switch periodo {
	case PeriodoHoje:
		return dias == 0
	case PeriodoSemana:
		return dias >= 0 && dias <= 7
	case PeriodoMes:
		return dias >= 0 && dias <= 30
	default:
		return true
	}
}

func diffDias(de, ate time.Time) int {
	meiaNoite := func(t time.Time) time.Time {
		local := t.Local()
		return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.Local)
	}
	return int(meiaNoite(ate).Sub(meiaNoite(de)).Hours() / 24)
}
