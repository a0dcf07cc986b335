package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Antonio13050/im-backoffice-api/internal/models"
)

func ptrID(id models.ID) *models.ID { return &id }

func dadosDeTeste() Dados {
	return Dados{
		Usuarios: []models.Usuario{
			{ID: 1, Nome: "Ana", Papel: models.PapelAdmin},
			{ID: 2, Nome: "Gustavo", Papel: models.PapelGerente},
			{ID: 3, Nome: "Carla", Papel: models.PapelCorretor, GerenteID: ptrID(2)},
			{ID: 4, Nome: "Diego", Papel: models.PapelCorretor, GerenteID: ptrID(2)},
			{ID: 5, Nome: "Elisa", Papel: models.PapelCorretor, GerenteID: ptrID(9)},
		},
		Imoveis: []models.Imovel{
			{ID: 10, Titulo: "Casa no centro", CorretorID: 3},
			{ID: 11, Titulo: "Apartamento vista mar", CorretorID: 4},
			{ID: 12, Titulo: "Terreno comercial", CorretorID: 5},
			{ID: 13, Titulo: "Casa do gerente", CorretorID: 2},
		},
		Clientes: []models.Cliente{
			{ID: 20, Nome: "João", CorretorID: 3},
			{ID: 21, Nome: "Maria", CorretorID: 5},
		},
	}
}

func TestFilterByScopeAdminViaTudo(t *testing.T) {
	d := dadosDeTeste()
	res := FilterByScope(Scope{Kind: KindAdmin, UserID: 1}, d)

	assert.Equal(t, d.Imoveis, res.Imoveis)
	assert.Equal(t, d.Clientes, res.Clientes)

	// Equipe do admin: todos os corretores, sem gerentes nem admins
	require.Len(t, res.Equipe, 3)
	for _, u := range res.Equipe {
		assert.Equal(t, models.PapelCorretor, u.Papel)
	}
}

func TestFilterByScopeGerenteVeApenasSuaEquipe(t *testing.T) {
	d := dadosDeTeste()
	res := FilterByScope(Scope{Kind: KindGerente, UserID: 2}, d)

	// Imóveis de Carla (3), Diego (4) e do próprio gerente (2);
	// o de Elisa (5, liderada de outro gerente) fica de fora
	ids := make([]models.ID, 0)
	for _, im := range res.Imoveis {
		ids = append(ids, im.ID)
	}
	assert.ElementsMatch(t, []models.ID{10, 11, 13}, ids)

	require.Len(t, res.Clientes, 1)
	assert.Equal(t, models.ID(20), res.Clientes[0].ID)

	// Equipe: liderados diretos + o próprio gerente
	equipeIDs := make([]models.ID, 0)
	for _, u := range res.Equipe {
		equipeIDs = append(equipeIDs, u.ID)
	}
	assert.ElementsMatch(t, []models.ID{2, 3, 4}, equipeIDs)
}

func TestFilterByScopeGerenteSemLideradosVeOsProprios(t *testing.T) {
	d := Dados{
		Usuarios: []models.Usuario{{ID: 7, Papel: models.PapelGerente}},
		Imoveis:  []models.Imovel{{ID: 1, CorretorID: 7}, {ID: 2, CorretorID: 8}},
	}
	res := FilterByScope(Scope{Kind: KindGerente, UserID: 7}, d)

	require.Len(t, res.Imoveis, 1)
	assert.Equal(t, models.ID(1), res.Imoveis[0].ID)
}

func TestFilterByScopeCorretorVeApenasOsProprios(t *testing.T) {
	d := dadosDeTeste()
	res := FilterByScope(Scope{Kind: KindCorretor, UserID: 3}, d)

	for _, im := range res.Imoveis {
		assert.Equal(t, models.ID(3), im.CorretorID)
	}
	for _, cl := range res.Clientes {
		assert.Equal(t, models.ID(3), cl.CorretorID)
	}
	assert.Empty(t, res.Equipe)
}

func TestFilterByScopeDesconhecidoNegaTudo(t *testing.T) {
	d := dadosDeTeste()
	res := FilterByScope(FromPapel("SUPERVISOR", 3), d)

	assert.Empty(t, res.Imoveis)
	assert.Empty(t, res.Clientes)
	assert.Empty(t, res.Equipe)
}

func TestFromPapel(t *testing.T) {
	assert.Equal(t, KindAdmin, FromPapel(models.PapelAdmin, 1).Kind)
	assert.Equal(t, KindGerente, FromPapel(models.PapelGerente, 1).Kind)
	assert.Equal(t, KindCorretor, FromPapel(models.PapelCorretor, 1).Kind)
	assert.Equal(t, KindDesconhecido, FromPapel("", 1).Kind)
	assert.Equal(t, KindDesconhecido, FromPapel("root", 1).Kind)
}

func TestAllowedOwners(t *testing.T) {
	usuarios := dadosDeTeste().Usuarios

	assert.Nil(t, AllowedOwners(Scope{Kind: KindAdmin, UserID: 1}, usuarios))

	donos := AllowedOwners(Scope{Kind: KindGerente, UserID: 2}, usuarios)
	assert.Equal(t, map[models.ID]bool{2: true, 3: true, 4: true}, donos)

	assert.Equal(t, map[models.ID]bool{5: true},
		AllowedOwners(Scope{Kind: KindCorretor, UserID: 5}, usuarios))

	assert.Empty(t, AllowedOwners(Scope{Kind: KindDesconhecido, UserID: 2}, usuarios))
}
