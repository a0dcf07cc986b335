package loader

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Antonio13050/im-backoffice-api/internal/cache"
	"github.com/Antonio13050/im-backoffice-api/internal/client"
	"github.com/Antonio13050/im-backoffice-api/internal/models"
	"github.com/Antonio13050/im-backoffice-api/internal/scope"
	"github.com/Antonio13050/im-backoffice-api/internal/utils"
)

// DashboardData é a fotografia escopada que alimenta o painel inicial.
type DashboardData struct {
	Imoveis  []models.Imovel  `json:"imoveis"`
	Clientes []models.Cliente `json:"clientes"`
	Equipe   []models.Usuario `json:"equipe"`
}

// NewDashboard monta o loader do dashboard: busca usuários, imóveis e
// clientes em paralelo e aplica o filtro de escopo do papel da sessão.
func NewDashboard(store cache.Store, api *client.Client, ttl time.Duration) *Loader[DashboardData] {
	fetch := func(ctx context.Context, sess utils.Sessao) (DashboardData, error) {
		var (
			usuarios []models.Usuario
			imoveis  []models.Imovel
			clientes []models.Cliente
		)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			usuarios, err = api.ListUsuarios(gctx, sess.Token)
			return err
		})
		g.Go(func() error {
			var err error
			imoveis, err = api.ListImoveis(gctx, sess.Token)
			return err
		})
		g.Go(func() error {
			var err error
			clientes, err = api.ListClientes(gctx, sess.Token)
			return err
		})
		if err := g.Wait(); err != nil {
			return DashboardData{}, err
		}

		sc := scope.FromPapel(sess.Papel, sess.UserID)
		res := scope.FilterByScope(sc, scope.Dados{
			Usuarios: usuarios,
			Imoveis:  imoveis,
			Clientes: clientes,
		})

		return DashboardData{
			Imoveis:  res.Imoveis,
			Clientes: res.Clientes,
			Equipe:   res.Equipe,
		}, nil
	}

	return New(store, cache.KeyDashboard, ttl, fetch)
}
