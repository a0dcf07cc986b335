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

// fetchEscopado busca uma coleção e a restringe ao escopo da sessão.
// Somente GERENTE precisa da lista de usuários (para resolver os
// liderados diretos); para os demais papéis ela não é buscada.
func fetchEscopado[T any](
	api *client.Client,
	list func(ctx context.Context, token string) ([]T, error),
	dono func(T) models.ID,
) Fetch[[]T] {
	return func(ctx context.Context, sess utils.Sessao) ([]T, error) {
		sc := scope.FromPapel(sess.Papel, sess.UserID)

		var (
			itens    []T
			usuarios []models.Usuario
		)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			itens, err = list(gctx, sess.Token)
			return err
		})
		if sc.Kind == scope.KindGerente {
			g.Go(func() error {
				var err error
				usuarios, err = api.ListUsuarios(gctx, sess.Token)
				return err
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}

		donos := scope.AllowedOwners(sc, usuarios)
		out := make([]T, 0, len(itens))
		for _, item := range itens {
			if scope.Visivel(donos, dono(item)) {
				out = append(out, item)
			}
		}
		return out, nil
	}
}

func NewImoveis(store cache.Store, api *client.Client, ttl time.Duration) *Loader[[]models.Imovel] {
	return New(store, cache.KeyImoveis, ttl,
		fetchEscopado(api, api.ListImoveis, func(im models.Imovel) models.ID { return im.CorretorID }))
}

func NewClientes(store cache.Store, api *client.Client, ttl time.Duration) *Loader[[]models.Cliente] {
	return New(store, cache.KeyClientes, ttl,
		fetchEscopado(api, api.ListClientes, func(cl models.Cliente) models.ID { return cl.CorretorID }))
}

func NewVisitas(store cache.Store, api *client.Client, ttl time.Duration) *Loader[[]models.Visita] {
	return New(store, cache.KeyVisitas, ttl,
		fetchEscopado(api, api.ListVisitas, func(v models.Visita) models.ID { return v.CorretorID }))
}

func NewProcessos(store cache.Store, api *client.Client, ttl time.Duration) *Loader[[]models.Processo] {
	return New(store, cache.KeyProcessos, ttl,
		fetchEscopado(api, api.ListProcessos, func(p models.Processo) models.ID { return p.CorretorID }))
}
