package handlers

import (
	"closetluna/internal/clock"
	"closetluna/internal/config"
	"closetluna/internal/repos"
	"closetluna/internal/services"
	"closetluna/internal/session"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	CatalogHandler     *CatalogHandler
	ReservationHandler *ReservationHandler
	SessionHandler     *SessionHandler
	FavoriteHandler    *FavoriteHandler

	Reservations *services.ReservationService
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	itemRepo := repos.NewItemRepo(db)
	resvRepo := repos.NewReservationRepo(db)
	favRepo := repos.NewFavoriteRepo(db)

	catalogSvc := services.NewCatalogService(itemRepo)
	resvSvc := services.NewReservationService(itemRepo, resvRepo, clock.NewSystem())
	favSvc := services.NewFavoriteService(favRepo)

	sessions := session.NewCookieStore(cfg.Prod)

	return &Deps{
		CatalogHandler:     &CatalogHandler{Catalog: catalogSvc},
		ReservationHandler: &ReservationHandler{Resv: resvSvc, Sessions: sessions},
		SessionHandler:     &SessionHandler{Sessions: sessions},
		FavoriteHandler:    &FavoriteHandler{Favs: favSvc, Sessions: sessions},
		Reservations:       resvSvc,
	}
}
