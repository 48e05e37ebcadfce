package services

import (
	"closetluna/internal/domain"
	"closetluna/internal/repos"
)

type FavoriteStore interface {
	Add(phone, itemID string) error
	Remove(phone, itemID string) error
	List(phone string) ([]repos.FavoriteRow, error)
}

type FavoriteService struct {
	Favs FavoriteStore
}

func NewFavoriteService(favs FavoriteStore) *FavoriteService {
	return &FavoriteService{Favs: favs}
}

func (s *FavoriteService) Save(phone, itemID string) error {
	if phone == "" || itemID == "" {
		return domain.ErrInvalidInput
	}
	return s.Favs.Add(phone, itemID)
}

func (s *FavoriteService) Unsave(phone, itemID string) error {
	if phone == "" || itemID == "" {
		return domain.ErrInvalidInput
	}
	return s.Favs.Remove(phone, itemID)
}

func (s *FavoriteService) List(phone string) ([]repos.FavoriteRow, error) {
	return s.Favs.List(phone)
}
