// Package service implements the session store operations on top of the
// repository layer: validation, identifier assignment, title normalization
// and the partial-update rules.
package service

import (
	"github.com/chatvault/chatvault/internal/repository"
)

type Service struct {
	store store.Store
}

func New(store store.Store) *Service {
	return &Service{
		store: store,
	}
}
