package carsvc

import (
	"context"
	"errors"

	"github.com/esley2005/FE-EV-Rental-sub001/model"
	"github.com/esley2005/FE-EV-Rental-sub001/repository/orderstore"
)

var ErrNotFound = errors.New("car not found")

// Service is a read-through over the store's car catalog for the browsing
// pages.
type Service interface {
	List(ctx context.Context) ([]model.Car, error)
	Detail(ctx context.Context, id int64) (*model.Car, error)
}

type service struct{ store orderstore.Repo }

func New(store orderstore.Repo) Service { return &service{store: store} }

func (s *service) List(ctx context.Context) ([]model.Car, error) {
	return s.store.ListCars(ctx)
}

func (s *service) Detail(ctx context.Context, id int64) (*model.Car, error) {
	car, err := s.store.GetCar(ctx, id)
	if err != nil {
		if errors.Is(err, orderstore.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return car, nil
}
