package service

import (
	"context"
	"strings"

	"food-agent/internal/domain"
)

// fakeMenu matches the repository contract: case-insensitive substring,
// first item in slice order wins.
type fakeMenu struct {
	items []domain.MenuItem
	err   error
}

func (f *fakeMenu) FindByNameFragment(_ context.Context, fragment string) (domain.MenuItem, bool, error) {
	if f.err != nil {
		return domain.MenuItem{}, false, f.err
	}
	frag := strings.ToLower(fragment)
	for _, it := range f.items {
		if strings.Contains(strings.ToLower(it.Name), frag) {
			return it, true, nil
		}
	}
	return domain.MenuItem{}, false, nil
}

func (f *fakeMenu) ListAll(context.Context) ([]domain.MenuItem, error) {
	return f.items, f.err
}

type fakeOrders struct {
	created   []domain.Order
	createErr error
	findErr   error
}

func (f *fakeOrders) CreateOrderTx(_ context.Context, rows []domain.Order) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, rows...)
	return nil
}

func (f *fakeOrders) FindByOrderNumber(_ context.Context, number string) (domain.Order, bool, error) {
	if f.findErr != nil {
		return domain.Order{}, false, f.findErr
	}
	for _, o := range f.created {
		if o.OrderNumber == number {
			return o, true, nil
		}
	}
	return domain.Order{}, false, nil
}

type fakePublisher struct {
	msgs []domain.KitchenOrderMessage
	err  error
}

func (f *fakePublisher) PublishOrder(_ context.Context, msg domain.KitchenOrderMessage) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msg)
	return nil
}

var indianMenu = []domain.MenuItem{
	{ID: 1, Name: "Mango Lassi", Price: 50.00},
	{ID: 2, Name: "Chole Bhature", Price: 120.00},
	{ID: 3, Name: "Masala Dosa", Price: 90.00},
}
