package studioapi

import (
	"context"
	"errors"
	"net/http"

	"art_studio/internal/domain/models"
	"art_studio/internal/transport/http/dto"
)

// Direction of a move within an ordered list.
type Direction int

const (
	Up   Direction = -1
	Down Direction = 1
)

var ErrCannotMove = errors.New("studioapi: no neighbour to swap with")

func (c *Client) reorder(ctx context.Context, tag, path string, items []models.OrderUpdate) error {
	_, err := write[struct{}](ctx, c, []string{tag}, http.MethodPatch, path+"/order", nil, dto.ReorderRequest{Items: items})
	return err
}

// MoveArtwork swaps artworks[index] with its neighbour in dir. Both positions
// change in a single request, so a failure leaves the list as it was.
func (c *Client) MoveArtwork(ctx context.Context, artworks []models.Artwork, index int, dir Direction) error {
	items := make([]orderedItem, len(artworks))
	for i, a := range artworks {
		items[i] = orderedItem{id: a.ID.String(), order: a.Order}
	}

	updates, err := swapWithNeighbour(items, index, dir)
	if err != nil {
		return err
	}
	return c.ReorderArtworks(ctx, updates)
}

func (c *Client) MoveService(ctx context.Context, services []models.Service, index int, dir Direction) error {
	items := make([]orderedItem, len(services))
	for i, s := range services {
		items[i] = orderedItem{id: s.ID.String(), order: s.Order}
	}

	updates, err := swapWithNeighbour(items, index, dir)
	if err != nil {
		return err
	}
	return c.ReorderServices(ctx, updates)
}

type orderedItem struct {
	id    string
	order int
}

// swapWithNeighbour exchanges the order values of items[index] and the item
// next to it in dir. Items are expected in display order. When the two share
// an order value the tied run is renumbered in the swapped sequence, and any
// later item that would collide is pushed down in the same batch.
func swapWithNeighbour(items []orderedItem, index int, dir Direction) ([]models.OrderUpdate, error) {
	other := index + int(dir)
	if (dir != Up && dir != Down) || index < 0 || index >= len(items) || other < 0 || other >= len(items) {
		return nil, ErrCannotMove
	}

	a, b := items[index], items[other]
	if a.order != b.order {
		return []models.OrderUpdate{
			{ID: a.id, Order: b.order},
			{ID: b.id, Order: a.order},
		}, nil
	}

	seq := append([]orderedItem(nil), items...)
	seq[index], seq[other] = seq[other], seq[index]

	lo := min(index, other)
	start := lo
	for start > 0 && seq[start-1].order == a.order {
		start--
	}

	orders := make(map[string]int)
	next := a.order
	for k := start; k < len(seq); k++ {
		if k > lo+1 && seq[k].order >= next {
			break
		}
		orders[seq[k].id] = next
		next++
	}

	updates := []models.OrderUpdate{
		{ID: a.id, Order: orders[a.id]},
		{ID: b.id, Order: orders[b.id]},
	}
	for _, it := range seq[start:] {
		o, ok := orders[it.id]
		if !ok {
			break
		}
		if it.id != a.id && it.id != b.id && o != it.order {
			updates = append(updates, models.OrderUpdate{ID: it.id, Order: o})
		}
	}
	return updates, nil
}
