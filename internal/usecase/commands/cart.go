package commands

import (
	"context"
	"log/slog"

	"perfume-order-api/internal/domain/cart"
	"perfume-order-api/internal/domain/history"
	"perfume-order-api/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=cart.go -destination=../../../tests/mock/commands/cart.go -package=commandsmock

type AddItemRequest struct {
	ProductID uuid.UUID
	Quantity  int
}

type UpdateItemRequest struct {
	ProductID uuid.UUID
	Quantity  int
}

// CartCommands mutate a customer's cart. Every call returns the resulting lines.
type CartCommands interface {
	AddItem(ctx context.Context, customerID uuid.UUID, req AddItemRequest) ([]cart.Line, error)
	UpdateItem(ctx context.Context, customerID uuid.UUID, req UpdateItemRequest) ([]cart.Line, error)
	RemoveItem(ctx context.Context, customerID, productID uuid.UUID) ([]cart.Line, error)
	Undo(ctx context.Context, customerID uuid.UUID) ([]cart.Line, error)
	Redo(ctx context.Context, customerID uuid.UUID) ([]cart.Line, error)
}

type cartUseCaseImpl struct {
	uow     shared.UnitOfWork
	history shared.HistoryStore
	carts   *CartStore
	stock   StockChecker
}

func NewCartCommands(uow shared.UnitOfWork, historyStore shared.HistoryStore, carts *CartStore, stock StockChecker) CartCommands {
	return &cartUseCaseImpl{
		uow:     uow,
		history: historyStore,
		carts:   carts,
		stock:   stock,
	}
}

func (uc *cartUseCaseImpl) AddItem(ctx context.Context, customerID uuid.UUID, req AddItemRequest) ([]cart.Line, error) {
	if req.Quantity <= 0 {
		return nil, cart.ErrInvalidQuantity
	}
	return uc.mutate(ctx, customerID, func(ctx context.Context, tx shared.Tx, c *cart.Cart) error {
		current := 0
		if line, ok := c.Line(req.ProductID); ok {
			current = line.Quantity
		}
		wanted, err := cart.MergedQuantity(current, req.Quantity)
		if err != nil {
			return err
		}
		product, err := uc.stock.Check(ctx, tx.Reads(), req.ProductID, wanted)
		if err != nil {
			return err
		}
		return c.AddLine(product.ID, product.Name, req.Quantity, product.Price)
	})
}

func (uc *cartUseCaseImpl) UpdateItem(ctx context.Context, customerID uuid.UUID, req UpdateItemRequest) ([]cart.Line, error) {
	if req.Quantity <= 0 {
		return nil, cart.ErrInvalidQuantity
	}
	return uc.mutate(ctx, customerID, func(ctx context.Context, tx shared.Tx, c *cart.Cart) error {
		if err := c.SetQuantity(req.ProductID, req.Quantity); err != nil {
			return err
		}
		_, err := uc.stock.Check(ctx, tx.Reads(), req.ProductID, req.Quantity)
		return err
	})
}

func (uc *cartUseCaseImpl) RemoveItem(ctx context.Context, customerID, productID uuid.UUID) ([]cart.Line, error) {
	return uc.mutate(ctx, customerID, func(_ context.Context, _ shared.Tx, c *cart.Cart) error {
		c.RemoveLine(productID)
		return nil
	})
}

func (uc *cartUseCaseImpl) Undo(ctx context.Context, customerID uuid.UUID) ([]cart.Line, error) {
	return uc.travel(ctx, customerID, (*history.History).Undo)
}

func (uc *cartUseCaseImpl) Redo(ctx context.Context, customerID uuid.UUID) ([]cart.Line, error) {
	return uc.travel(ctx, customerID, (*history.History).Redo)
}

// mutate runs load, apply, save in one transaction and records the result in the
// customer's history. The first mutation also records the state it started from,
// so it can be undone.
func (uc *cartUseCaseImpl) mutate(ctx context.Context, customerID uuid.UUID, apply func(ctx context.Context, tx shared.Tx, c *cart.Cart) error) ([]cart.Line, error) {
	var result []cart.Line
	err := uc.history.Update(ctx, customerID, func(h *history.History, save shared.SaveHistoryFunc) error {
		return uc.commit(ctx, customerID, h, save, func(ctx context.Context, tx shared.Tx) (*history.History, error) {
			c, err := uc.carts.Load(ctx, tx, customerID)
			if err != nil {
				return nil, err
			}
			before := c.Snapshot()
			if err := apply(ctx, tx, c); err != nil {
				return nil, err
			}
			if err := uc.carts.Save(ctx, tx, c); err != nil {
				return nil, err
			}
			after := c.Snapshot()

			next := h.Clone()
			if next.IsEmpty() {
				next.Record(before)
			}
			next.Record(after)
			result = after.Lines()
			return next, nil
		})
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// travel moves the history cursor and writes the snapshot it lands on back to storage.
// Undo and redo never consult live stock.
func (uc *cartUseCaseImpl) travel(ctx context.Context, customerID uuid.UUID, step func(*history.History) (cart.Snapshot, error)) ([]cart.Line, error) {
	var result []cart.Line
	err := uc.history.Update(ctx, customerID, func(h *history.History, save shared.SaveHistoryFunc) error {
		next := h.Clone()
		snap, err := step(next)
		if err != nil {
			return err
		}
		c := cart.New(customerID)
		c.Restore(snap)
		return uc.commit(ctx, customerID, h, save, func(ctx context.Context, tx shared.Tx) (*history.History, error) {
			if err := uc.carts.Save(ctx, tx, c); err != nil {
				return nil, err
			}
			result = c.Lines()
			return next, nil
		})
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// commit runs write in a transaction and saves the history it returns before the
// transaction commits, so a failed history write rolls the cart back. When the
// transaction fails after the history was saved, prev is written back.
func (uc *cartUseCaseImpl) commit(ctx context.Context, customerID uuid.UUID, prev *history.History, save shared.SaveHistoryFunc, write func(ctx context.Context, tx shared.Tx) (*history.History, error)) error {
	saved := false
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		next, err := write(ctx, tx)
		if err != nil {
			return err
		}
		if err := save(next); err != nil {
			return err
		}
		saved = true
		return nil
	})
	if err != nil && saved {
		if rerr := save(prev); rerr != nil {
			slog.Error("failed to restore cart history", "customer_id", customerID.String(), "error", rerr.Error())
		}
	}
	return err
}
