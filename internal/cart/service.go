package cart

import (
	"context"

	"github.com/mannyautos/storefront-backend/internal/catalog"
	pkgerrors "github.com/mannyautos/storefront-backend/pkg/errors"
)

const minQuantity = 1

// Service exposes the cart operations. Every mutation persists through the
// configured store before returning.
type Service interface {
	Get(ctx context.Context, sessionID string) (Summary, error)
	Add(ctx context.Context, sessionID string, input AddInput) (Summary, error)
	Remove(ctx context.Context, sessionID string, index int) (Summary, error)
	ChangeQuantity(ctx context.Context, sessionID string, index, delta int) (Summary, error)
	Clear(ctx context.Context, sessionID string) (Summary, error)
}

// AddInput captures one add-to-cart action. Selection may be partial; the
// missing dimensions resolve per the variant resolution policy. Cancelled
// marks an aborted variant prompt: the action returns without mutating
// anything.
type AddInput struct {
	PartID    int
	Qty       int
	Selection catalog.Selection
	Cancelled bool
}

// LineView is one cart line joined with its part's display fields.
type LineView struct {
	Index     int             `json:"index"`
	PartID    int             `json:"part_id"`
	Name      string          `json:"name"`
	Image     string          `json:"image,omitempty"`
	Variant   VariantSnapshot `json:"variant"`
	Qty       int             `json:"qty"`
	LineTotal int64           `json:"line_total"`
}

// Summary is the full cart state handed to the presentation layer.
type Summary struct {
	Lines     []LineView `json:"lines"`
	ItemCount int        `json:"item_count"`
	Total     int64      `json:"total"`
}

type service struct {
	store  Store
	repo   *catalog.Repository
	maxQty int
}

// NewService builds a cart service over the given store and catalog.
func NewService(store Store, repo *catalog.Repository, maxQty int) (Service, error) {
	if store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart store is required")
	}
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog repository is required")
	}
	if maxQty < minQuantity {
		maxQty = 999
	}
	return &service{store: store, repo: repo, maxQty: maxQty}, nil
}

func (s *service) Get(ctx context.Context, sessionID string) (Summary, error) {
	lines, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return Summary{}, err
	}
	return s.summarize(lines), nil
}

func (s *service) Add(ctx context.Context, sessionID string, input AddInput) (Summary, error) {
	if input.Cancelled {
		return Summary{}, pkgerrors.New(pkgerrors.CodeSelectionCancelled, "selection cancelled")
	}

	part, err := s.repo.ByID(input.PartID)
	if err != nil {
		return Summary{}, err
	}

	variant, err := catalog.ResolveVariant(part, input.Selection)
	if err != nil {
		return Summary{}, err
	}

	qty := input.Qty
	if qty < minQuantity {
		qty = minQuantity
	}

	lines, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return Summary{}, err
	}

	candidate := Line{
		PartID: part.ID,
		Variant: VariantSnapshot{
			Brand: variant.Brand,
			Model: variant.Model,
			Year:  variant.Year,
			Price: variant.Price,
		},
		Qty: qty,
	}

	merged := false
	for i := range lines {
		if lines[i].Mergeable(candidate) {
			lines[i].Qty = s.clampQty(lines[i].Qty + qty)
			merged = true
			break
		}
	}
	if !merged {
		candidate.Qty = s.clampQty(candidate.Qty)
		lines = append(lines, candidate)
	}

	if err := s.store.Save(ctx, sessionID, lines); err != nil {
		return Summary{}, err
	}
	return s.summarize(lines), nil
}

func (s *service) Remove(ctx context.Context, sessionID string, index int) (Summary, error) {
	lines, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return Summary{}, err
	}

	// out-of-range removals are a no-op, not an error
	if index < 0 || index >= len(lines) {
		return s.summarize(lines), nil
	}

	lines = append(lines[:index], lines[index+1:]...)
	if err := s.store.Save(ctx, sessionID, lines); err != nil {
		return Summary{}, err
	}
	return s.summarize(lines), nil
}

func (s *service) ChangeQuantity(ctx context.Context, sessionID string, index, delta int) (Summary, error) {
	lines, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return Summary{}, err
	}

	if index < 0 || index >= len(lines) {
		return s.summarize(lines), nil
	}

	lines[index].Qty = s.clampQty(lines[index].Qty + delta)
	if err := s.store.Save(ctx, sessionID, lines); err != nil {
		return Summary{}, err
	}
	return s.summarize(lines), nil
}

func (s *service) Clear(ctx context.Context, sessionID string) (Summary, error) {
	if err := s.store.Save(ctx, sessionID, []Line{}); err != nil {
		return Summary{}, err
	}
	return s.summarize(nil), nil
}

func (s *service) clampQty(qty int) int {
	if qty < minQuantity {
		return minQuantity
	}
	if qty > s.maxQty {
		return s.maxQty
	}
	return qty
}

func (s *service) summarize(lines []Line) Summary {
	summary := Summary{Lines: make([]LineView, 0, len(lines))}
	for i, line := range lines {
		view := LineView{
			Index:     i,
			PartID:    line.PartID,
			Variant:   line.Variant,
			Qty:       line.Qty,
			LineTotal: line.Variant.Price * int64(line.Qty),
		}
		if part, err := s.repo.ByID(line.PartID); err == nil {
			view.Name = part.Name
			view.Image = part.Image
		}
		summary.Lines = append(summary.Lines, view)
		summary.ItemCount += line.Qty
		summary.Total += view.LineTotal
	}
	return summary
}
