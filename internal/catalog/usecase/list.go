package usecase

import (
	"context"
	"strings"

	"escrow-marketplace/internal/catalog"
	"escrow-marketplace/internal/event"
	"escrow-marketplace/internal/model"
	repo "escrow-marketplace/internal/repository"
)

const maxMetadataRefLen = 2048

// List validates the listing and appends a new AVAILABLE item.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input catalog.ListInput) (catalog.ListOutput, error) {
	if sc.IsZero() {
		return catalog.ListOutput{}, catalog.ErrMissingCaller
	}
	if err := validateListInput(input); err != nil {
		return catalog.ListOutput{}, err
	}

	item, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		Name:        input.Name,
		Description: input.Description,
		MetadataRef: strings.TrimSpace(input.MetadataRef),
		Price:       input.Price,
		Seller:      sc.Address,
		CreatedAt:   uc.clock.Now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List CreateItem: %v", err)
		return catalog.ListOutput{}, err
	}

	uc.l.Infof(ctx, "uc.List: item %d listed by %s at %s", item.ID, item.Seller, item.Price)
	uc.publisher.Publish(ctx, event.New(event.TypeItemListed, item.CreatedAt, event.ItemListed{
		ItemID: item.ID,
		Name:   item.Name,
		Price:  item.Price,
		Seller: item.Seller,
	}))

	return catalog.ListOutput{Item: item}, nil
}

func validateListInput(input catalog.ListInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return catalog.ErrEmptyName
	}
	if strings.TrimSpace(input.Description) == "" {
		return catalog.ErrEmptyDescription
	}
	if !input.Price.IsPositive() || !model.AmountFits(input.Price) {
		return catalog.ErrInvalidPrice
	}
	if len(input.MetadataRef) > maxMetadataRefLen {
		return catalog.ErrMetadataRefTooLong
	}
	return nil
}
