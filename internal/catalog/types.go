package catalog

import (
	"github.com/shopspring/decimal"

	"escrow-marketplace/internal/model"
)

// ListInput is the input for creating a listing. MetadataRef is stored as
// given and never dereferenced.
type ListInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	MetadataRef string
}

type ListOutput struct {
	Item model.Item
}
