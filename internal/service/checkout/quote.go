package checkout

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"cute-storefront/internal/domain"
)

// taxRate is the fixed IVA rate applied to the subtotal.
var taxRate = decimal.NewFromFloat(0.19)

// QuoteLine is one cart line resolved against the current catalog.
type QuoteLine struct {
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName"`
	ImageURL    string  `json:"imageUrl"`
	UnitPrice   float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Valid       bool    `json:"valid"`
}

// Quote aggregates freshly fetched prices for the cart. HasError flags
// lines that could not be priced; valid lines still accumulate, but a
// raised flag blocks payment submission.
type Quote struct {
	Lines    []QuoteLine `json:"items"`
	Subtotal int64       `json:"subtotal"`
	Tax      int64       `json:"tax"`
	Total    int64       `json:"total"`
	HasError bool        `json:"hasError"`
}

// Quote resolves every cart line against the catalog and computes totals.
// Prices are always fetched at quote time; cart-time prices are never
// trusted. Line fetches run concurrently, one per item, and a failed line
// does not abort the others.
func (s *Service) Quote(ctx context.Context, items []domain.CartItem) Quote {
	lines := make([]QuoteLine, len(items))

	var wg sync.WaitGroup
	for i, item := range items {
		wg.Add(1)
		go func(i int, item domain.CartItem) {
			defer wg.Done()
			lines[i] = s.quoteLine(ctx, item)
		}(i, item)
	}
	wg.Wait()

	subtotal := decimal.Zero
	hasError := false
	for _, line := range lines {
		if !line.Valid {
			hasError = true
			continue
		}
		subtotal = subtotal.Add(decimal.NewFromFloat(line.UnitPrice).Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	subtotal = subtotal.Round(0)
	tax := subtotal.Mul(taxRate).Round(0)

	return Quote{
		Lines:    lines,
		Subtotal: subtotal.IntPart(),
		Tax:      tax.IntPart(),
		Total:    subtotal.Add(tax).IntPart(),
		HasError: hasError,
	}
}

func (s *Service) quoteLine(ctx context.Context, item domain.CartItem) QuoteLine {
	line := QuoteLine{ProductID: item.ProductID, Quantity: item.Quantity}

	product, err := s.gw.GetProduct(ctx, item.ProductID)
	if err != nil {
		s.logger.Printf("fetch product %d: %v", item.ProductID, err)
		return line
	}

	line.ProductName = product.Name
	line.ImageURL = product.MainImageURL()
	line.UnitPrice = product.Price
	line.Valid = product.Price > 0 && item.Quantity > 0
	if !line.Valid {
		s.logger.Printf("unpriceable cart line: product=%d price=%v quantity=%d", item.ProductID, product.Price, item.Quantity)
	}
	return line
}
