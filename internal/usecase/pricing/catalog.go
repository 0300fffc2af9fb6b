package pricing

import "context"

type GetCatalog struct {
	repo  Repository
	cache Cache
}

func NewGetCatalog(repo Repository, cache Cache) *GetCatalog {
	return &GetCatalog{repo: repo, cache: cache}
}

// Execute serves the active catalog through the read-through cache.
// Services come back ordered by category then sort order (repository
// contract), discounts by id.
func (uc *GetCatalog) Execute(ctx context.Context) (*Catalog, error) {
	if cached, ok := uc.cache.Get(ctx); ok {
		return cached, nil
	}

	services, err := uc.repo.ListActiveServices(ctx)
	if err != nil {
		return nil, err
	}
	discounts, err := uc.repo.ListActiveDiscounts(ctx)
	if err != nil {
		return nil, err
	}

	catalog := &Catalog{Services: services, Discounts: discounts}
	uc.cache.Set(ctx, catalog)

	return catalog, nil
}
