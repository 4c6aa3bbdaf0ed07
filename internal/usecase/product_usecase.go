package usecase

import (
	"context"
	"fmt"

	"products_api/internal/clients"
	"products_api/internal/domain"

	"github.com/sirupsen/logrus"
)

var _ domain.ProductUseCase = (*productUseCase)(nil)

type productUseCase struct {
	apiClient clients.ProductAPIClient
	log       *logrus.Logger
}

func NewProductUseCase(apiClient clients.ProductAPIClient, logger *logrus.Logger) domain.ProductUseCase {
	return &productUseCase{
		apiClient: apiClient,
		log:       logger,
	}
}

func (uc *productUseCase) fetch(ctx context.Context) ([]domain.Product, error) {
	products, err := uc.apiClient.FetchAll(ctx)
	if err != nil {
		uc.log.Warnf("Use Case: Failed to fetch product catalog: %v", err)
		return nil, fmt.Errorf("could not retrieve products: %w", err)
	}
	return products, nil
}

func (uc *productUseCase) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := uc.fetch(ctx)
	if err != nil {
		return nil, err
	}
	uc.log.Infof("Use Case: Retrieved %d products", len(products))
	return products, nil
}

func (uc *productUseCase) SearchByTitle(ctx context.Context, title string) ([]domain.Product, error) {
	products, err := uc.fetch(ctx)
	if err != nil {
		return nil, err
	}
	matches := SearchByTitle(products, title)
	uc.log.Infof("Use Case: Title search '%s' matched %d of %d products", title, len(matches), len(products))
	return matches, nil
}

func (uc *productUseCase) SearchByBrand(ctx context.Context, brand string) ([]domain.Product, error) {
	products, err := uc.fetch(ctx)
	if err != nil {
		return nil, err
	}
	matches := SearchByBrand(products, brand)
	uc.log.Infof("Use Case: Brand search '%s' matched %d of %d products", brand, len(matches), len(products))
	return matches, nil
}

func (uc *productUseCase) SortProducts(ctx context.Context, field string, order domain.SortOrder) ([]domain.Product, error) {
	products, err := uc.fetch(ctx)
	if err != nil {
		return nil, err
	}
	sorted, err := SortProducts(products, field, order)
	if err != nil {
		uc.log.Warnf("Use Case: Cannot sort by field '%s' (order %s): %v", field, order, err)
		return nil, err
	}
	uc.log.Infof("Use Case: Sorted %d products by '%s' %s", len(sorted), field, order)
	return sorted, nil
}

func (uc *productUseCase) PagedProducts(ctx context.Context, pageNumber, pageSize int) ([]domain.Product, error) {
	if err := domain.ValidatePage(pageNumber, pageSize); err != nil {
		uc.log.Warnf("Use Case: Invalid pagination parameters (page: %d, size: %d)", pageNumber, pageSize)
		return nil, err
	}
	products, err := uc.fetch(ctx)
	if err != nil {
		return nil, err
	}
	page := Paginate(products, pageNumber, pageSize)
	uc.log.Infof("Use Case: Page %d (size %d) holds %d of %d products", pageNumber, pageSize, len(page), len(products))
	return page, nil
}
