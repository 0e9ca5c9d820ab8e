/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package catalog implements the product repository on top of a
// datastore.DataStore. Filter-based lookups run as DynamoDB scans with
// filter expressions built through the expression package.
package catalog

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"go.uber.org/zap"

	"github.com/suparena/tablestore/datastore"
	"github.com/suparena/tablestore/models"
	"github.com/suparena/tablestore/storagemodels"
)

// Repository provides catalog operations over products.
type Repository struct {
	store  datastore.DataStore[models.Product]
	logger *zap.Logger
}

// NewRepository creates a product repository. A nil logger disables logging.
func NewRepository(store datastore.DataStore[models.Product], logger *zap.Logger) *Repository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Repository{store: store, logger: logger}
}

// Save stores a product, assigning its generated attributes.
func (r *Repository) Save(ctx context.Context, product models.Product) (*models.Product, error) {
	r.logger.Info("saving product", zap.String("name", product.Name))
	return r.store.Put(ctx, product)
}

// Update writes a product conditionally on the version it was read with.
func (r *Repository) Update(ctx context.Context, product models.Product) (*models.Product, error) {
	r.logger.Info("updating product",
		zap.String("id", product.ID),
		zap.Int64("version", product.Version))
	return r.store.Update(ctx, product)
}

// FindByID retrieves a product by its id.
func (r *Repository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	return r.store.GetOne(ctx, id)
}

// DeleteByID removes a product by its id.
func (r *Repository) DeleteByID(ctx context.Context, id string) error {
	r.logger.Info("deleting product", zap.String("id", id))
	return r.store.Delete(ctx, id)
}

// FindAll returns every product in the table.
func (r *Repository) FindAll(ctx context.Context) ([]models.Product, error) {
	return r.store.Scan(ctx, nil)
}

// FindByCategory returns the products in the given category.
func (r *Repository) FindByCategory(ctx context.Context, category string) ([]models.Product, error) {
	r.logger.Debug("finding products by category", zap.String("category", category))
	return r.scanWithFilter(ctx,
		expression.Name("category").Equal(expression.Value(category)))
}

// FindByPriceRange returns the products priced between min and max inclusive.
func (r *Repository) FindByPriceRange(ctx context.Context, min, max float64) ([]models.Product, error) {
	r.logger.Debug("finding products by price range",
		zap.Float64("min", min), zap.Float64("max", max))
	return r.scanWithFilter(ctx,
		expression.Name("price").Between(expression.Value(min), expression.Value(max)))
}

// FindLowStock returns the products whose stock is at or below threshold.
func (r *Repository) FindLowStock(ctx context.Context, threshold int) ([]models.Product, error) {
	r.logger.Debug("finding low stock products", zap.Int("threshold", threshold))
	return r.scanWithFilter(ctx,
		expression.Name("stock_quantity").LessThanEqual(expression.Value(threshold)))
}

// UpdateStock sets the stock quantity of a product. The write carries the
// version the product was read with, so a concurrent update surfaces as a
// condition failure instead of silently overwriting.
func (r *Repository) UpdateStock(ctx context.Context, id string, quantity int) (*models.Product, error) {
	product, err := r.store.GetOne(ctx, id)
	if err != nil {
		return nil, err
	}
	product.StockQuantity = quantity
	return r.Update(ctx, *product)
}

// IncrementRetryCount bumps a product's retry counter by one.
func (r *Repository) IncrementRetryCount(ctx context.Context, id string) (*models.Product, error) {
	product, err := r.store.GetOne(ctx, id)
	if err != nil {
		return nil, err
	}
	product.RetryCount++
	return r.Update(ctx, *product)
}

func (r *Repository) scanWithFilter(ctx context.Context, filter expression.ConditionBuilder) ([]models.Product, error) {
	expr, err := expression.NewBuilder().WithFilter(filter).Build()
	if err != nil {
		return nil, err
	}
	return r.store.Scan(ctx, &storagemodels.ScanParams{
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
}
