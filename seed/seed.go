/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package seed loads sample catalog data, mirroring what a fresh
// deployment starts with.
package seed

import (
	"context"

	"go.uber.org/zap"

	"github.com/suparena/tablestore/catalog"
	"github.com/suparena/tablestore/models"
)

// SampleProducts returns the starter catalog.
func SampleProducts() []models.Product {
	return []models.Product{
		{Name: "Laptop", Price: 1299.99, Category: "Electronics", StockQuantity: 50},
		{Name: "Smartphone", Price: 799.99, Category: "Electronics", StockQuantity: 100},
		{Name: "Coffee Maker", Price: 99.99, Category: "Home Appliances", StockQuantity: 30},
		{Name: "Running Shoes", Price: 129.99, Category: "Sports", StockQuantity: 75},
	}
}

// Load stores the sample products through the repository. It stops at the
// first failing write.
func Load(ctx context.Context, repo *catalog.Repository, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	logger.Info("loading sample product data")
	for _, p := range SampleProducts() {
		if _, err := repo.Save(ctx, p); err != nil {
			logger.Error("failed to seed product",
				zap.String("name", p.Name), zap.Error(err))
			return err
		}
	}
	logger.Info("sample products loaded", zap.Int("count", len(SampleProducts())))
	return nil
}
