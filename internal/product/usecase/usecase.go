package usecase

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-backoffice-service/internal/model"
	"github.com/fekuna/omnipos-backoffice-service/internal/product"
	"github.com/fekuna/omnipos-backoffice-service/internal/product/dto"
	"github.com/fekuna/omnipos-backoffice-service/internal/tabular"
	"github.com/fekuna/omnipos-backoffice-service/pkg/cache"
	"github.com/fekuna/omnipos-backoffice-service/pkg/logger"
	"github.com/fekuna/omnipos-backoffice-service/pkg/search"
)

const productIndex = "products"

type productUseCase struct {
	repo   product.Repository
	cache  *cache.RedisClient
	es     *search.Client
	logger logger.ZapLogger
}

func NewProductUseCase(repo product.Repository, cache *cache.RedisClient, es *search.Client, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		repo:   repo,
		cache:  cache,
		es:     es,
		logger: log,
	}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.ProductInput) (*model.Product, error) {
	unique, err := uc.repo.IsSKUUnique(ctx, input.SKU, "")
	if err != nil {
		return nil, err
	}
	if !unique {
		return nil, errors.New("SKU already exists")
	}

	if input.Barcode != "" {
		unique, err := uc.repo.IsBarcodeUnique(ctx, input.Barcode, "")
		if err != nil {
			return nil, err
		}
		if !unique {
			return nil, errors.New("Barcode already exists")
		}
	}

	now := time.Now()
	p := &model.Product{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:              input.Name,
		Quantity:          input.Quantity,
		Price:             input.Price,
		CostPrice:         input.CostPrice,
		TaxType:           input.TaxType,
		TaxPercentage:     input.TaxPercentage,
		SKU:               input.SKU,
		Barcode:           input.Barcode,
		StoreID:           input.StoreID,
		WarehouseID:       input.WarehouseID,
		CategoryID:        input.CategoryID,
		SubcategoryID:     input.SubcategoryID,
		BrandID:           input.BrandID,
		UnitID:            input.UnitID,
		ImageURL:          &input.ImageURL,
		VariantAttributes: input.VariantAttributes,
		SellingType:       encodeSellingType(input.SellingType),
		IsActive:          input.IsActive,
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	go uc.invalidateProductCache(context.Background())
	go uc.syncToElastic(context.Background(), p)

	return p, nil
}

func encodeSellingType(sellingType []string) *string {
	if len(sellingType) == 0 {
		return nil
	}
	data, err := json.Marshal(sellingType)
	if err != nil {
		return nil
	}
	s := string(data)
	return &s
}

func (uc *productUseCase) syncToElastic(ctx context.Context, p *model.Product) {
	if uc.es == nil {
		return
	}

	mapping := `{
		"mappings": {
			"properties": {
				"name": { "type": "text" },
				"sku": { "type": "keyword" },
				"barcode": { "type": "keyword" },
				"store_id": { "type": "keyword" },
				"category_id": { "type": "keyword" },
				"price": { "type": "double" },
				"created_at": { "type": "date" }
			}
		}
	}`
	_ = uc.es.CreateIndex(ctx, productIndex, mapping)

	if err := uc.es.Index(ctx, productIndex, p.ID, p); err != nil {
		uc.logger.Error("failed to index product", zap.Error(err))
	}
}

func (uc *productUseCase) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *productUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error) {
	cacheKey, err := uc.generateCacheKey(filters)
	if err == nil && uc.cache != nil {
		val, err := uc.cache.Client.Get(ctx, cacheKey).Result()
		if err == nil {
			var result struct {
				Products []model.Product
				Count    int
			}
			if err := json.Unmarshal([]byte(val), &result); err == nil {
				return result.Products, result.Count, nil
			}
		}
	}

	if filters.SearchQuery != "" && uc.es != nil {
		q := map[string]interface{}{
			"query": map[string]interface{}{
				"query_string": map[string]interface{}{
					"query":  fmt.Sprintf("*%s*", filters.SearchQuery),
					"fields": []string{"name^3", "sku", "barcode"},
				},
			},
			"from": (filters.Page - 1) * filters.PageSize,
		}
		if filters.PageSize > 0 {
			q["size"] = filters.PageSize
		}

		res, err := uc.es.Search(ctx, productIndex, q)
		if err == nil {
			var esProducts []model.Product
			for _, hit := range res.Hits.Hits {
				var p model.Product
				if err := json.Unmarshal(hit.Source, &p); err == nil {
					esProducts = append(esProducts, p)
				}
			}
			return esProducts, res.Hits.Total.Value, nil
		}
		uc.logger.Error("ES search failed, falling back to DB", zap.Error(err))
	}

	products, count, err := uc.repo.FindAll(ctx, filters)
	if err != nil {
		return nil, 0, err
	}

	if cacheKey != "" && uc.cache != nil {
		cacheData := struct {
			Products []model.Product
			Count    int
		}{
			Products: products,
			Count:    count,
		}
		if data, err := json.Marshal(cacheData); err == nil {
			uc.cache.Client.Set(ctx, cacheKey, data, 5*time.Minute)
		}
	}

	return products, count, nil
}

func (uc *productUseCase) generateCacheKey(filters *dto.ProductFilters) (string, error) {
	data, err := json.Marshal(filters)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("products:list:%x", md5.Sum(data)), nil
}

func (uc *productUseCase) invalidateProductCache(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	keys, err := uc.cache.Client.Keys(ctx, "products:list:*").Result()
	if err == nil && len(keys) > 0 {
		uc.cache.Client.Del(ctx, keys...)
	}
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, id string, input *dto.ProductInput) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errors.New("product not found")
	}

	if p.SKU != input.SKU {
		unique, err := uc.repo.IsSKUUnique(ctx, input.SKU, p.ID)
		if err != nil {
			return nil, err
		}
		if !unique {
			return nil, errors.New("SKU already exists")
		}
	}
	if input.Barcode != "" && p.Barcode != input.Barcode {
		unique, err := uc.repo.IsBarcodeUnique(ctx, input.Barcode, p.ID)
		if err != nil {
			return nil, err
		}
		if !unique {
			return nil, errors.New("Barcode already exists")
		}
	}

	p.Name = input.Name
	p.Quantity = input.Quantity
	p.Price = input.Price
	p.CostPrice = input.CostPrice
	p.TaxType = input.TaxType
	p.TaxPercentage = input.TaxPercentage
	p.SKU = input.SKU
	p.Barcode = input.Barcode
	p.StoreID = input.StoreID
	p.WarehouseID = input.WarehouseID
	p.CategoryID = input.CategoryID
	p.SubcategoryID = input.SubcategoryID
	p.BrandID = input.BrandID
	p.UnitID = input.UnitID
	p.ImageURL = &input.ImageURL
	p.VariantAttributes = input.VariantAttributes
	p.SellingType = encodeSellingType(input.SellingType)
	p.IsActive = input.IsActive
	p.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	go uc.invalidateProductCache(context.Background())
	go uc.syncToElastic(context.Background(), p)

	return p, nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id string) error {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return nil // already gone
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	go uc.invalidateProductCache(context.Background())
	if uc.es != nil {
		go func() {
			if err := uc.es.Delete(context.Background(), productIndex, id); err != nil {
				uc.logger.Error("failed to delete product from ES", zap.Error(err))
			}
		}()
	}
	return nil
}

// DeleteProducts removes each id best-effort and reports how many were
// actually deleted. A failure on one id is logged and does not stop the rest.
func (uc *productUseCase) DeleteProducts(ctx context.Context, ids []string) (int, error) {
	deleted := 0
	for _, id := range ids {
		if err := uc.DeleteProduct(ctx, id); err != nil {
			uc.logger.Error("failed to delete product",
				zap.String("product_id", id), zap.Error(err))
			continue
		}
		deleted++
	}
	return deleted, nil
}

// ExportProducts streams the filtered product list as csv or xlsx.
func (uc *productUseCase) ExportProducts(ctx context.Context, filters *dto.ProductFilters, format string, w io.Writer) error {
	// Export covers the whole result set, not one page.
	unpaged := *filters
	unpaged.Page = 0
	unpaged.PageSize = 0

	products, _, err := uc.repo.FindAll(ctx, &unpaged)
	if err != nil {
		return err
	}

	view := tabular.New(products, func(p model.Product) string { return p.ID }, uc.logger)
	switch format {
	case "xlsx":
		return view.ExportXLSX(w, "Products")
	default:
		return view.ExportCSV(w)
	}
}
