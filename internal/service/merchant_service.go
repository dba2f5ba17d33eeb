package service

import (
	"context"

	"github.com/emmawebdev2005/ShopGenius/internal/domain"
	"go.uber.org/zap"
)

// MerchantService turns merchant input into catalog entries.
type MerchantService struct {
	auth         AuthGateway
	catalog      CatalogGateway
	generator    ListingGenerator
	defaultStock int
	logger       *zap.Logger
}

func NewMerchantService(auth AuthGateway, catalog CatalogGateway, generator ListingGenerator, defaultStock int, logger *zap.Logger) *MerchantService {
	return &MerchantService{
		auth:         auth,
		catalog:      catalog,
		generator:    generator,
		defaultStock: defaultStock,
		logger:       logger,
	}
}

// Generate drafts a listing from free text. Nothing is stored.
func (s *MerchantService) Generate(ctx context.Context, sessionID, freeText string) (domain.ListingDraft, error) {
	if _, err := currentUser(ctx, s.auth, sessionID); err != nil {
		return domain.ListingDraft{}, err
	}
	draft, err := s.generator.GenerateListing(ctx, freeText)
	if err != nil {
		s.logger.Warn("Listing generation failed", zap.Error(err))
		return domain.ListingDraft{}, err
	}
	return draft, nil
}

// PublishDraft validates an edited draft and lists it with the default stock.
func (s *MerchantService) PublishDraft(ctx context.Context, sessionID string, draft domain.ListingDraft) (*domain.Product, error) {
	valid, err := draft.Validate()
	if err != nil {
		return nil, err
	}
	return s.Publish(ctx, sessionID, valid.ProductRequest(s.defaultStock))
}

func (s *MerchantService) Publish(ctx context.Context, sessionID string, req domain.CreateProductRequest) (*domain.Product, error) {
	user, err := currentUser(ctx, s.auth, sessionID)
	if err != nil {
		return nil, err
	}
	p, err := req.Validate()
	if err != nil {
		return nil, err
	}

	created, err := s.catalog.AddProduct(ctx, p)
	if err != nil {
		s.logger.Error("Failed to save product",
			zap.String("title", p.Title),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("Product created successfully",
		zap.String("product_id", created.ID),
		zap.String("merchant_id", user.ID),
		zap.Int("initial_stock", created.Stock))
	return created, nil
}
