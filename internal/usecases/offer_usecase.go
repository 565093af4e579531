package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"token-market.backend/internal/domain/entities"
	domainerrors "token-market.backend/internal/domain/errors"
	"token-market.backend/internal/domain/repositories"
	"token-market.backend/pkg/utils"
)

// OfferUsecase handles listing lifecycle: creation (with seller upsert),
// browsing and cancellation.
type OfferUsecase struct {
	offerRepo  repositories.OfferRepository
	sellerRepo repositories.SellerRepository
	tokenRepo  repositories.TokenRepository
	uow        repositories.UnitOfWork
}

// NewOfferUsecase creates a new offer usecase
func NewOfferUsecase(
	offerRepo repositories.OfferRepository,
	sellerRepo repositories.SellerRepository,
	tokenRepo repositories.TokenRepository,
	uow repositories.UnitOfWork,
) *OfferUsecase {
	return &OfferUsecase{
		offerRepo:  offerRepo,
		sellerRepo: sellerRepo,
		tokenRepo:  tokenRepo,
		uow:        uow,
	}
}

// CreateOffer upserts the seller on their external id and creates an active
// listing.
func (u *OfferUsecase) CreateOffer(ctx context.Context, input *entities.CreateOfferInput) (*entities.Offer, error) {
	if input.Quantity <= 0 || input.PricePerToken <= 0 || input.SellerExternalID == "" {
		return nil, domainerrors.ErrBadRequest
	}
	tokenID, err := uuid.Parse(input.TokenID)
	if err != nil {
		return nil, domainerrors.ErrBadRequest
	}

	token, err := u.tokenRepo.GetByID(ctx, tokenID)
	if err != nil {
		return nil, err
	}
	if input.WalletAddress != "" && isEVMBlockchain(token.Blockchain) && !common.IsHexAddress(input.WalletAddress) {
		return nil, domainerrors.BadRequest("invalid wallet address")
	}

	seller := &entities.Seller{
		ExternalID:    input.SellerExternalID,
		WalletID:      input.WalletID,
		WalletAddress: input.WalletAddress,
	}

	now := time.Now()
	offer := &entities.Offer{
		ID:            utils.GenerateUUIDv7(),
		TokenID:       token.ID,
		Quantity:      input.Quantity,
		PricePerToken: input.PricePerToken,
		Status:        entities.OfferStatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.sellerRepo.Upsert(txCtx, seller); err != nil {
			return err
		}
		offer.SellerID = seller.ID
		return u.offerRepo.Create(txCtx, offer)
	}); err != nil {
		return nil, err
	}

	offer.Token = token
	offer.Seller = seller
	return offer, nil
}

// GetOffer gets an offer by ID with token and seller
func (u *OfferUsecase) GetOffer(ctx context.Context, id uuid.UUID) (*entities.Offer, error) {
	return u.offerRepo.GetByID(ctx, id)
}

// ListOffers lists active offers, newest first
func (u *OfferUsecase) ListOffers(ctx context.Context, page, limit int) ([]*entities.Offer, int64, error) {
	p := utils.GetPaginationParams(page, limit)
	return u.offerRepo.ListActive(ctx, p.Limit, p.CalculateOffset())
}

// CancelOffer cancels a listing on behalf of its seller
func (u *OfferUsecase) CancelOffer(ctx context.Context, offerID uuid.UUID, sellerExternalID string) error {
	if sellerExternalID == "" {
		return domainerrors.ErrBadRequest
	}
	seller, err := u.sellerRepo.GetByExternalID(ctx, sellerExternalID)
	if err != nil {
		return err
	}
	return u.offerRepo.Cancel(ctx, offerID, seller.ID)
}

func isEVMBlockchain(blockchain string) bool {
	switch strings.ToLower(blockchain) {
	case "ethereum", "polygon", "base", "arbitrum", "optimism", "bsc":
		return true
	}
	return false
}
