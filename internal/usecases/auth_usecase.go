package usecases

import (
	"context"
	"strings"

	domainerrors "token-market.backend/internal/domain/errors"
	"token-market.backend/internal/infrastructure/kravata"
	"token-market.backend/pkg/crypto"
	"token-market.backend/pkg/jwt"
)

// ProviderComplianceAPI is the slice of the Kravata client the session flow
// uses
type ProviderComplianceAPI interface {
	GetKYCStatus(ctx context.Context, externalID string) (*kravata.KYCStatus, error)
}

// AuthUsecase issues buyer and admin session tokens
type AuthUsecase struct {
	provider          ProviderComplianceAPI
	jwtService        *jwt.Service
	adminUsername     string
	adminPasswordHash string
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(provider ProviderComplianceAPI, jwtService *jwt.Service, adminUsername, adminPasswordHash string) *AuthUsecase {
	return &AuthUsecase{
		provider:          provider,
		jwtService:        jwtService,
		adminUsername:     adminUsername,
		adminPasswordHash: adminPasswordHash,
	}
}

// CreateBuyerSession exchanges a KYC-approved external id for a session token
func (u *AuthUsecase) CreateBuyerSession(ctx context.Context, externalID string) (string, error) {
	if externalID == "" {
		return "", domainerrors.ErrBadRequest
	}

	status, err := u.provider.GetKYCStatus(ctx, externalID)
	if err != nil {
		return "", domainerrors.Upstream("failed to verify kyc status", err)
	}
	if !strings.EqualFold(status.Status, "approved") {
		return "", domainerrors.ErrKYCNotApproved
	}

	return u.jwtService.Generate(externalID, jwt.RoleBuyer)
}

// AdminLogin checks admin credentials and issues an admin session token
func (u *AuthUsecase) AdminLogin(_ context.Context, username, password string) (string, error) {
	if u.adminPasswordHash == "" {
		return "", domainerrors.ErrUnauthorized
	}
	if username != u.adminUsername || !crypto.CheckPassword(password, u.adminPasswordHash) {
		return "", domainerrors.ErrUnauthorized
	}
	return u.jwtService.Generate(username, jwt.RoleAdmin)
}
