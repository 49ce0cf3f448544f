package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const maxStoreNameLength = 100

// vendorService implements the VendorUsecase interface.
type vendorService struct {
	vendorRepo repository.VendorRepository
	logger     *slog.Logger
}

// VendorServiceParams holds dependencies for VendorService, injected by Fx.
type VendorServiceParams struct {
	fx.In

	VendorRepo repository.VendorRepository
	Logger     *slog.Logger
}

// NewVendorService is the constructor for vendorService.
func NewVendorService(params VendorServiceParams) usecase.VendorUsecase {
	return &vendorService{
		vendorRepo: params.VendorRepo,
		logger:     params.Logger,
	}
}

func (srv *vendorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Onboard creates a PENDING vendor profile. A user can own only one.
func (srv *vendorService) Onboard(ctx context.Context, userID uuid.UUID, storeName string) (*entity.Vendor, error) {
	storeName = strings.TrimSpace(storeName)
	if storeName == "" || utf8.RuneCountInString(storeName) > maxStoreNameLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails("store name must be 1 to 100 characters")
	}

	_, err := srv.vendorRepo.FindVendorByUserID(ctx, userID)
	switch {
	case err == nil:
		return nil, domainerrors.ErrVendorAlreadyExists
	case !errors.Is(err, repository.ErrVendorNotFound):
		return nil, errors.Wrap(err, "failed to look up vendor profile")
	}

	vendor := &entity.Vendor{
		UserID:    userID,
		StoreName: storeName,
		Status:    entity.VendorStatusPending,
	}
	if err := srv.vendorRepo.CreateVendor(ctx, vendor); err != nil {
		if errors.Is(err, repository.ErrDuplicateVendor) {
			return nil, domainerrors.ErrVendorAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create vendor profile")
	}

	srv.log(ctx).Info("Vendor onboarded",
		slog.String("vendor_id", vendor.ID.String()),
		slog.String("user_id", userID.String()),
	)

	return vendor, nil
}

// UpdateStatus moves a vendor to the given moderation state.
func (srv *vendorService) UpdateStatus(ctx context.Context, vendorID uuid.UUID, status entity.VendorStatus) (*entity.Vendor, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown vendor status")
	}

	vendor, err := srv.vendorRepo.UpdateVendorStatus(ctx, vendorID, status)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, domainerrors.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "failed to update vendor status")
	}

	srv.log(ctx).Info("Vendor status updated",
		slog.String("vendor_id", vendorID.String()),
		slog.String("status", status.String()),
	)

	return vendor, nil
}

func (srv *vendorService) ListPending(ctx context.Context) ([]*entity.Vendor, error) {
	vendors, err := srv.vendorRepo.FindVendorsByStatus(ctx, entity.VendorStatusPending)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending vendors")
	}

	return vendors, nil
}

func (srv *vendorService) GetByUser(ctx context.Context, userID uuid.UUID) (*entity.Vendor, error) {
	vendor, err := srv.vendorRepo.FindVendorByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, domainerrors.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor profile")
	}

	return vendor, nil
}

// RequireApproved resolves the user's vendor profile and fails unless it is APPROVED.
func (srv *vendorService) RequireApproved(ctx context.Context, userID uuid.UUID) (*entity.Vendor, error) {
	vendor, err := srv.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if vendor.Status != entity.VendorStatusApproved {
		return nil, domainerrors.ErrVendorNotApproved
	}

	return vendor, nil
}
