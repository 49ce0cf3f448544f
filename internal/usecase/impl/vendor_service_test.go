package impl

import (
	"context"
	"strings"
	"testing"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	logs "catalog/internal/infra/log"
	mockRepo "catalog/internal/mocks/repository"
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type vendorServiceFixtures struct {
	service    usecase.VendorUsecase
	vendorRepo *mockRepo.MockVendorRepository
}

func createTestVendorService(t *testing.T) vendorServiceFixtures {
	vendorRepo := mockRepo.NewMockVendorRepository(t)

	return vendorServiceFixtures{
		service:    NewVendorService(VendorServiceParams{VendorRepo: vendorRepo, Logger: logs.Discard()}),
		vendorRepo: vendorRepo,
	}
}

func TestVendorService_Onboard_CreatesPendingProfile(t *testing.T) {
	fx := createTestVendorService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.vendorRepo.EXPECT().FindVendorByUserID(ctx, userID).Return(nil, repository.ErrVendorNotFound)
	fx.vendorRepo.EXPECT().
		CreateVendor(ctx, mock.MatchedBy(func(v *entity.Vendor) bool {
			return v.UserID == userID && v.Status == entity.VendorStatusPending && v.StoreName == "Corner Shop"
		})).
		Return(nil)

	vendor, err := fx.service.Onboard(ctx, userID, " Corner Shop ")
	require.NoError(t, err)
	assert.Equal(t, entity.VendorStatusPending, vendor.Status)
}

func TestVendorService_Onboard_Errors(t *testing.T) {
	tests := []struct {
		name      string
		storeName string
		setup     func(fx vendorServiceFixtures, userID uuid.UUID)
		wantErr   error
	}{
		{
			name:      "blank store name",
			storeName: "  ",
			setup:     func(vendorServiceFixtures, uuid.UUID) {},
			wantErr:   domainerrors.ErrValidationFailed,
		},
		{
			name:      "store name too long",
			storeName: strings.Repeat("x", maxStoreNameLength+1),
			setup:     func(vendorServiceFixtures, uuid.UUID) {},
			wantErr:   domainerrors.ErrValidationFailed,
		},
		{
			name:      "profile exists",
			storeName: "Shop",
			setup: func(fx vendorServiceFixtures, userID uuid.UUID) {
				fx.vendorRepo.EXPECT().FindVendorByUserID(mock.Anything, userID).Return(&entity.Vendor{UserID: userID}, nil)
			},
			wantErr: domainerrors.ErrVendorAlreadyExists,
		},
		{
			name:      "concurrent onboarding",
			storeName: "Shop",
			setup: func(fx vendorServiceFixtures, userID uuid.UUID) {
				fx.vendorRepo.EXPECT().FindVendorByUserID(mock.Anything, userID).Return(nil, repository.ErrVendorNotFound)
				fx.vendorRepo.EXPECT().CreateVendor(mock.Anything, mock.Anything).Return(repository.ErrDuplicateVendor)
			},
			wantErr: domainerrors.ErrVendorAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestVendorService(t)
			userID := uuid.New()
			tt.setup(fx, userID)

			_, err := fx.service.Onboard(context.Background(), userID, tt.storeName)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestVendorService_UpdateStatus(t *testing.T) {
	fx := createTestVendorService(t)
	ctx := context.Background()
	vendorID := uuid.New()

	_, err := fx.service.UpdateStatus(ctx, vendorID, "SUSPENDED")
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	fx.vendorRepo.EXPECT().UpdateVendorStatus(ctx, vendorID, entity.VendorStatusRejected).Return(nil, repository.ErrVendorNotFound).Once()
	_, err = fx.service.UpdateStatus(ctx, vendorID, entity.VendorStatusRejected)
	assert.True(t, errors.Is(err, domainerrors.ErrVendorNotFound))

	fx.vendorRepo.EXPECT().UpdateVendorStatus(ctx, vendorID, entity.VendorStatusApproved).
		Return(&entity.Vendor{ID: vendorID, Status: entity.VendorStatusApproved}, nil).Once()
	vendor, err := fx.service.UpdateStatus(ctx, vendorID, entity.VendorStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, entity.VendorStatusApproved, vendor.Status)
}

func TestVendorService_RequireApproved(t *testing.T) {
	tests := []struct {
		name    string
		vendor  *entity.Vendor
		repoErr error
		wantErr error
	}{
		{name: "approved", vendor: &entity.Vendor{Status: entity.VendorStatusApproved}},
		{name: "pending", vendor: &entity.Vendor{Status: entity.VendorStatusPending}, wantErr: domainerrors.ErrVendorNotApproved},
		{name: "rejected", vendor: &entity.Vendor{Status: entity.VendorStatusRejected}, wantErr: domainerrors.ErrVendorNotApproved},
		{name: "no profile", repoErr: repository.ErrVendorNotFound, wantErr: domainerrors.ErrVendorNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestVendorService(t)
			userID := uuid.New()

			fx.vendorRepo.EXPECT().FindVendorByUserID(mock.Anything, userID).Return(tt.vendor, tt.repoErr)

			vendor, err := fx.service.RequireApproved(context.Background(), userID)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.Nil(t, vendor)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, entity.VendorStatusApproved, vendor.Status)
		})
	}
}

func TestVendorService_ListPending(t *testing.T) {
	fx := createTestVendorService(t)
	ctx := context.Background()

	fx.vendorRepo.EXPECT().FindVendorsByStatus(ctx, entity.VendorStatusPending).Return([]*entity.Vendor{{StoreName: "a"}, {StoreName: "b"}}, nil)

	vendors, err := fx.service.ListPending(ctx)
	require.NoError(t, err)
	assert.Len(t, vendors, 2)
}
