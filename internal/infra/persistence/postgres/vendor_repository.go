package postgres

import (
	"context"
	"time"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// vendorRepository implements the repository.VendorRepository interface.
type vendorRepository struct {
	db *gorm.DB
}

// NewVendorRepository is the constructor for vendorRepository.
func NewVendorRepository(db *gorm.DB) repository.VendorRepository {
	return &vendorRepository{
		db: db,
	}
}

// CreateVendor persists a new vendor profile.
func (repo *vendorRepository) CreateVendor(ctx context.Context, vendor *entity.Vendor) error {
	vendorM := fromVendorDomain(vendor)

	if err := repo.db.WithContext(ctx).Create(vendorM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateVendor
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required vendor information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create vendor")
	}

	vendor.ID = vendorM.ID
	vendor.CreatedAt = vendorM.CreatedAt
	vendor.UpdatedAt = vendorM.UpdatedAt

	return nil
}

// FindVendorByID retrieves a vendor by its unique ID.
func (repo *vendorRepository) FindVendorByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindVendorByUserID retrieves the vendor profile owned by a user.
func (repo *vendorRepository) FindVendorByUserID(ctx context.Context, userID uuid.UUID) (*entity.Vendor, error) {
	return repo.findOne(ctx, "user_id = ?", userID)
}

func (repo *vendorRepository) findOne(ctx context.Context, query string, arg any) (*entity.Vendor, error) {
	var vendorM model.VendorModel

	if err := repo.db.WithContext(ctx).
		Where(query, arg).
		First(&vendorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor")
	}

	return toVendorDomain(&vendorM), nil
}

// FindVendorsByStatus lists vendors in the given status, oldest first.
func (repo *vendorRepository) FindVendorsByStatus(ctx context.Context, status entity.VendorStatus) ([]*entity.Vendor, error) {
	var vendorModels []*model.VendorModel

	if err := repo.db.WithContext(ctx).
		Where("status = ?", status.String()).
		Order("created_at ASC").
		Find(&vendorModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find vendors by status")
	}

	vendors := make([]*entity.Vendor, 0, len(vendorModels))
	for _, vendorM := range vendorModels {
		vendors = append(vendors, toVendorDomain(vendorM))
	}

	return vendors, nil
}

// UpdateVendorStatus sets the moderation status of a vendor.
func (repo *vendorRepository) UpdateVendorStatus(ctx context.Context, id uuid.UUID, status entity.VendorStatus) (*entity.Vendor, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.VendorModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     status.String(),
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to update vendor status")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrVendorNotFound
	}

	return repo.FindVendorByID(ctx, id)
}

// --- Mapper Functions ---

// toVendorDomain converts a GORM VendorModel to a domain Vendor entity.
func toVendorDomain(data *model.VendorModel) *entity.Vendor {
	if data == nil {
		return nil
	}

	return &entity.Vendor{
		ID:        data.ID,
		UserID:    data.UserID,
		StoreName: data.StoreName,
		Status:    entity.VendorStatus(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromVendorDomain converts a domain Vendor entity to a GORM VendorModel.
func fromVendorDomain(data *entity.Vendor) *model.VendorModel {
	if data == nil {
		return nil
	}

	return &model.VendorModel{
		ID:        data.ID,
		UserID:    data.UserID,
		StoreName: data.StoreName,
		Status:    data.Status.String(),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
