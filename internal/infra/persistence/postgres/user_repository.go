package postgres

import (
	"context"
	"time"

	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/repository"
	"planner/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByUserID retrieves a single user by business key.
func (repo *userRepository) FindByUserID(ctx context.Context, userID string) (*entity.User, error) {
	return repo.first(ctx, "failed to find user by user id", "user_id = ?", userID)
}

// FindByCredential retrieves the user whose user id or user name equals value.
func (repo *userRepository) FindByCredential(ctx context.Context, value string) (*entity.User, error) {
	return repo.first(ctx, "failed to find user by credential", "user_id = ? OR user_name = ?", value, value)
}

// FindByUserIDOrUserName retrieves a user matching either field.
func (repo *userRepository) FindByUserIDOrUserName(ctx context.Context, userID, userName string) (*entity.User, error) {
	return repo.first(ctx, "failed to find user by user id or user name", "user_id = ? OR user_name = ?", userID, userName)
}

func (repo *userRepository) first(ctx context.Context, msg string, query string, args ...any) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).Where(query, args...).Order("created_at").First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, msg)
	}

	return toUserDomain(&userM), nil
}

// List returns users ordered naturally by user id.
func (repo *userRepository) List(ctx context.Context, role entity.Role) ([]*entity.User, error) {
	tx := repo.db.WithContext(ctx).Order("LENGTH(user_id), user_id")
	if role != "" {
		tx = tx.Where("role = ?", role.String())
	}

	var userMs []*model.UserModel
	if err := tx.Find(&userMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userMs))
	for _, userM := range userMs {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// Create persists a new user.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	if userM.ID == uuid.Nil {
		userM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert constraint errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("user id or user name already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update saves the mutable fields of an existing user.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("user_id = ?", user.UserID).
		Updates(map[string]any{
			"user_name":  userM.UserName,
			"password":   userM.Password,
			"phone_no":   userM.PhoneNo,
			"first_name": userM.FirstName,
			"last_name":  userM.LastName,
			"updated_at": now,
		})
	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("user name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}
	user.UpdatedAt = now

	return nil
}

// DeleteByUserID hard-deletes the user row.
func (repo *userRepository) DeleteByUserID(ctx context.Context, userID string) error {
	result := repo.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.UserModel{})
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:        data.ID,
		UserID:    data.UserID,
		UserName:  data.UserName,
		Password:  data.Password,
		PhoneNo:   data.PhoneNo,
		Role:      entity.Role(data.Role),
		FirstName: data.FirstName,
		LastName:  data.LastName,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:        data.ID,
		UserID:    data.UserID,
		UserName:  data.UserName,
		Password:  data.Password,
		PhoneNo:   data.PhoneNo,
		Role:      data.Role.String(),
		FirstName: data.FirstName,
		LastName:  data.LastName,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
