package identity

import (
	"context"

	"github.com/google/uuid"

	"github.com/shopops/backend/internal/application/system"
	"github.com/shopops/backend/internal/domain/identity"
	"github.com/shopops/backend/internal/domain/shared"
	"github.com/shopops/backend/internal/infrastructure/auth"
	"github.com/shopops/backend/internal/infrastructure/config"
)

// UserService handles user account management
type UserService struct {
	userRepo  identity.UserRepository
	blacklist auth.TokenBlacklist
	jwtConfig config.JWTConfig
	recorder  *system.Recorder
}

// NewUserService creates a new UserService
func NewUserService(
	userRepo identity.UserRepository,
	blacklist auth.TokenBlacklist,
	jwtConfig config.JWTConfig,
	recorder *system.Recorder,
) *UserService {
	return &UserService{
		userRepo:  userRepo,
		blacklist: blacklist,
		jwtConfig: jwtConfig,
		recorder:  recorder,
	}
}

// Create creates a new user account
func (s *UserService) Create(ctx context.Context, actorID *uuid.UUID, req CreateUserRequest) (*UserResponse, error) {
	exists, err := s.userRepo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Username is already taken")
	}

	role, err := identity.ParseRole(req.Role)
	if err != nil {
		return nil, err
	}
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user, err := identity.NewUser(req.Username, hash, req.Name, role)
	if err != nil {
		return nil, err
	}
	if req.Avatar != "" || req.Email != "" || req.Phone != "" {
		if err := user.UpdateProfile(req.Name, req.Avatar, req.Email, req.Phone); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	s.recorder.Record(ctx, actorID, "create", "users", user.ID.String(), nil, response)
	return &response, nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToUserResponse(user)
	return &response, nil
}

// List retrieves users with pagination and filtering
func (s *UserService) List(ctx context.Context, filter UserListFilter) ([]UserResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "created_at"
		filter.OrderDir = "desc"
	}

	repoFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  map[string]interface{}{},
	}
	if filter.Role != "" {
		repoFilter.Filters["role"] = filter.Role
	}

	users, err := s.userRepo.FindAll(ctx, repoFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.userRepo.Count(ctx, repoFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = ToUserResponse(&users[i])
	}
	return responses, total, nil
}

// Update updates a user's profile or role
func (s *UserService) Update(ctx context.Context, actorID *uuid.UUID, id uuid.UUID, req UpdateUserRequest) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	before := ToUserResponse(user)

	name := user.Name
	avatar := user.Avatar
	email := user.Email
	phone := user.Phone
	if req.Name != nil {
		name = *req.Name
	}
	if req.Avatar != nil {
		avatar = *req.Avatar
	}
	if req.Email != nil {
		email = *req.Email
	}
	if req.Phone != nil {
		phone = *req.Phone
	}
	if err := user.UpdateProfile(name, avatar, email, phone); err != nil {
		return nil, err
	}

	if req.Role != nil && *req.Role != string(user.Role) {
		role, err := identity.ParseRole(*req.Role)
		if err != nil {
			return nil, err
		}
		if err := user.ChangeRole(role); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	s.recorder.Record(ctx, actorID, "update", "users", user.ID.String(), before, response)
	return &response, nil
}

// Delete removes a user account and revokes their outstanding tokens
func (s *UserService) Delete(ctx context.Context, actorID *uuid.UUID, id uuid.UUID) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if actorID != nil && *actorID == id {
		return shared.NewDomainError("INVALID_OPERATION", "You cannot delete your own account")
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.blacklist.AddUserTokensToBlacklist(ctx, id.String(), s.jwtConfig.RefreshTokenExpiration); err != nil {
		return err
	}

	s.recorder.Record(ctx, actorID, "delete", "users", id.String(), ToUserResponse(user), nil)
	return nil
}

// ChangePassword changes the calling user's own password. All tokens issued
// before the change stop working.
func (s *UserService) ChangePassword(ctx context.Context, userID uuid.UUID, req ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := auth.VerifyPassword(user.PasswordHash, req.OldPassword); err != nil {
		return shared.NewDomainError("INVALID_CREDENTIALS", "Old password is incorrect")
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	if err := user.SetPasswordHash(hash); err != nil {
		return err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return err
	}

	if err := s.blacklist.AddUserTokensToBlacklist(ctx, userID.String(), s.jwtConfig.RefreshTokenExpiration); err != nil {
		return err
	}

	s.recorder.Record(ctx, &userID, "change_password", "users", userID.String(), nil, nil)
	return nil
}

// ResetPassword sets a new password for a user without knowing the old one.
// The user's outstanding tokens are revoked.
func (s *UserService) ResetPassword(ctx context.Context, actorID *uuid.UUID, id uuid.UUID, req ResetPasswordRequest) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	if err := user.SetPasswordHash(hash); err != nil {
		return err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return err
	}

	if err := s.blacklist.AddUserTokensToBlacklist(ctx, id.String(), s.jwtConfig.RefreshTokenExpiration); err != nil {
		return err
	}

	s.recorder.Record(ctx, actorID, "reset_password", "users", id.String(), nil, nil)
	return nil
}
