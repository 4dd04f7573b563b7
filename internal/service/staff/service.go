package staff

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/avetra/venue-booking-service/internal/domain"
	staffRepo "github.com/avetra/venue-booking-service/internal/infra/storage/staff"
	"github.com/avetra/venue-booking-service/internal/service/staff/models"
)

// Service сервис аутентификации и управления сотрудниками
type Service struct {
	staffRepo   StaffRepository
	tokenIssuer TokenIssuer
	logger      Logger
}

// NewService создает новый экземпляр сервиса сотрудников
func NewService(staffRepo StaffRepository, tokenIssuer TokenIssuer, logger Logger) *Service {
	return &Service{
		staffRepo:   staffRepo,
		tokenIssuer: tokenIssuer,
		logger:      logger,
	}
}

// Login аутентифицирует сотрудника по email и паролю
// Возвращает JWT и данные сотрудника с ролью
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	user, err := s.staffRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			s.logger.Warn("Login: unknown email %s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for email %s: %v", email, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: wrong password for staff id=%d", user.ID)
		return nil, ErrInvalidCredentials
	}

	role, err := s.staffRepo.GetRoleByID(ctx, user.RoleID)
	if err != nil {
		s.logger.Error("Login: failed to get role id=%d: %v", user.RoleID, err)
		return nil, fmt.Errorf("%w: Login - failed to get role: %v", ErrInternal, err)
	}

	token, err := s.tokenIssuer.Generate(user.ID, role.Name)
	if err != nil {
		s.logger.Error("Login: failed to generate token for staff id=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: Login - failed to generate token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: staff id=%d logged in with role=%s", user.ID, role.Name)

	resp := models.FromDomainStaff(user)
	resp.Role = models.FromDomainRole(role)

	return &models.LoginResponse{
		Token: token,
		User:  *resp,
	}, nil
}

// Create создает нового сотрудника с хэшированием пароля
func (s *Service) Create(ctx context.Context, req *models.CreateStaffRequest) (*models.StaffResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	s.logger.Info("Create: creating staff user email=%s", email)

	if strings.TrimSpace(req.Name) == "" || email == "" {
		return nil, fmt.Errorf("%w: name and email are required", ErrInvalidInput)
	}
	if len(req.Password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", ErrInvalidInput)
	}
	if req.RoleID <= 0 {
		return nil, fmt.Errorf("%w: roleId must be positive", ErrInvalidInput)
	}

	if _, err := s.staffRepo.GetRoleByID(ctx, req.RoleID); err != nil {
		if errors.Is(err, staffRepo.ErrRoleNotFound) {
			s.logger.Warn("Create: role id=%d not found", req.RoleID)
			return nil, ErrRoleNotFound
		}
		s.logger.Error("Create: failed to get role id=%d: %v", req.RoleID, err)
		return nil, fmt.Errorf("%w: Create - failed to get role: %v", ErrInternal, err)
	}

	// Email уникален: существующий пользователь блокирует создание
	if _, err := s.staffRepo.GetByEmail(ctx, email); err == nil {
		s.logger.Warn("Create: email %s is already taken", email)
		return nil, ErrEmailTaken
	} else if !errors.Is(err, staffRepo.ErrStaffNotFound) {
		s.logger.Error("Create: repository error for email %s: %v", email, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Create: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Create - failed to hash password: %v", ErrInternal, err)
	}

	user := &domain.StaffUser{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hash),
		RoleID:       req.RoleID,
	}

	created, err := s.staffRepo.Create(ctx, user)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created staff user id=%d", created.ID)
	return models.FromDomainStaff(created), nil
}

// List получает список всех сотрудников
func (s *Service) List(ctx context.Context) (*models.StaffListResponse, error) {
	users, err := s.staffRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d staff users", len(users))
	return models.FromDomainStaffList(users), nil
}

// ListRoles получает список всех ролей
func (s *Service) ListRoles(ctx context.Context) (*models.RoleListResponse, error) {
	roles, err := s.staffRepo.ListRoles(ctx)
	if err != nil {
		s.logger.Error("ListRoles: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListRoles - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRoleList(roles), nil
}

// GetRole получает роль сотрудника для проверки доступа к страницам админки
func (s *Service) GetRole(ctx context.Context, staffID int64) (*models.RoleResponse, error) {
	user, err := s.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			return nil, ErrStaffNotFound
		}
		s.logger.Error("GetRole: repository error for staff id=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: GetRole - repository error: %v", ErrInternal, err)
	}

	role, err := s.staffRepo.GetRoleByID(ctx, user.RoleID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrRoleNotFound) {
			return nil, ErrRoleNotFound
		}
		s.logger.Error("GetRole: failed to get role id=%d: %v", user.RoleID, err)
		return nil, fmt.Errorf("%w: GetRole - failed to get role: %v", ErrInternal, err)
	}

	return models.FromDomainRole(role), nil
}
