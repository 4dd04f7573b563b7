package models

import (
	"time"

	"github.com/avetra/venue-booking-service/internal/domain"
)

// Request модели

// LoginRequest запрос на вход сотрудника
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateStaffRequest запрос на создание сотрудника
type CreateStaffRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	RoleID   int64  `json:"roleId"`
}

// Response модели

// LoginResponse ответ на успешный вход
type LoginResponse struct {
	Token string        `json:"token"`
	User  StaffResponse `json:"user"`
}

// StaffResponse ответ с данными сотрудника (без хэша пароля)
type StaffResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	RoleID int64  `json:"roleId"`

	Role *RoleResponse `json:"role,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// StaffListResponse ответ со списком сотрудников
type StaffListResponse struct {
	Staff []StaffResponse `json:"staff"`
}

// RoleResponse ответ с данными роли
type RoleResponse struct {
	ID      int64    `json:"id"`
	Name    string   `json:"name"`
	IsAdmin bool     `json:"isAdmin"`
	Pages   []string `json:"pages"`
}

// RoleListResponse ответ со списком ролей
type RoleListResponse struct {
	Roles []RoleResponse `json:"roles"`
}

// Методы конвертации

// FromDomainStaff конвертирует domain модель в DTO
// Хэш пароля наружу не отдается
func FromDomainStaff(u *domain.StaffUser) *StaffResponse {
	if u == nil {
		return nil
	}

	return &StaffResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		RoleID:    u.RoleID,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// FromDomainStaffList конвертирует список domain моделей в DTO
func FromDomainStaffList(users []*domain.StaffUser) *StaffListResponse {
	resp := &StaffListResponse{
		Staff: make([]StaffResponse, 0, len(users)),
	}
	for _, u := range users {
		if staffResp := FromDomainStaff(u); staffResp != nil {
			resp.Staff = append(resp.Staff, *staffResp)
		}
	}
	return resp
}

// FromDomainRole конвертирует domain роль в DTO
func FromDomainRole(r *domain.Role) *RoleResponse {
	if r == nil {
		return nil
	}

	return &RoleResponse{
		ID:      r.ID,
		Name:    r.Name,
		IsAdmin: r.IsAdmin,
		Pages:   r.Pages,
	}
}

// FromDomainRoleList конвертирует список domain ролей в DTO
func FromDomainRoleList(roles []*domain.Role) *RoleListResponse {
	resp := &RoleListResponse{
		Roles: make([]RoleResponse, 0, len(roles)),
	}
	for _, r := range roles {
		if roleResp := FromDomainRole(r); roleResp != nil {
			resp.Roles = append(resp.Roles, *roleResp)
		}
	}
	return resp
}
