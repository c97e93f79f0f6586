package user

import "github.com/luckycunningwolf/HRMS/internal/shared/istime"

type CreateUserRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8,max=72"`
	FullName   string `json:"full_name" binding:"required,max=255"`
	Role       string `json:"role" binding:"required,oneof=admin employee"`
	EmployeeID string `json:"employee_id" binding:"omitempty,uuid"`
}

type LinkEmployeeRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
}

type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=admin employee"`
}

type ResetPasswordRequest struct {
	Password string `json:"password" binding:"required,min=8,max=72"`
}

type ListFilter struct {
	Role     string `form:"role" binding:"omitempty,oneof=admin employee"`
	Active   string `form:"active" binding:"omitempty,oneof=true false"`
	Unlinked bool   `form:"unlinked"`
}

type UserResponse struct {
	ID          string  `json:"id"`
	Email       string  `json:"email"`
	FullName    string  `json:"full_name"`
	Role        string  `json:"role"`
	EmployeeID  *string `json:"employee_id,omitempty"`
	IsActive    bool    `json:"is_active"`
	LastLoginAt *string `json:"last_login_at,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

// View renders a profile for other packages without exposing the hash.
func View(u *UserProfile) UserResponse {
	return mapToResponse(u)
}

func mapToResponse(u *UserProfile) UserResponse {
	resp := UserResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: istime.FormatDateTime(u.CreatedAt),
	}
	if u.EmployeeID != nil {
		v := u.EmployeeID.String()
		resp.EmployeeID = &v
	}
	if u.LastLoginAt != nil {
		v := istime.FormatDateTime(*u.LastLoginAt)
		resp.LastLoginAt = &v
	}
	return resp
}

func mapToListResponse(items []UserProfile) []UserResponse {
	out := make([]UserResponse, 0, len(items))
	for i := range items {
		out = append(out, mapToResponse(&items[i]))
	}
	return out
}
