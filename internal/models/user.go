package models

import "time"

// Роли учётных записей. Владелец (owner) неудаляем и не может быть понижен.
const (
	RoleMember  = "member"
	RoleManager = "manager"
	RoleOwner   = "owner"
)

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	AuthorName   *string   `json:"author_name,omitempty"`
	Description  *string   `json:"description,omitempty"`
	AvatarImage  *string   `json:"avatar_image,omitempty"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UpdateUserRequest — обновление чужой учётки менеджером/владельцем.
// nil-поле означает «не трогать».
type UpdateUserRequest struct {
	Username    *string `json:"username,omitempty"`
	Password    *string `json:"password,omitempty"`
	AuthorName  *string `json:"author_name,omitempty"`
	Description *string `json:"description,omitempty"`
	AvatarImage *string `json:"avatar_image,omitempty"`
	Role        *string `json:"role,omitempty"`
}

// UpdateProfileRequest — самостоятельное редактирование профиля.
type UpdateProfileRequest struct {
	AuthorName  *string `json:"author_name,omitempty"`
	Description *string `json:"description,omitempty"`
	AvatarImage *string `json:"avatar_image,omitempty"`
	Password    *string `json:"password,omitempty"`
}

type UserProfileResponse struct {
	ID          string  `json:"id"`
	Username    string  `json:"username"`
	AuthorName  *string `json:"author_name,omitempty"`
	Description *string `json:"description,omitempty"`
	AvatarImage *string `json:"avatar_image,omitempty"`
	Role        string  `json:"role"`
}

func (u *User) Profile() *UserProfileResponse {
	return &UserProfileResponse{
		ID:          u.ID,
		Username:    u.Username,
		AuthorName:  u.AuthorName,
		Description: u.Description,
		AvatarImage: u.AvatarImage,
		Role:        u.Role,
	}
}
