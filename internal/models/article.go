package models

import "time"

type Article struct {
	ID          string `db:"id"          json:"id"`
	Title       string `db:"title"       json:"title"`
	Description string `db:"description" json:"description"`
	Author      string `db:"author"      json:"author"`
	// Гостевая атрибуция: имя/био/аватар хранятся прямо в статье и не
	// связаны ни с одной учётной записью.
	AuthorDescription *string   `db:"author_description" json:"author_description,omitempty"`
	AuthorAvatar      *string   `db:"author_avatar"      json:"author_avatar,omitempty"`
	Date              time.Time `db:"date"               json:"date"`
	Category          string    `db:"category"           json:"category"`
	Image             string    `db:"image"              json:"image"`
	Views             int64     `db:"views"              json:"views"`
	Likes             int64     `db:"likes"              json:"likes"`
	Shares            int64     `db:"shares"             json:"shares"`
	CreatedAt         time.Time `db:"created_at"         json:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"         json:"updated_at"`
}

// swagger:model CreateArticleRequest
type CreateArticleRequest struct {
	Title             string  `json:"title"       example:"Как мы собирали стенд"`
	Description       string  `json:"description" example:"<p>Контент</p>"`
	Author            string  `json:"author"      example:"alice"`
	AuthorDescription *string `json:"author_description,omitempty"`
	AuthorAvatar      *string `json:"author_avatar,omitempty"`
	Date              string  `json:"date"        example:"2025-01-01"`
	Category          string  `json:"category"    example:"Science"`
	Image             string  `json:"image"`
}

// swagger:model UpdateArticleRequest
type UpdateArticleRequest struct {
	ID string `json:"id"`
	CreateArticleRequest
}

// LikeAction — значения поля action у POST /article/like.
const (
	LikeActionLike   = "like"
	LikeActionUnlike = "unlike"
)
