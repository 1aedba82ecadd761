package repository

import (
	"context"
	"errors"

	"fanhub/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ArticleRepo interface {
	Create(ctx context.Context, a *models.Article) (*models.Article, error)
	GetAll(ctx context.Context) ([]*models.Article, error)
	GetByID(ctx context.Context, id string) (*models.Article, error)
	Update(ctx context.Context, a *models.Article) error
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, q string) ([]*models.Article, error)
	ListCategories(ctx context.Context) ([]string, error)

	IncrementViews(ctx context.Context, id string) (int64, error)
	AdjustLikes(ctx context.Context, id string, delta int64) (int64, error)
	IncrementShares(ctx context.Context, id string) (int64, error)

	GetStats(ctx context.Context) ([]models.ArticleStats, error)
}

type articleRepo struct{ db *pgxpool.Pool }

func NewArticleRepo(db *pgxpool.Pool) ArticleRepo { return &articleRepo{db: db} }

const articleColumns = `id, title, description, author, author_description, author_avatar,
		       date, category, image, views, likes, shares, created_at, updated_at`

func scanArticle(row pgx.Row) (*models.Article, error) {
	var a models.Article
	err := row.Scan(
		&a.ID, &a.Title, &a.Description, &a.Author, &a.AuthorDescription, &a.AuthorAvatar,
		&a.Date, &a.Category, &a.Image, &a.Views, &a.Likes, &a.Shares, &a.CreatedAt, &a.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *articleRepo) Create(ctx context.Context, a *models.Article) (*models.Article, error) {
	const q = `
		INSERT INTO articles (id, title, description, author, author_description, author_avatar,
		                      date, category, image)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING ` + articleColumns

	return scanArticle(r.db.QueryRow(ctx, q,
		a.ID,
		a.Title,
		a.Description,
		a.Author,
		a.AuthorDescription,
		a.AuthorAvatar,
		a.Date,
		a.Category,
		a.Image,
	))
}

func (r *articleRepo) GetAll(ctx context.Context) ([]*models.Article, error) {
	const q = `SELECT ` + articleColumns + ` FROM articles ORDER BY date DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectArticles(rows)
}

func (r *articleRepo) GetByID(ctx context.Context, id string) (*models.Article, error) {
	const q = `SELECT ` + articleColumns + ` FROM articles WHERE id = $1`
	return scanArticle(r.db.QueryRow(ctx, q, id))
}

// Update заменяет изменяемые поля целиком; счётчики этим путём не трогаются.
func (r *articleRepo) Update(ctx context.Context, a *models.Article) error {
	const q = `
		UPDATE articles
		SET title=$1,
		    description=$2,
		    author=$3,
		    author_description=$4,
		    author_avatar=$5,
		    date=$6,
		    category=$7,
		    image=$8,
		    updated_at=NOW()
		WHERE id=$9
	`
	tag, err := r.db.Exec(ctx, q,
		a.Title, a.Description, a.Author, a.AuthorDescription, a.AuthorAvatar,
		a.Date, a.Category, a.Image, a.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *articleRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM articles WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *articleRepo) Search(ctx context.Context, q string) ([]*models.Article, error) {
	const sql = `
		SELECT ` + articleColumns + `
		FROM articles
		WHERE title ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%'
		ORDER BY date DESC
	`
	rows, err := r.db.Query(ctx, sql, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectArticles(rows)
}

func (r *articleRepo) ListCategories(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT category FROM articles ORDER BY category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cats []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

// Счётчики — одиночные атомарные UPDATE на стороне БД: параллельные запросы
// разных посетителей не теряют инкременты. RETURNING заодно отличает
// несуществующий id (ErrNoRows) от успешного обновления.

func (r *articleRepo) IncrementViews(ctx context.Context, id string) (int64, error) {
	return r.counter(ctx, `UPDATE articles SET views = views + 1 WHERE id=$1 RETURNING views`, id)
}

func (r *articleRepo) AdjustLikes(ctx context.Context, id string, delta int64) (int64, error) {
	// GREATEST держит инвариант likes >= 0 даже при лишнем unlike
	const q = `UPDATE articles SET likes = GREATEST(likes + $2, 0) WHERE id=$1 RETURNING likes`
	var n int64
	err := r.db.QueryRow(ctx, q, id, delta).Scan(&n)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrNotFound
	}
	return n, err
}

func (r *articleRepo) IncrementShares(ctx context.Context, id string) (int64, error) {
	return r.counter(ctx, `UPDATE articles SET shares = shares + 1 WHERE id=$1 RETURNING shares`, id)
}

func (r *articleRepo) counter(ctx context.Context, q, id string) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, q, id).Scan(&n)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrNotFound
	}
	return n, err
}

func (r *articleRepo) GetStats(ctx context.Context) ([]models.ArticleStats, error) {
	const q = `
		SELECT id, title, author, date, views, likes, shares
		FROM articles
		ORDER BY date DESC
	`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []models.ArticleStats
	for rows.Next() {
		var s models.ArticleStats
		if err := rows.Scan(&s.ID, &s.Title, &s.Author, &s.Date, &s.Views, &s.Likes, &s.Shares); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func collectArticles(rows pgx.Rows) ([]*models.Article, error) {
	var list []*models.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}
