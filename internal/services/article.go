package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fanhub/internal/logger"
	"fanhub/internal/models"
	"fanhub/internal/repository"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

type ArticleService interface {
	List(ctx context.Context) ([]*models.Article, error)
	Get(ctx context.Context, id string) (*models.Article, error)
	Search(ctx context.Context, q string) ([]*models.Article, error)
	Categories(ctx context.Context) ([]string, error)
	Create(ctx context.Context, input *models.CreateArticleRequest) (*models.Article, error)
	Update(ctx context.Context, input *models.UpdateArticleRequest) (*models.Article, error)
	Delete(ctx context.Context, id string) error
	PreviewHTML(raw string) string

	IncrementView(ctx context.Context, id string) (int64, error)
	ToggleLike(ctx context.Context, id, action string) (int64, error)
	IncrementShare(ctx context.Context, id string) (int64, error)

	Analytics(ctx context.Context, role string) (*models.AnalyticsSummary, error)
}

type articleService struct {
	repo             repository.ArticleRepo
	sanitizer        *bluemonday.Policy
	placeholderImage string
}

func NewArticleService(repo repository.ArticleRepo, placeholderImage string) ArticleService {
	sanitizer := bluemonday.UGCPolicy()
	sanitizer.AllowImages()
	return &articleService{
		repo:             repo,
		sanitizer:        sanitizer,
		placeholderImage: placeholderImage,
	}
}

func (s *articleService) List(ctx context.Context) ([]*models.Article, error) {
	return s.repo.GetAll(ctx)
}

func (s *articleService) Get(ctx context.Context, id string) (*models.Article, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *articleService) Search(ctx context.Context, q string) ([]*models.Article, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return s.repo.GetAll(ctx)
	}
	return s.repo.Search(ctx, q)
}

func (s *articleService) Categories(ctx context.Context) ([]string, error) {
	return s.repo.ListCategories(ctx)
}

func (s *articleService) Create(ctx context.Context, input *models.CreateArticleRequest) (*models.Article, error) {
	log := logger.WithCtx(ctx)
	log.Info("Создание статьи (service)", zap.String("title", input.Title))

	a, err := s.fromRequest(input)
	if err != nil {
		return nil, err
	}
	a.ID = uuid.NewString()

	created, err := s.repo.Create(ctx, a)
	if err != nil {
		log.Error("Ошибка создания статьи (service)", zap.Error(err))
		return nil, err
	}

	log.Info("Статья создана (service)", zap.String("article_id", created.ID))
	return created, nil
}

func (s *articleService) Update(ctx context.Context, input *models.UpdateArticleRequest) (*models.Article, error) {
	log := logger.WithCtx(ctx)
	log.Info("Обновление статьи (service)", zap.String("article_id", input.ID))

	if strings.TrimSpace(input.ID) == "" {
		return nil, fmt.Errorf("%w: нужен id статьи", ErrValidation)
	}

	a, err := s.fromRequest(&input.CreateArticleRequest)
	if err != nil {
		return nil, err
	}
	a.ID = input.ID

	if err := s.repo.Update(ctx, a); err != nil {
		log.Error("Ошибка обновления статьи (service)", zap.Error(err), zap.String("article_id", input.ID))
		return nil, err
	}

	return s.repo.GetByID(ctx, input.ID)
}

func (s *articleService) Delete(ctx context.Context, id string) error {
	log := logger.WithCtx(ctx)
	log.Info("Удаление статьи (service)", zap.String("article_id", id))

	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: нужен id статьи", ErrValidation)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error("Ошибка удаления статьи (service)", zap.Error(err), zap.String("article_id", id))
		return err
	}
	return nil
}

// PreviewHTML прогоняет HTML статьи через санитайзер — тот же фильтр,
// что применяет клиент перед отрисовкой контента.
func (s *articleService) PreviewHTML(raw string) string {
	return s.sanitizer.Sanitize(raw)
}

func (s *articleService) IncrementView(ctx context.Context, id string) (int64, error) {
	return s.repo.IncrementViews(ctx, id)
}

// ToggleLike принимает action like/unlike; unlike при нуле лайков не уводит
// счётчик в минус.
func (s *articleService) ToggleLike(ctx context.Context, id, action string) (int64, error) {
	switch action {
	case models.LikeActionLike:
		return s.repo.AdjustLikes(ctx, id, 1)
	case models.LikeActionUnlike:
		return s.repo.AdjustLikes(ctx, id, -1)
	default:
		return 0, fmt.Errorf("%w: action должен быть like или unlike", ErrValidation)
	}
}

func (s *articleService) IncrementShare(ctx context.Context, id string) (int64, error) {
	return s.repo.IncrementShares(ctx, id)
}

// Analytics собирает сводку по всем статьям. Блок page_traffic добавляется
// только владельцу; уникальные посетители оцениваются как 70% просмотров.
func (s *articleService) Analytics(ctx context.Context, role string) (*models.AnalyticsSummary, error) {
	stats, err := s.repo.GetStats(ctx)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка сбора аналитики (service)", zap.Error(err))
		return nil, err
	}

	summary := &models.AnalyticsSummary{Articles: stats}
	for _, st := range stats {
		summary.TotalViews += st.Views
		summary.TotalLikes += st.Likes
		summary.TotalShares += st.Shares
	}

	if role == models.RoleOwner {
		summary.PageTraffic = &models.PageTraffic{
			TotalPageViews: summary.TotalViews,
			UniqueVisitors: summary.TotalViews * 7 / 10,
			ArticlesCount:  len(stats),
		}
	}

	return summary, nil
}

// fromRequest валидирует запрос и превращает его в статью. Дата принимается
// как 2006-01-02 либо полный RFC3339; пустая картинка заменяется заглушкой.
func (s *articleService) fromRequest(input *models.CreateArticleRequest) (*models.Article, error) {
	title := strings.TrimSpace(input.Title)
	author := strings.TrimSpace(input.Author)
	category := strings.TrimSpace(input.Category)

	if title == "" || input.Description == "" || author == "" || category == "" || input.Date == "" {
		return nil, fmt.Errorf("%w: нужны title, description, author, date и category", ErrValidation)
	}

	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		date, err = time.Parse(time.RFC3339, input.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: дата не разобрана: %s", ErrValidation, input.Date)
		}
	}

	image := strings.TrimSpace(input.Image)
	if image == "" {
		image = s.placeholderImage
	}

	return &models.Article{
		Title:             title,
		Description:       input.Description,
		Author:            author,
		AuthorDescription: input.AuthorDescription,
		AuthorAvatar:      input.AuthorAvatar,
		Date:              date,
		Category:          category,
		Image:             image,
	}, nil
}
