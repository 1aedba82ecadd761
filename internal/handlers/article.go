package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"fanhub/internal/logger"
	"fanhub/internal/models"
	"fanhub/internal/services"
	"fanhub/internal/utils/helpers"

	"go.uber.org/zap"
)

type ArticleHandler struct {
	articleService services.ArticleService
}

func NewArticleHandler(articleService services.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

type counterRequest struct {
	ArticleID string `json:"article_id"`
	Action    string `json:"action,omitempty"`
}

type counterResponse struct {
	ArticleID string `json:"article_id"`
	Value     int64  `json:"value"`
}

type previewRequest struct {
	BodyHTML string `json:"body_html"`
}

type previewResponse struct {
	BodyHTML string `json:"body_html"`
}

// ListArticles godoc
// @Summary Список статей
// @Description Все статьи, новые первыми. Параметр id возвращает одну статью.
// @Tags articles
// @Produce json
// @Param id query string false "ID статьи"
// @Success 200 {array} models.Article
// @Failure 404 {string} string "Не найдено"
// @Router /article [get]
func (h *ArticleHandler) ListArticles(w http.ResponseWriter, r *http.Request) {
	if id := r.URL.Query().Get("id"); id != "" {
		article, err := h.articleService.Get(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		helpers.JSON(w, http.StatusOK, article)
		return
	}

	articles, err := h.articleService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, articles)
}

// SearchArticles godoc
// @Summary Поиск статей
// @Tags articles
// @Produce json
// @Param q query string false "Строка поиска по заголовку и тексту"
// @Success 200 {array} models.Article
// @Router /article/search [get]
func (h *ArticleHandler) SearchArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := h.articleService.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, articles)
}

// ListCategories godoc
// @Summary Список категорий
// @Tags articles
// @Produce json
// @Success 200 {array} string
// @Router /article/categories [get]
func (h *ArticleHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.articleService.Categories(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if cats == nil {
		cats = []string{}
	}
	helpers.JSON(w, http.StatusOK, cats)
}

// CreateArticle godoc
// @Summary Создание статьи
// @Tags articles
// @Accept json
// @Produce json
// @Param input body models.CreateArticleRequest true "Новая статья"
// @Success 201 {object} models.Article
// @Failure 400 {string} string "Ошибка валидации"
// @Router /article [post]
// @Security CookieAuth
func (h *ArticleHandler) CreateArticle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("Ошибка декодирования JSON в CreateArticle", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	article, err := h.articleService.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusCreated, article)
}

// UpdateArticle godoc
// @Summary Обновление статьи
// @Tags articles
// @Accept json
// @Produce json
// @Param input body models.UpdateArticleRequest true "Статья с id"
// @Success 200 {object} models.Article
// @Failure 400 {string} string "Ошибка валидации"
// @Failure 404 {string} string "Не найдено"
// @Router /article [put]
// @Security CookieAuth
func (h *ArticleHandler) UpdateArticle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("Ошибка декодирования JSON в UpdateArticle", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	article, err := h.articleService.Update(r.Context(), &req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, article)
}

// DeleteArticle godoc
// @Summary Удаление статьи
// @Tags articles
// @Produce json
// @Param id query string true "ID статьи"
// @Success 200 {string} string "Статья удалена"
// @Failure 404 {string} string "Не найдено"
// @Router /article [delete]
// @Security CookieAuth
func (h *ArticleHandler) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	if err := h.articleService.Delete(r.Context(), r.URL.Query().Get("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, "Статья удалена")
}

// PreviewArticle godoc
// @Summary Предпросмотр HTML статьи
// @Description Возвращает HTML после санитизации — то, что реально увидит читатель.
// @Tags articles
// @Accept json
// @Produce json
// @Param input body previewRequest true "HTML статьи"
// @Success 200 {object} previewResponse
// @Router /article/preview [post]
// @Security CookieAuth
func (h *ArticleHandler) PreviewArticle(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("Ошибка декодирования JSON в PreviewArticle", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}
	helpers.JSON(w, http.StatusOK, previewResponse{BodyHTML: h.articleService.PreviewHTML(req.BodyHTML)})
}

// IncrementView godoc
// @Summary Счётчик просмотров
// @Tags counters
// @Accept json
// @Produce json
// @Param input body counterRequest true "ID статьи"
// @Success 200 {object} counterResponse
// @Failure 404 {string} string "Не найдено"
// @Router /article/view [post]
func (h *ArticleHandler) IncrementView(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeCounter(w, r)
	if !ok {
		return
	}
	n, err := h.articleService.IncrementView(r.Context(), req.ArticleID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, counterResponse{ArticleID: req.ArticleID, Value: n})
}

// ToggleLike godoc
// @Summary Лайк/анлайк статьи
// @Tags counters
// @Accept json
// @Produce json
// @Param input body counterRequest true "ID статьи и action: like либо unlike"
// @Success 200 {object} counterResponse
// @Failure 400 {string} string "Ошибка валидации"
// @Failure 404 {string} string "Не найдено"
// @Router /article/like [post]
func (h *ArticleHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeCounter(w, r)
	if !ok {
		return
	}
	n, err := h.articleService.ToggleLike(r.Context(), req.ArticleID, req.Action)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, counterResponse{ArticleID: req.ArticleID, Value: n})
}

// IncrementShare godoc
// @Summary Счётчик репостов
// @Tags counters
// @Accept json
// @Produce json
// @Param input body counterRequest true "ID статьи"
// @Success 200 {object} counterResponse
// @Failure 404 {string} string "Не найдено"
// @Router /article/share [post]
func (h *ArticleHandler) IncrementShare(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeCounter(w, r)
	if !ok {
		return
	}
	n, err := h.articleService.IncrementShare(r.Context(), req.ArticleID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, counterResponse{ArticleID: req.ArticleID, Value: n})
}

func (h *ArticleHandler) decodeCounter(w http.ResponseWriter, r *http.Request) (counterRequest, bool) {
	var req counterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("Ошибка декодирования JSON счётчика", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return req, false
	}
	if req.ArticleID == "" {
		helpers.Error(w, http.StatusBadRequest, "Нужен article_id")
		return req, false
	}
	return req, true
}
