package handlers

import (
	"bufio"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"fanhub/internal/utils/helpers"
)

// LogsHandler — просмотр логов приложения владельцем. Понимает текущий
// app.log и ротированные lumberjack-файлы app-<timestamp>.log[.gz].
type LogsHandler struct {
	LogDir    string // папка с логами
	Retention int    // дней хранить
}

func NewLogsHandler(logDir string) *LogsHandler {
	return &LogsHandler{
		LogDir:    logDir,
		Retention: 14,
	}
}

var reDay = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ListDays godoc
// @Summary Доступные дни логов
// @Description Список дат (YYYY-MM-DD), за которые есть лог-файлы.
// @Tags admin-logs
// @Produce json
// @Success 200 {object} map[string][]string
// @Failure 403 {string} string "Доступ запрещён"
// @Router /admin/logs/days [get]
// @Security CookieAuth
func (h *LogsHandler) ListDays(w http.ResponseWriter, r *http.Request) {
	today := time.Now().Local()
	days := make([]string, 0)
	for i := 0; i < h.Retention; i++ {
		d := today.AddDate(0, 0, -i).Format("2006-01-02")
		if files, err := h.listFilesForDay(d); err == nil && len(files) > 0 {
			days = append(days, d)
		}
	}
	sort.Strings(days)
	helpers.JSON(w, http.StatusOK, map[string][]string{"days": days})
}

// GetLogs godoc
// @Summary Логи за день
// @Description JSON-строки лога за день с фильтрами по уровню и подстроке.
// @Tags admin-logs
// @Produce json
// @Param day    query string true  "Дата (YYYY-MM-DD)"
// @Param level  query string false "CSV уровней: debug,info,warn,error"
// @Param q      query string false "Поиск по подстроке"
// @Param limit  query int    false "Лимит (по умолч. 200, макс. 1000)"
// @Param cursor query int    false "Номер строки для пагинации"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {string} string "Не найдено"
// @Router /admin/logs [get]
// @Security CookieAuth
func (h *LogsHandler) GetLogs(w http.ResponseWriter, r *http.Request) {
	day := r.URL.Query().Get("day")
	if !reDay.MatchString(day) {
		helpers.Error(w, http.StatusBadRequest, "Нужен day в формате YYYY-MM-DD")
		return
	}

	levelSet := toUpperSet(r.URL.Query().Get("level"))

	q := strings.TrimSpace(r.URL.Query().Get("q"))
	var qre *regexp.Regexp
	if q != "" {
		qre = regexp.MustCompile("(?i)" + regexp.QuoteMeta(q))
	}

	limit := clampAtoi(r.URL.Query().Get("limit"), 200, 50, 1000)
	cursor := clampAtoi(r.URL.Query().Get("cursor"), 0, 0, 10_000_000)

	lineNo := 0
	matched := 0
	items := make([]json.RawMessage, 0)

	err := h.forEachDayLine(day, func(raw []byte) bool {
		lineNo++
		if lineNo <= cursor {
			return true
		}
		if qre != nil && !qre.Match(raw) {
			return true
		}
		var obj map[string]any
		if err := json.Unmarshal(raw, &obj); err != nil {
			// консольные строки не в JSON — пропускаем
			return true
		}
		if len(levelSet) > 0 {
			lvl, _ := obj["level"].(string)
			if !levelSet[strings.ToUpper(lvl)] {
				return true
			}
		}

		items = append(items, append([]byte{}, raw...))
		matched++
		return matched < limit
	})
	if err != nil {
		helpers.Error(w, http.StatusNotFound, "За этот день логов нет")
		return
	}

	helpers.JSON(w, http.StatusOK, map[string]any{
		"day":        day,
		"items":      items,
		"nextCursor": cursor + matched,
	})
}

// Файлы дня: текущий app.log (только сегодня) и ротированные
// app-<timestamp>.log[.gz], у которых день зашит в имени.
func (h *LogsHandler) listFilesForDay(day string) ([]string, error) {
	entries, err := os.ReadDir(h.LogDir)
	if err != nil {
		return nil, err
	}
	today := time.Now().Local().Format("2006-01-02")

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()

		if name == "app.log" && day == today {
			files = append(files, filepath.Join(h.LogDir, name))
			continue
		}
		if strings.HasPrefix(name, "app-") && strings.Contains(name, day) &&
			(strings.HasSuffix(name, ".log") || strings.HasSuffix(name, ".gz")) {
			files = append(files, filepath.Join(h.LogDir, name))
		}
	}

	sort.Strings(files)
	return files, nil
}

func (h *LogsHandler) forEachDayLine(day string, handle func([]byte) bool) error {
	files, err := h.listFilesForDay(day)
	if err != nil || len(files) == 0 {
		return os.ErrNotExist
	}

	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			continue
		}
		var reader io.Reader = f
		var gr *gzip.Reader

		if strings.HasSuffix(path, ".gz") {
			if gzr, err := gzip.NewReader(f); err == nil {
				gr = gzr
				reader = gr
			} else {
				f.Close()
				continue
			}
		}

		sc := bufio.NewScanner(reader)
		sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for sc.Scan() {
			if keep := handle(sc.Bytes()); !keep {
				break
			}
		}

		if gr != nil {
			_ = gr.Close()
		}
		_ = f.Close()
	}
	return nil
}

func toUpperSet(csv string) map[string]bool {
	if csv == "" {
		return nil
	}
	m := map[string]bool{}
	for _, p := range strings.Split(csv, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			m[strings.ToUpper(p)] = true
		}
	}
	return m
}

func clampAtoi(s string, def, min, max int) int {
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < min {
			return min
		}
		if n > max {
			return max
		}
		return n
	}
	return def
}
