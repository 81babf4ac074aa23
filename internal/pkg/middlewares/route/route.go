package route

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Template возвращает шаблон mux-роута (/orders/{id}), если запрос прошел через роутер,
// иначе сырой путь. Нужен, чтобы не раздувать кардинальность метрик.
func Template(r *http.Request) string {
	current := mux.CurrentRoute(r)
	if current == nil {
		return r.URL.Path
	}

	template, err := current.GetPathTemplate()
	if err != nil {
		return r.URL.Path
	}
	return template
}
