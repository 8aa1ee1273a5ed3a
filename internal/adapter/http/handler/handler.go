package handler

import (
	"errors"
	"strconv"
	"strings"

	"wallet-admin-console/internal/adapter/http/middleware"
	"wallet-admin-console/internal/core/domain"
	"wallet-admin-console/internal/view"
	"wallet-admin-console/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindError turns a binding failure into a validation error, using the
// console's own wording for the fields it knows about.
func bindError(err error) *apperror.AppError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "decimal_gt0":
			if fe.Field() == "Rate" {
				return apperror.ErrInvalidRate()
			}
			return apperror.ErrInvalidAmount()
		case "currency_code":
			return apperror.ErrInvalidCurrencyCode()
		case "email":
			return apperror.Validation("Email address is invalid")
		case "required":
			return apperror.Validation(fe.Field() + " is required")
		}
	}
	return apperror.Validation(err.Error())
}

// bindOptionalJSON binds the body when there is one.
func bindOptionalJSON(c *gin.Context, obj any) error {
	if c.Request.ContentLength == 0 {
		return nil
	}
	return c.ShouldBindJSON(obj)
}

func parseID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.Validation("Invalid " + name)
	}
	return id, nil
}

// pageQuery reads page and per_page. Services apply the defaults.
func pageQuery(c *gin.Context) domain.PageRequest {
	page, _ := strconv.Atoi(c.Query("page"))
	perPage, _ := strconv.Atoi(c.Query("per_page"))
	return domain.PageRequest{Page: page, PerPage: perPage}
}

func currentSession(c *gin.Context) (*domain.Session, error) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		return nil, apperror.ErrSessionExpired()
	}
	return s, nil
}

const maxViewInstanceLen = 64

// viewKey scopes a view name to the screen instance named by the
// X-View-Instance header. Without the header all screens of the session
// share one source.
func viewKey(c *gin.Context, name string) string {
	instance := strings.TrimSpace(c.GetHeader(middleware.HeaderViewInstance))
	if instance == "" {
		return name
	}
	if len(instance) > maxViewInstanceLen {
		instance = instance[:maxViewInstanceLen]
	}
	return name + "@" + instance
}

// viewSource returns the source of a named view for the requesting screen.
func viewSource[P, T any](c *gin.Context, hub *view.Hub, session *domain.Session, name string, fetch view.Fetch[P, T], empty func(T) bool) *view.Source[P, T] {
	return view.Get(hub, session.ID.String(), viewKey(c, name), func() *view.Source[P, T] {
		return view.NewSource(fetch, empty)
	})
}

// loadView loads a view for the requesting screen. A load overtaken by a
// newer one on the same screen fails with REQ_001.
func loadView[P, T any](c *gin.Context, hub *view.Hub, name string, fetch view.Fetch[P, T], empty func(T) bool, params P) (T, view.Presentation, error) {
	var zero T
	session, err := currentSession(c)
	if err != nil {
		return zero, view.PresentationError, err
	}
	src := viewSource(c, hub, session, name, fetch, empty)
	data, err := src.Load(c.Request.Context(), params)
	if err != nil {
		return zero, view.PresentationError, err
	}
	return data, src.Snapshot().Presentation(), nil
}

func pageEmpty[T any](p *domain.Page[T]) bool {
	return p == nil || p.Empty()
}

func listEmpty[T any](items []T) bool {
	return len(items) == 0
}
