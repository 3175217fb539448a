package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-lesson-planner/internal/middlewares"
	"github.com/sbilibin2017/gw-lesson-planner/internal/views"
	"github.com/stretchr/testify/require"
)

func newRenderer(t *testing.T) *views.Renderer {
	t.Helper()
	v, err := views.New()
	require.NoError(t, err)
	return v
}

func getRequest(target string) *http.Request {
	return httptest.NewRequest(http.MethodGet, target, nil)
}

func postForm(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func withUser(req *http.Request, userID int64) *http.Request {
	return req.WithContext(middlewares.WithUserID(req.Context(), userID))
}

func withCourseID(req *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(CourseIDParam, id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func strPtr(s string) *string { return &s }
