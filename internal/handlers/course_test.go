package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-lesson-planner/internal/models"
	"github.com/sbilibin2017/gw-lesson-planner/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestDashboardHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCourseLister(ctrl)
	mockSess := NewMockSessioner(ctrl)
	handler := NewDashboardHandler(mockSvc, mockSess, newRenderer(t))

	t.Run("lists owned courses with flashes", func(t *testing.T) {
		mockSvc.EXPECT().ListCourses(gomock.Any(), int64(3)).
			Return([]models.Course{{ID: 1, UserID: 3, Name: "Algebra"}}, nil)
		mockSess.EXPECT().Flashes(gomock.Any(), gomock.Any()).
			Return([]string{"Class created successfully!"}, nil)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, withUser(getRequest("/"), 3))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Algebra")
		assert.Contains(t, w.Body.String(), "Class created successfully!")
	})

	t.Run("no user in context", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, getRequest("/"))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.EXPECT().ListCourses(gomock.Any(), int64(3)).Return(nil, errors.New("db error"))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, withUser(getRequest("/"), 3))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestCreateCourseHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCourseCreator(ctrl)
	mockSess := NewMockSessioner(ctrl)
	handler := NewCreateCourseHandler(mockSvc, mockSess, newRenderer(t))

	t.Run("form", func(t *testing.T) {
		mockSess.EXPECT().Flashes(gomock.Any(), gomock.Any()).Return(nil, nil)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, withUser(getRequest("/create_class"), 3))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `action="/create_class"`)
	})

	t.Run("success keeps absent fields nil", func(t *testing.T) {
		form := url.Values{"name": {"Algebra"}, "mode": {"Online"}, "weekdays": {""}}
		mockSvc.EXPECT().
			CreateCourse(gomock.Any(), int64(3), models.CreateCourseRequest{
				Name:     "Algebra",
				Mode:     strPtr("Online"),
				Weekdays: strPtr(""),
			}).
			Return(int64(10), nil)
		mockSess.EXPECT().AddFlash(gomock.Any(), gomock.Any(), "Class created successfully!").Return(nil)

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, withUser(postForm("/create_class", form), 3))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
	})

	t.Run("missing name", func(t *testing.T) {
		mockSvc.EXPECT().CreateCourse(gomock.Any(), int64(3), gomock.Any()).
			Return(int64(0), &services.ValidationError{Message: "Must provide class name"})

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, withUser(postForm("/create_class", url.Values{}), 3))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Must provide class name\n", w.Body.String())
	})
}

func TestCourseHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCourseViewer(ctrl)
	mockSess := NewMockSessioner(ctrl)
	handler := NewCourseHandler(mockSvc, mockSess, newRenderer(t))

	tests := []struct {
		name         string
		courseID     string
		mockSetup    func()
		expectedCode int
		expectedBody string
	}{
		{
			name:     "owned course",
			courseID: "5",
			mockSetup: func() {
				mockSvc.EXPECT().GetCourse(gomock.Any(), int64(3), int64(5)).Return(
					&models.Course{ID: 5, UserID: 3, Name: "Algebra"},
					[]models.Lesson{{ID: 1, CourseID: 5, Title: "Intro", Date: "2024-01-01", Status: "Planned"}},
					nil,
				)
				mockSess.EXPECT().Flashes(gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: "Intro",
		},
		{
			name:     "foreign or missing course",
			courseID: "5",
			mockSetup: func() {
				mockSvc.EXPECT().GetCourse(gomock.Any(), int64(3), int64(5)).Return(nil, nil, services.ErrCourseNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: "Course not found\n",
		},
		{
			name:         "non integer id",
			courseID:     "abc",
			mockSetup:    func() {},
			expectedCode: http.StatusNotFound,
			expectedBody: "Course not found\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, withCourseID(withUser(getRequest("/course/"+tt.courseID), 3), tt.courseID))

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestAddLessonHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLessonAdder(ctrl)
	mockSess := NewMockSessioner(ctrl)
	handler := NewAddLessonHandler(mockSvc, mockSess, newRenderer(t))

	form := url.Values{"title": {"Intro"}, "date": {"2024-01-01"}, "topic": {"sets"}}

	tests := []struct {
		name             string
		req              *http.Request
		mockSetup        func()
		expectedCode     int
		expectedLocation string
		expectedBody     string
	}{
		{
			name: "form",
			req:  getRequest("/course/5/add_lesson"),
			mockSetup: func() {
				mockSvc.EXPECT().GetOwnedCourse(gomock.Any(), int64(3), int64(5)).
					Return(&models.Course{ID: 5, UserID: 3, Name: "Algebra"}, nil)
				mockSess.EXPECT().Flashes(gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `action="/course/5/add_lesson"`,
		},
		{
			name: "form of foreign course",
			req:  getRequest("/course/5/add_lesson"),
			mockSetup: func() {
				mockSvc.EXPECT().GetOwnedCourse(gomock.Any(), int64(3), int64(5)).Return(nil, services.ErrCourseNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: "Course not found\n",
		},
		{
			name: "success",
			req:  postForm("/course/5/add_lesson", form),
			mockSetup: func() {
				mockSvc.EXPECT().
					AddLesson(gomock.Any(), int64(3), int64(5), models.AddLessonRequest{
						Title: "Intro",
						Date:  "2024-01-01",
						Topic: strPtr("sets"),
					}).
					Return(int64(1), nil)
				mockSess.EXPECT().AddFlash(gomock.Any(), gomock.Any(), "Lesson added successfully!").Return(nil)
			},
			expectedCode:     http.StatusFound,
			expectedLocation: "/course/5",
		},
		{
			name: "post to foreign course",
			req:  postForm("/course/5/add_lesson", form),
			mockSetup: func() {
				mockSvc.EXPECT().AddLesson(gomock.Any(), int64(3), int64(5), gomock.Any()).
					Return(int64(0), services.ErrCourseNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: "Course not found\n",
		},
		{
			name: "missing date",
			req:  postForm("/course/5/add_lesson", url.Values{"title": {"Intro"}}),
			mockSetup: func() {
				mockSvc.EXPECT().AddLesson(gomock.Any(), int64(3), int64(5), gomock.Any()).
					Return(int64(0), &services.ValidationError{Message: "Must provide title and date"})
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: "Must provide title and date\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, withCourseID(withUser(tt.req, 3), "5"))

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, tt.expectedLocation, w.Header().Get("Location"))
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}
