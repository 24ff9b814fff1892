package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/course-enrollment-api/internal/models"
	"github.com/noah-isme/course-enrollment-api/internal/service"
	appErrors "github.com/noah-isme/course-enrollment-api/pkg/errors"
)

type courseServiceMock struct {
	listResp []models.Course
	resp     *models.Course
	err      error
	lastReq  service.CourseRequest
	lastID   int64
}

func (m *courseServiceMock) List(ctx context.Context) ([]models.Course, error) {
	return m.listResp, m.err
}

func (m *courseServiceMock) Create(ctx context.Context, req service.CourseRequest) (*models.Course, error) {
	m.lastReq = req
	return m.resp, m.err
}

func (m *courseServiceMock) Update(ctx context.Context, id int64, req service.CourseRequest) (*models.Course, error) {
	m.lastID = id
	m.lastReq = req
	return m.resp, m.err
}

func (m *courseServiceMock) Delete(ctx context.Context, id int64) error {
	m.lastID = id
	return m.err
}

func TestCourseHandlerCreateAcceptsStringCredits(t *testing.T) {
	mockSvc := &courseServiceMock{resp: &models.Course{ID: 1, Title: "CS101", Credits: 4}}
	handler := NewCourseHandler(mockSvc)

	c, w := newTestContext(http.MethodPost, "/courses", `{"title":"CS101","credits":"4"}`)
	handler.Create(c)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, mockSvc.lastReq.Credits)
	assert.Equal(t, int64(4), mockSvc.lastReq.Credits.Int64())
	assert.JSONEq(t, `{"id":1,"title":"CS101","credits":4}`, w.Body.String())
}

func TestCourseHandlerCreateRejectsNonNumericCredits(t *testing.T) {
	handler := NewCourseHandler(&courseServiceMock{})

	c, w := newTestContext(http.MethodPost, "/courses", `{"title":"CS101","credits":"four"}`)
	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCourseHandlerRejectsFractionalCredits(t *testing.T) {
	for _, body := range []string{`{"title":"CS101","credits":1.5}`, `{"title":"CS101","credits":"1.5"}`} {
		mockSvc := &courseServiceMock{}
		handler := NewCourseHandler(mockSvc)

		c, w := newTestContext(http.MethodPost, "/courses", body)
		handler.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR", body)
		assert.Nil(t, mockSvc.lastReq.Credits, body)
	}
}

func TestCourseHandlerUpdate(t *testing.T) {
	mockSvc := &courseServiceMock{resp: &models.Course{ID: 2, Title: "CS102", Credits: 3}}
	handler := NewCourseHandler(mockSvc)

	c, w := newTestContext(http.MethodPut, "/courses/2", `{"title":"CS102","credits":3}`, gin.Param{Key: "id", Value: "2"})
	handler.Update(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(2), mockSvc.lastID)
}

func TestCourseHandlerDeleteNotFound(t *testing.T) {
	mockSvc := &courseServiceMock{err: appErrors.Clone(appErrors.ErrNotFound, "Course not found")}
	handler := NewCourseHandler(mockSvc)

	c, w := newTestContext(http.MethodDelete, "/courses/77", "", gin.Param{Key: "id", Value: "77"})
	handler.Delete(c)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, int64(77), mockSvc.lastID)
}

func TestCourseHandlerListEmpty(t *testing.T) {
	handler := NewCourseHandler(&courseServiceMock{listResp: []models.Course{}})

	c, w := newTestContext(http.MethodGet, "/courses", "")
	handler.List(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}
