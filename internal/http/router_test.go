package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ielts-academy/backend/internal/config"
	"ielts-academy/backend/internal/domain/content"
	"ielts-academy/backend/internal/domain/course"
	"ielts-academy/backend/internal/domain/enrollment"
	"ielts-academy/backend/internal/domain/feature"
	"ielts-academy/backend/internal/domain/gallery"
	"ielts-academy/backend/internal/domain/question"
	"ielts-academy/backend/internal/domain/teacher"
	"ielts-academy/backend/internal/domain/testimonial"
	"ielts-academy/backend/internal/domain/user"
	"ielts-academy/backend/internal/store"

	"firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct{}

func (stubVerifier) VerifyIDToken(_ context.Context, idToken string) (*auth.Token, error) {
	if idToken != "admin-token" {
		return nil, errors.New("rejected")
	}
	return &auth.Token{
		UID:    "admin-uid",
		Claims: map[string]interface{}{"email": "owner@academy.com", "name": "Owner"},
	}, nil
}

func newTestRouter(t *testing.T) (http.Handler, *store.Client) {
	t.Helper()
	st := store.NewClient(store.NewMemory())
	cfg := config.Config{
		AdminEmails:    []string{"owner@academy.com"},
		WhatsAppNumber: "+8801777476142",
	}

	courseSvc := course.NewService(st)
	deps := RouterDeps{
		Cfg:            cfg,
		AuthClient:     stubVerifier{},
		CourseSvc:      courseSvc,
		FeatureSvc:     feature.NewService(st),
		TestimonialSvc: testimonial.NewService(st),
		GallerySvc:     gallery.NewService(st),
		TeacherSvc:     teacher.NewService(st),
		QuestionSvc:    question.NewService(st),
		ContentSvc:     content.NewService(st),
		UserSvc:        user.NewService(st, cfg),
		EnrollmentSvc:  enrollment.NewService(courseSvc, cfg.WhatsAppNumber),
	}
	return NewRouter(deps), st
}

func doJSON(t *testing.T, h http.Handler, method, path, token, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var rd *strings.Reader
	if body == "" {
		rd = strings.NewReader("")
	} else {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var out map[string]interface{}
	_ = json.Unmarshal(rec.Body.Bytes(), &out)
	return rec, out
}

func TestHealthz(t *testing.T) {
	h, _ := newTestRouter(t)
	rec, out := doJSON(t, h, "GET", "/healthz", "", "")
	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, true, out["ok"])
}

func TestPublicCoursesShowOnlyActive(t *testing.T) {
	h, st := newTestRouter(t)
	ctx := context.Background()

	courses := course.NewService(st)
	_, err := courses.Create(ctx, course.CreateCourseInput{Title: "Shown", Category: course.CategoryFullCourses})
	require.NoError(t, err)
	off := false
	_, err = courses.Create(ctx, course.CreateCourseInput{Title: "Hidden", Category: course.CategoryFullCourses, IsActive: &off})
	require.NoError(t, err)

	rec, out := doJSON(t, h, "GET", "/v1/courses", "", "")
	require.Equal(t, 200, rec.Code)
	list := out["courses"].([]interface{})
	require.Len(t, list, 1)
	assert.Equal(t, "Shown", list[0].(map[string]interface{})["title"])
}

func TestPublicCourseDetailHidesInactive(t *testing.T) {
	h, st := newTestRouter(t)
	ctx := context.Background()

	courses := course.NewService(st)
	off := false
	hidden, err := courses.Create(ctx, course.CreateCourseInput{Title: "Hidden", Category: course.CategorySpecialized, IsActive: &off})
	require.NoError(t, err)

	rec, _ := doJSON(t, h, "GET", "/v1/courses/"+hidden.ID, "", "")
	assert.Equal(t, 404, rec.Code)

	rec, _ = doJSON(t, h, "GET", "/v1/courses/no-such-course", "", "")
	assert.Equal(t, 404, rec.Code)
}

func TestCourseSearchEndpoint(t *testing.T) {
	h, st := newTestRouter(t)
	ctx := context.Background()

	courses := course.NewService(st)
	_, err := courses.Create(ctx, course.CreateCourseInput{Title: "Writing Correction Package", Category: course.CategoryPracticeTests})
	require.NoError(t, err)
	_, err = courses.Create(ctx, course.CreateCourseInput{Title: "IELTS Main Course", Category: course.CategoryFullCourses})
	require.NoError(t, err)

	rec, out := doJSON(t, h, "GET", "/v1/courses/search?q=writing", "", "")
	require.Equal(t, 200, rec.Code)
	list := out["courses"].([]interface{})
	require.Len(t, list, 1)
	assert.Equal(t, "Writing Correction Package", list[0].(map[string]interface{})["title"])
}

func TestInvalidCategoryIs400(t *testing.T) {
	h, _ := newTestRouter(t)
	rec, _ := doJSON(t, h, "GET", "/v1/courses?category=bogus", "", "")
	assert.Equal(t, 400, rec.Code)
}

func TestAdminRoutesRequireAuth(t *testing.T) {
	h, _ := newTestRouter(t)

	rec, _ := doJSON(t, h, "GET", "/v1/admin/courses", "", "")
	assert.Equal(t, 401, rec.Code)

	rec, _ = doJSON(t, h, "GET", "/v1/admin/courses", "wrong-token", "")
	assert.Equal(t, 401, rec.Code)
}

func TestAdminCourseLifecycle(t *testing.T) {
	h, _ := newTestRouter(t)

	rec, created := doJSON(t, h, "POST", "/v1/admin/courses", "admin-token",
		`{"title":"Speaking Mock Session","fee":"৳600","category":"practice-tests"}`)
	require.Equal(t, 201, rec.Code)
	id := created["id"].(string)
	require.NotEmpty(t, id)

	rec, got := doJSON(t, h, "GET", "/v1/admin/courses/"+id, "admin-token", "")
	require.Equal(t, 200, rec.Code)
	assert.Equal(t, "Speaking Mock Session", got["title"])

	rec, _ = doJSON(t, h, "PUT", "/v1/admin/courses/"+id, "admin-token", `{"fee":"৳700"}`)
	require.Equal(t, 200, rec.Code)

	rec, got = doJSON(t, h, "GET", "/v1/admin/courses/"+id, "admin-token", "")
	require.Equal(t, 200, rec.Code)
	assert.Equal(t, "৳700", got["fee"])

	rec, _ = doJSON(t, h, "DELETE", "/v1/admin/courses/"+id, "admin-token", "")
	require.Equal(t, 200, rec.Code)

	rec, _ = doJSON(t, h, "GET", "/v1/admin/courses/"+id, "admin-token", "")
	assert.Equal(t, 404, rec.Code)
}

func TestAdminCreateRejectsUnknownFieldsGracefully(t *testing.T) {
	h, _ := newTestRouter(t)
	rec, _ := doJSON(t, h, "POST", "/v1/admin/courses", "admin-token", `{not json`)
	assert.Equal(t, 400, rec.Code)
}

func TestMeEndpoint(t *testing.T) {
	h, _ := newTestRouter(t)
	rec, out := doJSON(t, h, "GET", "/v1/me", "admin-token", "")
	require.Equal(t, 200, rec.Code)
	assert.Equal(t, "admin-uid", out["uid"])
	assert.Equal(t, user.RoleAdmin, out["role"])
}

func TestAdminContentPutThenPublicGet(t *testing.T) {
	h, _ := newTestRouter(t)

	rec, _ := doJSON(t, h, "PUT", "/v1/admin/content/contact", "admin-token",
		`{"email":"info@academy.com","phone":"01777-476142","address":"Sylhet"}`)
	require.Equal(t, 200, rec.Code)

	rec, out := doJSON(t, h, "GET", "/v1/content/contact", "", "")
	require.Equal(t, 200, rec.Code)
	assert.Equal(t, "01777-476142", out["phone"])
}

func TestEnrollEndpoint(t *testing.T) {
	h, _ := newTestRouter(t)

	rec, out := doJSON(t, h, "POST", "/v1/enroll", "",
		`{"name":"Ahmed Rahman","phone":"+880 1777-476142","email":"ahmed@example.com","course":"not-decided"}`)
	require.Equal(t, 200, rec.Code)
	link := out["url"].(string)
	assert.True(t, strings.HasPrefix(link, "https://wa.me/+8801777476142?text="), link)

	rec, out = doJSON(t, h, "POST", "/v1/enroll", "", `{"name":"A","phone":"abc"}`)
	require.Equal(t, 422, rec.Code)
	errs := out["errors"].(map[string]interface{})
	assert.Contains(t, errs, "phone")
	assert.Contains(t, errs, "email")
}

func TestAdminQuestionCreateStampsAuthor(t *testing.T) {
	h, _ := newTestRouter(t)

	rec, created := doJSON(t, h, "POST", "/v1/admin/questions", "admin-token",
		`{"question":"Pick one","type":"multiple-choice","section":"reading","difficulty":"easy","options":["a","b"],"correctAnswer":"a"}`)
	require.Equal(t, 201, rec.Code)
	assert.Equal(t, "admin-uid", created["createdBy"])
}

func TestStreamUnknownTopic(t *testing.T) {
	h, _ := newTestRouter(t)
	rec, _ := doJSON(t, h, "GET", "/v1/stream/weather", "", "")
	assert.Equal(t, 404, rec.Code)
}
