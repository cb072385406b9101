package enrollment

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"ielts-academy/backend/internal/domain/course"
	"ielts-academy/backend/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, *course.Service) {
	t.Helper()
	courses := course.NewService(store.NewClient(store.NewMemory()))
	return NewService(courses, "+8801777476142"), courses
}

func TestValidateReportsAllFieldErrors(t *testing.T) {
	svc, _ := newTestService(t)

	errs := svc.Validate(Request{Name: "A", Phone: "abc", Email: "not-an-email"})
	assert.Equal(t, "Name must be at least 2 characters", errs["name"])
	assert.Equal(t, "Please enter a valid phone number", errs["phone"])
	assert.Equal(t, "Please enter a valid email address", errs["email"])
	assert.Equal(t, "Please select a course", errs["course"])
}

func TestValidateRequiredMessages(t *testing.T) {
	svc, _ := newTestService(t)

	errs := svc.Validate(Request{})
	assert.Equal(t, "Name is required", errs["name"])
	assert.Equal(t, "Phone number is required", errs["phone"])
	assert.Equal(t, "Email is required", errs["email"])
}

func TestValidateAcceptsWellFormedRequest(t *testing.T) {
	svc, _ := newTestService(t)

	errs := svc.Validate(Request{
		Name:   "Sadia Islam",
		Phone:  "+880 1777-476142",
		Email:  "sadia@example.com",
		Course: CourseNotDecided,
	})
	assert.Empty(t, errs)
}

func TestHandOffBuildsDeepLink(t *testing.T) {
	ctx := context.Background()
	svc, courses := newTestService(t)

	c, err := courses.Create(ctx, course.CreateCourseInput{
		Title:    "IELTS Main Course",
		Category: course.CategoryFullCourses,
	})
	require.NoError(t, err)

	link, fieldErrs, err := svc.HandOff(ctx, Request{
		Name:      "Ahmed Rahman",
		Phone:     "+880 1777-476142",
		Email:     "ahmed@example.com",
		Institute: "Sylhet Govt College",
		Course:    c.ID,
	})
	require.NoError(t, err)
	assert.Empty(t, fieldErrs)

	assert.True(t, strings.HasPrefix(link, "https://wa.me/+8801777476142?text="), link)

	u, err := url.Parse(link)
	require.NoError(t, err)
	msg := u.Query().Get("text")
	assert.Contains(t, msg, "New Enrollment Request")
	assert.Contains(t, msg, "Ahmed Rahman")
	assert.Contains(t, msg, "IELTS Main Course")
	assert.Contains(t, msg, "Sylhet Govt College")
}

func TestHandOffUndecidedCourse(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	link, fieldErrs, err := svc.HandOff(ctx, Request{
		Name:   "Fatima Begum",
		Phone:  "01777476142",
		Email:  "fatima@example.com",
		Course: CourseNotDecided,
	})
	require.NoError(t, err)
	assert.Empty(t, fieldErrs)

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Contains(t, u.Query().Get("text"), "Not Decided Yet")
}

func TestHandOffUnknownCourseID(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	link, fieldErrs, err := svc.HandOff(ctx, Request{
		Name:   "Mohammad Ali",
		Phone:  "01777476142",
		Email:  "ali@example.com",
		Course: "course_deleted_meanwhile",
	})
	require.NoError(t, err)
	assert.Empty(t, fieldErrs)

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Contains(t, u.Query().Get("text"), "Unknown Course")
}

func TestHandOffRejectsInvalidForm(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	link, fieldErrs, err := svc.HandOff(ctx, Request{Name: "X"})
	require.NoError(t, err)
	assert.Empty(t, link)
	assert.NotEmpty(t, fieldErrs)
}
