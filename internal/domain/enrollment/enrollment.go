package enrollment

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"ielts-academy/backend/internal/domain/course"

	"github.com/go-playground/validator/v10"
)

// CourseNotDecided is the sentinel the enrollment form sends when the
// student has not picked a course yet.
const CourseNotDecided = "not-decided"

// Request is the enrollment form. Validation failures never leave as errors;
// they come back as a field->message map for inline display.
type Request struct {
	Name      string `json:"name" validate:"required,min=2"`
	Phone     string `json:"phone" validate:"required,phone"`
	Email     string `json:"email" validate:"required,email"`
	Institute string `json:"institute,omitempty"`
	Course    string `json:"course" validate:"required"`
}

func (r *Request) Trim() {
	r.Name = strings.TrimSpace(r.Name)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Email = strings.TrimSpace(r.Email)
	r.Institute = strings.TrimSpace(r.Institute)
	r.Course = strings.TrimSpace(r.Course)
}

var phoneRe = regexp.MustCompile(`^[0-9+\-\s()]+$`)
var nonDigits = regexp.MustCompile(`[^0-9+]`)

type Service struct {
	courses  *course.Service
	waNumber string
	validate *validator.Validate
}

func NewService(courses *course.Service, waNumber string) *Service {
	v := validator.New()
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	})
	return &Service{courses: courses, waNumber: waNumber, validate: v}
}

// Validate returns a field->message map; empty means the form is valid.
func (s *Service) Validate(req Request) map[string]string {
	errs := map[string]string{}
	err := s.validate.Struct(req)
	if err == nil {
		return errs
	}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["form"] = "invalid form"
		return errs
	}
	for _, fe := range ve {
		switch fe.Field() {
		case "Name":
			if fe.Tag() == "min" {
				errs["name"] = "Name must be at least 2 characters"
			} else {
				errs["name"] = "Name is required"
			}
		case "Phone":
			if fe.Tag() == "phone" {
				errs["phone"] = "Please enter a valid phone number"
			} else {
				errs["phone"] = "Phone number is required"
			}
		case "Email":
			if fe.Tag() == "email" {
				errs["email"] = "Please enter a valid email address"
			} else {
				errs["email"] = "Email is required"
			}
		case "Course":
			errs["course"] = "Please select a course"
		}
	}
	return errs
}

// HandOff validates the form and builds the messaging deep link. The second
// return value carries field errors; the request proceeds no further when it
// is non-empty. Nothing is persisted.
func (s *Service) HandOff(ctx context.Context, req Request) (string, map[string]string, error) {
	req.Trim()
	if fieldErrs := s.Validate(req); len(fieldErrs) > 0 {
		return "", fieldErrs, nil
	}

	title := "Not Decided Yet"
	if req.Course != CourseNotDecided {
		c, err := s.courses.GetByID(ctx, req.Course)
		switch {
		case err == nil:
			title = c.Title
		case course.IsErrNotFound(err):
			title = "Unknown Course"
		default:
			return "", nil, err
		}
	}

	msg := formatMessage(req, title)
	return whatsAppURL(s.waNumber, msg), nil, nil
}

func formatMessage(req Request, courseTitle string) string {
	var b strings.Builder
	b.WriteString("🎓 *New Enrollment Request*\n\n")
	fmt.Fprintf(&b, "👤 *Name:* %s\n", req.Name)
	fmt.Fprintf(&b, "📱 *Phone:* %s\n", req.Phone)
	fmt.Fprintf(&b, "📧 *Email:* %s\n", req.Email)
	if req.Institute != "" {
		fmt.Fprintf(&b, "🏫 *Institute:* %s\n", req.Institute)
	}
	fmt.Fprintf(&b, "📚 *Course:* %s\n\n", courseTitle)
	b.WriteString("_Please confirm my enrollment. Thank you!_")
	return b.String()
}

func whatsAppURL(phone, message string) string {
	cleaned := nonDigits.ReplaceAllString(phone, "")
	return "https://wa.me/" + cleaned + "?text=" + url.QueryEscape(message)
}
