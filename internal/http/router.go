package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

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
	"ielts-academy/backend/internal/handlers"
	"ielts-academy/backend/internal/middleware"

	"github.com/go-chi/chi/v5"
)

type RouterDeps struct {
	Cfg            config.Config
	AuthClient     middleware.TokenVerifier
	CourseSvc      *course.Service
	FeatureSvc     *feature.Service
	TestimonialSvc *testimonial.Service
	GallerySvc     *gallery.Service
	TeacherSvc     *teacher.Service
	QuestionSvc    *question.Service
	ContentSvc     *content.Service
	UserSvc        *user.Service
	EnrollmentSvc  *enrollment.Service
	Uploads        *handlers.Uploads
}

func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.CORS(d.Cfg.AllowedOrigins))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		WriteJSON(w, 200, map[string]any{"ok": true, "ts": time.Now().UTC().Format(time.RFC3339)})
	})

	// ===== Public content (active records only) =====
	r.Get("/v1/courses", func(w http.ResponseWriter, r *http.Request) {
		category := strings.TrimSpace(r.URL.Query().Get("category"))
		out, err := d.CourseSvc.GetByCategory(r.Context(), category)
		if err != nil {
			status, msg := mapCourseError(err)
			Fail(w, status, msg)
			return
		}
		WriteJSON(w, 200, map[string]any{"courses": out})
	})

	r.Get("/v1/courses/search", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		out, err := d.CourseSvc.Search(r.Context(), q)
		if err != nil {
			status, msg := mapCourseError(err)
			Fail(w, status, msg)
			return
		}
		WriteJSON(w, 200, map[string]any{"courses": out})
	})

	r.Get("/v1/courses/{courseId}", func(w http.ResponseWriter, r *http.Request) {
		out, err := d.CourseSvc.GetByID(r.Context(), chi.URLParam(r, "courseId"))
		if err != nil {
			status, msg := mapCourseError(err)
			Fail(w, status, msg)
			return
		}
		if !out.IsActive {
			Fail(w, 404, "course not found")
			return
		}
		WriteJSON(w, 200, out)
	})

	r.Get("/v1/features", func(w http.ResponseWriter, r *http.Request) {
		out, err := d.FeatureSvc.GetActive(r.Context())
		if err != nil {
			status, msg := mapFeatureError(err)
			Fail(w, status, msg)
			return
		}
		WriteJSON(w, 200, map[string]any{"features": out})
	})

	r.Get("/v1/testimonials", func(w http.ResponseWriter, r *http.Request) {
		out, err := d.TestimonialSvc.GetActive(r.Context())
		if err != nil {
			status, msg := mapTestimonialError(err)
			Fail(w, status, msg)
			return
		}
		WriteJSON(w, 200, map[string]any{"testimonials": out})
	})

	r.Get("/v1/gallery", func(w http.ResponseWriter, r *http.Request) {
		category := strings.TrimSpace(r.URL.Query().Get("category"))
		out, err := d.GallerySvc.GetByCategory(r.Context(), category)
		if err != nil {
			status, msg := mapGalleryError(err)
			Fail(w, status, msg)
			return
		}
		WriteJSON(w, 200, map[string]any{"images": out})
	})

	r.Get("/v1/teachers", func(w http.ResponseWriter, r *http.Request) {
		out, err := d.TeacherSvc.GetActive(r.Context())
		if err != nil {
			status, msg := mapTeacherError(err)
			Fail(w, status, msg)
			return
		}
		WriteJSON(w, 200, map[string]any{"teachers": out})
	})

	r.Get("/v1/content/home", func(w http.ResponseWriter, r *http.Request) {
		out, err := d.ContentSvc.GetHome(r.Context())
		if err != nil {
			Fail(w, 500, err.Error())
			return
		}
		WriteJSON(w, 200, out)
	})

	r.Get("/v1/content/contact", func(w http.ResponseWriter, r *http.Request) {
		out, err := d.ContentSvc.GetContact(r.Context())
		if err != nil {
			Fail(w, 500, err.Error())
			return
		}
		WriteJSON(w, 200, out)
	})

	// Live snapshots for public pages.
	r.Get("/v1/stream/{topic}", d.handleStream)

	// ===== Enrollment hand-off =====
	r.Post("/v1/enroll", func(w http.ResponseWriter, r *http.Request) {
		var req enrollment.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			Fail(w, 400, "invalid json")
			return
		}
		url, fieldErrs, err := d.EnrollmentSvc.HandOff(r.Context(), req)
		if err != nil {
			Fail(w, 500, err.Error())
			return
		}
		if len(fieldErrs) > 0 {
			WriteJSON(w, 422, map[string]any{"errors": fieldErrs})
			return
		}
		WriteJSON(w, 200, map[string]any{"url": url})
	})

	// ===== Admin area =====
	r.Group(func(pr chi.Router) {
		pr.Use(middleware.WithAuth(d.AuthClient))
		pr.Use(middleware.AdminOnly(d.UserSvc))

		pr.Get("/v1/me", func(w http.ResponseWriter, r *http.Request) {
			au, _ := middleware.GetAuthUser(r.Context())
			WriteJSON(w, 200, map[string]any{
				"uid":   au.UID,
				"email": au.Email,
				"role":  middleware.GetRole(r.Context()),
			})
		})

		// ===== Courses =====
		pr.Get("/v1/admin/courses", func(w http.ResponseWriter, r *http.Request) {
			out, err := d.CourseSvc.GetAll(r.Context())
			if err != nil {
				status, msg := mapCourseError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"courses": out})
		})

		pr.Post("/v1/admin/courses", func(w http.ResponseWriter, r *http.Request) {
			var in course.CreateCourseInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}
			out, err := d.CourseSvc.Create(r.Context(), in)
			if err != nil {
				status, msg := mapCourseError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 201, out)
		})

		pr.Get("/v1/admin/courses/{courseId}", func(w http.ResponseWriter, r *http.Request) {
			out, err := d.CourseSvc.GetByID(r.Context(), chi.URLParam(r, "courseId"))
			if err != nil {
				status, msg := mapCourseError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Put("/v1/admin/courses/{courseId}", func(w http.ResponseWriter, r *http.Request) {
			var in course.UpdateCourseInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}
			if err := d.CourseSvc.Update(r.Context(), chi.URLParam(r, "courseId"), in); err != nil {
				status, msg := mapCourseError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"ok": true})
		})

		pr.Delete("/v1/admin/courses/{courseId}", func(w http.ResponseWriter, r *http.Request) {
			id := chi.URLParam(r, "courseId")
			if err := d.CourseSvc.Delete(r.Context(), id); err != nil {
				status, msg := mapCourseError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"ok": true, "deleted": id})
		})

		// ===== Features =====
		pr.Get("/v1/admin/features", func(w http.ResponseWriter, r *http.Request) {
			out, err := d.FeatureSvc.GetAll(r.Context())
			if err != nil {
				status, msg := mapFeatureError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"features": out})
		})

		pr.Post("/v1/admin/features", func(w http.ResponseWriter, r *http.Request) {
			var in feature.CreateFeatureInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}
			out, err := d.FeatureSvc.Create(r.Context(), in)
			if err != nil {
				status, msg := mapFeatureError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 201, out)
		})

		pr.Get("/v1/admin/features/{featureId}", func(w http.ResponseWriter, r *http.Request) {
			out, err := d.FeatureSvc.GetByID(r.Context(), chi.URLParam(r, "featureId"))
			if err != nil {
				status, msg := mapFeatureError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Put("/v1/admin/features/{featureId}", func(w http.ResponseWriter, r *http.Request) {
			var in feature.UpdateFeatureInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}
			if err := d.FeatureSvc.Update(r.Context(), chi.URLParam(r, "featureId"), in); err != nil {
				status, msg := mapFeatureError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"ok": true})
		})

		pr.Delete("/v1/admin/features/{featureId}", func(w http.ResponseWriter, r *http.Request) {
			id := chi.URLParam(r, "featureId")
			if err := d.FeatureSvc.Delete(r.Context(), id); err != nil {
				status, msg := mapFeatureError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"ok": true, "deleted": id})
		})

		// ===== Testimonials =====
		pr.Get("/v1/admin/testimonials", func(w http.ResponseWriter, r *http.Request) {
			out, err := d.TestimonialSvc.GetAll(r.Context())
			if err != nil {
				status, msg := mapTestimonialError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"testimonials": out})
		})

		pr.Post("/v1/admin/testimonials", func(w http.ResponseWriter, r *http.Request) {
			var in testimonial.CreateTestimonialInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}
			out, err := d.TestimonialSvc.Create(r.Context(), in)
			if err != nil {
				status, msg := mapTestimonialError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 201, out)
		})

		pr.Get("/v1/admin/testimonials/{testimonialId}", func(w http.ResponseWriter, r *http.Request) {
			out, err := d.TestimonialSvc.GetByID(r.Context(), chi.URLParam(r, "testimonialId"))
			if err != nil {
				status, msg := mapTestimonialError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Put("/v1/admin/testimonials/{testimonialId}", func(w http.ResponseWriter, r *http.Request) {
			var in testimonial.UpdateTestimonialInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}
			if err := d.TestimonialSvc.Update(r.Context(), chi.URLParam(r, "testimonialId"), in); err != nil {
				status, msg := mapTestimonialError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"ok": true})
		})

		pr.Delete("/v1/admin/testimonials/{testimonialId}", func(w http.ResponseWriter, r *http.Request) {
			id := chi.URLParam(r, "testimonialId")
			if err := d.TestimonialSvc.Delete(r.Context(), id); err != nil {
				status, msg := mapTestimonialError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"ok": true, "deleted": id})
		})

		// ===== Gallery =====
		pr.Get("/v1/admin/gallery", func(w http.ResponseWriter, r *http.Request) {
			out, err := d.GallerySvc.GetAll(r.Context())
			if err != nil {
				status, msg := mapGalleryError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"images": out})
		})

		pr.Post("/v1/admin/gallery", func(w http.ResponseWriter, r *http.Request) {
			var in gallery.CreateImageInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}
			out, err := d.GallerySvc.Create(r.Context(), in)
			if err != nil {
				status, msg := mapGalleryError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 201, out)
		})

		pr.Get("/v1/admin/gallery/{imageId}", func(w http.ResponseWriter, r *http.Request) {
			out, err := d.GallerySvc.GetByID(r.Context(), chi.URLParam(r, "imageId"))
			if err != nil {
				status, msg := mapGalleryError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Put("/v1/admin/gallery/{imageId}", func(w http.ResponseWriter, r *http.Request) {
			var in gallery.UpdateImageInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}
			if err := d.GallerySvc.Update(r.Context(), chi.URLParam(r, "imageId"), in); err != nil {
				status, msg := mapGalleryError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"ok": true})
		})

		pr.Delete("/v1/admin/gallery/{imageId}", func(w http.ResponseWriter, r *http.Request) {
			id := chi.URLParam(r, "imageId")
			if err := d.GallerySvc.Delete(r.Context(), id); err != nil {
				status, msg := mapGalleryError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"ok": true, "deleted": id})
		})

		// ===== Teachers =====
		pr.Get("/v1/admin/teachers", func(w http.ResponseWriter, r *http.Request) {
			out, err := d.TeacherSvc.GetAll(r.Context())
			if err != nil {
				status, msg := mapTeacherError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"teachers": out})
		})

		pr.Post("/v1/admin/teachers", func(w http.ResponseWriter, r *http.Request) {
			var in teacher.CreateTeacherInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}
			out, err := d.TeacherSvc.Create(r.Context(), in)
			if err != nil {
				status, msg := mapTeacherError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 201, out)
		})

		pr.Get("/v1/admin/teachers/{teacherId}", func(w http.ResponseWriter, r *http.Request) {
			out, err := d.TeacherSvc.GetByID(r.Context(), chi.URLParam(r, "teacherId"))
			if err != nil {
				status, msg := mapTeacherError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Put("/v1/admin/teachers/{teacherId}", func(w http.ResponseWriter, r *http.Request) {
			var in teacher.UpdateTeacherInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}
			if err := d.TeacherSvc.Update(r.Context(), chi.URLParam(r, "teacherId"), in); err != nil {
				status, msg := mapTeacherError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"ok": true})
		})

		pr.Delete("/v1/admin/teachers/{teacherId}", func(w http.ResponseWriter, r *http.Request) {
			id := chi.URLParam(r, "teacherId")
			if err := d.TeacherSvc.Delete(r.Context(), id); err != nil {
				status, msg := mapTeacherError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"ok": true, "deleted": id})
		})

		// ===== Question bank =====
		pr.Get("/v1/admin/questions", func(w http.ResponseWriter, r *http.Request) {
			var (
				out []question.Question
				err error
			)
			switch {
			case r.URL.Query().Get("section") != "":
				out, err = d.QuestionSvc.GetBySection(r.Context(), r.URL.Query().Get("section"))
			case r.URL.Query().Get("difficulty") != "":
				out, err = d.QuestionSvc.GetByDifficulty(r.Context(), r.URL.Query().Get("difficulty"))
			default:
				out, err = d.QuestionSvc.GetAll(r.Context())
			}
			if err != nil {
				status, msg := mapQuestionError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"questions": out})
		})

		pr.Post("/v1/admin/questions", func(w http.ResponseWriter, r *http.Request) {
			au, _ := middleware.GetAuthUser(r.Context())
			var in question.CreateQuestionInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}
			out, err := d.QuestionSvc.Create(r.Context(), au.UID, in)
			if err != nil {
				status, msg := mapQuestionError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 201, out)
		})

		pr.Get("/v1/admin/questions/{questionId}", func(w http.ResponseWriter, r *http.Request) {
			out, err := d.QuestionSvc.GetByID(r.Context(), chi.URLParam(r, "questionId"))
			if err != nil {
				status, msg := mapQuestionError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Put("/v1/admin/questions/{questionId}", func(w http.ResponseWriter, r *http.Request) {
			var in question.UpdateQuestionInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}
			if err := d.QuestionSvc.Update(r.Context(), chi.URLParam(r, "questionId"), in); err != nil {
				status, msg := mapQuestionError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"ok": true})
		})

		pr.Delete("/v1/admin/questions/{questionId}", func(w http.ResponseWriter, r *http.Request) {
			id := chi.URLParam(r, "questionId")
			if err := d.QuestionSvc.Delete(r.Context(), id); err != nil {
				status, msg := mapQuestionError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"ok": true, "deleted": id})
		})

		// ===== Singleton content =====
		pr.Put("/v1/admin/content/home", func(w http.ResponseWriter, r *http.Request) {
			var in content.HomeContent
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}
			if err := d.ContentSvc.SetHome(r.Context(), in); err != nil {
				Fail(w, 500, err.Error())
				return
			}
			WriteJSON(w, 200, map[string]any{"ok": true})
		})

		pr.Put("/v1/admin/content/contact", func(w http.ResponseWriter, r *http.Request) {
			var in content.ContactInfo
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}
			if err := d.ContentSvc.SetContact(r.Context(), in); err != nil {
				Fail(w, 500, err.Error())
				return
			}
			WriteJSON(w, 200, map[string]any{"ok": true})
		})

		// ===== Uploads =====
		if d.Uploads != nil {
			pr.Post("/v1/admin/uploads/signed-url", d.Uploads.CreateSignedUploadURL)
		}
	})

	return r
}

func mapCourseError(err error) (int, string) {
	if err == nil {
		return 500, "unknown error"
	}
	switch {
	case course.IsErrNotFound(err):
		return 404, err.Error()
	case course.IsErrBadRequest(err):
		return 400, err.Error()
	default:
		return 500, err.Error()
	}
}

func mapFeatureError(err error) (int, string) {
	if err == nil {
		return 500, "unknown error"
	}
	switch {
	case feature.IsErrNotFound(err):
		return 404, err.Error()
	case feature.IsErrBadRequest(err):
		return 400, err.Error()
	default:
		return 500, err.Error()
	}
}

func mapTestimonialError(err error) (int, string) {
	if err == nil {
		return 500, "unknown error"
	}
	switch {
	case testimonial.IsErrNotFound(err):
		return 404, err.Error()
	case testimonial.IsErrBadRequest(err):
		return 400, err.Error()
	default:
		return 500, err.Error()
	}
}

func mapGalleryError(err error) (int, string) {
	if err == nil {
		return 500, "unknown error"
	}
	switch {
	case gallery.IsErrNotFound(err):
		return 404, err.Error()
	case gallery.IsErrBadRequest(err):
		return 400, err.Error()
	default:
		return 500, err.Error()
	}
}

func mapTeacherError(err error) (int, string) {
	if err == nil {
		return 500, "unknown error"
	}
	switch {
	case teacher.IsErrNotFound(err):
		return 404, err.Error()
	case teacher.IsErrBadRequest(err):
		return 400, err.Error()
	default:
		return 500, err.Error()
	}
}

func mapQuestionError(err error) (int, string) {
	if err == nil {
		return 500, "unknown error"
	}
	switch {
	case question.IsErrNotFound(err):
		return 404, err.Error()
	case question.IsErrBadRequest(err):
		return 400, err.Error()
	default:
		return 500, err.Error()
	}
}
