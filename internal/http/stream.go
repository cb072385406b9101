package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"ielts-academy/backend/internal/domain/content"
	"ielts-academy/backend/internal/domain/course"
	"ielts-academy/backend/internal/domain/feature"
	"ielts-academy/backend/internal/domain/gallery"
	"ielts-academy/backend/internal/domain/teacher"
	"ielts-academy/backend/internal/domain/testimonial"

	"github.com/go-chi/chi/v5"
)

// handleStream pushes live snapshots of a public collection over
// server-sent events. Every event carries the full current view, so a
// client that misses intermediate events still converges on the latest
// state; the buffered channel below coalesces bursts to the newest
// snapshot instead of queueing stale ones.
func (d RouterDeps) handleStream(w http.ResponseWriter, r *http.Request) {
	topic := chi.URLParam(r, "topic")

	flusher, ok := w.(http.Flusher)
	if !ok {
		Fail(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	updates := make(chan any, 1)
	push := func(v any) {
		for {
			select {
			case updates <- v:
				return
			default:
				select {
				case <-updates: // drop the stale snapshot
				default:
				}
			}
		}
	}

	var cancel func()
	switch topic {
	case "courses":
		cancel = d.CourseSvc.Subscribe(func(cs []course.Course) {
			push(map[string]any{"courses": activeCourses(cs)})
		})
	case "features":
		cancel = d.FeatureSvc.Subscribe(func(fs []feature.Feature) {
			push(map[string]any{"features": activeFeatures(fs)})
		})
	case "testimonials":
		cancel = d.TestimonialSvc.Subscribe(func(ts []testimonial.Testimonial) {
			push(map[string]any{"testimonials": activeTestimonials(ts)})
		})
	case "gallery":
		cancel = d.GallerySvc.Subscribe(func(is []gallery.Image) {
			push(map[string]any{"images": activeImages(is)})
		})
	case "teachers":
		cancel = d.TeacherSvc.Subscribe(func(ts []teacher.Teacher) {
			push(map[string]any{"teachers": activeTeachers(ts)})
		})
	case "home":
		cancel = d.ContentSvc.SubscribeHome(func(h *content.HomeContent) { push(h) })
	case "contact":
		cancel = d.ContentSvc.SubscribeContact(func(c *content.ContactInfo) { push(c) })
	default:
		Fail(w, http.StatusNotFound, "unknown topic")
		return
	}
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case v := <-updates:
			payload, err := json.Marshal(v)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", topic, payload)
			flusher.Flush()
		}
	}
}

// Public streams expose only active records, same as the REST routes.

func activeCourses(in []course.Course) []course.Course {
	out := make([]course.Course, 0, len(in))
	for _, c := range in {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out
}

func activeFeatures(in []feature.Feature) []feature.Feature {
	out := make([]feature.Feature, 0, len(in))
	for _, f := range in {
		if f.IsActive {
			out = append(out, f)
		}
	}
	return out
}

func activeTestimonials(in []testimonial.Testimonial) []testimonial.Testimonial {
	out := make([]testimonial.Testimonial, 0, len(in))
	for _, t := range in {
		if t.IsActive {
			out = append(out, t)
		}
	}
	return out
}

func activeImages(in []gallery.Image) []gallery.Image {
	out := make([]gallery.Image, 0, len(in))
	for _, i := range in {
		if i.IsActive {
			out = append(out, i)
		}
	}
	return out
}

func activeTeachers(in []teacher.Teacher) []teacher.Teacher {
	out := make([]teacher.Teacher, 0, len(in))
	for _, t := range in {
		if t.IsActive {
			out = append(out, t)
		}
	}
	return out
}
