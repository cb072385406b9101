package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
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
	"ielts-academy/backend/internal/firebase"
	"ielts-academy/backend/internal/handlers"
	apihttp "ielts-academy/backend/internal/http"
	"ielts-academy/backend/internal/store"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	app, err := firebase.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("firebase app init failed: %v", err)
	}

	authClient, err := firebase.NewAuthClient(ctx, app)
	if err != nil {
		log.Fatalf("firebase auth client init failed: %v", err)
	}

	// The realtime database holds every piece of site state. When no
	// database URL is configured (local development) the server runs on
	// the in-memory backend instead.
	var backend store.Backend
	if cfg.DatabaseURL != "" {
		dbClient, err := firebase.NewDatabaseClient(ctx, app)
		if err != nil {
			log.Fatalf("realtime database init failed: %v", err)
		}
		backend = store.NewRealtimeBackend(dbClient)
	} else {
		log.Println("FIREBASE_DATABASE_URL not set, using in-memory store")
		backend = store.NewMemory()
	}
	st := store.NewClient(backend)

	// Services
	courseSvc := course.NewService(st)
	featureSvc := feature.NewService(st)
	testimonialSvc := testimonial.NewService(st)
	gallerySvc := gallery.NewService(st)
	teacherSvc := teacher.NewService(st)
	questionSvc := question.NewService(st)
	contentSvc := content.NewService(st)
	userSvc := user.NewService(st, cfg)
	enrollmentSvc := enrollment.NewService(courseSvc, cfg.WhatsAppNumber)

	router := apihttp.NewRouter(apihttp.RouterDeps{
		Cfg:            cfg,
		AuthClient:     authClient,
		CourseSvc:      courseSvc,
		FeatureSvc:     featureSvc,
		TestimonialSvc: testimonialSvc,
		GallerySvc:     gallerySvc,
		TeacherSvc:     teacherSvc,
		QuestionSvc:    questionSvc,
		ContentSvc:     contentSvc,
		UserSvc:        userSvc,
		EnrollmentSvc:  enrollmentSvc,
		Uploads:        handlers.NewUploads(cfg),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // streaming endpoints hold the response open
		IdleTimeout:  60 * time.Second,
	}

	// graceful shutdown
	go func() {
		log.Printf("API listening on :%s (project=%s)", cfg.Port, cfg.ProjectID)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 2)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Println("shutting down...")
	_ = srv.Shutdown(ctxShutdown)
}
