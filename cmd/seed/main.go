package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"ielts-academy/backend/internal/config"
	"ielts-academy/backend/internal/domain/content"
	"ielts-academy/backend/internal/domain/course"
	"ielts-academy/backend/internal/domain/feature"
	"ielts-academy/backend/internal/domain/gallery"
	"ielts-academy/backend/internal/domain/question"
	"ielts-academy/backend/internal/domain/testimonial"
	"ielts-academy/backend/internal/firebase"
	"ielts-academy/backend/internal/store"
)

// One-shot initializer: populates the database with the launch content.
// Existing records at the seeded paths are overwritten, so run it once.
func main() {
	yes := flag.Bool("yes", false, "confirm overwriting existing data")
	flag.Parse()
	if !*yes {
		log.Fatal("this overwrites courses, home content and the question bank; re-run with -yes to confirm")
	}

	ctx := context.Background()
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("FIREBASE_DATABASE_URL is required")
	}

	app, err := firebase.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("firebase app init failed: %v", err)
	}
	dbClient, err := firebase.NewDatabaseClient(ctx, app)
	if err != nil {
		log.Fatalf("realtime database init failed: %v", err)
	}
	st := store.NewClient(store.NewRealtimeBackend(dbClient))

	now := time.Now().UTC().Format(time.RFC3339)

	seed := func(path string, v interface{}, label string, n int) {
		if err := st.Set(ctx, path, v); err != nil {
			log.Fatalf("seeding %s failed: %v", label, err)
		}
		log.Printf("seeded %d %s", n, label)
	}

	cs := seedCourses(now)
	seed(course.Path, cs, "courses", len(cs))

	ts := seedTestimonials(now)
	seed(testimonial.Path, ts, "testimonials", len(ts))

	fs := seedFeatures(now)
	seed(feature.Path, fs, "features", len(fs))

	gs := seedGallery(now)
	seed(gallery.Path, gs, "gallery images", len(gs))

	qs := seedQuestions(now)
	seed(question.Path, qs, "questions", len(qs))

	seed(content.HomePath, content.HomeContent{
		HeroTitle:    "Shah Sultan's IELTS Academy",
		HeroSubtitle: "Your pathway to IELTS success in Sylhet",
		AboutText:    "We prepare students for the IELTS exam with expert-led classes, regular mock tests and personalized feedback.",
	}, "home content record", 1)

	seed(content.ContactPath, content.ContactInfo{
		Email:   "info@shahsultansieltsacademy.com",
		Phone:   "01777-476142",
		Address: "R.B Complex, 6th Floor, East-Zindabazar, Sylhet",
	}, "contact record", 1)

	fmt.Println("ok: database seeded")
}

func seedCourses(now string) map[string]course.Course {
	base := []course.Course{
		{
			ID:          "mock-test",
			Title:       "IELTS Mock Test",
			Description: "Experience a real exam simulation for IELTS candidates, available every Wednesday and accessible from anywhere.",
			Schedule:    "Every Wednesday",
			Fee:         "৳500",
			Syllabus:    []string{"Complete IELTS Test Simulation", "Listening Section", "Reading Section", "Writing Section", "Speaking Section"},
			Features:    []string{"Real Exam Conditions", "Available Every Wednesday", "Accessible From Anywhere", "Detailed Results & Feedback"},
			Image:       "https://i.postimg.cc/nrqr1By1/539247467-122208956534126286-4192278702647914682-n.jpg",
			Category:    course.CategoryPracticeTests,
			Location:    "R.B Complex, 6th Floor, East-Zindabazar, Sylhet",
			Contact:     "01777-476142",
		},
		{
			ID:          "writing-correction",
			Title:       "Writing Correction Package",
			Description: "Submit your essays and reports for detailed corrections, band score estimation, and personalized improvement tips.",
			Fee:         "৳550",
			Syllabus:    []string{"Task 1 Report Writing", "Task 2 Essay Writing", "Grammar & Vocabulary Review", "Structure & Coherence Analysis"},
			Features:    []string{"Detailed Corrections with Feedback", "Band Score Estimation", "Improvement Tips Provided", "Quick Turnaround Time"},
			Image:       "https://i.postimg.cc/K8xkJpv3/536268281-122208266720126286-7708938899969929883-n.jpg",
			Category:    course.CategoryPracticeTests,
			Contact:     "01777-476142",
		},
		{
			ID:          "speaking-mock",
			Title:       "Speaking Mock Session",
			Description: "One-to-one speaking practice with an instructor covering all three parts of the IELTS Speaking test with instant feedback.",
			Duration:    "20 Minutes",
			Fee:         "৳600",
			Syllabus:    []string{"Part 1 - Introduction & General Questions", "Part 2 - Individual Long Turn", "Part 3 - Two-Way Discussion", "Pronunciation & Fluency Assessment"},
			Features:    []string{"One-to-One Speaking Practice", "Instant Feedback", "Improvement Tips", "Band Score Estimation"},
			Image:       "https://i.postimg.cc/85Jjjqw9/538697568-122208847814126286-1506791474113233191-n.jpg",
			Category:    course.CategoryPracticeTests,
			Location:    "R.B Complex, 6th Floor, East-Zindabazar, Sylhet",
			Contact:     "01777-476142",
		},
		{
			ID:          "listening-practice",
			Title:       "Listening Practice Test",
			Description: "Computer-based listening test following the real IELTS exam format with answer script and detailed explanations.",
			Fee:         "৳500",
			Syllabus:    []string{"Section 1 - Social Needs", "Section 2 - Social Needs", "Section 3 - Educational/Training Context", "Section 4 - Academic Lecture"},
			Features:    []string{"Computer-Based Format", "Real Exam Format", "Answer Script with Explanations", "Listening Strategies Provided"},
			Image:       "https://i.postimg.cc/sDpGPCyR/531282655-122207768174126286-920943197667186533-n.jpg",
			Category:    course.CategoryPracticeTests,
			Contact:     "01777-476142",
		},
		{
			ID:          "reading-practice",
			Title:       "Reading Practice Package",
			Description: "Full-length reading practice test with answer key, explanations, time management strategies, and band score estimate.",
			Fee:         "৳550",
			Syllabus:    []string{"Academic/General Reading Passages", "Various Question Types", "Time Management Training", "Reading Comprehension Techniques"},
			Features:    []string{"Full-Length Reading Practice Test", "Answer Key with Explanations", "Time Management Strategies", "Band Score Estimate Included"},
			Image:       "https://i.postimg.cc/SsvCP6tF/480479123-122187622418126286-254834324271260339-n.jpg",
			Category:    course.CategoryPracticeTests,
			Contact:     "01777-476142",
		},
		{
			ID:          "grammar-vocabulary",
			Title:       "Grammar & Vocabulary Workshop",
			Description: "A 2-hour workshop focusing on essential grammar and vocabulary for IELTS success, including common mistakes and practice activities.",
			Duration:    "2 Hours",
			Fee:         "৳600",
			Syllabus:    []string{"IELTS Grammar Requirements", "Essential Academic Vocabulary", "Common Mistakes in Writing & Speaking", "Lexical Resource Development"},
			Features:    []string{"Worksheets and Practice Activities", "Small Group Class (Max 15)", "Focus on Common IELTS Mistakes", "Take-Home Materials"},
			Image:       "https://i.postimg.cc/8kf65r0c/531884297-122207766092126286-3499288174679764451-n.jpg",
			Category:    course.CategoryPracticeTests,
			Location:    "R.B Complex, 6th Floor, East-Zindabazar, Sylhet",
			Contact:     "01777-476142",
		},
		{
			ID:          "ielts-main-course",
			Title:       "IELTS Main Course",
			Description: "A comprehensive IELTS preparation course with special focus on speaking skills and regular assessment to track your progress.",
			Fee:         "৳4,000",
			Syllabus:    []string{"Complete IELTS Preparation", "3-Step Speaking Skill Development", "IELTS Speaking Module Preparation", "Regular Assessments"},
			Features:    []string{"7 Months Free Club Access", "Regular Exams at Every Step", "Free Course Completion Certificate", "HSC & Alim Students Get ৳500 Discount"},
			Image:       "https://i.postimg.cc/xCwqHt4C/538764322-122208956384126286-2203106024956929594-n.jpg",
			Category:    course.CategoryFullCourses,
			Contact:     "01777-476142",
		},
		{
			ID:          "computer-based-ielts",
			Title:       "Computer-Based IELTS",
			Description: "Specialized preparation for the computer-based IELTS exam format with up-to-date study materials and expert guidance.",
			Fee:         "Special Discount - Up to 25% Off",
			Syllabus:    []string{"Computer-Based Test Strategies", "Digital Interface Navigation", "Typing Speed Improvement", "On-Screen Reading Techniques"},
			Features:    []string{"Updated Study Materials", "Expert Guidelines", "Special Gift Included", "Practice with Authentic Test Interface"},
			Image:       "https://i.postimg.cc/y8jJ5hkQ/536269114-122208451460126286-8178065957127452715-n.jpg",
			Category:    course.CategorySpecialized,
			Location:    "R.B Complex, 6th Floor, East-Zindabazar, Sylhet",
			Contact:     "01777-476142",
		},
		{
			ID:          "spoken-english",
			Title:       "Spoken English Course",
			Description: "Develop your conversational English skills with a focus on vocabulary, pronunciation, and fluency for everyday situations.",
			Schedule:    "Morning: Starts 10 Sept, 11:15 AM (Sat, Mon, Wed) | Afternoon: Starts 18 Sept, 4:15 PM (Sun, Tue, Thu)",
			Fee:         "Contact for details",
			Syllabus:    []string{"Vocabulary Development", "Daily Life Conversation Practice", "Easy Grammar Lessons", "Interview & Presentation Training"},
			Features:    []string{"Pronunciation & Fluency Training", "Small Group Sessions", "Practical Conversation Scenarios", "Regular Speaking Assessment"},
			Image:       "https://i.postimg.cc/mr6PZb37/538260651-122208847982126286-601535625864210434-n.jpg",
			Category:    course.CategorySpecialized,
			Contact:     "01777-476142",
		},
		{
			ID:          "cambridge-winning-batch",
			Title:       "Cambridge Winning Batch",
			Description: "Follow the Cambridge curriculum with interactive teaching methods designed to maximize your IELTS performance.",
			Fee:         "Contact for details",
			Syllabus:    []string{"Cambridge Syllabus Coverage", "Interactive Learning Methods", "Band-Specific Targeted Training", "Expert Feedback System"},
			Features:    []string{"Free Study Materials", "Regular Mock Tests", "Speaking Partner Assignment", "Real Exam Simulation"},
			Image:       "https://i.postimg.cc/9ff4j49W/537465075-122208847910126286-7760748678286341356-n.jpg",
			Category:    course.CategorySpecialized,
			Contact:     "01777-476142",
		},
		{
			ID:          "sultans-intensive-care",
			Title:       "Sultan's Intensive Care Unit (SICU)",
			Description: "An immersive daily program designed for rapid improvement with intensive training across all IELTS modules.",
			Schedule:    "Daily intensive classes (2 shifts: 9:30 AM & 2:15 PM)",
			Fee:         "Contact for details",
			Syllabus:    []string{"3-Hour Sessions, 6 Days/Week", "2 Modules Per Day", "Comprehensive Skill Development", "Intensive Practice Sessions"},
			Features:    []string{"Weekly Test Included", "Free 2 Months Speakers' Club", "Small Group Attention", "Rapid Progress Tracking"},
			Image:       "https://i.postimg.cc/G3D4rn4s/541765081-122209535678126286-7569929673749044973-n.jpg",
			Category:    course.CategorySpecialized,
			Location:    "R.B Complex, 6th Floor, East-Zindabazar, Sylhet",
			Contact:     "01777-476142",
		},
	}

	out := make(map[string]course.Course, len(base))
	for _, c := range base {
		id := c.ID
		c.ID = "" // the key carries the id
		c.IsActive = true
		c.CreatedAt = now
		c.UpdatedAt = now
		out[id] = c
	}
	return out
}

func seedTestimonials(now string) map[string]testimonial.Testimonial {
	base := map[string]testimonial.Testimonial{
		"testimonial_1": {
			Name:    "Ahmed Rahman",
			Band:    8.0,
			Comment: "Shah Sultan's IELTS Academy helped me achieve my dream score! The teachers are exceptional.",
			Image:   "https://i.pravatar.cc/150?img=1",
			Course:  "IELTS Main Course",
			Date:    "2024-01-15",
		},
		"testimonial_2": {
			Name:    "Fatima Begum",
			Band:    7.5,
			Comment: "The mock tests and feedback were invaluable. I improved my band score from 6.0 to 7.5!",
			Image:   "https://i.pravatar.cc/150?img=5",
			Course:  "Computer-Based IELTS",
			Date:    "2024-02-20",
		},
		"testimonial_3": {
			Name:    "Mohammad Ali",
			Band:    8.5,
			Comment: "Best IELTS preparation center in Sylhet. Highly recommend!",
			Image:   "https://i.pravatar.cc/150?img=8",
			Course:  "Sultan's Intensive Care Unit",
			Date:    "2024-03-10",
		},
		"testimonial_4": {
			Name:    "Sadia Islam",
			Band:    7.0,
			Comment: "The speaking practice sessions helped me overcome my fear and boost my confidence.",
			Image:   "https://i.pravatar.cc/150?img=9",
			Course:  "Spoken English Course",
			Date:    "2024-03-25",
		},
	}
	for id, t := range base {
		t.IsActive = true
		t.CreatedAt = now
		base[id] = t
	}
	return base
}

func seedFeatures(now string) map[string]feature.Feature {
	base := map[string]feature.Feature{
		"feature_1": {Title: "Expert-Led Classes", Description: "Learn from experienced IELTS instructors with proven track records", Icon: "👨‍🏫", Order: 1},
		"feature_2": {Title: "Tailored Study Materials", Description: "Comprehensive materials customized for both Academic and General Training", Icon: "📚", Order: 2},
		"feature_3": {Title: "Small Group Sessions", Description: "Personalized attention in small groups for better learning outcomes", Icon: "👥", Order: 3},
		"feature_4": {Title: "Computer-Based Practice", Description: "Practice with the latest computer-based IELTS format", Icon: "💻", Order: 4},
		"feature_5": {Title: "Regular Mock Tests", Description: "Weekly mock tests with detailed feedback and band score estimates", Icon: "📝", Order: 5},
		"feature_6": {Title: "Spoken English Support", Description: "Build confidence with dedicated speaking practice sessions", Icon: "🎤", Order: 6},
	}
	for id, f := range base {
		f.IsActive = true
		f.CreatedAt = now
		base[id] = f
	}
	return base
}

func seedGallery(now string) map[string]gallery.Image {
	base := map[string]gallery.Image{
		"gallery_1": {Title: "Modern Classroom", Description: "Our spacious and well-equipped classroom", URL: "https://images.unsplash.com/photo-1497633762265-9d179a990aa6?w=800", Category: gallery.CategoryClassroom},
		"gallery_2": {Title: "Student Success Celebration", Description: "Celebrating our students achievements", URL: "https://images.unsplash.com/photo-1523050854058-8df90110c9f1?w=800", Category: gallery.CategoryEvents},
		"gallery_3": {Title: "Award Ceremony", Description: "British Council recognition ceremony", URL: "https://images.unsplash.com/photo-1511632765486-a01980e01a18?w=800", Category: gallery.CategoryAchievements},
		"gallery_4": {Title: "Study Area", Description: "Quiet study space for students", URL: "https://images.unsplash.com/photo-1497633762265-9d179a990aa6?w=800", Category: gallery.CategoryFacilities},
	}
	for id, g := range base {
		g.IsActive = true
		g.CreatedAt = now
		base[id] = g
	}
	return base
}

func seedQuestions(now string) map[string]question.Question {
	base := map[string]question.Question{
		"question_1": {
			Type:          question.TypeMultipleChoice,
			Section:       question.SectionListening,
			Difficulty:    question.DifficultyEasy,
			Question:      "What is the main topic of the conversation?",
			Options:       []string{"Travel plans", "Shopping", "Restaurant booking", "Weather"},
			CorrectAnswer: "Travel plans",
			Points:        1,
			TimeLimit:     2,
			Explanation:   "The speakers discuss their upcoming trip throughout the conversation.",
			Tags:          []string{"listening", "main-idea", "conversation"},
		},
		"question_2": {
			Type:          question.TypeMultipleChoice,
			Section:       question.SectionReading,
			Difficulty:    question.DifficultyMedium,
			Question:      "According to the passage, what is the primary cause of climate change?",
			Options:       []string{"Deforestation", "Greenhouse gas emissions", "Ocean pollution", "Solar radiation"},
			CorrectAnswer: "Greenhouse gas emissions",
			Points:        1,
			TimeLimit:     3,
			Explanation:   "The passage clearly states that greenhouse gas emissions are the main driver of climate change.",
			Tags:          []string{"reading", "comprehension", "environment"},
		},
		"question_3": {
			Type:        question.TypeEssay,
			Section:     question.SectionWriting,
			Difficulty:  question.DifficultyHard,
			Question:    "Some people believe that technology has made our lives more complicated. Others think it has made life easier. Discuss both views and give your opinion.",
			Points:      25,
			TimeLimit:   40,
			Explanation: "A well-structured essay should discuss both perspectives with examples and conclude with a clear opinion.",
			Tags:        []string{"writing", "essay", "opinion"},
		},
	}
	for id, q := range base {
		q.CreatedAt = now
		q.UpdatedAt = now
		base[id] = q
	}
	return base
}
