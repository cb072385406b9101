package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ProjectID                    string
	DatabaseURL                  string
	Port                         string
	AllowedOrigins               []string
	AdminEmails                  []string
	StorageBucket                string
	SignedURLServiceAccountEmail string
	WhatsAppNumber               string
}

func Load() Config {
	// Local dev convenience; deployed environments inject env directly.
	_ = godotenv.Load()

	projectID := getenv("FIREBASE_PROJECT_ID", "")
	if projectID == "" {
		projectID = getenv("GOOGLE_CLOUD_PROJECT", "")
	}

	databaseURL := getenv("FIREBASE_DATABASE_URL", "")
	port := getenv("PORT", "8080")
	origins := getenv("ALLOWED_ORIGINS", "http://localhost:3000")
	storageBucket := getenv("FIREBASE_STORAGE_BUCKET", "")
	if storageBucket == "" && projectID != "" {
		storageBucket = projectID + ".appspot.com"
	}
	adminEmails := getenv("ADMIN_EMAILS", "")
	signedURLServiceAccountEmail := getenv("SIGNED_URL_SERVICE_ACCOUNT_EMAIL", "")
	whatsAppNumber := getenv("WHATSAPP_NUMBER", "+8801777476142")

	return Config{
		ProjectID:                    projectID,
		DatabaseURL:                  databaseURL,
		Port:                         port,
		AllowedOrigins:               splitList(origins),
		AdminEmails:                  splitList(strings.ToLower(adminEmails)),
		StorageBucket:                storageBucket,
		SignedURLServiceAccountEmail: signedURLServiceAccountEmail,
		WhatsAppNumber:               whatsAppNumber,
	}
}

// IsAdminEmail reports whether email is on the admin allow-list.
func (c Config) IsAdminEmail(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return false
	}
	for _, a := range c.AdminEmails {
		if a == email {
			return true
		}
	}
	return false
}

func splitList(s string) []string {
	out := []string{}
	for _, v := range strings.Split(s, ",") {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
