package handlers

import (
	"context"
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	"ielts-academy/backend/internal/config"
	"ielts-academy/backend/internal/httpjson"
	"ielts-academy/backend/internal/utils"

	credentials "cloud.google.com/go/iam/credentials/apiv1"
	credentialspb "cloud.google.com/go/iam/credentials/apiv1/credentialspb"
	"cloud.google.com/go/storage"
)

// Uploads issues V4 signed PUT URLs so the admin UI can upload site images
// (course banners, gallery photos, teacher portraits) straight to the bucket.
type Uploads struct {
	cfg config.Config
	iam *credentials.IamCredentialsClient
}

// Image folders an admin may write into.
var allowedFolders = map[string]bool{
	"courses":  true,
	"gallery":  true,
	"teachers": true,
}

func NewUploads(cfg config.Config) *Uploads {
	// IAM client is optional; only needed for signed URLs.
	iamClient, _ := credentials.NewIamCredentialsClient(context.Background())
	return &Uploads{cfg: cfg, iam: iamClient}
}

type signedURLReq struct {
	Folder         string `json:"folder"`   // "courses" | "gallery" | "teachers"
	Filename       string `json:"filename"` // display name; slugified for the object key
	ContentType    string `json:"contentType,omitempty"`
	ExpiresSeconds int64  `json:"expiresSeconds,omitempty"` // default 900
}

type signedURLResp struct {
	URL        string `json:"url"`
	ObjectPath string `json:"objectPath"`
	Method     string `json:"method"`
	ExpiresAt  int64  `json:"expiresAt"`
}

func (h *Uploads) CreateSignedUploadURL(w http.ResponseWriter, r *http.Request) {
	var req signedURLReq
	if err := httpjson.Read(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid json")
		return
	}
	if !allowedFolders[req.Folder] {
		httpjson.Error(w, http.StatusBadRequest, "folder must be one of courses, gallery, teachers")
		return
	}
	object := objectPath(req.Folder, req.Filename)
	if object == "" {
		httpjson.Error(w, http.StatusBadRequest, "filename is required")
		return
	}

	url, exp, err := h.signedURL(r.Context(), object, req.ContentType, req.ExpiresSeconds)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	httpjson.Write(w, http.StatusOK, signedURLResp{
		URL:        url,
		ObjectPath: object,
		Method:     "PUT",
		ExpiresAt:  exp.Unix(),
	})
}

// objectPath builds "gallery/1714-summer-batch.jpg" style keys: slugified
// base name, original extension, timestamp prefix to avoid clobbering.
func objectPath(folder, filename string) string {
	filename = strings.TrimSpace(filename)
	if filename == "" {
		return ""
	}
	ext := strings.ToLower(path.Ext(filename))
	base := utils.Slugify(strings.TrimSuffix(filename, ext))
	if base == "" {
		base = "image"
	}
	return fmt.Sprintf("%s/%d-%s%s", folder, time.Now().Unix(), base, ext)
}

func (h *Uploads) signedURL(ctx context.Context, objectPath, contentType string, expiresSeconds int64) (string, time.Time, error) {
	if h.cfg.StorageBucket == "" {
		return "", time.Time{}, fmt.Errorf("FIREBASE_STORAGE_BUCKET is not set")
	}
	if h.cfg.SignedURLServiceAccountEmail == "" {
		return "", time.Time{}, fmt.Errorf("SIGNED_URL_SERVICE_ACCOUNT_EMAIL is not set")
	}
	if h.iam == nil {
		return "", time.Time{}, fmt.Errorf("IAM credentials client not available")
	}
	if expiresSeconds <= 0 || expiresSeconds > 3600 {
		expiresSeconds = 900
	}
	exp := time.Now().Add(time.Duration(expiresSeconds) * time.Second)

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	opts := &storage.SignedURLOptions{
		Scheme:         storage.SigningSchemeV4,
		Method:         "PUT",
		Expires:        exp,
		ContentType:    contentType,
		GoogleAccessID: h.cfg.SignedURLServiceAccountEmail,
		SignBytes: func(b []byte) ([]byte, error) {
			name := fmt.Sprintf("projects/-/serviceAccounts/%s", h.cfg.SignedURLServiceAccountEmail)
			resp, err := h.iam.SignBlob(ctx, &credentialspb.SignBlobRequest{
				Name:    name,
				Payload: b,
			})
			if err != nil {
				return nil, err
			}
			return resp.SignedBlob, nil
		},
	}

	url, err := storage.SignedURL(h.cfg.StorageBucket, objectPath, opts)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign url (check service account + permissions): %v", err)
	}
	return url, exp, nil
}
