package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/wildlog/wildlog_api/internal/models"
)

const (
	photoFormField = "photo"
	maxPhotoSize   = 10 << 20
)

var allowedPhotoTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
	"image/heic": {},
}

var validate = validator.New()

type HTTPResource interface {
	LogSightingRequest | CreateSwarmRequest | JoinSwarmRequest
}

func GetRequestBody[T HTTPResource](r *http.Request) (*T, error) {
	var body T
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, err
	}
	err := validate.Struct(body)
	if err != nil {
		return nil, err
	}

	return &body, nil
}

// GetPhotoFromMultipartForm reads the sighting photo from the "photo" field.
// The caller owns the returned Entry.
func GetPhotoFromMultipartForm(r *http.Request) (*models.File, error) {
	if err := r.ParseMultipartForm(maxPhotoSize); err != nil {
		return nil, fmt.Errorf("failed to parse multipart form: %w", err)
	}

	file, header, err := r.FormFile(photoFormField)
	if err != nil {
		return nil, errors.New("photo field is required")
	}

	if header.Size == 0 {
		_ = file.Close()
		return nil, errors.New("file is empty")
	}
	if header.Size > maxPhotoSize {
		_ = file.Close()
		return nil, fmt.Errorf("file size exceeds the limit of %d bytes", maxPhotoSize)
	}

	contentType := header.Header.Get("Content-Type")
	if _, ok := allowedPhotoTypes[contentType]; !ok {
		_ = file.Close()
		return nil, fmt.Errorf("unsupported file type %q", contentType)
	}

	return &models.File{
		Name:        header.Filename,
		Size:        header.Size,
		ContentType: contentType,
		Entry:       file,
	}, nil
}
