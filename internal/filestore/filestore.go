package filestore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/wildlog/wildlog_api/internal/config"
	"github.com/wildlog/wildlog_api/internal/errlocal"
	"github.com/wildlog/wildlog_api/internal/models"
	"github.com/wildlog/wildlog_api/internal/utils"
)

const (
	fileStoreInitBucketTimeout = 10 * time.Second
	fileUploadTimeout          = 10 * time.Second
	photoURLExpiry             = 15 * time.Minute
	photoPathTmpl              = "%s/sightings/%s%s"
)

type FileStore interface {
	UploadPhoto(ctx context.Context, profileID uuid.UUID, file *models.File) (string, error)
	PhotoURL(ctx context.Context, key string) (string, error)
	DeletePhoto(ctx context.Context, key string) error
}

type minioStore struct {
	client *minio.Client
	bucket string
}

func NewMinioStore(cfg config.Config) (FileStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), fileStoreInitBucketTimeout)
	defer cancel()

	client, err := minio.New(cfg.Store.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Store.AccessKey, cfg.Store.SecretKey, ""),
		Secure: cfg.Store.UseSSL,
	})
	if err != nil {
		return nil, err
	}

	store := &minioStore{client: client, bucket: cfg.Store.Bucket}
	err = client.MakeBucket(ctx, cfg.Store.Bucket, minio.MakeBucketOptions{})
	if err != nil {
		exists, errBucketExists := client.BucketExists(ctx, cfg.Store.Bucket)
		if errBucketExists == nil && exists {
			return store, nil
		}

		return nil, err
	}

	return store, nil
}

// PhotoKey derives the object key of a photo from its content, so the same
// picture uploaded twice by one profile always lands on the same key.
func PhotoKey(profileID uuid.UUID, name string, content []byte) string {
	return fmt.Sprintf(photoPathTmpl, profileID, utils.HashContent(content), strings.ToLower(path.Ext(name)))
}

func (m *minioStore) UploadPhoto(ctx context.Context, profileID uuid.UUID, file *models.File) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, fileUploadTimeout)
	defer cancel()

	defer file.Entry.Close()
	content, err := io.ReadAll(file.Entry)
	if err != nil {
		return "", errlocal.NewErrBadRequest("failed to read photo", err.Error(), nil)
	}

	opts := minio.PutObjectOptions{}
	if file.ContentType != "" {
		opts.ContentType = file.ContentType
	}

	uploadInfo, err := m.client.PutObject(
		ctx, m.bucket,
		PhotoKey(profileID, file.Name, content),
		bytes.NewReader(content), int64(len(content)), opts,
	)
	if err != nil {
		return "", errlocal.NewErrInternal("failed to upload photo", err.Error(),
			map[string]any{"profile_id": profileID.String()})
	}

	return uploadInfo.Key, nil
}

// PhotoURL returns a short-lived link the recognition service can fetch the
// photo from.
func (m *minioStore) PhotoURL(ctx context.Context, key string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, fileUploadTimeout)
	defer cancel()

	u, err := m.client.PresignedGetObject(ctx, m.bucket, key, photoURLExpiry, nil)
	if err != nil {
		return "", errlocal.NewErrInternal("failed to sign photo url", err.Error(),
			map[string]any{"photo": key})
	}

	return u.String(), nil
}

func (m *minioStore) DeletePhoto(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, fileUploadTimeout)
	defer cancel()

	return m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{ForceDelete: true})
}
