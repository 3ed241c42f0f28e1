//go:build integration

package filestore

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	miniotc "github.com/testcontainers/testcontainers-go/modules/minio"
	"github.com/wildlog/wildlog_api/internal/config"
	"github.com/wildlog/wildlog_api/internal/models"
)

const (
	minioUser     = "minioadmin"
	minioPassword = "minioadmin"
	minioBucket   = "wildlog-sightings"
)

type minioStoreSuite struct {
	suite.Suite
	ctx       context.Context
	container *miniotc.MinioContainer
	cfg       config.Config
	store     *minioStore
}

func TestMinioStoreSuite(t *testing.T) {
	suite.Run(t, new(minioStoreSuite))
}

func (s *minioStoreSuite) SetupSuite() {
	s.ctx = context.Background()

	container, err := miniotc.Run(s.ctx,
		"minio/minio:latest",
		miniotc.WithUsername(minioUser),
		miniotc.WithPassword(minioPassword),
	)
	s.Require().NoError(err)
	s.container = container

	endpoint, err := container.Endpoint(s.ctx, "")
	s.Require().NoError(err)

	s.cfg = config.Config{Store: config.FileStoreConfig{
		Endpoint:  endpoint,
		AccessKey: minioUser,
		SecretKey: minioPassword,
		Bucket:    minioBucket,
	}}

	fs, err := NewMinioStore(s.cfg)
	s.Require().NoError(err)
	s.store = fs.(*minioStore)
}

func (s *minioStoreSuite) TearDownSuite() {
	if s.container != nil {
		s.NoError(s.container.Terminate(s.ctx))
	}
}

func photo(content []byte) *models.File {
	return &models.File{
		Name:        "owl.jpg",
		Size:        int64(len(content)),
		ContentType: "image/jpeg",
		Entry:       io.NopCloser(bytes.NewReader(content)),
	}
}

func (s *minioStoreSuite) TestNewMinioStore_BucketAlreadyExists() {
	_, err := NewMinioStore(s.cfg)
	s.NoError(err)
}

func (s *minioStoreSuite) TestNewMinioStore_InvalidCredentials() {
	cfg := s.cfg
	cfg.Store.AccessKey = "invalid"
	cfg.Store.SecretKey = "invalid"

	store, err := NewMinioStore(cfg)
	s.Error(err)
	s.Nil(store)
}

func (s *minioStoreSuite) TestUploadPhoto() {
	t := s.T()
	profileID := uuid.New()
	content := []byte("fake owl photo")

	key, err := s.store.UploadPhoto(s.ctx, profileID, photo(content))
	require.NoError(t, err)
	assert.Equal(t, PhotoKey(profileID, "owl.jpg", content), key)

	obj, err := s.store.client.GetObject(s.ctx, minioBucket, key, minio.GetObjectOptions{})
	require.NoError(t, err)
	defer obj.Close()

	downloaded, err := io.ReadAll(obj)
	require.NoError(t, err)
	assert.Equal(t, content, downloaded)

	again, err := s.store.UploadPhoto(s.ctx, profileID, photo(content))
	require.NoError(t, err)
	assert.Equal(t, key, again)
}

func (s *minioStoreSuite) TestPhotoURL() {
	t := s.T()
	content := []byte("fox photo")

	key, err := s.store.UploadPhoto(s.ctx, uuid.New(), photo(content))
	require.NoError(t, err)

	url, err := s.store.PhotoURL(s.ctx, key)
	require.NoError(t, err)

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, content, body)
}

func (s *minioStoreSuite) TestDeletePhoto() {
	t := s.T()

	key, err := s.store.UploadPhoto(s.ctx, uuid.New(), photo([]byte("lynx photo")))
	require.NoError(t, err)

	require.NoError(t, s.store.DeletePhoto(s.ctx, key))

	_, err = s.store.client.StatObject(s.ctx, minioBucket, key, minio.StatObjectOptions{})
	assert.Error(t, err)
}
