package minio

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	minioLib "github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMinio implements minioAPI for testing without network.
type fakeMinio struct {
	bucketExists    bool
	bucketExistsErr error
	makeBucketErr   error
	madeBucket      bool

	putErr error
	putKey string

	getRC  io.ReadCloser
	getErr error

	removeErr error

	statErr error
}

func (f *fakeMinio) BucketExists(_ context.Context, _ string) (bool, error) {
	return f.bucketExists, f.bucketExistsErr
}
func (f *fakeMinio) MakeBucket(_ context.Context, _ string, _ minioLib.MakeBucketOptions) error {
	f.madeBucket = true
	return f.makeBucketErr
}
func (f *fakeMinio) PutObject(_ context.Context, _ string, key string, _ io.Reader, _ int64, _ minioLib.PutObjectOptions) (minioLib.UploadInfo, error) {
	f.putKey = key
	return minioLib.UploadInfo{}, f.putErr
}
func (f *fakeMinio) GetObject(_ context.Context, _ string, _ string, _ minioLib.GetObjectOptions) (io.ReadCloser, error) {
	return f.getRC, f.getErr
}
func (f *fakeMinio) RemoveObject(_ context.Context, _ string, _ string, _ minioLib.RemoveObjectOptions) error {
	return f.removeErr
}
func (f *fakeMinio) StatObject(_ context.Context, _ string, _ string, _ minioLib.StatObjectOptions) (minioLib.ObjectInfo, error) {
	return minioLib.ObjectInfo{}, f.statErr
}

func TestNewClientWithAPI_BucketExists(t *testing.T) {
	api := &fakeMinio{bucketExists: true}
	c, err := NewClientWithAPI(context.Background(), api, "pictures")
	require.NoError(t, err)
	assert.NotNil(t, c)
	assert.False(t, api.madeBucket)
}

func TestNewClientWithAPI_CreatesBucket(t *testing.T) {
	api := &fakeMinio{bucketExists: false}
	_, err := NewClientWithAPI(context.Background(), api, "pictures")
	require.NoError(t, err)
	assert.True(t, api.madeBucket)
}

func TestNewClientWithAPI_BucketCheckFails(t *testing.T) {
	api := &fakeMinio{bucketExistsErr: errors.New("connection refused")}
	_, err := NewClientWithAPI(context.Background(), api, "pictures")
	assert.Error(t, err)
}

func TestClient_Upload(t *testing.T) {
	api := &fakeMinio{bucketExists: true}
	c, err := NewClientWithAPI(context.Background(), api, "pictures")
	require.NoError(t, err)

	err = c.Upload(context.Background(), "resumes/abc/picture", bytes.NewReader([]byte("png bytes")))
	require.NoError(t, err)
	assert.Equal(t, "resumes/abc/picture", api.putKey)
}

func TestClient_Download(t *testing.T) {
	api := &fakeMinio{
		bucketExists: true,
		getRC:        io.NopCloser(bytes.NewReader([]byte("png bytes"))),
	}
	c, err := NewClientWithAPI(context.Background(), api, "pictures")
	require.NoError(t, err)

	rc, err := c.Download(context.Background(), "resumes/abc/picture")
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, []byte("png bytes"), data)
}

func TestClient_Delete(t *testing.T) {
	api := &fakeMinio{bucketExists: true, removeErr: errors.New("boom")}
	c, err := NewClientWithAPI(context.Background(), api, "pictures")
	require.NoError(t, err)

	assert.Error(t, c.Delete(context.Background(), "key"))
}
