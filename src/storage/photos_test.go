package storage

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectKey(t *testing.T) {
	key := ObjectKey("lost", `C:\Users\me\Pictures\Wallet.JPG`)
	require.True(t, strings.HasPrefix(key, "lost/"))
	assert.True(t, strings.HasSuffix(key, ".jpg"))

	id := strings.TrimSuffix(strings.TrimPrefix(key, "lost/"), ".jpg")
	_, err := uuid.Parse(id)
	assert.NoError(t, err)

	assert.NotEqual(t, ObjectKey("lost", "a.png"), ObjectKey("lost", "a.png"))
	assert.True(t, strings.HasPrefix(ObjectKey("", "noext"), "misc/"))
}

func TestNewS3PhotoStoreValidatesConfig(t *testing.T) {
	cases := []struct {
		name string
		cfg  S3Config
		want string
	}{
		{"endpoint", S3Config{AccessKey: "a", SecretKey: "s", Bucket: "b"}, "endpoint"},
		{"credentials", S3Config{Endpoint: "localhost:9000", Bucket: "b"}, "access key"},
		{"bucket", S3Config{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "s"}, "bucket"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewS3PhotoStore(tc.cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}

	s, err := NewS3PhotoStore(S3Config{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "s", Bucket: "b"})
	require.NoError(t, err)
	assert.Equal(t, "us-east-1", s.region)
}
