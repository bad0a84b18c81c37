package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/fileblob"
)

func TestBlobStorage_Save(t *testing.T) {
	dir := t.TempDir()
	bucket, err := fileblob.OpenBucket(dir, nil)
	require.NoError(t, err)
	defer bucket.Close()

	store := NewWithBucket(bucket, "https://media.example.com/")

	url, err := store.Save(context.Background(), "Hero Banner.PNG", "image/png", strings.NewReader("payload"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "https://media.example.com/"), url)
	assert.True(t, strings.HasSuffix(url, ".png"), url)

	key := strings.TrimPrefix(url, "https://media.example.com/")
	data, err := bucket.ReadAll(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
}

func TestObjectKey_UniqueAndSanitized(t *testing.T) {
	first := objectKey("menu photo.jpg")
	second := objectKey("menu photo.jpg")

	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasSuffix(first, ".jpg"))
	assert.NotContains(t, first, " ")
}

func TestObjectKey_EmptyBase(t *testing.T) {
	key := objectKey("!!!.webp")

	assert.Contains(t, key, "media-")
	assert.True(t, strings.HasSuffix(key, ".webp"))
}
