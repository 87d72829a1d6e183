package storage

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	require.Len(t, form.File["image"], 1)
	return form.File["image"][0]
}

func TestRecipeImagePath(t *testing.T) {
	gen := PathGenerator{NewID: func() string { return "test-uuid" }}

	tests := []struct {
		filename string
		want     string
	}{
		{"my_image.jpg", "uploads/recipe/test-uuid.jpg"},
		{"archive.tar.gz", "uploads/recipe/test-uuid.gz"},
		{"noextension", "uploads/recipe/test-uuid"},
		{"../../etc/passwd.png", "uploads/recipe/test-uuid.png"},
		{`C:\photos\dinner.PNG`, "uploads/recipe/test-uuid.PNG"},
	}
	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, gen.RecipeImagePath(tt.filename))
		})
	}
}

func TestRecipeImagePathUsesFreshIDs(t *testing.T) {
	gen := NewPathGenerator()
	a := gen.RecipeImagePath("a.jpg")
	b := gen.RecipeImagePath("a.jpg")
	assert.NotEqual(t, a, b)
	assert.Regexp(t, `^uploads/recipe/[0-9a-f-]{36}\.jpg$`, a)
}

func TestDetectFile(t *testing.T) {
	mtype, err := DetectFile(fileHeader(t, "img.png", pngBytes(t)), AllowImage...)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mtype.String())
	assert.Equal(t, ".png", mtype.Extension())

	_, err = DetectFile(fileHeader(t, "img.png", []byte("not image")), AllowImage...)
	assert.ErrorIs(t, err, ErrFileTypeNotAllowed)
}

func localPath(t *testing.T, store *LocalStorage, key string) string {
	t.Helper()
	p, err := store.resolve(key)
	require.NoError(t, err)
	return p
}

func TestLocalStorageRoundTrip(t *testing.T) {
	root := t.TempDir()
	store := NewLocalStorage(root, "/media/")
	key := "uploads/recipe/abc.png"
	content := pngBytes(t)

	require.NoError(t, store.UploadFile(context.Background(), key, fileHeader(t, "x.png", content), "image/png"))

	got, err := os.ReadFile(localPath(t, store, key))
	require.NoError(t, err)
	assert.Equal(t, content, got)
	assert.Equal(t, "/media/uploads/recipe/abc.png", store.GetPublicLinkKey(key))

	require.NoError(t, store.DeleteFile(context.Background(), key))
	_, err = os.Stat(localPath(t, store, key))
	assert.True(t, os.IsNotExist(err))

	// deleting a missing object is not an error
	assert.NoError(t, store.DeleteFile(context.Background(), key))
}

func TestLocalStorageRejectsTraversal(t *testing.T) {
	store := NewLocalStorage(t.TempDir(), "/media")
	err := store.UploadFile(context.Background(), "../escape.png", fileHeader(t, "x.png", pngBytes(t)), "image/png")
	assert.ErrorIs(t, err, ErrInvalidObjectKey)
	assert.ErrorIs(t, store.DeleteFile(context.Background(), "/abs.png"), ErrInvalidObjectKey)
}

func TestAwsS3PublicLink(t *testing.T) {
	s := &AwsS3{bucket: "recipes", region: "ap-southeast-1"}
	assert.Equal(t, "https://recipes.s3.ap-southeast-1.amazonaws.com/uploads/recipe/a.jpg",
		s.GetPublicLinkKey("uploads/recipe/a.jpg"))
}
