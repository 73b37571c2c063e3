package disk

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"escrow-marketplace/internal/metadata"
	"escrow-marketplace/pkg/log"
)

func newStore(t *testing.T) (metadata.Store, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "uploads")
	s, err := New(Config{Dir: dir, PublicURL: "http://localhost:8080/", MaxBytes: 16}, log.NewNop())
	require.NoError(t, err)
	return s, dir
}

func TestPutAndGet(t *testing.T) {
	s, dir := newStore(t)
	ctx := context.Background()

	obj, err := s.Put(ctx, metadata.PutInput{Filename: "Cat.PNG", ContentType: "image/png", Data: []byte("pngbytes")})
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(obj.Name, ".png"))
	assert.Equal(t, "http://localhost:8080/uploads/"+obj.Name, obj.URL)

	data, err := s.Get(ctx, obj.Name)
	require.NoError(t, err)
	assert.Equal(t, []byte("pngbytes"), data)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not remain")
}

func TestPutNamesAreUnique(t *testing.T) {
	s, _ := newStore(t)
	in := metadata.PutInput{Filename: "a.jpg", ContentType: "image/jpeg", Data: []byte{1}}

	a, err := s.Put(context.Background(), in)
	require.NoError(t, err)
	b, err := s.Put(context.Background(), in)
	require.NoError(t, err)
	assert.NotEqual(t, a.Name, b.Name)
}

func TestPutRejects(t *testing.T) {
	s, dir := newStore(t)
	ctx := context.Background()

	_, err := s.Put(ctx, metadata.PutInput{Filename: "a.txt", ContentType: "text/plain", Data: []byte("x")})
	assert.ErrorIs(t, err, metadata.ErrNotImage)

	_, err = s.Put(ctx, metadata.PutInput{Filename: "a.png", ContentType: "image/png", Data: make([]byte, 17)})
	assert.ErrorIs(t, err, metadata.ErrTooLarge)

	entries, _ := os.ReadDir(dir)
	assert.Empty(t, entries)
}

func TestGetRejects(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	_, err := s.Get(ctx, "missing.png")
	assert.ErrorIs(t, err, metadata.ErrObjectNotFound)

	_, err = s.Get(ctx, "../secret")
	assert.ErrorIs(t, err, metadata.ErrInvalidName)
}

func TestNewRequiresDir(t *testing.T) {
	_, err := New(Config{}, log.NewNop())
	assert.Error(t, err)
}
