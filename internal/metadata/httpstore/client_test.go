package httpstore

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"escrow-marketplace/internal/metadata"
	"escrow-marketplace/internal/model"
	"escrow-marketplace/pkg/log"
)

// newUploadServer mimics the upload service: POST /upload stores the "file"
// field, GET /uploads/:name serves it back.
func newUploadServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	files := map[string][]byte{}

	r := gin.New()
	var srv *httptest.Server
	r.POST("/upload", func(c *gin.Context) {
		fh, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
			return
		}
		if fh.Header.Get("Content-Type") != "image/png" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Only image files are allowed"})
			return
		}
		f, _ := fh.Open()
		defer f.Close()
		data, _ := io.ReadAll(f)
		name := "1700000000-1" + metadata.Extension(fh.Filename)
		files[name] = data
		c.JSON(http.StatusOK, gin.H{"url": srv.URL + "/uploads/" + name, "filename": name})
	})
	r.GET("/uploads/:name", func(c *gin.Context) {
		data, ok := files[c.Param("name")]
		if !ok {
			c.Status(http.StatusNotFound)
			return
		}
		c.Data(http.StatusOK, "image/png", data)
	})

	srv = httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestPutAndGet(t *testing.T) {
	srv := newUploadServer(t)
	c := New(Config{BaseURL: srv.URL + "/"}, log.NewNop())
	ctx := context.Background()

	obj, err := c.Put(ctx, metadata.PutInput{Filename: "cat.png", ContentType: "image/png", Data: []byte("png")})
	require.NoError(t, err)
	assert.Equal(t, "1700000000-1.png", obj.Name)
	assert.Equal(t, srv.URL+"/uploads/1700000000-1.png", obj.URL)

	data, err := c.Get(ctx, obj.Name)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), data)

	_, err = c.Get(ctx, "nope.png")
	assert.ErrorIs(t, err, metadata.ErrObjectNotFound)
}

func TestPutRemoteRejection(t *testing.T) {
	srv := newUploadServer(t)
	c := New(Config{BaseURL: srv.URL}, log.NewNop())

	_, err := c.Put(context.Background(), metadata.PutInput{Filename: "cat.gif", ContentType: "image/gif", Data: []byte("gif")})
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestPutValidatesLocally(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { calls++ }))
	defer srv.Close()
	c := New(Config{BaseURL: srv.URL, MaxBytes: 4}, log.NewNop())

	_, err := c.Put(context.Background(), metadata.PutInput{Filename: "a.png", ContentType: "image/png", Data: []byte("12345")})
	assert.ErrorIs(t, err, metadata.ErrTooLarge)
	_, err = c.Get(context.Background(), "../x")
	assert.ErrorIs(t, err, metadata.ErrInvalidName)
	assert.Zero(t, calls)
}
