package s3

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/forexel/PrivetManagerApp/pkg/config"
)

func newTestClient(endpoint string) *Client {
	return NewClient(config.Storage{
		Endpoint:      endpoint,
		Bucket:        "privet",
		AccessKey:     "test-access",
		SecretKey:     "test-secret",
		PublicURL:     "https://files.privet.ru/",
		PresignTTL:    10 * time.Minute,
		RetryAttempts: 0,
		Timeout:       2 * time.Second,
	})
}

// verifySignature пересобирает каноническую форму из пришедшего запроса,
// как это делает хранилище, и сверяет подпись с заголовком Authorization.
func verifySignature(t *testing.T, c *Client, r *http.Request) {
	t.Helper()

	payloadHash := r.Header.Get("X-Amz-Content-Sha256")
	amzDate := r.Header.Get("X-Amz-Date")

	ts, err := time.Parse(amzDateFormat, amzDate)
	require.NoError(t, err)

	canonical := strings.Join([]string{
		r.Method,
		r.URL.EscapedPath(),
		r.URL.RawQuery,
		fmt.Sprintf("host:%s\nx-amz-content-sha256:%s\nx-amz-date:%s\n", r.Host, payloadHash, amzDate),
		signedHeaders,
		payloadHash,
	}, "\n")

	want := fmt.Sprintf(
		"%s Credential=%s/%s, SignedHeaders=%s, Signature=%s",
		signAlgorithm, c.cfg.AccessKey, c.scope(ts), signedHeaders, c.signature(ts, canonical),
	)

	require.Equal(t, want, r.Header.Get("Authorization"))
}

func TestClient_Upload(t *testing.T) {
	t.Parallel()

	const key = "contracts/42/ИВ-260825-01.pdf"

	data := []byte("%PDF-1.7 fake")

	var (
		got     *http.Request
		gotBody []byte
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		got = r.Clone(context.Background())
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)

	err := c.Upload(context.Background(), key, data, "application/pdf")
	require.NoError(t, err)

	require.NotNil(t, got)
	require.Equal(t, http.MethodPut, got.Method)
	require.Equal(t, "/privet/contracts/42/%D0%98%D0%92-260825-01.pdf", got.URL.EscapedPath())
	require.Equal(t, "application/pdf", got.Header.Get("Content-Type"))
	require.Equal(t, hashHex(data), got.Header.Get("X-Amz-Content-Sha256"))
	require.Equal(t, data, gotBody)

	verifySignature(t, c, got)
}

func TestClient_Upload_ServerError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`<Error><Code>SignatureDoesNotMatch</Code></Error>`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)

	err := c.Upload(context.Background(), "contracts/42/a.pdf", []byte("x"), "application/pdf")
	require.Error(t, err)
	require.Contains(t, err.Error(), "403")
	require.Contains(t, err.Error(), "SignatureDoesNotMatch")
}

func TestClient_Download(t *testing.T) {
	t.Parallel()

	data := []byte("stored bytes")

	var got *http.Request

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		_, _ = w.Write(data)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)

	body, err := c.Download(context.Background(), "contracts/42/a.pdf")
	require.NoError(t, err)
	require.Equal(t, data, body)

	require.NotNil(t, got)
	require.Equal(t, http.MethodGet, got.Method)
	require.Equal(t, "/privet/contracts/42/a.pdf", got.URL.EscapedPath())
	require.Equal(t, hashHex(nil), got.Header.Get("X-Amz-Content-Sha256"))

	verifySignature(t, c, got)
}

func TestClient_Download_NotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)

	_, err := c.Download(context.Background(), "contracts/42/missing.pdf")
	require.Error(t, err)
	require.Contains(t, err.Error(), "404")
}

func TestClient_Delete(t *testing.T) {
	t.Parallel()

	var got *http.Request

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)

	err := c.Delete(context.Background(), "clients/42/passport/photo.jpg")
	require.NoError(t, err)

	require.NotNil(t, got)
	require.Equal(t, http.MethodDelete, got.Method)
	require.Equal(t, "/privet/clients/42/passport/photo.jpg", got.URL.EscapedPath())

	verifySignature(t, c, got)
}

func TestClient_PresignUpload(t *testing.T) {
	t.Parallel()

	c := newTestClient("http://minio:9000")

	upload, err := c.PresignUpload(context.Background(), "clients/42/passport", "image/jpeg")
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(upload.FileKey, "clients/42/passport/"), upload.FileKey)
	require.True(t, strings.HasSuffix(upload.FileKey, ".jpg"), upload.FileKey)
	require.Equal(t, map[string]string{"Content-Type": "image/jpeg"}, upload.Headers)
	require.WithinDuration(t, time.Now().Add(10*time.Minute), upload.ExpiresAt, 5*time.Second)

	u, err := url.Parse(upload.URL)
	require.NoError(t, err)
	require.Equal(t, "minio:9000", u.Host)
	require.Equal(t, "/privet/"+upload.FileKey, u.Path)

	q := u.Query()
	require.Equal(t, signAlgorithm, q.Get("X-Amz-Algorithm"))
	require.Equal(t, "600", q.Get("X-Amz-Expires"))
	require.Equal(t, "content-type;host", q.Get("X-Amz-SignedHeaders"))
	require.True(t, strings.HasPrefix(q.Get("X-Amz-Credential"), "test-access/"), q.Get("X-Amz-Credential"))

	ts, err := time.Parse(amzDateFormat, q.Get("X-Amz-Date"))
	require.NoError(t, err)

	// Подпись проверяется так же, как её проверит хранилище: пересобираем
	// каноническую строку без X-Amz-Signature и сравниваем.
	params := [][2]string{
		{"X-Amz-Algorithm", q.Get("X-Amz-Algorithm")},
		{"X-Amz-Credential", q.Get("X-Amz-Credential")},
		{"X-Amz-Date", q.Get("X-Amz-Date")},
		{"X-Amz-Expires", q.Get("X-Amz-Expires")},
		{"X-Amz-SignedHeaders", q.Get("X-Amz-SignedHeaders")},
	}

	pairs := make([]string, 0, len(params))
	for _, p := range params {
		pairs = append(pairs, uriEncode(p[0], true)+"="+uriEncode(p[1], true))
	}

	canonical := strings.Join([]string{
		http.MethodPut,
		u.EscapedPath(),
		strings.Join(pairs, "&"),
		"content-type:image/jpeg\nhost:" + u.Host + "\n",
		"content-type;host",
		unsignedPayload,
	}, "\n")

	require.Equal(t, c.signature(ts, canonical), q.Get("X-Amz-Signature"))
}

func TestClient_PublicURL(t *testing.T) {
	t.Parallel()

	c := newTestClient("http://minio:9000")

	require.Equal(t, "https://files.privet.ru/contracts/42/a.pdf", c.PublicURL("contracts/42/a.pdf"))
}

func Test_uriEncode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in          string
		encodeSlash bool
		want        string
	}{
		{"simple-key_1.pdf", true, "simple-key_1.pdf"},
		{"a b+c.pdf", true, "a%20b%2Bc.pdf"},
		{"contracts/42/a.pdf", false, "contracts/42/a.pdf"},
		{"contracts/42/a.pdf", true, "contracts%2F42%2Fa.pdf"},
		{"ИВ.pdf", true, "%D0%98%D0%92.pdf"},
		{"~tilde", true, "~tilde"},
	}

	for _, tt := range tests {
		got := uriEncode(tt.in, tt.encodeSlash)
		if got != tt.want {
			t.Errorf("uriEncode(%q, %v) = %q, want %q", tt.in, tt.encodeSlash, got, tt.want)
		}
	}
}
