package s3

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/forexel/PrivetManagerApp/internal/entity"
	"github.com/forexel/PrivetManagerApp/pkg/config"
	"github.com/forexel/PrivetManagerApp/pkg/transport"
)

const (
	signAlgorithm = "AWS4-HMAC-SHA256"
	signRegion    = "us-east-1"
	signService   = "s3"

	amzDateFormat   = "20060102T150405Z"
	shortDateFormat = "20060102"

	unsignedPayload = "UNSIGNED-PAYLOAD"
	signedHeaders   = "host;x-amz-content-sha256;x-amz-date"

	defaultRetryWaitMax = time.Second * 5
)

// Client работает с S3-совместимым хранилищем (MinIO) напрямую по HTTP,
// подписывая запросы по схеме AWS Signature V4.
type Client struct {
	cfg    config.Storage
	client *http.Client
}

func NewClient(cfg config.Storage) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.RetryAttempts
	retryClient.RetryWaitMin = time.Second
	retryClient.RetryWaitMax = defaultRetryWaitMax
	retryClient.HTTPClient.Timeout = cfg.Timeout
	retryClient.HTTPClient.Transport = transport.NewLogRoundTripper(retryClient.HTTPClient.Transport)

	retryClient.Logger = nil

	return &Client{
		cfg:    cfg,
		client: retryClient.StandardClient(),
	}
}

func (c *Client) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	req, err := c.signedRequest(ctx, http.MethodPut, key, data, contentType)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return unexpectedCode(resp)
	}

	return nil
}

func (c *Client) Download(ctx context.Context, key string) ([]byte, error) {
	req, err := c.signedRequest(ctx, http.MethodGet, key, nil, "")
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, unexpectedCode(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	return body, nil
}

func (c *Client) Delete(ctx context.Context, key string) error {
	req, err := c.signedRequest(ctx, http.MethodDelete, key, nil, "")
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return unexpectedCode(resp)
	}

	return nil
}

// PublicURL собирает публичную ссылку на объект. База указывает на корень
// бакета за CDN, поэтому имя бакета в ссылку не входит.
func (c *Client) PublicURL(key string) string {
	return fmt.Sprintf("%s/%s", strings.TrimSuffix(c.cfg.PublicURL, "/"), key)
}

// PresignUpload выдаёт подписанную ссылку на прямой PUT в хранилище.
// Content-Type входит в подпись: загрузка с другим типом будет отклонена.
func (c *Client) PresignUpload(_ context.Context, keyPrefix, contentType string) (entity.PresignedUpload, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := fmt.Sprintf("%s/%s%s", strings.Trim(keyPrefix, "/"), uuid.Must(uuid.NewV4()), extensionFor(contentType))

	u, err := c.objectURL(key)
	if err != nil {
		return entity.PresignedUpload{}, err
	}

	now := time.Now().UTC()
	credential := c.cfg.AccessKey + "/" + c.scope(now)

	// Параметры уже отсортированы по имени, как того требует каноническая
	// форма запроса.
	params := [][2]string{
		{"X-Amz-Algorithm", signAlgorithm},
		{"X-Amz-Credential", credential},
		{"X-Amz-Date", now.Format(amzDateFormat)},
		{"X-Amz-Expires", strconv.Itoa(int(c.cfg.PresignTTL.Seconds()))},
		{"X-Amz-SignedHeaders", "content-type;host"},
	}

	pairs := make([]string, 0, len(params))
	for _, p := range params {
		pairs = append(pairs, uriEncode(p[0], true)+"="+uriEncode(p[1], true))
	}

	query := strings.Join(pairs, "&")

	canonical := strings.Join([]string{
		http.MethodPut,
		u.EscapedPath(),
		query,
		"content-type:" + contentType + "\nhost:" + u.Host + "\n",
		"content-type;host",
		unsignedPayload,
	}, "\n")

	u.RawQuery = query + "&X-Amz-Signature=" + c.signature(now, canonical)

	return entity.PresignedUpload{
		URL:       u.String(),
		FileKey:   key,
		Headers:   map[string]string{"Content-Type": contentType},
		ExpiresAt: now.Add(c.cfg.PresignTTL),
	}, nil
}

func (c *Client) signedRequest(ctx context.Context, method, key string, body []byte, contentType string) (*http.Request, error) {
	u, err := c.objectURL(key)
	if err != nil {
		return nil, err
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	now := time.Now().UTC()
	payloadHash := hashHex(body)

	req.Header.Set("X-Amz-Date", now.Format(amzDateFormat))
	req.Header.Set("X-Amz-Content-Sha256", payloadHash)

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	canonicalHeaders := fmt.Sprintf(
		"host:%s\nx-amz-content-sha256:%s\nx-amz-date:%s\n",
		req.URL.Host, payloadHash, now.Format(amzDateFormat),
	)

	canonical := strings.Join([]string{
		method,
		req.URL.EscapedPath(),
		req.URL.RawQuery,
		canonicalHeaders,
		signedHeaders,
		payloadHash,
	}, "\n")

	req.Header.Set("Authorization", fmt.Sprintf(
		"%s Credential=%s/%s, SignedHeaders=%s, Signature=%s",
		signAlgorithm, c.cfg.AccessKey, c.scope(now), signedHeaders, c.signature(now, canonical),
	))

	return req, nil
}

func (c *Client) objectURL(key string) (*url.URL, error) {
	raw := fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(c.cfg.Endpoint, "/"), c.cfg.Bucket, uriEncode(key, false))

	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("build object url: %w", err)
	}

	return u, nil
}

func (c *Client) scope(t time.Time) string {
	return fmt.Sprintf("%s/%s/%s/aws4_request", t.Format(shortDateFormat), signRegion, signService)
}

func (c *Client) signature(t time.Time, canonical string) string {
	stringToSign := strings.Join([]string{
		signAlgorithm,
		t.Format(amzDateFormat),
		c.scope(t),
		hashHex([]byte(canonical)),
	}, "\n")

	key := hmacSHA256([]byte("AWS4"+c.cfg.SecretKey), []byte(t.Format(shortDateFormat)))
	key = hmacSHA256(key, []byte(signRegion))
	key = hmacSHA256(key, []byte(signService))
	key = hmacSHA256(key, []byte("aws4_request"))

	return hex.EncodeToString(hmacSHA256(key, []byte(stringToSign)))
}

func hmacSHA256(key, data []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(data)

	return mac.Sum(nil)
}

func hashHex(data []byte) string {
	sum := sha256.Sum256(data)

	return hex.EncodeToString(sum[:])
}

// uriEncode кодирует строку по правилам канонизации SigV4: незарезервированные
// символы остаются как есть, остальные уходят в %XX с верхним регистром.
func uriEncode(s string, encodeSlash bool) string {
	var b strings.Builder

	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch >= 'A' && ch <= 'Z', ch >= 'a' && ch <= 'z', ch >= '0' && ch <= '9',
			ch == '-', ch == '.', ch == '_', ch == '~':
			b.WriteByte(ch)
		case ch == '/' && !encodeSlash:
			b.WriteByte(ch)
		default:
			fmt.Fprintf(&b, "%%%02X", ch)
		}
	}

	return b.String()
}

func unexpectedCode(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

	msg := strings.TrimSpace(string(body))
	if msg == "" {
		return fmt.Errorf("unexpected code %d", resp.StatusCode)
	}

	return fmt.Errorf("unexpected code %d: %s", resp.StatusCode, msg)
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "application/pdf":
		return ".pdf"
	}

	exts, err := mime.ExtensionsByType(contentType)
	if err != nil || len(exts) == 0 {
		return ""
	}

	return exts[0]
}
