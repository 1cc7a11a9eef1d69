package entity

import (
	"time"
)

// PresignedUpload — разрешение на прямую загрузку файла в объектное
// хранилище: фронт кладёт байты по URL сам, бекенд хранит только ключ.
type PresignedUpload struct {
	URL       string
	FileKey   string
	Headers   map[string]string
	ExpiresAt time.Time
}

// UploadedFile — результат загрузки через бекенд.
type UploadedFile struct {
	FileKey string
	URL     string
}
