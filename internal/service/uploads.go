package service

import (
	"context"
	"fmt"
	"log/slog"
	"path"

	"github.com/gofrs/uuid/v5"

	"github.com/forexel/PrivetManagerApp/internal/entity"
)

// UploadURL выдаёт пресайнд-ссылку на прямую загрузку в хранилище.
// Файлы сотрудника складываются под его собственным префиксом.
func (s *Service) UploadURL(ctx context.Context, contentType string) (entity.PresignedUpload, error) {
	staff, err := entity.StaffFromCtx(ctx)
	if err != nil {
		return entity.PresignedUpload{}, err
	}

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	upload, err := s.storage.PresignUpload(ctx, fmt.Sprintf("managers/%s/uploads", staff.ID), contentType)
	if err != nil {
		return entity.PresignedUpload{}, fmt.Errorf("%w: presign upload: %s", entity.ErrUpstream, err)
	}

	return upload, nil
}

// DirectUpload принимает байты на бекенд и кладёт их в хранилище сам.
// Запасной путь на случай, когда пресайнд-загрузка упирается в CORS.
func (s *Service) DirectUpload(ctx context.Context, filename, contentType string, data []byte) (entity.UploadedFile, error) {
	staff, err := entity.StaffFromCtx(ctx)
	if err != nil {
		return entity.UploadedFile{}, err
	}

	safeName := path.Base(filename)
	if safeName == "" || safeName == "." || safeName == "/" {
		safeName = "upload.bin"
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := fmt.Sprintf("managers/%s/uploads/%s-%s", staff.ID, uuid.Must(uuid.NewV4()), safeName)

	if err := s.storage.Upload(ctx, key, data, contentType); err != nil {
		return entity.UploadedFile{}, fmt.Errorf("%w: upload file: %s", entity.ErrUpstream, err)
	}

	slog.InfoContext(ctx, fmt.Sprintf("Сотрудник %s загрузил файл %s", staff.ID, key))

	return entity.UploadedFile{
		FileKey: key,
		URL:     s.storage.PublicURL(key),
	}, nil
}
