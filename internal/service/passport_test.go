package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/forexel/PrivetManagerApp/internal/entity"
)

func TestService_UpsertPassport(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t, entity.ContourManager)

	client := newClient(ts, entity.ContourManager)
	client.Status = entity.ClientStatusNew

	ts.expectTx()
	ts.repo.EXPECT().ClientByID(ts.ctx, entity.ContourManager, client.ID).Return(client, nil)

	var stored entity.Passport
	ts.repo.EXPECT().UpsertPassport(ts.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p entity.Passport) (entity.Passport, error) {
			stored = p
			return p, nil
		})

	// первое содержательное действие над новым клиентом начинает проверку
	ts.repo.EXPECT().SetClientStatus(ts.ctx, client.ID, entity.ClientStatusInVerification).Return(nil)
	ts.repo.EXPECT().ClientDetail(ts.ctx, entity.ContourManager, client.ID).
		Return(entity.ClientDetail{Client: client}, nil)

	passport := newPassport(uuid.Nil)
	_, err := ts.s.UpsertPassport(ts.ctx, entity.ContourManager, client.ID, passport)
	r.NoError(err)

	r.NotEqual(uuid.Nil, stored.ID)
	r.Equal(client.ID, stored.ClientID)
	r.Equal("Иванов", stored.LastName)
	r.WithinDuration(time.Now(), stored.UpdatedAt, 5*time.Second)
}

func TestService_PatchPassport_RequiresExistingPassport(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t, entity.ContourManager)

	client := newClient(ts, entity.ContourManager)

	ts.expectTx()
	ts.repo.EXPECT().ClientByID(ts.ctx, entity.ContourManager, client.ID).Return(client, nil)
	ts.repo.EXPECT().UpdatePassportFields(ts.ctx, client.ID, gomock.Any(), gomock.Any()).
		Return(entity.ErrNotFound)

	patch := entity.PassportPatch{LastName: ptr("Петров")}
	_, err := ts.s.PatchPassport(ts.ctx, entity.ContourManager, client.ID, patch)

	var missing *entity.PrerequisiteError
	r.ErrorAs(err, &missing)
	r.Equal(entity.PrerequisitePassport, missing.Missing)
}

func TestService_AttachPassportPhoto(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t, entity.ContourManager)

	client := newClient(ts, entity.ContourManager)
	fileKey := "clients/" + client.ID.String() + "/passport/photo.jpg"

	ts.expectTx()
	ts.repo.EXPECT().ClientByID(ts.ctx, entity.ContourManager, client.ID).Return(client, nil)
	ts.repo.EXPECT().PassportByClientID(ts.ctx, client.ID).Return(newPassport(client.ID), nil)
	ts.storage.EXPECT().PublicURL(fileKey).Return("https://cdn.privet.ru/" + fileKey)
	ts.repo.EXPECT().SetPassportPhoto(ts.ctx, client.ID, ptr(fileKey), ptr("https://cdn.privet.ru/"+fileKey), gomock.Any()).
		Return(nil)
	ts.repo.EXPECT().ClientDetail(ts.ctx, entity.ContourManager, client.ID).
		Return(entity.ClientDetail{Client: client}, nil)

	_, err := ts.s.AttachPassportPhoto(ts.ctx, entity.ContourManager, client.ID, fileKey)
	r.NoError(err)
}

func TestService_AttachPassportPhoto_WithoutPassport(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t, entity.ContourManager)

	client := newClient(ts, entity.ContourManager)

	ts.expectTx()
	ts.repo.EXPECT().ClientByID(ts.ctx, entity.ContourManager, client.ID).Return(client, nil)
	ts.repo.EXPECT().PassportByClientID(ts.ctx, client.ID).
		Return(entity.Passport{}, entity.ErrNotFound)

	_, err := ts.s.AttachPassportPhoto(ts.ctx, entity.ContourManager, client.ID, "key")

	var missing *entity.PrerequisiteError
	r.ErrorAs(err, &missing)
	r.Equal(entity.PrerequisitePassport, missing.Missing)
}

func TestService_DetachPassportPhoto(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t, entity.ContourManager)

	client := newClient(ts, entity.ContourManager)
	passport := newPassport(client.ID)
	passport.PhotoFileKey = ptr("clients/x/passport/photo.jpg")
	passport.PhotoURL = ptr("https://cdn.privet.ru/clients/x/passport/photo.jpg")

	ts.repo.EXPECT().ClientByID(ts.ctx, entity.ContourManager, client.ID).Return(client, nil)
	ts.repo.EXPECT().PassportByClientID(ts.ctx, client.ID).Return(passport, nil)
	// сбой удаления файла не мешает отвязке
	ts.storage.EXPECT().Delete(ts.ctx, *passport.PhotoFileKey).Return(errors.New("storage is down"))
	ts.repo.EXPECT().SetPassportPhoto(ts.ctx, client.ID, nil, nil, gomock.Any()).Return(nil)
	ts.repo.EXPECT().ClientDetail(ts.ctx, entity.ContourManager, client.ID).
		Return(entity.ClientDetail{Client: client}, nil)

	_, err := ts.s.DetachPassportPhoto(ts.ctx, entity.ContourManager, client.ID)
	r.NoError(err)
}

func TestService_DetachPassportPhoto_NoPhoto(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t, entity.ContourManager)

	client := newClient(ts, entity.ContourManager)

	ts.repo.EXPECT().ClientByID(ts.ctx, entity.ContourManager, client.ID).Return(client, nil)
	ts.repo.EXPECT().PassportByClientID(ts.ctx, client.ID).Return(newPassport(client.ID), nil)

	_, err := ts.s.DetachPassportPhoto(ts.ctx, entity.ContourManager, client.ID)
	r.ErrorIs(err, entity.ErrNotFound)
}

func TestService_PassportPhotoUploadURL(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t, entity.ContourManager)

	client := newClient(ts, entity.ContourManager)
	want := entity.PresignedUpload{
		URL:     "https://s3.privet.ru/upload",
		FileKey: "clients/" + client.ID.String() + "/passport/abc.jpg",
	}

	ts.repo.EXPECT().ClientByID(ts.ctx, entity.ContourManager, client.ID).Return(client, nil)
	ts.storage.EXPECT().PresignUpload(ts.ctx, "clients/"+client.ID.String()+"/passport", "image/jpeg").
		Return(want, nil)

	got, err := ts.s.PassportPhotoUploadURL(ts.ctx, entity.ContourManager, client.ID, "image/jpeg")
	r.NoError(err)
	r.Equal(want, got)
}
