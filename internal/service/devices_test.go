package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/forexel/PrivetManagerApp/internal/entity"
)

func TestService_CreateDevice(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t, entity.ContourManager)

	client := newClient(ts, entity.ContourManager)

	ts.expectTx()
	ts.repo.EXPECT().ClientByID(ts.ctx, entity.ContourManager, client.ID).Return(client, nil)

	var created entity.Device
	ts.repo.EXPECT().CreateDevice(ts.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, d entity.Device) (entity.Device, error) {
			created = d
			return d, nil
		})

	// после записи пересчитывается кеш тарифа
	ts.repo.EXPECT().DevicesByClientID(ts.ctx, client.ID).DoAndReturn(
		func(context.Context, uuid.UUID) ([]entity.Device, error) {
			return []entity.Device{created}, nil
		})
	ts.repo.EXPECT().ClientTariffByClientID(ts.ctx, client.ID).
		Return(entity.ClientTariff{}, entity.ErrNotFound)

	var recalced entity.ClientTariff
	ts.repo.EXPECT().UpsertClientTariff(ts.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, ct entity.ClientTariff) (entity.ClientTariff, error) {
			recalced = ct
			return ct, nil
		})

	device, err := ts.s.CreateDevice(ts.ctx, entity.ContourManager, client.ID, entity.Device{
		DeviceType: "boiler",
		Title:      "Котёл BAXI",
	})
	r.NoError(err)

	r.NotEqual(uuid.Nil, device.ID)
	r.Equal(client.ID, device.ClientID)
	r.Equal("boiler", device.DeviceType)
	r.Equal(1, recalced.DeviceCount)
	r.True(recalced.TotalExtraFee.Equal(decimal.NewFromInt(1000)))
}

func TestService_CreateDevice_RecalcFailureDoesNotFailCreation(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t, entity.ContourManager)

	client := newClient(ts, entity.ContourManager)

	ts.expectTx()
	ts.repo.EXPECT().ClientByID(ts.ctx, entity.ContourManager, client.ID).Return(client, nil)
	ts.repo.EXPECT().CreateDevice(ts.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, d entity.Device) (entity.Device, error) {
			return d, nil
		})

	// пересчёт падает, но устройство уже создано
	ts.repo.EXPECT().DevicesByClientID(ts.ctx, client.ID).Return(nil, errors.New("db is down"))

	device, err := ts.s.CreateDevice(ts.ctx, entity.ContourManager, client.ID, entity.Device{Title: "Котёл"})
	r.NoError(err)
	r.NotEqual(uuid.Nil, device.ID)
}

func TestService_UpdateDevice(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t, entity.ContourManager)

	client := newClient(ts, entity.ContourManager)
	device := newDevice(client.ID)

	ts.expectTx()
	ts.repo.EXPECT().ClientByID(ts.ctx, entity.ContourManager, client.ID).Return(client, nil)
	ts.repo.EXPECT().DeviceByID(ts.ctx, client.ID, device.ID).Return(device, nil)

	var stored entity.Device
	ts.repo.EXPECT().UpdateDevice(ts.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, d entity.Device) error {
			stored = d
			return nil
		})

	ts.repo.EXPECT().DevicesByClientID(ts.ctx, client.ID).Return([]entity.Device{device}, nil)
	ts.repo.EXPECT().ClientTariffByClientID(ts.ctx, client.ID).Return(syncedTariff(client.ID, 1), nil)
	ts.repo.EXPECT().UpsertClientTariff(ts.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, ct entity.ClientTariff) (entity.ClientTariff, error) {
			return ct, nil
		})

	patch := entity.DevicePatch{
		Title:    ptr("Котёл BAXI Eco-4"),
		ExtraFee: ptr(decimal.NewFromInt(500)),
	}

	updated, err := ts.s.UpdateDevice(ts.ctx, entity.ContourManager, client.ID, device.ID, patch)
	r.NoError(err)

	// патч меняет только заполненные поля
	r.Equal("Котёл BAXI Eco-4", updated.Title)
	r.True(updated.ExtraFee.Equal(decimal.NewFromInt(500)))
	r.Equal(device.DeviceType, updated.DeviceType)
	r.Equal(updated.Title, stored.Title)
}

func TestService_DeleteDevice(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t, entity.ContourManager)

	client := newClient(ts, entity.ContourManager)
	deviceID := uuid.Must(uuid.NewV4())

	ts.expectTx()
	ts.repo.EXPECT().ClientByID(ts.ctx, entity.ContourManager, client.ID).Return(client, nil)
	ts.repo.EXPECT().DeleteDevice(ts.ctx, client.ID, deviceID).Return(nil)

	ts.repo.EXPECT().DevicesByClientID(ts.ctx, client.ID).Return(nil, nil)
	ts.repo.EXPECT().ClientTariffByClientID(ts.ctx, client.ID).Return(syncedTariff(client.ID, 1), nil)

	var recalced entity.ClientTariff
	ts.repo.EXPECT().UpsertClientTariff(ts.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, ct entity.ClientTariff) (entity.ClientTariff, error) {
			recalced = ct
			return ct, nil
		})

	err := ts.s.DeleteDevice(ts.ctx, entity.ContourManager, client.ID, deviceID)
	r.NoError(err)

	r.Equal(0, recalced.DeviceCount)
	r.True(recalced.TotalExtraFee.IsZero())
}

func TestService_AddDevicePhoto(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t, entity.ContourManager)

	client := newClient(ts, entity.ContourManager)
	device := newDevice(client.ID)

	ts.expectTx()
	ts.repo.EXPECT().ClientByID(ts.ctx, entity.ContourManager, client.ID).Return(client, nil)
	ts.repo.EXPECT().DeviceByID(ts.ctx, client.ID, device.ID).Return(device, nil)

	var photo entity.DevicePhoto
	ts.repo.EXPECT().AddDevicePhoto(ts.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p entity.DevicePhoto) (entity.DevicePhoto, error) {
			photo = p
			return p, nil
		})
	ts.repo.EXPECT().ClientDetail(ts.ctx, entity.ContourManager, client.ID).
		Return(entity.ClientDetail{Client: client}, nil)

	_, err := ts.s.AddDevicePhoto(ts.ctx, entity.ContourManager, client.ID, device.ID, "clients/x/devices/y/photo.jpg")
	r.NoError(err)

	r.Equal(device.ID, photo.DeviceID)
	r.Equal("clients/x/devices/y/photo.jpg", photo.FileKey)
}

func TestService_DeleteDevicePhoto_KeepsFileInStorage(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t, entity.ContourManager)

	client := newClient(ts, entity.ContourManager)
	device := newDevice(client.ID)
	photo := entity.DevicePhoto{
		ID:       uuid.Must(uuid.NewV4()),
		DeviceID: device.ID,
		FileKey:  "clients/x/devices/y/photo.jpg",
	}

	ts.expectTx()
	ts.repo.EXPECT().ClientByID(ts.ctx, entity.ContourManager, client.ID).Return(client, nil)
	ts.repo.EXPECT().DeviceByID(ts.ctx, client.ID, device.ID).Return(device, nil)
	ts.repo.EXPECT().DevicePhotoByID(ts.ctx, device.ID, photo.ID).Return(photo, nil)
	// удаляется только запись: на файл может ссылаться снимок договора,
	// поэтому обращений к хранилищу здесь нет
	ts.repo.EXPECT().DeleteDevicePhoto(ts.ctx, photo.ID).Return(nil)
	ts.repo.EXPECT().ClientDetail(ts.ctx, entity.ContourManager, client.ID).
		Return(entity.ClientDetail{Client: client}, nil)

	_, err := ts.s.DeleteDevicePhoto(ts.ctx, entity.ContourManager, client.ID, device.ID, photo.ID)
	r.NoError(err)
}
