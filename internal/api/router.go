package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/forexel/PrivetManagerApp/docs" // swagger docs
	"github.com/forexel/PrivetManagerApp/internal/entity"
)

func NewRouter(manager, master *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover, mw.Cors)

	mux.Route("/api", func(r chi.Router) {
		r.HandleFunc("/health", manager.HealthHandler)
		r.HandleFunc("/swagger/*", httpSwagger.Handler())

		r.Route("/manager", func(r chi.Router) {
			mountContour(r, manager, mw)
		})

		r.Route("/master", func(r chi.Router) {
			mountContour(r, master, mw)
		})
	})

	return mux
}

// mountContour вешает полный набор маршрутов контура. Маршруты обоих
// контуров совпадают, различия заданы конфигурацией контура: мастер получает
// код подписания прямо из генерации и не работает с фото паспорта.
func mountContour(r chi.Router, h *Handler, mw *Middleware) {
	cfg := entity.ConfigForContour(h.contour)

	r.Post("/auth/login", h.Login)

	r.Group(func(r chi.Router) {
		r.Use(mw.BearerAuth(h.contour))

		r.Get("/auth/me", h.Me)

		r.Get("/tariffs", h.Tariffs)

		r.Get("/clients", h.Clients)
		r.Get("/clients/export", h.ExportClients)

		r.Route("/clients/{id}", func(r chi.Router) {
			r.Get("/", h.ClientDetail)
			r.Patch("/profile", h.UpdateProfile)

			r.Put("/passport", h.UpsertPassport)
			r.Patch("/passport", h.PatchPassport)

			if cfg.PassportPhoto {
				r.Post("/passport/photo/upload-url", h.PassportPhotoUploadURL)
				r.Post("/passport/photo", h.AttachPassportPhoto)
				r.Delete("/passport/photo", h.DetachPassportPhoto)
			}

			r.Post("/devices", h.CreateDevice)
			r.Patch("/devices/{deviceID}", h.UpdateDevice)
			r.Delete("/devices/{deviceID}", h.DeleteDevice)
			r.Post("/devices/{deviceID}/photos/upload-url", h.DevicePhotoUploadURL)
			r.Post("/devices/{deviceID}/photos", h.AddDevicePhoto)
			r.Delete("/devices/{deviceID}/photos/{photoID}", h.DeleteDevicePhoto)

			r.Post("/tariff/calculate", h.CalculateTariff)
			r.Post("/tariff/apply", h.ApplyTariff)

			r.Post("/contract/generate", h.GenerateContract)

			if !cfg.OTPAtGeneration {
				r.Post("/contract/request-otp", h.RequestContractOTP)
			}

			r.Post("/contract/confirm", h.ConfirmContract)
			r.Post("/payment/confirm", h.ConfirmPayment)

			r.Post("/billing/notify", h.NotifyBilling)
		})

		if h.contour == entity.ContourManager {
			r.Post("/uploads/presigned", h.UploadURL)
			r.Post("/uploads/direct", h.DirectUpload)
		}
	})
}
