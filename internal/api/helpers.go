package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/forexel/PrivetManagerApp/internal/entity"
)

type ErrorResponse struct {
	Message     string `json:"message"`
	Description string `json:"description,omitempty"`
}

func SendJSONErr(ctx context.Context, w http.ResponseWriter, code int, originErr error, msgToSend string) {
	if originErr == nil {
		originErr = errors.New(msgToSend)
	}

	slog.ErrorContext(ctx, "api error", "error", originErr.Error())
	SendJSON(ctx, w, code, ErrorResponse{Message: msgToSend, Description: originErr.Error()})
}

func SendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		code = http.StatusInternalServerError
		http.Error(w, http.StatusText(code), code)

		slog.ErrorContext(ctx, "encode response", "error", err)
	}
}

// sendServiceErr транслирует доменные ошибки в HTTP-ответы. Обработчики с
// собственными формулировками разбирают свои случаи до вызова.
func sendServiceErr(ctx context.Context, w http.ResponseWriter, err error) {
	var prereq *entity.PrerequisiteError

	switch {
	case errors.As(err, &prereq):
		SendJSONErr(ctx, w, http.StatusBadRequest, err, prerequisiteMessage(prereq.Missing))
	case errors.Is(err, entity.ErrNotFound):
		SendJSONErr(ctx, w, http.StatusNotFound, err, "Не найдено")
	case errors.Is(err, entity.ErrInvalidArgument):
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Неверные данные запроса")
	case errors.Is(err, entity.ErrInvalidCredential):
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Неверные учётные данные")
	case errors.Is(err, entity.ErrUnauthenticated):
		SendJSONErr(ctx, w, http.StatusUnauthorized, err, "Требуется аутентификация")
	case errors.Is(err, entity.ErrForbidden):
		SendJSONErr(ctx, w, http.StatusForbidden, err, "Не хватает прав для выполнения действия")
	case errors.Is(err, entity.ErrUpstream):
		SendJSONErr(ctx, w, http.StatusBadGateway, err, "Внешний сервис недоступен")
	default:
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Внутренняя ошибка сервиса")
	}
}

func prerequisiteMessage(missing string) string {
	switch missing {
	case entity.PrerequisitePassport:
		return "Сначала заполните паспортные данные клиента"
	case entity.PrerequisiteDevices:
		return "Добавьте клиенту хотя бы одно устройство"
	case entity.PrerequisiteTariff:
		return "Сначала рассчитайте и примените тариф"
	case entity.PrerequisiteContract:
		return "Сначала сформируйте договор"
	default:
		return "Не выполнены условия оформления"
	}
}
