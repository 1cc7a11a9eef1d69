package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/forexel/PrivetManagerApp/internal/canonical"
	"github.com/forexel/PrivetManagerApp/internal/entity"
	"github.com/forexel/PrivetManagerApp/internal/sign"
)

// Окно, в течение которого повторный запрос кода возвращает прежний код.
const otpReuseWindow = time.Minute

var (
	contractNumberRe = regexp.MustCompile(`^[A-Za-zА-Яа-яЁё]{2}-(\d{6})-(\d{2})$`)
	nonLetterRe      = regexp.MustCompile(`[^A-Za-zА-Яа-яЁё]`)
)

// GenerateContract собирает снимки паспорта, устройств и тарифа, печатает
// PDF и сохраняет договор. Генерация идемпотентна: при неизменных данных
// возвращается уже существующий договор, а пока клиент не ввёл отправленный
// код, повторная генерация запрещена, чтобы не обесценить код на руках.
func (s *Service) GenerateContract(ctx context.Context, contour entity.Contour, clientID uuid.UUID) (entity.ContractSummary, error) {
	cfg := entity.ConfigForContour(contour)

	var (
		summary   entity.ContractSummary
		recipient entity.Client
		issuedOTP string
	)

	err := s.repo.InClientTx(ctx, clientID, func(ctx context.Context) error {
		client, err := s.clientForUpdate(ctx, contour, clientID)
		if err != nil {
			return err
		}

		passport, err := s.repo.PassportByClientID(ctx, client.ID)
		if err != nil {
			if errors.Is(err, entity.ErrNotFound) {
				return entity.NewPrerequisiteError(entity.PrerequisitePassport)
			}
			return fmt.Errorf("get passport: %w", err)
		}

		devices, err := s.repo.DevicesByClientID(ctx, client.ID)
		if err != nil {
			return fmt.Errorf("list devices: %w", err)
		}
		if cfg.RequireDevices && len(devices) == 0 {
			return entity.NewPrerequisiteError(entity.PrerequisiteDevices)
		}

		clientTariff, err := s.repo.ClientTariffByClientID(ctx, client.ID)
		if err != nil {
			if errors.Is(err, entity.ErrNotFound) {
				return entity.NewPrerequisiteError(entity.PrerequisiteTariff)
			}
			return fmt.Errorf("get client tariff: %w", err)
		}

		user, err := s.repo.UserByID(ctx, client.UserID)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}

		existing, err := s.repo.ContractByClientID(ctx, client.ID)
		hasContract := err == nil
		if err != nil && !errors.Is(err, entity.ErrNotFound) {
			return fmt.Errorf("get contract: %w", err)
		}

		// Кеш тарифа мог отстать от фактического списка устройств.
		clientTariff, err = s.refreshTariffDrift(ctx, cfg, clientTariff, len(devices))
		if err != nil {
			return err
		}

		passportSnapshot := buildPassportSnapshot(passport, user, cfg)
		deviceSnapshot := buildDeviceSnapshot(devices)
		tariffSnapshot := buildTariffSnapshot(cfg, clientTariff, user, len(devices))

		// Доплата при подписании считается от устройств, добавленных после
		// последнего подписанного снимка.
		var previousDevices []map[string]any
		if hasContract && existing.Signed() {
			previousDevices = existing.DeviceSnapshot
		}

		deviceAdded, deviceAddedCount := canonical.DeviceAdditionStats(previousDevices, deviceSnapshot)
		tariffSnapshot["device_added"] = deviceAdded
		tariffSnapshot["device_added_count"] = deviceAddedCount
		tariffSnapshot["was_signed_before_regen"] = hasContract && existing.Signed()

		if hasContract && existing.OTPPending() {
			summary = summaryFromContract(existing, cfg.OTPAtGeneration)
			slog.InfoContext(ctx, fmt.Sprintf("Договор %s ждёт код подтверждения, генерация пропущена", summary.ContractNumber))
			return nil
		}

		if hasContract {
			stored := sign.Digest(sign.Fingerprint(existing.PassportSnapshot, existing.DeviceSnapshot, existing.TariffSnapshot))
			candidate := sign.Digest(sign.Fingerprint(passportSnapshot, deviceSnapshot, tariffSnapshot))
			if stored == candidate {
				summary = summaryFromContract(existing, cfg.OTPAtGeneration)
				slog.InfoContext(ctx, fmt.Sprintf("Данные договора %s не изменились (отпечаток %s), генерация пропущена", summary.ContractNumber, candidate))
				return nil
			}
		}

		now := time.Now().UTC()

		var existingNumber *string
		if hasContract {
			existingNumber = existing.ContractNumber
		}

		number := mintContractNumber(passport.LastName, orEmpty(user.Name), existingNumber, now)

		pdf, err := s.renderer.Render(number, passportSnapshot, deviceSnapshot, tariffSnapshot, canonical.AsString(tariffSnapshot["client_full_name"]))
		if err != nil {
			return fmt.Errorf("%w: render contract %s: %s", entity.ErrUpstream, number, err)
		}

		key := contractDocumentKey(client.ID, number)
		if err := s.storage.Upload(ctx, key, pdf, "application/pdf"); err != nil {
			return fmt.Errorf("%w: upload contract %s: %s", entity.ErrUpstream, number, err)
		}

		contractURL := s.storage.PublicURL(key)

		saved, err := s.repo.SaveGenerated(ctx, entity.Contract{
			ID:               uuid.Must(uuid.NewV4()),
			ClientID:         client.ID,
			PassportSnapshot: passportSnapshot,
			DeviceSnapshot:   deviceSnapshot,
			TariffSnapshot:   tariffSnapshot,
			ContractNumber:   &number,
			ContractURL:      &contractURL,
			UpdatedAt:        now,
		})
		if err != nil {
			return fmt.Errorf("save contract: %w", err)
		}

		if err := s.repo.SetClientStatus(ctx, client.ID, entity.ProjectStatus(client.Status, &saved, false)); err != nil {
			return fmt.Errorf("set client status: %w", err)
		}

		summary = entity.ContractSummary{
			ContractID:     saved.ID,
			ContractNumber: number,
			ContractURL:    contractURL,
		}

		// Контур мастера выдаёт код сразу: подписание происходит на выезде,
		// пока сотрудник рядом с клиентом.
		if cfg.OTPAtGeneration {
			code, err := s.issueOTP(ctx, cfg, saved)
			if err != nil {
				return err
			}
			summary.OTPCode = code
			issuedOTP = code
			recipient = client
		}

		slog.InfoContext(ctx, fmt.Sprintf("Сгенерирован договор %s для клиента %s", number, client.ID))

		return nil
	})
	if err != nil {
		return entity.ContractSummary{}, err
	}

	if issuedOTP != "" {
		s.notifySupport(ctx, cfg, recipient,
			fmt.Sprintf("Договор %s, код подтверждения %s", summary.ContractNumber, issuedOTP),
			map[string]any{"otp_code": issuedOTP})
	}

	return summary, nil
}

// RequestContractOTP отправляет клиенту код подтверждения через тред
// поддержки. Код действует до подписания; запрос в пределах минуты после
// предыдущего возвращает тот же код, продлевая окно.
func (s *Service) RequestContractOTP(ctx context.Context, contour entity.Contour, clientID uuid.UUID) (string, error) {
	cfg := entity.ConfigForContour(contour)

	var (
		code      string
		number    string
		recipient entity.Client
	)

	err := s.repo.InClientTx(ctx, clientID, func(ctx context.Context) error {
		client, err := s.clientForUpdate(ctx, contour, clientID)
		if err != nil {
			return err
		}

		contract, err := s.repo.ContractByClientID(ctx, client.ID)
		if err != nil {
			if errors.Is(err, entity.ErrNotFound) {
				return fmt.Errorf("%w: contract not generated", entity.ErrNotFound)
			}
			return fmt.Errorf("get contract: %w", err)
		}

		code, err = s.issueOTP(ctx, cfg, contract)
		if err != nil {
			return err
		}

		if contract.ContractNumber != nil {
			number = *contract.ContractNumber
		}
		recipient = client

		return nil
	})
	if err != nil {
		return "", err
	}

	slog.InfoContext(ctx, fmt.Sprintf("Отправлен код подтверждения по договору %s", number))

	s.notifySupport(ctx, cfg, recipient,
		fmt.Sprintf("Договор %s, код подтверждения %s", number, code),
		map[string]any{"otp_code": code})

	return code, nil
}

// ConfirmContract фиксирует простую электронную подпись: сверяет код,
// считает хеш документа и HMAC-подтверждение, после чего решает вопрос о
// доплате. Счёт выставляется на полную сумму при первом подписании и на
// стоимость добавленных устройств при переподписании.
func (s *Service) ConfirmContract(ctx context.Context, contour entity.Contour, clientID uuid.UUID, otp string, meta entity.SignatureMeta) (entity.ClientDetail, error) {
	cfg := entity.ConfigForContour(contour)

	var (
		detail    entity.ClientDetail
		invoice   *entity.Invoice
		number    string
		recipient entity.Client
	)

	err := s.repo.InClientTx(ctx, clientID, func(ctx context.Context) error {
		client, err := s.clientForUpdate(ctx, contour, clientID)
		if err != nil {
			return err
		}

		contract, err := s.repo.ContractByClientID(ctx, client.ID)
		if err != nil {
			if errors.Is(err, entity.ErrNotFound) {
				return fmt.Errorf("%w: contract not generated", entity.ErrNotFound)
			}
			return fmt.Errorf("get contract: %w", err)
		}

		expected := ""
		if contract.OTPCode != nil {
			expected = strings.TrimSpace(*contract.OTPCode)
		}
		if expected == "" || expected != strings.TrimSpace(otp) {
			return fmt.Errorf("%w: otp mismatch", entity.ErrInvalidCredential)
		}

		// Флаг снимается до записи подписи, иначе переподписание всегда
		// выглядело бы как повторное.
		wasSignedBefore := contract.Signed()

		if contract.ContractNumber != nil {
			number = *contract.ContractNumber
		}

		pdf, err := s.contractDocument(ctx, contract)
		if err != nil {
			return err
		}

		hash := sign.DocumentHash(pdf)
		now := time.Now().UTC()

		err = s.repo.MarkContractSigned(ctx, client.ID, entity.ContractSignature{
			SignedAt:    now,
			PepAgreedAt: now,
			Hash:        hash,
			HMAC:        sign.Proof(hash, s.cfg.Contract.HMACSecret),
			IP:          meta.IP,
			UserAgent:   meta.UserAgent,
		})
		if err != nil {
			return fmt.Errorf("mark contract signed: %w", err)
		}

		amount, billable := signingInvoiceAmount(cfg, contract.TariffSnapshot, wasSignedBefore)
		if billable {
			invoice, err = s.ensureInvoice(ctx, client, number, amount, "")
			if err != nil {
				return err
			}
		}

		// Локальная копия приводится к записанному состоянию: статус
		// клиента выводится из договора и счёта.
		contract.SignedAt = &now
		contract.PaymentConfirmedAt = nil
		if err := s.repo.SetClientStatus(ctx, client.ID, entity.ProjectStatus(client.Status, &contract, invoice != nil)); err != nil {
			return fmt.Errorf("set client status: %w", err)
		}

		recipient = client

		detail, err = s.detailTx(ctx, contour, clientID)
		return err
	})
	if err != nil {
		return entity.ClientDetail{}, err
	}

	slog.InfoContext(ctx, fmt.Sprintf("Подписан договор %s клиента %s", number, clientID))

	s.producer.SendContractSigned(ctx, string(contour), recipient.UserID, number)
	if invoice != nil {
		s.notifyInvoice(ctx, cfg, recipient, *invoice)
	}

	return detail, nil
}

// ConfirmPayment — отметка сотрудника о полученной оплате. Проверку платежа
// не выполняет: это ручное подтверждение, переводящее клиента в processed.
func (s *Service) ConfirmPayment(ctx context.Context, contour entity.Contour, clientID uuid.UUID) (entity.ClientDetail, error) {
	var detail entity.ClientDetail

	err := s.repo.InClientTx(ctx, clientID, func(ctx context.Context) error {
		client, err := s.clientForUpdate(ctx, contour, clientID)
		if err != nil {
			return err
		}

		if _, err := s.repo.ContractByClientID(ctx, client.ID); err != nil {
			if errors.Is(err, entity.ErrNotFound) {
				return fmt.Errorf("%w: contract not generated", entity.ErrNotFound)
			}
			return fmt.Errorf("get contract: %w", err)
		}

		if err := s.repo.SetPaymentConfirmed(ctx, client.ID, time.Now().UTC()); err != nil {
			return fmt.Errorf("confirm payment: %w", err)
		}

		if err := s.repo.SetClientStatus(ctx, client.ID, entity.ClientStatusProcessed); err != nil {
			return fmt.Errorf("set client status: %w", err)
		}

		detail, err = s.detailTx(ctx, contour, clientID)
		return err
	})
	if err != nil {
		return entity.ClientDetail{}, err
	}

	slog.InfoContext(ctx, fmt.Sprintf("Подтверждена оплата по договору клиента %s", clientID))

	return detail, nil
}

// signingInvoiceAmount решает, сколько доплаты выставлять при подписании.
// Первое подписание оплачивает весь снимок тарифа, переподписание — только
// добавленные с прошлого подписания устройства.
func signingInvoiceAmount(cfg entity.ContourConfig, flags map[string]any, wasSignedBefore bool) (decimal.Decimal, bool) {
	previouslySigned := wasSignedBefore || canonical.AsBool(flags["was_signed_before_regen"])
	deviceAdded := canonical.AsBool(flags["device_added"])

	deviceAddedCount := canonical.AsInt(flags["device_added_count"])
	if deviceAdded && deviceAddedCount < 1 {
		deviceAddedCount = 1
	}

	rate := decimal.NewFromFloat(canonical.AsFloat(flags["extra_per_device"]))
	if rate.LessThanOrEqual(decimal.Zero) {
		rate = cfg.DefaultRate
	}

	amount := decimal.Zero
	switch {
	case previouslySigned && deviceAdded:
		amount = rate.Mul(decimal.NewFromInt(int64(deviceAddedCount)))
	case !previouslySigned:
		amount = decimal.NewFromFloat(canonical.AsFloat(flags["total_extra_fee"]))
	}

	return amount, amount.GreaterThan(decimal.Zero) && (deviceAdded || !previouslySigned)
}

// contractDocument достаёт PDF договора из хранилища; утерянный документ
// восстанавливается из сохранённых снимков и загружается заново, чтобы хеш
// подписи всегда считался от реально доступного файла.
func (s *Service) contractDocument(ctx context.Context, contract entity.Contract) ([]byte, error) {
	if contract.ContractNumber == nil {
		return nil, entity.NewPrerequisiteError(entity.PrerequisiteContract)
	}

	key := contractDocumentKey(contract.ClientID, *contract.ContractNumber)

	pdf, err := s.storage.Download(ctx, key)
	if err == nil {
		return pdf, nil
	}

	slog.WarnContext(ctx, "документ договора недоступен, восстановление из снимков",
		"client_id", contract.ClientID, "key", key, "error", err)

	pdf, err = s.renderer.Render(*contract.ContractNumber, contract.PassportSnapshot, contract.DeviceSnapshot, contract.TariffSnapshot, canonical.AsString(contract.TariffSnapshot["client_full_name"]))
	if err != nil {
		return nil, fmt.Errorf("%w: render contract %s: %s", entity.ErrUpstream, *contract.ContractNumber, err)
	}

	if err := s.storage.Upload(ctx, key, pdf, "application/pdf"); err != nil {
		return nil, fmt.Errorf("%w: upload contract %s: %s", entity.ErrUpstream, *contract.ContractNumber, err)
	}

	return pdf, nil
}

// issueOTP выдаёт код подтверждения. Недавно выданный код переиспользуется,
// но отметка отправки сдвигается: окно считается от последней отправки.
func (s *Service) issueOTP(ctx context.Context, cfg entity.ContourConfig, contract entity.Contract) (string, error) {
	now := time.Now().UTC()

	var code string
	if contract.OTPCode != nil && contract.OTPSentAt != nil && now.Sub(*contract.OTPSentAt) < otpReuseWindow {
		code = *contract.OTPCode
	} else {
		var err error
		code, err = generateOTP(cfg.OTPDigits)
		if err != nil {
			return "", fmt.Errorf("generate otp: %w", err)
		}
	}

	if err := s.repo.SetContractOTP(ctx, contract.ClientID, code, now); err != nil {
		return "", fmt.Errorf("save otp: %w", err)
	}

	return code, nil
}

// generateOTP равномерно выбирает код из [10^(digits-1), 10^digits).
func generateOTP(digits int) (string, error) {
	low := int64(1)
	for i := 1; i < digits; i++ {
		low *= 10
	}

	n, err := rand.Int(rand.Reader, big.NewInt(low*9))
	if err != nil {
		return "", err
	}

	return strconv.FormatInt(low+n.Int64(), 10), nil
}

// mintContractNumber строит номер вида "ИВ-250115-02": две первые буквы
// фамилии, дата UTC и порядковый номер в пределах дня. Перегенерация в тот
// же день наращивает порядковый номер, в другой день счёт начинается с 01.
func mintContractNumber(lastName, displayName string, existingNumber *string, now time.Time) string {
	base := strings.TrimSpace(lastName)
	if base == "" {
		base = displayName
	}

	letters := []rune(strings.ToUpper(nonLetterRe.ReplaceAllString(base, "")))
	prefix := "XX"
	if len(letters) >= 2 {
		prefix = string(letters[:2])
	} else if len(letters) == 1 {
		prefix = string(letters)
	}

	date := now.Format("060102")

	seq := 1
	if existingNumber != nil {
		if m := contractNumberRe.FindStringSubmatch(*existingNumber); m != nil && m[1] == date {
			n, _ := strconv.Atoi(m[2])
			if n < 1 {
				n = 1
			}
			seq = n + 1
		}
	}

	return fmt.Sprintf("%s-%s-%02d", prefix, date, seq)
}

func contractDocumentKey(clientID uuid.UUID, number string) string {
	return fmt.Sprintf("contracts/%s/%s.pdf", clientID, number)
}

// Снимок паспорта. Контур менеджера дополняет его контактами и фото —
// договор менеджера печатает реквизиты целиком.
func buildPassportSnapshot(p entity.Passport, u entity.User, cfg entity.ContourConfig) map[string]any {
	snapshot := map[string]any{
		"last_name":            p.LastName,
		"first_name":           p.FirstName,
		"middle_name":          orEmpty(p.MiddleName),
		"series":               p.Series,
		"number":               p.Number,
		"issued_by":            p.IssuedBy,
		"issue_code":           p.IssueCode,
		"issue_date":           p.IssueDate.Format("2006-01-02"),
		"registration_address": p.RegistrationAddress,
	}

	if cfg.PassportPhoto {
		snapshot["photo_url"] = orEmpty(p.PhotoURL)
		snapshot["phone"] = u.Phone
		snapshot["email"] = orEmpty(u.Email)
		snapshot["name"] = orEmpty(u.Name)
		snapshot["address"] = orEmpty(u.Address)
	}

	return snapshot
}

func buildDeviceSnapshot(devices []entity.Device) []map[string]any {
	snapshot := make([]map[string]any, 0, len(devices))

	for _, d := range devices {
		photos := make([]string, 0, len(d.Photos))
		for _, p := range d.Photos {
			photos = append(photos, p.FileKey)
		}

		specs := d.Specs
		if specs == nil {
			specs = map[string]any{}
		}

		fee, _ := d.ExtraFee.Float64()

		snapshot = append(snapshot, map[string]any{
			"id":          d.ID.String(),
			"device_type": d.DeviceType,
			"title":       d.Title,
			"description": orEmpty(d.Description),
			"specs":       specs,
			"extra_fee":   fee,
			"photos":      photos,
		})
	}

	return snapshot
}

// Снимок тарифа. Без выбранного справочного тарифа ставка за устройство
// фиксируется равной ставке контура по умолчанию, чтобы расчёт доплаты при
// подписании не зависел от дальнейших правок справочника.
func buildTariffSnapshot(cfg entity.ContourConfig, ct entity.ClientTariff, u entity.User, deviceCount int) map[string]any {
	total, _ := ct.TotalExtraFee.Float64()
	rate, _ := cfg.DefaultRate.Float64()
	base := 0.0

	snapshot := map[string]any{
		"tariff_id":        nil,
		"device_count":     deviceCount,
		"total_extra_fee":  total,
		"client_full_name": orEmpty(u.Name),
	}

	if ct.TariffID != nil {
		snapshot["tariff_id"] = ct.TariffID.String()
	}
	if ct.Tariff != nil {
		rate, _ = ct.Tariff.ExtraPerDevice.Float64()
		base, _ = ct.Tariff.BaseFee.Float64()
		snapshot["name"] = ct.Tariff.Name
	}

	snapshot["extra_per_device"] = rate
	snapshot["base_fee"] = base

	return snapshot
}

// refreshTariffDrift выравнивает кеш тарифа с фактическим списком устройств
// перед снятием снимка. Совпадающий кеш не перезаписывается.
func (s *Service) refreshTariffDrift(ctx context.Context, cfg entity.ContourConfig, ct entity.ClientTariff, deviceCount int) (entity.ClientTariff, error) {
	rate := cfg.DefaultRate
	if ct.Tariff != nil {
		rate = ct.Tariff.ExtraPerDevice
	}

	total := rate.Mul(decimal.NewFromInt(int64(deviceCount)))

	if ct.DeviceCount == deviceCount && ct.TotalExtraFee.Equal(total) {
		return ct, nil
	}

	ct.DeviceCount = deviceCount
	ct.TotalExtraFee = total
	ct.CalculatedAt = time.Now().UTC()

	updated, err := s.repo.UpsertClientTariff(ctx, ct)
	if err != nil {
		return entity.ClientTariff{}, fmt.Errorf("refresh client tariff: %w", err)
	}

	return updated, nil
}

// Ответ по уже существующему договору. Код возвращается только контуру,
// который выдаёт его прямо при генерации.
func summaryFromContract(c entity.Contract, includeOTP bool) entity.ContractSummary {
	summary := entity.ContractSummary{ContractID: c.ID}

	if c.ContractNumber != nil {
		summary.ContractNumber = *c.ContractNumber
	}
	if c.ContractURL != nil {
		summary.ContractURL = *c.ContractURL
	}
	if includeOTP && c.OTPCode != nil {
		summary.OTPCode = *c.OTPCode
	}

	return summary
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
