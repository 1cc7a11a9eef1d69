package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"

	"github.com/forexel/PrivetManagerApp/internal/entity"
)

const selectContract = `
	SELECT id, client_id, passport_snapshot, device_snapshot, tariff_snapshot,
	       otp_code, otp_sent_at, signed_at, pep_agreed_at, payment_confirmed_at,
	       contract_url, contract_number, signature_hash, signature_hmac,
	       signed_ip, signed_user_agent, created_at, updated_at
	FROM contracts`

func (r *Repository) ContractByClientID(ctx context.Context, clientID uuid.UUID) (entity.Contract, error) {
	q := selectContract + ` WHERE client_id = $1`
	return scanContract(r.q(ctx).QueryRow(ctx, q, clientID))
}

// SaveGenerated записывает свежесгенерированный договор: снимки, номер и
// ссылку на документ. Все отметки подписания, оплаты и OTP сбрасываются —
// генерация никогда не подписывает сама.
func (r *Repository) SaveGenerated(ctx context.Context, c entity.Contract) (entity.Contract, error) {
	const q = `
	INSERT INTO contracts (
		id, client_id, passport_snapshot, device_snapshot, tariff_snapshot,
		contract_number, contract_url, created_at, updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
	ON CONFLICT (client_id) DO UPDATE SET
		passport_snapshot = EXCLUDED.passport_snapshot,
		device_snapshot = EXCLUDED.device_snapshot,
		tariff_snapshot = EXCLUDED.tariff_snapshot,
		contract_number = EXCLUDED.contract_number,
		contract_url = EXCLUDED.contract_url,
		otp_code = NULL,
		otp_sent_at = NULL,
		signed_at = NULL,
		pep_agreed_at = NULL,
		payment_confirmed_at = NULL,
		signature_hash = NULL,
		signature_hmac = NULL,
		signed_ip = NULL,
		signed_user_agent = NULL,
		updated_at = EXCLUDED.updated_at
	RETURNING id, client_id, passport_snapshot, device_snapshot, tariff_snapshot,
	          otp_code, otp_sent_at, signed_at, pep_agreed_at, payment_confirmed_at,
	          contract_url, contract_number, signature_hash, signature_hmac,
	          signed_ip, signed_user_agent, created_at, updated_at`

	passport, devices, tariff, err := marshalSnapshots(c)
	if err != nil {
		return entity.Contract{}, err
	}

	return scanContract(r.q(ctx).QueryRow(
		ctx,
		q,
		c.ID,
		c.ClientID,
		passport,
		devices,
		tariff,
		c.ContractNumber,
		c.ContractURL,
		c.UpdatedAt,
	))
}

func (r *Repository) SetContractOTP(ctx context.Context, clientID uuid.UUID, code string, sentAt time.Time) error {
	const q = `UPDATE contracts SET otp_code = $1, otp_sent_at = $2, updated_at = $2 WHERE client_id = $3`

	result, err := r.q(ctx).Exec(ctx, q, code, sentAt, clientID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// MarkContractSigned фиксирует подпись, очищает OTP (код одноразовый) и
// снимает отметку об оплате: новая подпись открывает новый платёжный цикл.
func (r *Repository) MarkContractSigned(ctx context.Context, clientID uuid.UUID, sig entity.ContractSignature) error {
	const q = `
	UPDATE contracts
	SET signed_at = $1,
	    pep_agreed_at = $2,
	    signature_hash = $3,
	    signature_hmac = $4,
	    signed_ip = $5,
	    signed_user_agent = $6,
	    otp_code = NULL,
	    otp_sent_at = NULL,
	    payment_confirmed_at = NULL,
	    updated_at = $1
	WHERE client_id = $7`

	result, err := r.q(ctx).Exec(
		ctx,
		q,
		sig.SignedAt,
		sig.PepAgreedAt,
		zeronull.Text(sig.Hash),
		zeronull.Text(sig.HMAC),
		zeronull.Text(sig.IP),
		zeronull.Text(sig.UserAgent),
		clientID,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) SetPaymentConfirmed(ctx context.Context, clientID uuid.UUID, confirmedAt time.Time) error {
	const q = `UPDATE contracts SET payment_confirmed_at = $1, updated_at = $1 WHERE client_id = $2`

	result, err := r.q(ctx).Exec(ctx, q, confirmedAt, clientID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func marshalSnapshots(c entity.Contract) (passport, devices, tariff []byte, err error) {
	passport, err = json.Marshal(c.PassportSnapshot)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("marshal passport snapshot: %w", err)
	}

	devices, err = json.Marshal(c.DeviceSnapshot)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("marshal device snapshot: %w", err)
	}

	tariff, err = json.Marshal(c.TariffSnapshot)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("marshal tariff snapshot: %w", err)
	}

	return passport, devices, tariff, nil
}

func scanContract(row pgx.Row) (c entity.Contract, err error) {
	var passport, devices, tariff []byte

	err = row.Scan(
		&c.ID,
		&c.ClientID,
		&passport,
		&devices,
		&tariff,
		&c.OTPCode,
		&c.OTPSentAt,
		&c.SignedAt,
		&c.PepAgreedAt,
		&c.PaymentConfirmedAt,
		&c.ContractURL,
		&c.ContractNumber,
		&c.SignatureHash,
		&c.SignatureHMAC,
		&c.SignedIP,
		&c.SignedUserAgent,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Contract{}, entity.ErrNotFound
		}

		return entity.Contract{}, err
	}

	if err := json.Unmarshal(passport, &c.PassportSnapshot); err != nil {
		return entity.Contract{}, fmt.Errorf("unmarshal passport snapshot: %w", err)
	}

	if err := json.Unmarshal(devices, &c.DeviceSnapshot); err != nil {
		return entity.Contract{}, fmt.Errorf("unmarshal device snapshot: %w", err)
	}

	if err := json.Unmarshal(tariff, &c.TariffSnapshot); err != nil {
		return entity.Contract{}, fmt.Errorf("unmarshal tariff snapshot: %w", err)
	}

	return c, nil
}
