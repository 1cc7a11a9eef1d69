// Package sign отвечает за отпечаток снимков договора (детект изменений)
// и криптографические подтверждения подписанного документа.
package sign

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/forexel/PrivetManagerApp/internal/canonical"
)

// Fingerprint сериализует канонические снимки в одну детерминированную
// строку: JSON с отсортированными ключами, кириллица без экранирования.
// Одинаковые по содержанию снимки дают одинаковую строку независимо от
// порядка устройств и ключей.
func Fingerprint(passport map[string]any, devices []map[string]any, tariff map[string]any) string {
	payload := map[string]any{
		"passport": canonical.NormalizeValue(canonical.Passport(passport)),
		"devices":  canonical.NormalizeValue(canonical.Devices(devices)),
		"tariff":   canonical.NormalizeValue(canonical.Tariff(tariff)),
	}

	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	// Маршалинг словаря в Go всегда сортирует ключи, ошибок на
	// нормализованных значениях не бывает.
	_ = enc.Encode(payload)

	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}

// Digest — короткий хеш отпечатка для сравнения и логов. Не для защиты:
// только детект изменений.
func Digest(fingerprint string) string {
	sum := sha1.Sum([]byte(fingerprint))
	return hex.EncodeToString(sum[:])
}

// DocumentHash — SHA-256 содержимого отрендеренного договора.
func DocumentHash(pdf []byte) string {
	sum := sha256.Sum256(pdf)
	return hex.EncodeToString(sum[:])
}

// Proof — HMAC-SHA256 по хешу документа на серверном секрете: доказывает,
// что хеш выписан этим сервером, а не подменён.
func Proof(documentHash, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(documentHash))

	return hex.EncodeToString(mac.Sum(nil))
}
