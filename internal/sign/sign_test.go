package sign_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/forexel/PrivetManagerApp/internal/sign"
)

func TestFingerprint_StableUnderDeviceReordering(t *testing.T) {
	t.Parallel()

	passport := map[string]any{"last_name": "Иванов", "first_name": "Пётр"}
	tariff := map[string]any{"device_count": 2, "total_extra_fee": 2000.0}

	a := map[string]any{"id": "a", "title": "Котёл"}
	b := map[string]any{"id": "b", "title": "Насос"}

	fp1 := sign.Fingerprint(passport, []map[string]any{a, b}, tariff)
	fp2 := sign.Fingerprint(passport, []map[string]any{b, a}, tariff)

	require.Equal(t, fp1, fp2)
}

func TestFingerprint_DetectsChanges(t *testing.T) {
	t.Parallel()

	passport := map[string]any{"last_name": "Иванов"}
	tariff := map[string]any{"device_count": 1}

	fp1 := sign.Fingerprint(passport, []map[string]any{{"id": "a"}}, tariff)
	fp2 := sign.Fingerprint(passport, []map[string]any{{"id": "a"}, {"id": "b"}}, tariff)

	require.NotEqual(t, fp1, fp2)
}

func TestFingerprint_CyrillicNotEscaped(t *testing.T) {
	t.Parallel()

	fp := sign.Fingerprint(map[string]any{"last_name": "Иванов"}, nil, nil)

	require.Contains(t, fp, "Иванов")
	require.NotContains(t, fp, `\u0418`)
}

func TestFingerprint_NumericTypeInsensitive(t *testing.T) {
	t.Parallel()

	fp1 := sign.Fingerprint(nil, []map[string]any{{"id": "a", "extra_fee": 1000}}, nil)
	fp2 := sign.Fingerprint(nil, []map[string]any{{"id": "a", "extra_fee": 1000.0}}, nil)

	require.Equal(t, fp1, fp2)
}

func TestDigest(t *testing.T) {
	t.Parallel()

	// SHA-1 пустой строки — известное значение.
	require.Equal(t, "da39a3ee5e6b4b0d3255bfef95601890afd80709", sign.Digest(""))
	require.Len(t, sign.Digest("anything"), 40)
}

func TestDocumentHash(t *testing.T) {
	t.Parallel()

	// SHA-256 пустого документа — известное значение.
	require.Equal(
		t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		sign.DocumentHash(nil),
	)
	require.Len(t, sign.DocumentHash([]byte("%PDF-1.4")), 64)
}

func TestProof(t *testing.T) {
	t.Parallel()

	// Контрольный вектор HMAC-SHA256 из RFC 4231 (test case 2).
	got := sign.Proof("what do ya want for nothing?", "Jefe")
	require.Equal(t, "5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843", got)

	require.NotEqual(t, sign.Proof("hash", "secret-a"), sign.Proof("hash", "secret-b"))
	require.True(t, strings.EqualFold(sign.Proof("hash", "secret-a"), sign.Proof("hash", "secret-a")))
}
