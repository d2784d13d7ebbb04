package httpapi

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// payrailSign эмулирует подпись на стороне провайдера
func payrailSign(body []byte, secret string) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func stellarpaySign(timestamp string, body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp + "."))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyPayrailSignature(t *testing.T) {
	body := []byte(`{"reference":"pr-001","status":"succeeded"}`)
	secret := "payrail-secret"

	valid := payrailSign(body, secret)
	assert.True(t, verifyPayrailSignature(body, valid, secret))

	// заголовок может прийти в верхнем регистре
	assert.True(t, verifyPayrailSignature(body, strings.ToUpper(valid), secret))

	assert.False(t, verifyPayrailSignature(body, valid, "wrong-secret"))
	assert.False(t, verifyPayrailSignature([]byte(`{"reference":"tampered"}`), valid, secret))
	assert.False(t, verifyPayrailSignature(body, "", secret))
	assert.False(t, verifyPayrailSignature(body, valid, ""))
}

func TestVerifyQuickpayToken(t *testing.T) {
	assert.True(t, verifyQuickpayToken("shared-token", "shared-token"))
	assert.False(t, verifyQuickpayToken("wrong-token", "shared-token"))
	assert.False(t, verifyQuickpayToken("", "shared-token"))
	assert.False(t, verifyQuickpayToken("shared-token", ""))
}

func TestVerifyStellarpaySignature(t *testing.T) {
	body := []byte(`{"reference":"sp-001","status":"failed"}`)
	secret := "stellar-secret"
	timestamp := "1756713600"

	valid := stellarpaySign(timestamp, body, secret)
	header := "t=" + timestamp + ",v1=" + valid
	assert.True(t, verifyStellarpaySignature(body, header, secret))

	// порядок частей и пробелы не значимы
	assert.True(t, verifyStellarpaySignature(body, "v1="+valid+", t="+timestamp, secret))

	// подпись привязана к timestamp
	assert.False(t, verifyStellarpaySignature(body, "t=1756713601,v1="+valid, secret))

	assert.False(t, verifyStellarpaySignature(body, header, "wrong-secret"))
	assert.False(t, verifyStellarpaySignature(body, "t="+timestamp, secret))
	assert.False(t, verifyStellarpaySignature(body, "v1="+valid, secret))
	assert.False(t, verifyStellarpaySignature(body, "", secret))
	assert.False(t, verifyStellarpaySignature(body, "garbage", secret))
}
