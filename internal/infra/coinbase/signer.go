package coinbase

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strconv"
	"time"
)

// Signer handles Coinbase Advanced API authentication signatures
type Signer struct {
	accessKey  string
	secretKey  string
	passphrase string
}

// NewSigner creates a new Signer instance. secretKey is the base64-encoded
// secret as issued by Coinbase.
func NewSigner(accessKey, secretKey, passphrase string) *Signer {
	return &Signer{
		accessKey:  accessKey,
		secretKey:  secretKey,
		passphrase: passphrase,
	}
}

// GenerateHeaders creates the necessary headers for a request
// method: GET, POST, etc.
// path: /api/v3/brokerage/orders (no host)
// body: json string (empty if none)
func (s *Signer) GenerateHeaders(method, path, body string) (map[string]string, error) {
	// Coinbase requirement: Unix timestamp in seconds
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)

	sign, err := s.sign(timestamp, method, path, body)
	if err != nil {
		return nil, err
	}

	headers := map[string]string{
		"CB-ACCESS-KEY":        s.accessKey,
		"CB-ACCESS-SIGN":       sign,
		"CB-ACCESS-TIMESTAMP":  timestamp,
		"CB-ACCESS-PASSPHRASE": s.passphrase,
		"Content-Type":         "application/json",
	}

	return headers, nil
}

// sign computes base64(HMAC-SHA256(key, timestamp + method + path + body)).
// The secret must be base64-decoded before keying the HMAC.
func (s *Signer) sign(timestamp, method, path, body string) (string, error) {
	key, err := base64.StdEncoding.DecodeString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("decode api secret: %w", err)
	}

	payload := timestamp + method + path + body

	h := hmac.New(sha256.New, key)
	h.Write([]byte(payload))
	return base64.StdEncoding.EncodeToString(h.Sum(nil)), nil
}
