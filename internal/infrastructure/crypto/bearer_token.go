package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"strings"
)

const (
	pemHeader    = "-----BEGIN PUBLIC KEY-----"
	pemFooter    = "-----END PUBLIC KEY-----"
	bearerScheme = "Bearer "
)

var ErrEncoding = errors.New("bearer token encoding failed")

// EncodeBearerToken encrypts secret with the gateway public key and returns
// the Authorization header value.
//
// publicKey is the raw base64 block handed out by the M-Pesa developer
// portal, without PEM delimiters. Padding is PKCS#1 v1.5 because that is
// what the gateway decrypts with; each call yields a different ciphertext.
func EncodeBearerToken(publicKey, secret string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("%w: empty secret", ErrEncoding)
	}

	key, err := ParsePublicKey(publicKey)
	if err != nil {
		return "", err
	}

	ciphertext, err := rsa.EncryptPKCS1v15(rand.Reader, key, []byte(secret))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncoding, err)
	}

	return bearerScheme + base64.StdEncoding.EncodeToString(ciphertext), nil
}

// ParsePublicKey wraps the raw key block in a PEM envelope and decodes it.
// Both PKIX (SubjectPublicKeyInfo) and PKCS#1 encodings are accepted.
func ParsePublicKey(publicKey string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(WrapPEM(publicKey)))
	if block == nil {
		return nil, fmt.Errorf("%w: public key is not valid PEM", ErrEncoding)
	}

	if parsed, err := x509.ParsePKIXPublicKey(block.Bytes); err == nil {
		key, ok := parsed.(*rsa.PublicKey)
		if !ok {
			return nil, fmt.Errorf("%w: public key is %T, want RSA", ErrEncoding, parsed)
		}
		return key, nil
	}

	key, err := x509.ParsePKCS1PublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: parse public key: %v", ErrEncoding, err)
	}
	return key, nil
}

// WrapPEM builds a PEM public-key envelope around a raw base64 block.
// Whitespace inside the block is dropped and the body is re-folded at 64
// columns. A block that already carries the header is returned unchanged.
func WrapPEM(publicKey string) string {
	trimmed := strings.TrimSpace(publicKey)
	if strings.HasPrefix(trimmed, pemHeader) {
		return trimmed
	}

	body := strings.Join(strings.Fields(trimmed), "")
	var b strings.Builder
	b.WriteString(pemHeader)
	b.WriteByte('\n')
	for len(body) > 64 {
		b.WriteString(body[:64])
		b.WriteByte('\n')
		body = body[64:]
	}
	if body != "" {
		b.WriteString(body)
		b.WriteByte('\n')
	}
	b.WriteString(pemFooter)
	return b.String()
}
