package codec

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"sync"

	xerrors "github.com/rimu-dev/xbrew/internal/errors"
)

// vendorPublicKeyB64 is the xBloom server's RSA public key (1024-bit,
// X.509/PKIX DER, base64). It ships embedded in the official app; the server
// holds the matching private key and decrypts request bodies with it.
const vendorPublicKeyB64 = "MIGfMA0GCSqGSIb3DQEBAQUAA4GNADCBiQKBgQC4LF40GZ72SdhMyl765K/i4nY5" +
	"CPcHz2Q1IKWKZ9S79xmK7G8pUhbVf4EZLvnNF1+9IvOFQUKV5Z7ZNNviqSpnql9" +
	"tAT+8+J/He0R7pcirvVSxgdr2i9V/C/gmqAEZ5qVTzRnd3uWdFoKzPdEBxP0Ipor" +
	"J1VBbCv90yBSOhVxO+QIDAQAB"

// pkcs1v15Overhead is the padding overhead per PKCS#1 v1.5 block. For the
// 1024-bit vendor key this leaves 117 plaintext bytes per 128-byte block.
const pkcs1v15Overhead = 11

var (
	vendorKeyOnce sync.Once
	vendorKey     *rsa.PublicKey
	vendorKeyErr  error
)

// VendorPublicKey parses the embedded vendor key once and returns it.
func VendorPublicKey() (*rsa.PublicKey, error) {
	vendorKeyOnce.Do(func() {
		der, err := base64.StdEncoding.DecodeString(vendorPublicKeyB64)
		if err != nil {
			vendorKeyErr = fmt.Errorf("%w: %v", xerrors.ErrInvalidPublicKey, err)
			return
		}
		pub, err := x509.ParsePKIXPublicKey(der)
		if err != nil {
			vendorKeyErr = fmt.Errorf("%w: %v", xerrors.ErrInvalidPublicKey, err)
			return
		}
		rsaPub, ok := pub.(*rsa.PublicKey)
		if !ok {
			vendorKeyErr = fmt.Errorf("%w: not an RSA public key", xerrors.ErrInvalidPublicKey)
			return
		}
		vendorKey = rsaPub
	})
	return vendorKey, vendorKeyErr
}

// EncryptBlocks encrypts plaintext of any length against pub using chunked
// RSA-PKCS1v1.5: the plaintext is split into blocks of at most Size()-11
// bytes, each block is encrypted independently, and the full-size ciphertext
// blocks are concatenated in order with no framing between them. The receiver
// splits on the fixed ciphertext block size (128 bytes for a 1024-bit key)
// to decrypt.
//
// This reproduces the hutool scheme the vendor's server decrypts. It is
// deliberately not a hybrid design: any other padding mode or chunk size
// produces ciphertext the server cannot read.
func EncryptBlocks(plaintext []byte, pub *rsa.PublicKey) ([]byte, error) {
	maxChunk := pub.Size() - pkcs1v15Overhead
	if maxChunk <= 0 {
		return nil, fmt.Errorf("%w: key too small for PKCS#1 v1.5", xerrors.ErrEncryption)
	}

	ciphertext := make([]byte, 0, ((len(plaintext)+maxChunk-1)/maxChunk)*pub.Size())
	for i := 0; i < len(plaintext); i += maxChunk {
		end := min(i+maxChunk, len(plaintext))
		block, err := rsa.EncryptPKCS1v15(rand.Reader, pub, plaintext[i:end])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", xerrors.ErrEncryption, err)
		}
		ciphertext = append(ciphertext, block...)
	}
	return ciphertext, nil
}

// EncodeForm serializes the form to compact JSON, encrypts it against the
// vendor key, and returns the base64 string that becomes the raw POST body
// of an authenticated call.
func EncodeForm(form any) (string, error) {
	pub, err := VendorPublicKey()
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(form)
	if err != nil {
		return "", fmt.Errorf("failed to serialize form: %w", err)
	}

	ciphertext, err := EncryptBlocks(payload, pub)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}
