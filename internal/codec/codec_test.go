package codec

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"testing"
)

// testKey generates a throwaway 1024-bit key pair. The private half exists
// only so tests can verify round-trips; the client itself never decrypts.
func testKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 1024)
	if err != nil {
		t.Fatalf("Failed to generate test key: %v", err)
	}
	return key
}

// decryptBlocks reverses EncryptBlocks block by block.
func decryptBlocks(t *testing.T, ciphertext []byte, key *rsa.PrivateKey) []byte {
	t.Helper()
	blockSize := key.Size()
	if len(ciphertext)%blockSize != 0 {
		t.Fatalf("Ciphertext length %d is not a multiple of block size %d", len(ciphertext), blockSize)
	}
	var plaintext []byte
	for i := 0; i < len(ciphertext); i += blockSize {
		block, err := rsa.DecryptPKCS1v15(nil, key, ciphertext[i:i+blockSize])
		if err != nil {
			t.Fatalf("Failed to decrypt block at offset %d: %v", i, err)
		}
		plaintext = append(plaintext, block...)
	}
	return plaintext
}

func TestVendorPublicKey(t *testing.T) {
	pub, err := VendorPublicKey()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if pub.Size() != 128 {
		t.Errorf("Expected 1024-bit key (128-byte modulus), got %d bytes", pub.Size())
	}
	if pub.E != 65537 {
		t.Errorf("Expected public exponent 65537, got %d", pub.E)
	}
}

func TestEncryptBlocks_BlockCount(t *testing.T) {
	key := testKey(t)

	// maxChunk is 117 for a 1024-bit key; each ciphertext block is 128 bytes.
	tests := []struct {
		length int
		blocks int
	}{
		{0, 0},
		{1, 1},
		{116, 1},
		{117, 1},
		{118, 2},
		{234, 2},
		{235, 3},
		{1000, 9},
	}

	for _, tt := range tests {
		plaintext := bytes.Repeat([]byte{0xAB}, tt.length)
		ciphertext, err := EncryptBlocks(plaintext, &key.PublicKey)
		if err != nil {
			t.Fatalf("EncryptBlocks(len=%d) failed: %v", tt.length, err)
		}
		if len(ciphertext) != tt.blocks*128 {
			t.Errorf("EncryptBlocks(len=%d) produced %d bytes, want %d (%d blocks of 128)",
				tt.length, len(ciphertext), tt.blocks*128, tt.blocks)
		}
	}
}

func TestEncryptBlocks_RoundTrip(t *testing.T) {
	key := testKey(t)

	lengths := []int{0, 1, 116, 117, 118, 234, 5000}
	for _, length := range lengths {
		plaintext := make([]byte, length)
		if _, err := rand.Read(plaintext); err != nil {
			t.Fatalf("Failed to generate plaintext: %v", err)
		}

		ciphertext, err := EncryptBlocks(plaintext, &key.PublicKey)
		if err != nil {
			t.Fatalf("EncryptBlocks(len=%d) failed: %v", length, err)
		}

		decrypted := decryptBlocks(t, ciphertext, key)
		if !bytes.Equal(decrypted, plaintext) {
			t.Errorf("Round-trip mismatch for length %d", length)
		}
	}
}

func TestEncodeForm(t *testing.T) {
	form := map[string]any{
		"interfaceVersion": 20240918,
		"skey":             "testskey",
		"email":            "user@example.com",
	}

	body, err := EncodeForm(form)
	if err != nil {
		t.Fatalf("EncodeForm failed: %v", err)
	}

	ciphertext, err := base64.StdEncoding.DecodeString(body)
	if err != nil {
		t.Fatalf("EncodeForm output is not valid base64: %v", err)
	}
	if len(ciphertext) == 0 || len(ciphertext)%128 != 0 {
		t.Errorf("Ciphertext length %d is not a positive multiple of 128", len(ciphertext))
	}
}

func TestEncodeForm_CompactJSON(t *testing.T) {
	// The server decrypts and parses the JSON, so exact whitespace doesn't
	// matter to it, but the contract is compact separators; verify the
	// serialization step adds none.
	payload, err := json.Marshal(map[string]any{"a": 1, "b": "two"})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if bytes.ContainsAny(payload, " \n\t") {
		t.Errorf("Expected compact JSON, got %q", payload)
	}
}

func TestEncodeForm_UnserializableForm(t *testing.T) {
	if _, err := EncodeForm(map[string]any{"bad": make(chan int)}); err == nil {
		t.Fatal("Expected error for unserializable form")
	}
}
