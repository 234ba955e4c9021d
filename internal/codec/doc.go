// Package codec implements the request-body encoding the xBloom cloud
// expects on its authenticated endpoints.
//
// # Wire Format
//
// Every authenticated request body is built as:
//
//	base64( RSA-PKCS1v1.5-blocks( compact-JSON( form ) ) )
//
// The RSA step uses hutool-style chunking against a fixed 1024-bit vendor
// public key embedded in the client: plaintext is split into blocks of at
// most 117 bytes (key size minus the 11-byte PKCS#1 v1.5 overhead), each
// block is encrypted independently to a 128-byte ciphertext block, and the
// blocks are concatenated with no framing or length prefix. The server
// splits the ciphertext on the fixed 128-byte boundary to decrypt.
//
// This is intentionally not a hybrid (symmetric+asymmetric) scheme. The
// server's decryption is hardwired to this exact layout, so the package
// offers exactly it and nothing more general.
//
// # Failure Model
//
// Key-parse and encryption failures wrap errors.ErrInvalidPublicKey and
// errors.ErrEncryption respectively and are fatal to the call; encryption is
// deterministic given fixed input, so nothing here is retried.
package codec
