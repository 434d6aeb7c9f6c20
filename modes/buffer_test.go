package modes_test

import (
	"bytes"
	"testing"

	"github.com/blockciphers/corecipher/aes"
	"github.com/blockciphers/corecipher/modes"
	"github.com/blockciphers/corecipher/padding"
)

func TestStreamCipherApplyKeystreamOFB(t *testing.T) {
	cipher, err := aes.New(bytes.Repeat([]byte{0x2c}, 16))
	if err != nil {
		t.Fatal(err)
	}
	iv := bytes.Repeat([]byte{0x09}, 16)
	plaintext := []byte("a byte-oriented facade over a block-oriented stream mode")

	encMode, err := modes.NewOFB(cipher, iv)
	if err != nil {
		t.Fatal(err)
	}
	enc := modes.NewStreamCipher(encMode)
	ct := make([]byte, len(plaintext))
	if err := enc.ApplyKeystream(ct, plaintext); err != nil {
		t.Fatalf("ApplyKeystream: %v", err)
	}

	decMode, err := modes.NewOFB(cipher, iv)
	if err != nil {
		t.Fatal(err)
	}
	dec := modes.NewStreamCipher(decMode)
	pt := make([]byte, len(ct))
	if err := dec.ApplyKeystream(pt, ct); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(pt, plaintext) {
		t.Fatalf("round trip mismatch: got %q want %q", pt, plaintext)
	}
}

func TestBlockCipherModePKCS7RoundTrip(t *testing.T) {
	cipher, err := aes.New(bytes.Repeat([]byte{0x19}, 16))
	if err != nil {
		t.Fatal(err)
	}
	iv := bytes.Repeat([]byte{0x02}, 16)
	plaintext := []byte("not a multiple of the block size!")

	encMode, err := modes.NewCBC(cipher, iv)
	if err != nil {
		t.Fatal(err)
	}
	enc := modes.NewBlockCipherMode(encMode, padding.PKCS7{})
	ciphertext, err := enc.EncryptPadded(plaintext)
	if err != nil {
		t.Fatalf("EncryptPadded: %v", err)
	}
	if len(ciphertext)%16 != 0 {
		t.Fatalf("ciphertext length %d not a multiple of the block size", len(ciphertext))
	}

	decMode, err := modes.NewCBC(cipher, iv)
	if err != nil {
		t.Fatal(err)
	}
	dec := modes.NewBlockCipherMode(decMode, padding.PKCS7{})
	got, err := dec.DecryptPadded(ciphertext)
	if err != nil {
		t.Fatalf("DecryptPadded: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Fatalf("round trip mismatch: got %q want %q", got, plaintext)
	}
}

func TestBlockCipherModeISO7816RoundTrip(t *testing.T) {
	cipher, err := aes.New(bytes.Repeat([]byte{0x44}, 16))
	if err != nil {
		t.Fatal(err)
	}
	iv := bytes.Repeat([]byte{0x05}, 16)
	plaintext := []byte("exactly sixteen!")

	encMode, err := modes.NewCBC(cipher, iv)
	if err != nil {
		t.Fatal(err)
	}
	enc := modes.NewBlockCipherMode(encMode, padding.ISO7816{})
	ciphertext, err := enc.EncryptPadded(plaintext)
	if err != nil {
		t.Fatal(err)
	}
	if len(ciphertext) != 32 {
		t.Fatalf("expected a full extra padding block for exact-multiple input, got %d bytes", len(ciphertext))
	}

	decMode, err := modes.NewCBC(cipher, iv)
	if err != nil {
		t.Fatal(err)
	}
	dec := modes.NewBlockCipherMode(decMode, padding.ISO7816{})
	got, err := dec.DecryptPadded(ciphertext)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Fatalf("round trip mismatch: got %q want %q", got, plaintext)
	}
}

func TestBlockCipherModeDecryptRejectsBadPadding(t *testing.T) {
	cipher, err := aes.New(bytes.Repeat([]byte{0x44}, 16))
	if err != nil {
		t.Fatal(err)
	}
	iv := bytes.Repeat([]byte{0x05}, 16)

	decMode, err := modes.NewCBC(cipher, iv)
	if err != nil {
		t.Fatal(err)
	}
	dec := modes.NewBlockCipherMode(decMode, padding.PKCS7{})
	if _, err := dec.DecryptPadded(make([]byte, 10)); err != modes.ErrInvalidDataSize {
		t.Fatalf("expected ErrInvalidDataSize for a non-block-multiple length, got %v", err)
	}

	// A block whose plaintext ends in 0x11 claims 17 bytes of PKCS#7
	// padding, more than one 16-byte block holds.
	encMode, err := modes.NewCBC(cipher, iv)
	if err != nil {
		t.Fatal(err)
	}
	ciphertext := make([]byte, 16)
	if err := encMode.Encrypt(ciphertext, bytes.Repeat([]byte{0x11}, 16)); err != nil {
		t.Fatal(err)
	}
	if _, err := dec.DecryptPadded(ciphertext); err != modes.ErrBadPadding {
		t.Fatalf("expected ErrBadPadding for malformed padding, got %v", err)
	}
}

func TestSeekableStreamCipherSeek(t *testing.T) {
	cipher, err := aes.New(bytes.Repeat([]byte{0x61}, 16))
	if err != nil {
		t.Fatal(err)
	}
	nonce := bytes.Repeat([]byte{0x00}, 8)

	mode, err := modes.NewCTR128(cipher, nonce, 16)
	if err != nil {
		t.Fatal(err)
	}
	seekable := modes.NewSeekableStreamCipher(mode, mode)

	if err := seekable.Seek(16*3, 16); err != nil {
		t.Fatalf("Seek: %v", err)
	}
	if got := mode.GetBlockPos(); got != 3 {
		t.Fatalf("GetBlockPos after Seek(48, 16) = %d, want 3", got)
	}
}
