package aes_test

import (
	"bytes"
	"testing"

	"github.com/blockciphers/corecipher/aes"
)

func TestAES128KnownAnswer(t *testing.T) {
	key := []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f}
	plaintext := []byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88, 0x99, 0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}
	want := []byte{0x69, 0xc4, 0xe0, 0xd8, 0x6a, 0x7b, 0x04, 0x30, 0xd8, 0xcd, 0xb7, 0x80, 0x70, 0xb4, 0xc5, 0x5a}

	c, err := aes.New(key)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := make([]byte, aes.BlockSize)
	if err := c.Encrypt(got, plaintext); err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("encrypt mismatch: got %x want %x", got, want)
	}

	back := make([]byte, aes.BlockSize)
	if err := c.Decrypt(back, got); err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if !bytes.Equal(back, plaintext) {
		t.Fatalf("decrypt mismatch: got %x want %x", back, plaintext)
	}
}

func TestAES256KnownAnswer(t *testing.T) {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}
	plaintext := []byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88, 0x99, 0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}
	want := []byte{0x8e, 0xa2, 0xb7, 0xca, 0x51, 0x67, 0x45, 0xbf, 0xea, 0xfc, 0x49, 0x90, 0x4b, 0x49, 0x60, 0x89}

	c, err := aes.New(key)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := make([]byte, aes.BlockSize)
	if err := c.Encrypt(got, plaintext); err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("encrypt mismatch: got %x want %x", got, want)
	}
}

func TestAESRoundTrip(t *testing.T) {
	keys := [][]byte{
		bytes.Repeat([]byte{0x2b}, 16),
		bytes.Repeat([]byte{0x2b}, 24),
		bytes.Repeat([]byte{0x2b}, 32),
	}
	for _, key := range keys {
		c, err := aes.New(key)
		if err != nil {
			t.Fatalf("New(%d): %v", len(key), err)
		}
		plaintext := bytes.Repeat([]byte{0x42}, aes.BlockSize)
		ct := make([]byte, aes.BlockSize)
		pt := make([]byte, aes.BlockSize)
		if err := c.Encrypt(ct, plaintext); err != nil {
			t.Fatal(err)
		}
		if err := c.Decrypt(pt, ct); err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(pt, plaintext) {
			t.Fatalf("round trip mismatch for key len %d: got %x want %x", len(key), pt, plaintext)
		}
	}
}

func TestAESSoftAndHardwareAgree(t *testing.T) {
	key := bytes.Repeat([]byte{0x5a}, 16)
	soft, err := aes.New(key)
	if err != nil {
		t.Fatal(err)
	}
	hw, err := aes.NewAuto(key)
	if err != nil {
		t.Fatal(err)
	}

	plaintext := bytes.Repeat([]byte{0x7e}, aes.BlockSize)
	softOut := make([]byte, aes.BlockSize)
	hwOut := make([]byte, aes.BlockSize)
	if err := soft.Encrypt(softOut, plaintext); err != nil {
		t.Fatal(err)
	}
	if err := hw.Encrypt(hwOut, plaintext); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(softOut, hwOut) {
		t.Fatalf("soft and auto-selected backend disagree: %x vs %x", softOut, hwOut)
	}
}

func TestAESInvalidKeyLength(t *testing.T) {
	if _, err := aes.New(make([]byte, 10)); err != aes.ErrInvalidKeyLength {
		t.Fatalf("expected ErrInvalidKeyLength, got %v", err)
	}
}
