// Package cpufeature resolves, once per process, whether the CPU
// running this binary has hardware AES acceleration. The result is
// cached in a process-wide token so every cipher constructed afterwards
// reads it instead of re-probing.
package cpufeature

import (
	"sync"

	"golang.org/x/sys/cpu"
)

// Token is the process-wide, one-shot feature-detection result
// described by the autodetect dispatcher: resolved on first use, then
// read-only for the remaining lifetime of the process.
type Token struct {
	hasHardwareAES bool
}

// HasHardwareAES reports whether this token resolved to hardware AES
// support (AES-NI+SSSE3 on x86/x86_64, the Cryptography Extensions on
// ARMv8).
func (t Token) HasHardwareAES() bool {
	return t.hasHardwareAES
}

var (
	once        sync.Once
	cachedToken Token
)

// Detect resolves the token. The first call from anywhere in the
// process probes the CPU; every subsequent call, from any goroutine,
// observes the same cached result without probing again.
func Detect() Token {
	once.Do(func() {
		cachedToken = Token{hasHardwareAES: probe()}
		logDetection(cachedToken.hasHardwareAES)
	})
	return cachedToken
}

func probe() bool {
	if cpu.X86.HasAES && cpu.X86.HasSSSE3 {
		return true
	}
	if cpu.ARM64.HasAES {
		return true
	}
	return false
}
