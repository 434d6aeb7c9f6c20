package cpufeature

import (
	"log/slog"
	"os"
	"sync"

	"hermannm.dev/devlog"
)

var devlogOnce sync.Once

// EnableDevLogging installs a devlog-backed slog handler so the one
// feature-detection line below reads well on a developer's terminal.
// Library code must not force this on its importers, so it is opt-in;
// call it from a command's main() before touching the aes package.
func EnableDevLogging() {
	devlogOnce.Do(func() {
		slog.SetDefault(slog.New(devlog.NewHandler(os.Stdout, &devlog.Options{})))
	})
}

func logDetection(hasHardwareAES bool) {
	slog.Default().Info(
		"aes backend detection resolved",
		slog.Bool("hardware_aes", hasHardwareAES),
	)
}
