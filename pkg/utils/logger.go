package utils

import (
	"os"

	"go.uber.org/zap"
)

// Logger is swapped in by InitLogger at startup. The nop default keeps
// code paths that log before Init safe.
var Logger = zap.NewNop()

// InitLogger picks the zap preset from GIN_MODE
func InitLogger() {
	if os.Getenv("GIN_MODE") == "debug" {
		Logger = zap.Must(zap.NewDevelopment())
		return
	}
	Logger = zap.Must(zap.NewProduction())
}
