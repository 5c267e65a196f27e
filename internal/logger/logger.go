package logger

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Init builds the process-wide zap logger and installs it as the global.
// Callers use zap.L() everywhere else.
func Init(ginMode string) (*zap.Logger, error) {
	var log *zap.Logger
	var err error

	if ginMode == gin.ReleaseMode {
		log, err = zap.NewProduction()
	} else {
		log, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}

	zap.ReplaceGlobals(log)
	return log, nil
}
