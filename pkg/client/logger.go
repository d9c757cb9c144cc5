// Copyright © 2025 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

package client

import (
	"os"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var logger *zap.Logger

// emits a structured log line for every dispatched API request, with
// the correlating request id assigned by the client
func logRequest(resp *resty.Response) {
	fields := []zap.Field{
		zap.String("method", resp.Request.Method),
		zap.String("url", resp.Request.URL),
		zap.Int("status", resp.StatusCode()),
		zap.Duration("duration", resp.Time()),
	}

	if reqId := resp.Request.Header.Get(requestIdHeader); reqId != "" {
		fields = append(fields, zap.String("request_id", reqId))
	}

	logger.Info("", fields...)
}

func init() {
	logDir := os.Getenv("LOGS_DIR")

	// ensure that a trailing slash is available
	if len(logDir) > 0 && logDir[len(logDir)-1] != '/' {
		logDir += "/"
	}

	encoderCfg := zap.NewProductionEncoderConfig() //we are using it for more customization
	encoderCfg.EncodeTime = zapcore.EpochTimeEncoder

	var core zapcore.Core

	if logDir == "" {
		// Log only to stdout
		core = zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderCfg),
			zapcore.AddSync(os.Stdout),
			zapcore.InfoLevel,
		)
	} else {
		lumberjackLogger := &lumberjack.Logger{
			Filename:   logDir + "requests.log", // Log file path
			MaxSize:    10,                      // Max size in MB before rotation
			MaxBackups: 5,                       // Max number of old log files to keep
			MaxAge:     30,                      // Max age in days to keep a log file
			Compress:   true,                    // Compress old logs
		}

		core = zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderCfg),
			zapcore.AddSync(lumberjackLogger),
			zapcore.InfoLevel,
		)
	}

	logger = zap.New(core).With(zap.String("_type", "RequestLog"))
}
