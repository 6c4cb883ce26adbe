package logger

import (
	"go.uber.org/zap/zapcore"

	"github.com/iotaledger/pgrange/configuration"
	"github.com/iotaledger/pgrange/ierrors"
)

const (
	configurationKeyPrefix = "logger"

	ConfigurationKeyLevel             = "logger.level"
	ConfigurationKeyDisableCaller     = "logger.disableCaller"
	ConfigurationKeyDisableStacktrace = "logger.disableStacktrace"
	ConfigurationKeyEncoding          = "logger.encoding"
	ConfigurationKeyOutputPaths       = "logger.outputPaths"
)

// Config holds the settings to configure a root logger instance.
type Config struct {
	// Level is the minimum enabled logging level.
	// The default is "info".
	Level string `json:"level" koanf:"level"`
	// DisableCaller stops annotating logs with the calling function's file name and line number.
	// By default, all logs are annotated.
	DisableCaller bool `json:"disableCaller" koanf:"disableCaller"`
	// DisableStacktrace disables automatic stacktrace capturing.
	// By default, stacktraces are captured for LevelError and above.
	DisableStacktrace bool `json:"disableStacktrace" koanf:"disableStacktrace"`
	// Encoding sets the logger's encoding. Valid values are "json" and "console".
	// The default is "console".
	Encoding string `json:"encoding" koanf:"encoding"`
	// OutputPaths is a list of URLs, file paths or stdout/stderr to write logging output to.
	// The default is ["stderr"], which keeps the logs apart from the output of the tool.
	OutputPaths []string `json:"outputPaths" koanf:"outputPaths"`
}

var defaultCfg = Config{
	Level:       "info",
	Encoding:    "console",
	OutputPaths: []string{"stderr"},
}

// Defaults returns the default values of all logger keys, ready to be passed to Configuration.SetDefaults.
func Defaults() map[string]any {
	return map[string]any{
		ConfigurationKeyLevel:             defaultCfg.Level,
		ConfigurationKeyDisableCaller:     defaultCfg.DisableCaller,
		ConfigurationKeyDisableStacktrace: defaultCfg.DisableStacktrace,
		ConfigurationKeyEncoding:          defaultCfg.Encoding,
		ConfigurationKeyOutputPaths:       defaultCfg.OutputPaths,
	}
}

// ConfigFrom reads the logger settings from the given configuration. Missing keys keep their default values.
func ConfigFrom(config *configuration.Configuration) (Config, error) {
	cfg := defaultCfg
	cfg.OutputPaths = append([]string(nil), defaultCfg.OutputPaths...)

	if err := config.Unmarshal(configurationKeyPrefix, &cfg); err != nil {
		return Config{}, ierrors.Wrap(err, "unable to read logger configuration")
	}

	return cfg, nil
}

var defaultEncoderConfig = zapcore.EncoderConfig{
	TimeKey:        "ts",
	LevelKey:       "level",
	NameKey:        "logger",
	CallerKey:      "caller",
	MessageKey:     "msg",
	StacktraceKey:  "stacktrace",
	EncodeLevel:    zapcore.CapitalLevelEncoder,    // level in upper case
	EncodeTime:     zapcore.RFC3339TimeEncoder,     // timestamp according to RFC3339
	EncodeDuration: zapcore.SecondsDurationEncoder, // duration in seconds
	EncodeCaller:   zapcore.ShortCallerEncoder,     // caller according to package/file:line
}
