package config

const (
	defaultDataDir        = "~/.local/share/inkwell"
	defaultLogDir         = "~/.local/share/inkwell/logs"
	defaultAPIBind        = "127.0.0.1:7870"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	defaultSignedURLTTL   = 3600
	defaultStorageTimeout = 10
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
			APIBind: defaultAPIBind,
		},
		Storage: Storage{
			SignedURLTTL:   defaultSignedURLTTL,
			RequestTimeout: defaultStorageTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
