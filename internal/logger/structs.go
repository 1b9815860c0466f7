package logger

// Console configures console output, used for dev and container runs.
type Console struct {
	Enabled          bool `toml:"enabled"`
	UseConsoleWriter bool `toml:"useConsoleWriter"`
}

// LogFile configures rolling file output for long-lived serve processes.
type LogFile struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`

	AccessLog        string `toml:"access"`
	AccessMaxSize    int    `toml:"accessMaxSize"`
	AccessMaxBackups int    `toml:"accessMaxBackups"`
	AccessMaxAge     int    `toml:"accessMaxAge"`

	ErrorLog        string `toml:"error"`
	ErrorMaxSize    int    `toml:"errorMaxSize"`
	ErrorMaxBackups int    `toml:"errorMaxBackups"`
	ErrorMaxAge     int    `toml:"errorMaxAge"`

	InfoLog        string `toml:"info"`
	InfoMaxSize    int    `toml:"infoMaxSize"`
	InfoMaxBackups int    `toml:"infoMaxBackups"`
	InfoMaxAge     int    `toml:"infoMaxAge"`
}

// Log is the logger configuration.
type Log struct {
	LogLevel string // trace, debug, info, warn, error

	// EnableAccessLogToConsole echoes HTTP access logs to the console.
	// Console.Enabled still gates all console output.
	EnableAccessLogToConsole bool
	ReportCaller             bool
	DisableCheckAlive        bool // drop /checkalive calls from access logs

	AppName     string
	ServiceName string

	Console Console `toml:"console"`
	File    LogFile `toml:"file"`
}
