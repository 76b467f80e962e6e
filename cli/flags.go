package cli

var (
	verbose    bool
	configPath string

	// for run command, zero values leave the config file untouched
	seat               string
	threshold          float64
	bindFlags          []string
	enabledActionTypes []string
	runAsDaemon        bool
	logFile            string

	// for run and stop commands
	pidFile string

	// for devices command
	devicesSeat string
)
