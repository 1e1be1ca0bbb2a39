package config

// Config Global config for the application
//
// All fields are optional; an absent config file means XDG defaults
// for the database location and info level logging.
type Config struct {
	MimeDirectories []string `yaml:"mimeDirectories"`
	LogLevel        string   `yaml:"logLevel"`
	Lang            string   `yaml:"lang"`
}
