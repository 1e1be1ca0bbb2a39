package config

import (
	"os"
	"path/filepath"

	"github.com/mproffitt/mimeinfo/pkg/locator"
	"github.com/mproffitt/mimeinfo/pkg/mime"
	log "github.com/sirupsen/logrus"
	yaml "gopkg.in/yaml.v2"
)

// DefaultLang Language requested for comments when none is configured
const DefaultLang = "en"

// New Create a new Config object
//
// Arguments:
//
// - configFile string The full path to the config file to load, or
//   empty for defaults
//
// Return:
//
// - *Config A pointer to the loaded configuration
// - error   The last error which occured during loading
func New(configFile string) (c *Config, err error) {
	c = &Config{}

	log.SetFormatter(&log.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})
	if configFile != "" {
		err = c.load(configFile)
	}
	c.setupLogging()
	if c.Lang == "" {
		c.Lang = DefaultLang
	}
	return
}

// Locator Build the directory locator this configuration asks for
//
// An explicit mimeDirectories list overrides the host's XDG data
// directories entirely; order in the list is precedence order.
func (c *Config) Locator() mime.Locator {
	if len(c.MimeDirectories) == 0 {
		return locator.NewXDG()
	}
	return locator.NewStatic(c.MimeDirectories...)
}

func (c *Config) load(filename string) (err error) {
	log.Debugf("Loading config file %s", filename)

	var f []byte
	if f, err = os.ReadFile(filename); err != nil {
		return
	}

	if err = yaml.Unmarshal(f, c); err != nil {
		return
	}

	for i := range c.MimeDirectories {
		expandHome(&c.MimeDirectories[i])
	}
	return
}

func expandHome(path *string) {
	var p string = (*path)
	if p == "~" {
		p = "~/"
	}

	if len(p) >= 2 && p[:2] == "~/" {
		dirname, _ := os.UserHomeDir()
		p = filepath.Join(dirname, p[2:])
	}

	*path = p
}

func (c *Config) setupLogging() {
	switch c.LogLevel {
	case "trace":
		fallthrough
	case "debug":
		log.SetReportCaller(true)
		log.SetLevel(log.DebugLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	case "warn":
		log.SetLevel(log.WarnLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}
