package config

import (
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"
)

const (
	DefaultPort            = "8080"
	DefaultMaxRequestBytes = 64 * 1024 * 1024

	envPrefix = "PDFAPI_"
)

type ServerConfig struct {
	Port            string
	MaxRequestBytes int64
	Document        DocumentConfig
}

// LoadServerConfig reads an optional .env file and PDFAPI_* environment
// variables. Values that are missing or invalid fall back to defaults.
func LoadServerConfig(envFiles ...string) ServerConfig {
	// a missing .env file is not an error
	_ = godotenv.Load(envFiles...)

	c := ServerConfig{
		Port: os.Getenv(envPrefix + "PORT"),
		Document: DocumentConfig{
			PageWidth:  envFloat("PAGE_WIDTH"),
			PageHeight: envFloat("PAGE_HEIGHT"),
			ImageScale: envFloat("IMAGE_SCALE"),
			FontSize:   envFloat("FONT_SIZE"),
		},
	}
	if size := os.Getenv(envPrefix + "MAX_REQUEST_SIZE"); size != "" {
		if parsed, err := humanize.ParseBytes(size); err == nil {
			c.MaxRequestBytes = int64(parsed)
		}
	}

	c.PopulateUnsetConfigVars()
	return c
}

func (c *ServerConfig) PopulateUnsetConfigVars() {
	if c.Port == "" {
		c.Port = DefaultPort
	}
	if c.MaxRequestBytes <= 0 {
		c.MaxRequestBytes = DefaultMaxRequestBytes
	}
	c.Document.PopulateUnsetConfigVars()
}

func envFloat(name string) float64 {
	v, err := strconv.ParseFloat(os.Getenv(envPrefix+name), 64)
	if err != nil {
		return 0
	}
	return v
}
