// Package config holds the built-in settings of the gamma chart application.
package config

// Config holds the fixed settings of the gamma chart application.
// Nothing is read from disk or the environment; Default is the only source.
type Config struct {
	AppID    string
	Title    string
	Gammas   []float64 // tab order
	TileSize int       // side of one pixel-map tile in pixels
	Padding  float32   // space around the tab container
	LogLevel string
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		AppID:    "io.github.gammachart",
		Title:    "Gamma chart",
		Gammas:   []float64{2.2, 2.0, 1.8, 1.0},
		TileSize: 32,
		Padding:  5,
		LogLevel: "info",
	}
}
