package common

import (
	"fmt"
	"io"
	"strings"

	"github.com/ternarybob/banner"
)

// PrintBanner writes the startup banner and logs the effective settings.
func PrintBanner(w io.Writer, config *Config, logger *Logger) {
	serviceURL := fmt.Sprintf("http://%s:%d", config.Server.Host, config.Server.Port)

	lineColor := banner.ColorCyan
	textColor := banner.ColorBold + banner.ColorWhite
	hr := lineColor + strings.Repeat("═", 60) + banner.ColorReset

	fmt.Fprintf(w, "\n%s\n\n", hr)
	fmt.Fprintf(w, "%s  GREENVEST  Green Fund Analytics%s\n\n", textColor, banner.ColorReset)
	fmt.Fprintf(w, "%s\n\n", hr)

	kvLines := [][2]string{
		{"Version", GetVersion()},
		{"Build", GetBuild()},
		{"Commit", GetGitCommit()},
		{"Environment", config.Environment},
		{"Service URL", serviceURL},
		{"Price source", config.Sources.Prices},
		{"Clamp scores", fmt.Sprintf("%t", config.Analytics.ClampScores)},
	}
	for _, kv := range kvLines {
		fmt.Fprintf(w, "%s  %-16s %s%s\n", textColor, kv[0], kv[1], banner.ColorReset)
	}
	fmt.Fprintf(w, "\n%s\n\n", hr)

	logger.Info().
		Str("version", GetVersion()).
		Str("commit", GetGitCommit()).
		Str("environment", config.Environment).
		Str("service_url", serviceURL).
		Str("price_source", config.Sources.Prices).
		Msg("Application started")
}

// PrintShutdownBanner writes the shutdown banner.
func PrintShutdownBanner(w io.Writer, logger *Logger) {
	hr := banner.ColorCyan + strings.Repeat("═", 42) + banner.ColorReset
	fmt.Fprintf(w, "\n%s\n%s  GREENVEST  SHUTTING DOWN%s\n%s\n\n", hr, banner.ColorBold+banner.ColorWhite, banner.ColorReset, hr)
	logger.Info().Msg("Application shutting down")
}
