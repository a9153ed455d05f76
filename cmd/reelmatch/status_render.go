package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"reelmatch/internal/config"
	"reelmatch/internal/poster"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

const (
	statusLabelWidth = 20
	statusIndent     = "  "
)

func renderStatusLine(label string, kind statusKind, message string, colorize bool) string {
	statusText := statusKindLabel(kind)
	if message != "" {
		statusText = fmt.Sprintf("[%s] %s", statusText, message)
	} else {
		statusText = fmt.Sprintf("[%s]", statusText)
	}
	base := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, label+":", statusText)
	if colorize {
		if color := statusKindColor(kind); color != "" {
			return color + base + ansiReset
		}
	}
	return base
}

func statusKindLabel(kind statusKind) string {
	switch kind {
	case statusOK:
		return "OK"
	case statusWarn:
		return "WARN"
	case statusError:
		return "ERROR"
	default:
		return "INFO"
	}
}

func statusKindColor(kind statusKind) string {
	switch kind {
	case statusOK:
		return ansiGreen
	case statusWarn:
		return ansiYellow
	case statusError:
		return ansiRed
	case statusInfo:
		return ansiBlue
	default:
		return ""
	}
}

// posterStatus maps a poster result onto a status line, adding the next
// step for reasons the user can act on.
func posterStatus(res poster.Result, cfg *config.Config) (statusKind, string) {
	if res.Ok() {
		return statusOK, res.URL
	}
	message := res.Status()
	if hint := posterReasonHint(res.Reason, cfg); hint != "" {
		message += "; " + hint
	}
	kind := statusWarn
	if res.Reason == poster.ReasonSearchFailed || res.Reason == poster.ReasonCircuitOpen {
		kind = statusError
	}
	return kind, message
}

func posterReasonHint(reason poster.Reason, cfg *config.Config) string {
	switch reason {
	case poster.ReasonProviderDisabled:
		if cfg == nil || !cfg.Poster.Enabled {
			return "set poster.enabled = true"
		}
		if cfg.Poster.Provider == config.ProviderOMDb {
			return "set omdb.api_key or OMDB_API_KEY"
		}
		if cfg.Poster.Provider == config.ProviderTMDB {
			return "set tmdb.api_key or TMDB_API_KEY"
		}
		return "set poster.provider to tmdb or omdb"
	case poster.ReasonSearchFailed:
		return "check the network and api key"
	case poster.ReasonCircuitOpen:
		return "provider paused after repeated failures"
	default:
		return ""
	}
}

func renderSectionHeader(title string, colorize bool) []string {
	line := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	rule := strings.Repeat("-", len([]rune(line)))
	if colorize {
		line = ansiBlue + line + ansiReset
		rule = ansiBlue + rule + ansiReset
	}
	return []string{line, rule}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
