// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type ColorScheme struct {
	Primary   lipgloss.Color
	Accent    lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Border    lipgloss.Color
	Text      lipgloss.Color
	TextMuted lipgloss.Color
}

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

// ANSI escapes used for plain fmt output. Set by InitializeColors.
var (
	Green   = "\033[92m"
	Info    = "\033[96m"
	Warning = "\033[93m"
	Error   = "\033[91m"
	Reset   = "\033[0m"
)

var detectedMode TerminalMode

// detectTerminalMode attempts to detect whether the terminal is in light or dark mode
func detectTerminalMode() TerminalMode {
	// COLORFGBG is "foreground;background"
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			bg := parts[len(parts)-1]
			if bg == "0" || bg == "8" || bg == "16" {
				return TerminalModeDark
			} else if bg == "15" || bg == "7" || bg == "255" {
				return TerminalModeLight
			}
		}
	}

	for _, env := range []string{"TERM_THEME", "THEME"} {
		if theme := os.Getenv(env); theme != "" {
			theme = strings.ToLower(theme)
			if strings.Contains(theme, "dark") {
				return TerminalModeDark
			} else if strings.Contains(theme, "light") {
				return TerminalModeLight
			}
		}
	}

	// Default to dark mode as it's more common in terminals
	return TerminalModeDark
}

func createLightColorScheme() *ColorScheme {
	return &ColorScheme{
		Primary:   lipgloss.Color("4"),
		Accent:    lipgloss.Color("5"),
		Success:   lipgloss.Color("2"),
		Warning:   lipgloss.Color("3"),
		Border:    lipgloss.Color("8"),
		Text:      lipgloss.Color("0"),
		TextMuted: lipgloss.Color("240"),
	}
}

func createDarkColorScheme() *ColorScheme {
	return &ColorScheme{
		Primary:   lipgloss.Color("39"),
		Accent:    lipgloss.Color("205"),
		Success:   lipgloss.Color("46"),
		Warning:   lipgloss.Color("11"),
		Border:    lipgloss.Color("240"),
		Text:      lipgloss.Color("15"),
		TextMuted: lipgloss.Color("245"),
	}
}

// InitializeColors detects the terminal mode and returns the matching scheme.
// It also resets the ANSI escapes used by plain output.
func InitializeColors() *ColorScheme {
	detectedMode = detectTerminalMode()
	Green, Info, Warning, Error, Reset = GetANSIColors()

	if detectedMode == TerminalModeLight {
		return createLightColorScheme()
	}
	return createDarkColorScheme()
}

// ANSI color codes for terminal output (adaptive to mode)
func GetANSIColors() (success, info, warning, error, reset string) {
	if detectedMode == TerminalModeLight {
		success = "\033[32m" // Green
		info = "\033[34m"    // Blue
		warning = "\033[33m" // Yellow
		error = "\033[31m"   // Red
	} else {
		success = "\033[92m" // Bright Green
		info = "\033[96m"    // Bright Cyan
		warning = "\033[93m" // Bright Yellow
		error = "\033[91m"   // Bright Red
	}

	reset = "\033[0m"
	return
}

// Styles holds the lipgloss styles used by the table report.
type Styles struct {
	Title     lipgloss.Style
	Section   lipgloss.Style
	Header    lipgloss.Style
	Cell      lipgloss.Style
	Highlight lipgloss.Style
	Muted     lipgloss.Style
	Border    lipgloss.Style
}

// NewStyles builds report styles from a color scheme.
func NewStyles(scheme *ColorScheme) *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Foreground(scheme.Primary).
			Bold(true),
		Section: lipgloss.NewStyle().
			Foreground(scheme.Accent).
			Bold(true).
			MarginTop(1),
		Header: lipgloss.NewStyle().
			Foreground(scheme.Primary).
			Bold(true).
			Padding(0, 1),
		Cell: lipgloss.NewStyle().
			Foreground(scheme.Text).
			Padding(0, 1),
		Highlight: lipgloss.NewStyle().
			Foreground(scheme.Success).
			Padding(0, 1),
		Muted: lipgloss.NewStyle().
			Foreground(scheme.TextMuted),
		Border: lipgloss.NewStyle().
			Foreground(scheme.Border),
	}
}
