package controller

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/taigrr/colorhash"

	m "dupes.dev/pkg/dupes/internal/model"
)

// theme decorates report lines. The plain theme leaves them untouched.
type theme interface {
	Header(fingerprint m.Fingerprint, text string) string
	Keep(text string) string
	Remove(text string) string
	Error(text string) string
}

type plainTheme struct{}

func (plainTheme) Header(_ m.Fingerprint, text string) string { return text }
func (plainTheme) Keep(text string) string                    { return text }
func (plainTheme) Remove(text string) string                  { return text }
func (plainTheme) Error(text string) string                   { return text }

// StyledUI is a SimpleUI whose lines are colored for terminals. Each
// duplicate set header gets a stable color derived from its fingerprint.
type StyledUI struct {
	*SimpleUI
}

// NewStyledUI creates a StyledUI rendering for the command's output.
func NewStyledUI(cmd *cobra.Command) *StyledUI {
	renderer := lipgloss.NewRenderer(cmd.OutOrStdout())

	return &StyledUI{
		SimpleUI: &SimpleUI{
			cmd: cmd,
			theme: lipglossTheme{
				renderer: renderer,
				keep:     renderer.NewStyle().Foreground(lipgloss.Color("2")),
				remove:   renderer.NewStyle().Foreground(lipgloss.Color("3")),
				err:      renderer.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
			},
		},
	}
}

type lipglossTheme struct {
	renderer *lipgloss.Renderer
	keep     lipgloss.Style
	remove   lipgloss.Style
	err      lipgloss.Style
}

func (t lipglossTheme) Header(fingerprint m.Fingerprint, text string) string {
	return t.renderer.NewStyle().Bold(true).Foreground(fingerprintColor(fingerprint)).Render(text)
}

func (t lipglossTheme) Keep(text string) string   { return t.keep.Render(text) }
func (t lipglossTheme) Remove(text string) string { return t.remove.Render(text) }
func (t lipglossTheme) Error(text string) string  { return t.err.Render(text) }

// fingerprintColor maps a fingerprint onto the ANSI 256 palette, skipping
// the 16 system colors and the near-white tail.
func fingerprintColor(fingerprint m.Fingerprint) lipgloss.Color {
	const paletteStart, paletteSize = 17, 214

	hashed := colorhash.HashString(string(fingerprint))

	return lipgloss.Color(fmt.Sprintf("%d", paletteStart+(hashed%paletteSize+paletteSize)%paletteSize))
}
