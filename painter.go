package main

import (
	"github.com/gookit/color"

	"line_tools/config"
)

// painter colours report fragments. A disabled painter returns its input unchanged.
type painter struct {
	enabled bool
}

// newPainter applies the COLOR_OUTPUT mode to gookit/color. In auto mode
// gookit strips the codes itself when the terminal has no colour support.
func newPainter(mode string) painter {
	switch mode {
	case config.ColorNever:
		color.Enable = false
		return painter{}
	case config.ColorAlways:
		color.Enable = true
		color.ForceOpenColor()
	}
	return painter{enabled: true}
}

func (p painter) Cyan(s string) string {
	if !p.enabled {
		return s
	}
	return color.Cyan.Sprint(s)
}

func (p painter) Blue(s string) string {
	if !p.enabled {
		return s
	}
	return color.Blue.Sprint(s)
}

func (p painter) Red(s string) string {
	if !p.enabled {
		return s
	}
	return color.Red.Sprint(s)
}
