package render

import "github.com/fatih/color"

var colorAttrs = map[string]color.Attribute{
	"black":   color.FgBlack,
	"red":     color.FgRed,
	"green":   color.FgGreen,
	"yellow":  color.FgYellow,
	"blue":    color.FgBlue,
	"magenta": color.FgMagenta,
	"cyan":    color.FgCyan,
	"white":   color.FgWhite,
}

// lookupColor returns nil for unknown names; the text is then written plain.
func lookupColor(name string) *color.Color {
	attr, ok := colorAttrs[name]
	if !ok {
		return nil
	}
	c := color.New(attr)
	c.EnableColor()
	return c
}
