// Package main generates a Markdown reference for a theme: its palette,
// its animation defaults and the state rules of its default control styles.
// Useful for reviewing what a theme.yaml actually produces before shipping.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"

	"github.com/HrX03/fluent-ui/pkg/states"
	"github.com/HrX03/fluent-ui/pkg/style"
	"github.com/HrX03/fluent-ui/pkg/theme"
)

func main() {
	configPath := flag.String("config", "theme.yaml", "theme configuration file (optional)")
	outPath := flag.String("o", "", "output file (default: stdout)")
	flag.Parse()

	cfg, err := theme.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	data, err := cfg.ThemeData()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building theme: %v\n", err)
		os.Exit(1)
	}

	var buf bytes.Buffer
	writeReference(&buf, data)

	if *outPath == "" {
		os.Stdout.Write(buf.Bytes())
		return
	}
	if err := os.WriteFile(*outPath, buf.Bytes(), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *outPath, err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", *outPath)
}

// querySets are the state combinations worth documenting, in the order
// readers expect them.
var querySets = []states.States{
	states.None,
	states.Hovering,
	states.Pressing,
	states.Focused,
	states.Disabled,
}

var kinds = []theme.ControlKind{theme.KindButton, theme.KindSurface}

func writeReference(buf *bytes.Buffer, data *theme.ThemeData) {
	fmt.Fprintf(buf, "# Theme Reference\n\n")
	fmt.Fprintf(buf, "Brightness: **%s** · Accent: `%s`\n\n", data.Brightness, hex(uint32(data.Accent)))

	buf.WriteString("## Palette\n\n")
	buf.WriteString("| Role | Color |\n|---|---|\n")
	palette := []struct {
		role  string
		color uint32
	}{
		{"accent", uint32(data.Accent)},
		{"on-accent", uint32(data.OnAccent)},
		{"background", uint32(data.Background)},
		{"surface", uint32(data.Surface)},
		{"on-surface", uint32(data.OnSurface)},
		{"control-border", uint32(data.ControlBorder)},
		{"focus-border", uint32(data.FocusBorder)},
		{"disabled-background", uint32(data.DisabledBackground)},
		{"disabled-foreground", uint32(data.DisabledForeground)},
		{"shadow", uint32(data.Shadow)},
	}
	for _, p := range palette {
		fmt.Fprintf(buf, "| %s | `%s` |\n", p.role, hex(p.color))
	}

	fmt.Fprintf(buf, "\n## Motion\n\nDuration: %s\n\n", data.AnimationDuration)

	for _, kind := range kinds {
		fmt.Fprintf(buf, "## Default %s style\n\n", kind)
		buf.WriteString("| States | Background | Foreground | Elevation | Cursor |\n|---|---|---|---|---|\n")
		resolver := style.NewResolver(data.DefaultStyle(kind))
		for _, set := range querySets {
			snap, err := resolver.Resolve(set)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error resolving %s %s: %v\n", kind, set, err)
				os.Exit(1)
			}
			fmt.Fprintf(buf, "| %s | `%s` | `%s` | %.1f | %s |\n",
				stateLabel(set), hex(uint32(snap.BackgroundColor)),
				hex(uint32(snap.ForegroundColor)), snap.Elevation, snap.Cursor)
		}
		buf.WriteString("\n")
	}
}

func stateLabel(s states.States) string {
	if s == states.None {
		return "rest"
	}
	return s.String()
}

func hex(c uint32) string {
	return fmt.Sprintf("#%08X", c)
}
