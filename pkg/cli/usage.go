package cli

import (
	"flag"
	"fmt"
	"strings"

	"github.com/mfridman/numf/pkg/textutil"
)

const helpWidth = 80

// DefaultUsage renders the help text for c: its short help, usage line and flags. A flag paired
// with a short alias through [FlagMetadata] is listed once, as "-x, --hex".
func DefaultUsage(c *Command) string {
	if c == nil {
		return ""
	}
	var b strings.Builder

	if c.ShortHelp != "" {
		for _, line := range textutil.Wrap(c.ShortHelp, helpWidth) {
			b.WriteString(line)
			b.WriteRune('\n')
		}
		b.WriteRune('\n')
	}

	b.WriteString("Usage:\n  ")
	if c.Usage != "" {
		b.WriteString(c.Usage)
	} else {
		b.WriteString(c.Name)
		if c.Flags != nil {
			b.WriteString(" [flags]")
		}
	}
	b.WriteString("\n\n")

	if flags := collectFlags(c); len(flags) > 0 {
		maxLen := 0
		for _, f := range flags {
			maxLen = max(maxLen, len(f.name))
		}
		b.WriteString("Flags:\n")
		writeFlagSection(&b, flags, maxLen)
	}

	return strings.TrimRight(b.String(), "\n")
}

type flagInfo struct {
	name   string
	usage  string
	defval string
}

func collectFlags(c *Command) []flagInfo {
	if c.Flags == nil {
		return nil
	}
	shortFor := make(map[string]string)
	isShort := make(map[string]bool)
	for _, m := range c.FlagsMetadata {
		if m.Short != "" {
			shortFor[m.Name] = m.Short
			isShort[m.Short] = true
		}
	}

	var flags []flagInfo
	c.Flags.VisitAll(func(f *flag.Flag) {
		if isShort[f.Name] {
			return
		}
		name := formatFlagName(f.Name)
		if short, ok := shortFor[f.Name]; ok {
			name = formatFlagName(short) + ", " + name
		} else if len(f.Name) > 1 {
			// Keep long names aligned with the ones that have a short alias.
			name = "    " + name
		}
		argName, usage := flag.UnquoteUsage(f)
		if argName != "" {
			name += " " + argName
		}
		defval := f.DefValue
		if isBoolFlag(f) && defval == "false" {
			defval = ""
		}
		flags = append(flags, flagInfo{name: name, usage: usage, defval: defval})
	})
	return flags
}

// writeFlagSection handles the formatting of flag descriptions
func writeFlagSection(b *strings.Builder, flags []flagInfo, maxLen int) {
	nameWidth := maxLen + 4
	wrapWidth := helpWidth - nameWidth

	for _, f := range flags {
		description := f.usage
		if f.defval != "" {
			description += fmt.Sprintf(" (default: %s)", f.defval)
		}

		lines := textutil.Wrap(description, wrapWidth)
		if len(lines) == 0 {
			lines = []string{""}
		}
		padding := strings.Repeat(" ", maxLen-len(f.name)+4)
		fmt.Fprintf(b, "  %s%s%s\n", f.name, padding, lines[0])

		indentPadding := strings.Repeat(" ", nameWidth+2)
		for _, line := range lines[1:] {
			fmt.Fprintf(b, "%s%s\n", indentPadding, line)
		}
	}
}

// formatFlagName uses a single dash for one-letter flags and two for the rest.
func formatFlagName(name string) string {
	if len(name) == 1 {
		return "-" + name
	}
	return "--" + name
}
