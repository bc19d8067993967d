package interact

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Length is a margin component in pixels or percent of the root size.
type Length struct {
	Value   float64
	Percent bool
}

// Resolve converts l to pixels against size.
func (l Length) Resolve(size float64) (px float64) {
	px = l.Value
	if l.Percent {
		px = l.Value * size / 100
	}
	return px
}

// Margin grows (positive) or shrinks (negative) the observer root box.
type Margin struct {
	Top    Length
	Right  Length
	Bottom Length
	Left   Length
}

// ParseRootMargin parses a CSS style margin of one to four components, each
// in px or %. Zero may be unitless. "" is no margin.
func ParseRootMargin(s string) (margin Margin, err error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return margin, err
	}
	if len(fields) > 4 {
		err = errors.Errorf("root margin %q has more than four components", s)
		return margin, err
	}

	lengths := make([]Length, len(fields))
	for i, f := range fields {
		lengths[i], err = parseLength(f)
		if err != nil {
			err = errors.Wrapf(err, "invalid root margin %q", s)
			return margin, err
		}
	}

	// CSS shorthand expansion.
	switch len(lengths) {
	case 1:
		margin = Margin{lengths[0], lengths[0], lengths[0], lengths[0]}
	case 2:
		margin = Margin{lengths[0], lengths[1], lengths[0], lengths[1]}
	case 3:
		margin = Margin{lengths[0], lengths[1], lengths[2], lengths[1]}
	case 4:
		margin = Margin{lengths[0], lengths[1], lengths[2], lengths[3]}
	}

	return margin, err
}

func parseLength(s string) (l Length, err error) {
	number := s
	switch {
	case strings.HasSuffix(s, "%"):
		number = strings.TrimSuffix(s, "%")
		l.Percent = true
	case strings.HasSuffix(s, "px"):
		number = strings.TrimSuffix(s, "px")
	case s != "0":
		err = errors.Errorf("component %q must be in px or %%", s)
		return l, err
	}

	l.Value, err = strconv.ParseFloat(number, 64)
	if err != nil {
		err = errors.Wrapf(err, "component %q is not a number", s)
		return l, err
	}

	return l, err
}
