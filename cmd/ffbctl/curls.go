package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bft-labs/ffblink/pkg/ffb"
)

var namedExtents = map[string]int16{
	"none": ffb.ExtensionNone,
	"half": ffb.ExtensionHalf,
	"full": ffb.ExtensionFull,
}

// parseCurls accepts a single value applied to every finger, or five
// comma-separated values from thumb to pinky. Values are integers or one of
// none, half, full.
func parseCurls(s string) (ffb.Curls, error) {
	parts := strings.Split(s, ",")
	switch len(parts) {
	case 1:
		v, err := parseCurl(parts[0])
		if err != nil {
			return ffb.Curls{}, err
		}
		return ffb.UniformCurls(v), nil
	case 5:
		var vals [5]int16
		for i, p := range parts {
			v, err := parseCurl(p)
			if err != nil {
				return ffb.Curls{}, err
			}
			vals[i] = v
		}
		c := ffb.Curls{Thumb: vals[0], Index: vals[1], Middle: vals[2], Ring: vals[3], Pinky: vals[4]}
		return c, nil
	default:
		return ffb.Curls{}, fmt.Errorf("curls: want 1 or 5 values, got %d", len(parts))
	}
}

func parseCurl(s string) (int16, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if v, ok := namedExtents[s]; ok {
		return v, nil
	}
	v, err := strconv.ParseInt(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("curls: %q: %w", s, err)
	}
	return int16(v), nil
}
