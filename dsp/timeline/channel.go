package timeline

import (
	"fmt"
	"strings"
)

// Channel identifies one of the three color channels.
type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

// Channels lists the color channels in evaluation order.
var Channels = [3]Channel{Red, Green, Blue}

func (c Channel) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return fmt.Sprintf("channel(%d)", int(c))
	}
}

// Mask is a set of channels.
type Mask uint8

// MaskAll names every channel.
const MaskAll = "rgb"

// ParseMask reads channel letters case-insensitively. Characters other than
// r, g and b are ignored.
func ParseMask(s string) Mask {
	var m Mask
	for _, r := range strings.ToLower(s) {
		switch r {
		case 'r':
			m |= 1 << Red
		case 'g':
			m |= 1 << Green
		case 'b':
			m |= 1 << Blue
		}
	}
	return m
}

// Has reports whether c is in the mask.
func (m Mask) Has(c Channel) bool {
	if c < Red || c > Blue {
		return false
	}
	return m&(1<<c) != 0
}

func (m Mask) String() string {
	var sb strings.Builder
	for _, c := range Channels {
		if m.Has(c) {
			sb.WriteByte("rgb"[c])
		}
	}
	return sb.String()
}
