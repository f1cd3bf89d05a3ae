package rig

import (
	"sync"

	"github.com/toonforge/shaderig/layout"
)

// packingChannels is the number of float32 transport channels available on
// the consuming material graph (one custom property driven per RGB channel).
const packingChannels = 3

// packingLayout builds the published parameter layout. The descriptor order
// below is the wire format: encoder and every generated arithmetic decoder
// depend on it byte-for-byte, so any reorder, relevel, or reassignment is a
// breaking change that must regenerate all decoders.
//
// Channel radix products: 256^3 = 2^24 (exactly at the float32 ceiling),
// 256*256*5*2, and 100 - all within bound, so the layout cannot fail to
// build. A mistake introduced here is a programming error caught by the
// panic on first use.
var packingLayout = sync.OnceValue(func() *layout.Layout {
	l, err := layout.New(packingChannels,
		layout.Continuous("elongation", 0, 1, 256, 0),
		layout.Continuous("sharpness", 0, 1, 256, 0),
		layout.Continuous("bulge", -1, 1, 256, 0),
		layout.Continuous("bend", -1, 1, 256, 1),
		layout.Continuous("hardness", 0, 1, 256, 1),
		layout.Enum("mode", BlendModeCount, 1),
		layout.Bool("clamp", 1),
		layout.Continuous("spin", 0, 99, 100, 2),
	)
	if err != nil {
		panic("rig: invalid packing layout: " + err.Error())
	}

	return l
})

// PackingLayout returns the fixed layout that multiplexes the eight effect
// parameters into three float32 transport channels. The returned layout is
// shared and immutable.
func PackingLayout() *layout.Layout {
	return packingLayout()
}
