/*
DESCRIPTION
  color.go provides the display colours of tracked objects.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package tracker

import (
	"image/color"
	"math/rand"
)

// colorSeed fixes the colour sequence so object i always has the same colour.
const colorSeed = 0

// Colors returns n colours, one per tracked object. The sequence is the same
// on every call.
func Colors(n int) []color.RGBA {
	rng := rand.New(rand.NewSource(colorSeed))
	cs := make([]color.RGBA, n)
	for i := range cs {
		cs[i] = color.RGBA{
			R: uint8(rng.Intn(255)),
			G: uint8(rng.Intn(255)),
			B: uint8(rng.Intn(255)),
		}
	}
	return cs
}
