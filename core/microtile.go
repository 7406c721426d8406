package core

import "github.com/r6xxaddr/addrlib/internal/mathutil"

// PixelIndexWithinMicroTile computes the linear index of pixel (x, y, z)
// inside its 8×8(×thickness) micro tile. The bit selections below are
// contractual: they reproduce the hardware's pixel layout exactly and
// must not be "simplified" — see the micro-tile pixel-permutation table.
func PixelIndexWithinMicroTile(x, y, z uint32, bpp uint32, m TileMode, tt TileType) uint32 {
	x0, x1, x2 := bit(x, 0), bit(x, 1), bit(x, 2)
	y0, y1, y2 := bit(y, 0), bit(y, 1), bit(y, 2)
	z0, z1, z2 := bit(z, 0), bit(z, 1), bit(z, 2)

	th := Thickness(m)

	var b0, b1, b2, b3, b4, b5, b6, b7, b8 uint32

	if tt == TTThick {
		b0, b1, b2, b3, b4, b5, b6, b7 = x0, y0, z0, x1, y1, z1, x2, y2
	} else {
		if tt == TTNonDisplayable {
			b0, b1, b2, b3, b4, b5 = x0, y0, x1, y1, x2, y2
		} else {
			// TTDisplayable and TTDepthSampleOrder share the bpp-keyed
			// permutation below: the hardware only special-cases
			// non-displayable and thick tiling here.
			switch bpp {
			case 8:
				b0, b1, b2, b3, b4, b5 = x0, x1, x2, y1, y0, y2
			case 16:
				b0, b1, b2, b3, b4, b5 = x0, x1, x2, y0, y1, y2
			case 64:
				b0, b1, b2, b3, b4, b5 = x0, y0, x1, x2, y1, y2
			case 128:
				b0, b1, b2, b3, b4, b5 = y0, x0, x1, x2, y1, y2
			default: // 32, 96, and anything else
				b0, b1, b2, b3, b4, b5 = x0, x1, y0, x2, y1, y2
			}
		}
		if th > 1 {
			b6, b7 = z0, z1
		}
	}

	if th == 8 {
		b8 = z2
	}

	return b0 | b1<<1 | b2<<2 | b3<<3 | b4<<4 | b5<<5 | b6<<6 | b7<<7 | b8<<8
}

func bit(x uint32, i uint) uint32 { return mathutil.Bit(x, i) }
