package compose

import "encoding/binary"

// blendRowWide is the batched counterpart to blendRowScalar: it
// processes packed BGRA8888 pixels four at a time. There is no SIMD
// intrinsic backing this in Go (the pack carries no portable
// byte-lane blend package), so "wide" here means grouped ordinary
// uint32 arithmetic rather than vector instructions; the per-pixel
// math and the result are identical to blendRowScalar.
func blendRowWide(row []byte, bpp int, alpha []byte, runs ColorRuns, xOrigin int) {
	single := runs.singleColor()
	color := runs.first()
	cursor := 0
	n := len(alpha)
	i := 0
	for ; i+4 <= n; i += 4 {
		var group [4]uint32
		var cols [4]uint32
		for k := 0; k < 4; k++ {
			a := uint32(alpha[i+k])
			col := color
			if !single {
				for cursor < len(runs) && int32(i+k+xOrigin) >= runs[cursor].End {
					cursor++
				}
				if cursor > 0 {
					col = runs[min(cursor, len(runs)-1)].Color
				} else if cursor < len(runs) {
					col = runs[cursor].Color
				}
				a = (a * (col >> 24)) >> 8
			}
			group[k] = a
			cols[k] = col
		}
		for k := 0; k < 4; k++ {
			off := (i + k) * bpp
			px := binary.LittleEndian.Uint32(row[off : off+4])
			binary.LittleEndian.PutUint32(row[off:off+4], pixmix(px, cols[k], group[k]))
		}
	}
	for ; i < n; i++ {
		a := uint32(alpha[i])
		col := color
		if !single {
			for cursor < len(runs) && int32(i+xOrigin) >= runs[cursor].End {
				cursor++
			}
			if cursor > 0 {
				col = runs[min(cursor, len(runs)-1)].Color
			} else if cursor < len(runs) {
				col = runs[cursor].Color
			}
			a = (a * (col >> 24)) >> 8
		}
		off := i * bpp
		px := binary.LittleEndian.Uint32(row[off : off+4])
		binary.LittleEndian.PutUint32(row[off:off+4], pixmix(px, col, a))
	}
}
