package blur

// Gaussian applies a tabulated separable Gaussian blur of the given
// sigma to the width x height region of buf (row stride pitch),
// skipping the call entirely if the plane is smaller than the kernel
// (matching the original's g_w size guard around ass_gauss_blur). It
// borrows a cached scratch buffer keyed by (width+1)*(height+1) and
// does not retain it past the call.
func Gaussian(buf []byte, width, height, pitch int, sigma float64) {
	if sigma <= 0.1 {
		return
	}
	k := GetKernel(sigma)
	if width < k.W || height < k.W {
		return
	}
	tmp := GetTempBuf((width + 1) * (height + 1))
	for i := range tmp {
		tmp[i] = 0
	}
	gaussBlur(buf, tmp, width, height, pitch, k.GT2, k.R, k.W)
}

// gaussBlur is a direct translation of ass_gauss_blur: a horizontal
// scatter-accumulate pass into a (width+1)-wide-per-row uint32
// accumulator (tmp, with one sentinel cell per row for left overflow),
// then a vertical scatter-accumulate pass reading that accumulator as
// a 16.16 fixed-point intermediate, then a final >>16 write-back into
// buf. Edge rows/columns run truncated kernel ranges so coverage that
// would bleed off the plane is folded back via a running sum instead
// of being dropped.
func gaussBlur(buf []byte, tmp []uint32, width, height, pitch int, gt2 []uint32, r, mwidth int) {
	rowStride := width + 1

	for y := 0; y < height; y++ {
		rowBase := y * rowStride
		for i := 0; i <= width; i++ {
			tmp[rowBase+i] = 0
		}
		sRow := y * pitch

		x := 0
		if x < r {
			if src := buf[sRow+x]; src != 0 {
				m3 := gt2[int(src)*mwidth:]
				sum := uint32(0)
				for mx := mwidth - 1; mx >= r-x; mx-- {
					sum += m3[mx]
					tmp[rowBase+1+x-r+mx] += sum
				}
			}
		}
		for x = 1; x < r; x++ {
			if src := buf[sRow+x]; src != 0 {
				m3 := gt2[int(src)*mwidth:]
				for mx := r - x; mx < mwidth; mx++ {
					tmp[rowBase+1+x-r+mx] += m3[mx]
				}
			}
		}
		for ; x < width-r; x++ {
			if src := buf[sRow+x]; src != 0 {
				m3 := gt2[int(src)*mwidth:]
				for mx := 0; mx < mwidth; mx++ {
					tmp[rowBase+1+x-r+mx] += m3[mx]
				}
			}
		}
		for ; x < width-1; x++ {
			if src := buf[sRow+x]; src != 0 {
				x2 := r + width - x
				m3 := gt2[int(src)*mwidth:]
				for mx := 0; mx < x2; mx++ {
					tmp[rowBase+1+x-r+mx] += m3[mx]
				}
			}
		}
		if x == width-1 {
			if src := buf[sRow+x]; src != 0 {
				x2 := r + width - x
				m3 := gt2[int(src)*mwidth:]
				sum := uint32(0)
				for mx := 0; mx < x2; mx++ {
					sum += m3[mx]
					tmp[rowBase+1+x-r+mx] += sum
				}
			}
		}
	}

	idx := func(col, row int) int { return row*rowStride + 1 + col }

	for x := 0; x < width; x++ {
		y := 0
		if y < r {
			srcp := idx(x, y)
			if src := tmp[srcp]; src != 0 {
				dstp := srcp - 1 + (mwidth-r+y)*rowStride
				src2 := int((src + 1<<15) >> 16)
				m3 := gt2[src2*mwidth:]
				tmp[srcp] = 1 << 15
				sum := uint32(0)
				for mx := mwidth - 1; mx >= r-y; mx-- {
					sum += m3[mx]
					tmp[dstp] += sum
					dstp -= rowStride
				}
			}
		}
		for y = 1; y < r; y++ {
			srcp := idx(x, y)
			if src := tmp[srcp]; src != 0 {
				dstp := srcp - 1 + rowStride
				src2 := int((src + 1<<15) >> 16)
				m3 := gt2[src2*mwidth:]
				tmp[srcp] = 1 << 15
				for mx := r - y; mx < mwidth; mx++ {
					tmp[dstp] += m3[mx]
					dstp += rowStride
				}
			}
		}
		for ; y < height-r; y++ {
			srcp := idx(x, y)
			if src := tmp[srcp]; src != 0 {
				dstp := srcp - 1 - r*rowStride
				src2 := int((src + 1<<15) >> 16)
				m3 := gt2[src2*mwidth:]
				tmp[srcp] = 1 << 15
				for mx := 0; mx < mwidth; mx++ {
					tmp[dstp] += m3[mx]
					dstp += rowStride
				}
			}
		}
		for ; y < height-1; y++ {
			srcp := idx(x, y)
			if src := tmp[srcp]; src != 0 {
				y2 := r + height - y
				dstp := srcp - 1 - r*rowStride
				src2 := int((src + 1<<15) >> 16)
				m3 := gt2[src2*mwidth:]
				tmp[srcp] = 1 << 15
				for mx := 0; mx < y2; mx++ {
					tmp[dstp] += m3[mx]
					dstp += rowStride
				}
			}
		}
		if y == height-1 {
			srcp := idx(x, y)
			if src := tmp[srcp]; src != 0 {
				y2 := r + height - y
				dstp := srcp - 1 - r*rowStride
				src2 := int((src + 1<<15) >> 16)
				m3 := gt2[src2*mwidth:]
				tmp[srcp] = 1 << 15
				sum := uint32(0)
				for mx := 0; mx < y2; mx++ {
					sum += m3[mx]
					tmp[dstp] += sum
					dstp += rowStride
				}
			}
		}
	}

	for y := 0; y < height; y++ {
		rowBase := y * rowStride
		dstRow := y * pitch
		for x := 0; x < width; x++ {
			buf[dstRow+x] = byte(tmp[rowBase+x] >> 16)
		}
	}
}
