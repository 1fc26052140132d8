package blur

// Box applies one pass of the BE-style box blur (be_blur): a [1 2 1]^2
// separable kernel realized as two running-sum 1-D passes over the
// width x height interior region of buf (row stride pitch). Only the
// interior is blurred; the caller is responsible for offsetting buf
// to the (1,1) interior origin and sizing width/height as (W-2, H-2),
// matching the original's plan_selected+1+pitch call convention.
func Box(buf []byte, width, height, pitch int) {
	for y := 0; y < height; y++ {
		row := buf[y*pitch:]
		oldSum := 2 * int(row[0])
		for x := 0; x < width-1; x++ {
			newSum := int(row[x]) + int(row[x+1])
			row[x] = byte((oldSum + newSum) >> 2)
			oldSum = newSum
		}
	}

	for x := 0; x < width; x++ {
		oldSum := 2 * int(buf[x])
		idx := x
		for y := 0; y < height-1; y++ {
			newSum := int(buf[idx]) + int(buf[idx+pitch])
			buf[idx] = byte((oldSum + newSum) >> 2)
			oldSum = newSum
			idx += pitch
		}
	}
}
