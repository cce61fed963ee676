package frame

// DefaultBrightnessStep is the sampling distance, in pixels, used by Brightness
// when no step is given.
const DefaultBrightnessStep = 50

// Brightness returns the mean luma of img normalized to [0, 1]. Only every
// step-th sample of every step-th row is read.
func Brightness(img PlanarImage, step int) (float64, error) {
	if err := img.Validate(); err != nil {
		return 0, err
	}
	if step <= 0 {
		step = DefaultBrightnessStep
	}

	l := img.Layout()
	luma := img.Planes[0]

	var total, count int
	for y := 0; y < l.Height; y += step {
		row := luma[y*l.YStride:]
		for x := 0; x < l.Width; x += step {
			total += int(row[x])
			count++
		}
	}

	return float64(total) / float64(count) / 255, nil
}
