// Package visibility measures fringe contrast of an intensity record.
package visibility

import "cmp"

// Windows splits data into consecutive windows of size win and returns the
// fringe visibility (max-min)/(max+min) of each full window. A trailing
// partial window is ignored.
func Windows(data []float64, win int) []float64 {
	if win <= 0 || len(data) < win {
		return nil
	}
	result := make([]float64, 0, len(data)/win)
	for i := 0; i+win <= len(data); i += win {
		minimum, maximum := MinMax(data[i : i+win])
		result = append(result, Contrast(minimum, maximum))
	}
	return result
}

func Contrast(minimum, maximum float64) float64 {
	if maximum+minimum == 0 {
		return 0
	}
	return (maximum - minimum) / (maximum + minimum)
}

func MinMax[T cmp.Ordered](arr []T) (minimum, maximum T) {
	if len(arr) == 0 {
		return minimum, maximum
	}
	minimum, maximum = arr[0], arr[0]
	for _, v := range arr[1:] {
		if v < minimum {
			minimum = v
		}
		if v > maximum {
			maximum = v
		}
	}
	return minimum, maximum
}

// Peak returns the index of the first maximum of data.
func Peak[T cmp.Ordered](data []T) int {
	maxIdx := 0
	for i, v := range data {
		if v > data[maxIdx] {
			maxIdx = i
		}
	}
	return maxIdx
}
