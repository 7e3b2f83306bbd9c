package indicator_test

type closes []float64

func (c closes) Closes() []float64 { return c }

func repeat(value float64, n int) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = value
	}
	return values
}

func linear(start, step float64, n int) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = start + step*float64(i)
	}
	return values
}
