package outline

// MinLength подставляется вместо длины вырожденного отрезка,
// чтобы отношение длин в группировке оставалось конечным.
const MinLength = 1e-6

// Params — настраиваемые пороги и веса конвейера.
// Значения по умолчанию подобраны на сканах примерно 2000px по большей стороне.
type Params struct {
	// Отрезки короче MinSegmentLength отбрасываются до группировки.
	MinSegmentLength float64

	// AreaFactor масштабирует порог площади треугольника при проверке коллинеарности.
	AreaFactor float64

	// ProximityFactor задаёт долю длины большего отрезка, на которую могут отстоять соседние фрагменты.
	ProximityFactor float64

	Weights Weights
}

// Weights — веса оценки пар направляющих.
type Weights struct {
	Distance float64 // удалённость пары друг от друга
	Length   float64 // длина направляющей
	Corner   float64 // штраф за удалённость от угла, найденного вертикальным проходом
}

// DefaultParams возвращает параметры по умолчанию.
func DefaultParams() Params {
	return Params{
		MinSegmentLength: 0,
		AreaFactor:       1,
		ProximityFactor:  0.5,
		Weights:          DefaultWeights(),
	}
}

func DefaultWeights() Weights {
	return Weights{
		Distance: 2,
		Length:   1,
		Corner:   30,
	}
}
