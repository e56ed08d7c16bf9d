package geo

import "math"

// EarthRadiusMeters - средний радиус Земли, используемый в формуле гаверсинусов
const EarthRadiusMeters = 6371000.0

// Point - координаты в градусах
type Point struct {
	Lat float64
	Lon float64
}

// Valid сообщает, лежат ли координаты в допустимых диапазонах
func (p Point) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}

// Distance возвращает расстояние по большому кругу между двумя точками в метрах
func Distance(a, b Point) float64 {
	phi1 := radians(a.Lat)
	phi2 := radians(b.Lat)
	dPhi := radians(b.Lat - a.Lat)
	dLambda := radians(b.Lon - a.Lon)

	sinPhi := math.Sin(dPhi / 2)
	sinLambda := math.Sin(dLambda / 2)
	h := sinPhi*sinPhi + math.Cos(phi1)*math.Cos(phi2)*sinLambda*sinLambda

	// из-за округления h может выйти за [0,1] для совпадающих и антиподальных точек
	h = math.Max(0, math.Min(1, h))

	return EarthRadiusMeters * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
