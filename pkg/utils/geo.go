package util

import "math"

// earthRadiusMeters adalah radius rata-rata bumi.
const earthRadiusMeters = 6371000.0

// HaversineDistance menghitung jarak lingkaran-besar (meter) antara dua
// koordinat dengan formula haversine.
func HaversineDistance(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := degreesToRadians(lat2 - lat1)
	dLng := degreesToRadians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(degreesToRadians(lat1))*math.Cos(degreesToRadians(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// IsWithinRadius melaporkan apakah titik berada di dalam geofence lingkaran
// (jarak <= radius). Fungsi murni; validasi rentang koordinat adalah tanggung
// jawab pemanggil di lapisan payload.
func IsWithinRadius(pointLat, pointLng, centerLat, centerLng, radiusMeters float64) bool {
	return HaversineDistance(pointLat, pointLng, centerLat, centerLng) <= radiusMeters
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
