package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Kantor acuan untuk pengujian: sekitar Monas, Jakarta.
const (
	officeLat = -6.175392
	officeLng = 106.827153
)

func TestHaversineDistanceTitikSama(t *testing.T) {
	dist := HaversineDistance(officeLat, officeLng, officeLat, officeLng)
	assert.Equal(t, 0.0, dist)
}

func TestHaversineDistanceSatuDerajatLintang(t *testing.T) {
	// 1 derajat lintang = pi * R / 180 meter, tidak tergantung bujur.
	dist := HaversineDistance(0, 0, 1, 0)
	assert.InDelta(t, 111194.93, dist, 1.0)

	distJakarta := HaversineDistance(officeLat, officeLng, officeLat+1, officeLng)
	assert.InDelta(t, 111194.93, distJakarta, 1.0)
}

func TestHaversineDistanceSimetris(t *testing.T) {
	d1 := HaversineDistance(officeLat, officeLng, -6.2, 106.8)
	d2 := HaversineDistance(-6.2, 106.8, officeLat, officeLng)
	assert.InDelta(t, d1, d2, 1e-9)
}

func TestIsWithinRadiusTitikPusat(t *testing.T) {
	// Titik pusat selalu di dalam, berapa pun radiusnya.
	assert.True(t, IsWithinRadius(officeLat, officeLng, officeLat, officeLng, 100))
	assert.True(t, IsWithinRadius(officeLat, officeLng, officeLat, officeLng, 1))
	assert.True(t, IsWithinRadius(officeLat, officeLng, officeLat, officeLng, 0))
}

func TestIsWithinRadiusBatasRadius(t *testing.T) {
	// Offset 0.00089 derajat lintang = sekitar 99 meter: masih di dalam
	// radius 100 m. Offset 0.00095 derajat = sekitar 105,6 meter: di luar.
	dekat := officeLat + 0.00089
	jauh := officeLat + 0.00095

	assert.True(t, IsWithinRadius(dekat, officeLng, officeLat, officeLng, 100))
	assert.False(t, IsWithinRadius(jauh, officeLng, officeLat, officeLng, 100))

	// Titik yang sama bisa berubah keputusan hanya karena radius berbeda.
	assert.True(t, IsWithinRadius(jauh, officeLng, officeLat, officeLng, 150))
}

func TestIsWithinRadiusTergantungRadius(t *testing.T) {
	// Sekitar 5 km dari kantor: di dalam geofence 10 km, di luar 100 m.
	titikJauh := officeLat + 0.045

	assert.True(t, IsWithinRadius(titikJauh, officeLng, officeLat, officeLng, 10000))
	assert.False(t, IsWithinRadius(titikJauh, officeLng, officeLat, officeLng, 100))
}
