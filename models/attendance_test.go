package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeriveStatus(t *testing.T) {
	masuk := &AttendanceEvent{Time: time.Now()}
	pulang := &AttendanceEvent{Time: time.Now().Add(8 * time.Hour)}

	testCases := []struct {
		name     string
		signIn   *AttendanceEvent
		signOut  *AttendanceEvent
		expected string
	}{
		{"tanpa event sama sekali", nil, nil, StatusAbsent},
		{"hanya sign-in", masuk, nil, StatusPartial},
		{"sign-in dan sign-out", masuk, pulang, StatusPresent},
		{"sign-out tanpa sign-in tetap absent", nil, pulang, StatusAbsent},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, DeriveStatus(tc.signIn, tc.signOut))
		})
	}
}

func TestRefreshStatusMenimpaCacheBasi(t *testing.T) {
	a := &Attendance{
		SignIn: &AttendanceEvent{Time: time.Now()},
		Status: StatusPresent, // cache salah, harus dikoreksi
	}

	a.RefreshStatus()
	assert.Equal(t, StatusPartial, a.Status)

	a.SignOut = &AttendanceEvent{Time: time.Now().Add(9 * time.Hour)}
	a.RefreshStatus()
	assert.Equal(t, StatusPresent, a.Status)
}
