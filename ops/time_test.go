package ops

import (
	"testing"
	"time"
)

func TestGPSTimeToUTC(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		gpsSeconds float64
		want       string
	}{
		{
			name:       "gps epoch itself",
			gpsSeconds: 0,
			want:       "1980-01-06 00:00:00.000000",
		},
		{
			name:       "whole seconds",
			gpsSeconds: 1271398985,
			want:       "2020-04-20 06:23:05.000000",
		},
		{
			name:       "fractional seconds keep microsecond precision",
			gpsSeconds: 1271398985.7822514,
			want:       "2020-04-20 06:23:05.782251",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := GPSTimeToUTC(tt.gpsSeconds)
			if got.Location() != time.UTC {
				t.Errorf("GPSTimeToUTC() location = %v, want UTC", got.Location())
			}
			if formatted := got.Format("2006-01-02 15:04:05.000000"); formatted != tt.want {
				t.Errorf("GPSTimeToUTC(%v) = %s, want %s", tt.gpsSeconds, formatted, tt.want)
			}
		})
	}
}
