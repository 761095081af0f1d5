package testsupport

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/golang/geo/r3"

	"handsfree/internal/config"
)

// BaseWithDevices renders a base source with camera1 at the origin, the given
// devices, and no optional fields.
func BaseWithDevices(t testing.TB, devices ...config.Device) string {
	t.Helper()
	entries := make([]config.DeviceDocument, 0, len(devices))
	for _, d := range devices {
		entries = append(entries, config.DeviceDocument{
			Name: d.Name,
			MinX: d.Min.X, MinY: d.Min.Y, MinZ: d.Min.Z,
			MaxX: d.Max.X, MaxY: d.Max.Y, MaxZ: d.Max.Z,
		})
	}
	data, err := json.Marshal(map[string]any{
		"camera1_pos": []float64{0, 0, 0},
		"devices":     entries,
	})
	if err != nil {
		t.Fatalf("marshal base: %v", err)
	}
	return string(data)
}

// Grid returns n unit cubes named dev-0..dev-(n-1) spaced two units apart
// along x.
func Grid(n int) []config.Device {
	devices := make([]config.Device, 0, n)
	for i := 0; i < n; i++ {
		x := float64(i) * 2
		devices = append(devices, config.Device{
			Name: fmt.Sprintf("dev-%d", i),
			Min:  r3.Vector{X: x},
			Max:  r3.Vector{X: x + 1, Y: 1, Z: 1},
		})
	}
	return devices
}
