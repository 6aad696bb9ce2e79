package camera

import (
	"math"
	"testing"
)

func TestNew(t *testing.T) {
	cam := New(DefaultMotion())

	if cam.Zoom != 1.0 {
		t.Errorf("expected zoom 1.0, got %f", cam.Zoom)
	}
	if cam.Rotation != 0 {
		t.Errorf("expected rotation 0, got %f", cam.Rotation)
	}
	if cam.ZoomSpeed != 0.001 {
		t.Errorf("expected zoom speed 0.001, got %f", cam.ZoomSpeed)
	}
}

func TestToPlaneCentered(t *testing.T) {
	v := NewView(1024, 800, 0.05, 1, 0)

	// Screen center maps to the plane origin
	rx, ry := v.ToPlane(512, 400)
	if rx != 0 || ry != 0 {
		t.Errorf("expected origin, got (%f, %f)", rx, ry)
	}

	rx, ry = v.ToPlane(0, 0)
	if math.Abs(rx+25.6) > 1e-9 || math.Abs(ry+20) > 1e-9 {
		t.Errorf("expected (-25.6, -20), got (%f, %f)", rx, ry)
	}
}

func TestToPlaneZoom(t *testing.T) {
	v1 := NewView(100, 100, 0.05, 1, 0)
	v2 := NewView(100, 100, 0.05, 2, 0)

	x1, y1 := v1.ToPlane(80, 30)
	x2, y2 := v2.ToPlane(80, 30)
	if math.Abs(x1-2*x2) > 1e-9 || math.Abs(y1-2*y2) > 1e-9 {
		t.Errorf("zoom 2 should halve plane offsets: (%f,%f) vs (%f,%f)", x1, y1, x2, y2)
	}
}

func TestToPlaneRotation(t *testing.T) {
	v := NewView(100, 100, 1, 1, float32(math.Pi/2))

	// A point to the right of center rotates a quarter turn onto +y
	rx, ry := v.ToPlane(60, 50)
	if math.Abs(rx) > 1e-6 || math.Abs(ry-10) > 1e-6 {
		t.Errorf("expected (0, 10), got (%f, %f)", rx, ry)
	}
}

func TestAnimateRotation(t *testing.T) {
	cam := New(DefaultMotion())
	cam.Animate(1.0)

	want := float32(0.01 * math.Sin(0.5))
	if math.Abs(float64(cam.Rotation-want)) > 1e-7 {
		t.Errorf("expected rotation %f, got %f", want, cam.Rotation)
	}
}

func TestZoomPingPong(t *testing.T) {
	m := DefaultMotion()
	m.ZoomFreq = 0 // cos(0) = 1, zoom moves linearly by ZoomSpeed
	m.ZoomSpeed = 0.3
	cam := New(m)

	s0 := cam.ZoomSpeed
	crossings := 0
	lastSign := float32(1)
	for i := 0; i < 200; i++ {
		before := cam.Zoom
		cam.Animate(0)
		out := cam.Zoom > m.MaxZoom || cam.Zoom < m.MinZoom
		if out {
			crossings++
			// After leaving the bounds the speed must point back inside
			if cam.Zoom > m.MaxZoom && cam.ZoomSpeed >= 0 {
				t.Fatalf("step %d: zoom %f above max but speed %f", i, cam.Zoom, cam.ZoomSpeed)
			}
			if cam.Zoom < m.MinZoom && cam.ZoomSpeed <= 0 {
				t.Fatalf("step %d: zoom %f below min but speed %f", i, cam.Zoom, cam.ZoomSpeed)
			}
		}
		sign := float32(1)
		if cam.ZoomSpeed < 0 {
			sign = -1
		}
		if sign != lastSign && !out {
			t.Fatalf("step %d: speed flipped without a boundary crossing (zoom %f -> %f)", i, before, cam.Zoom)
		}
		lastSign = sign
		if cam.ZoomSpeed != s0 && cam.ZoomSpeed != -s0 {
			t.Fatalf("zoom speed magnitude changed: %f", cam.ZoomSpeed)
		}
	}

	if crossings < 4 {
		t.Errorf("expected repeated boundary crossings, got %d", crossings)
	}
}

func TestZoomFirstCrossingNegatesSpeed(t *testing.T) {
	m := DefaultMotion()
	m.ZoomFreq = 0
	m.ZoomSpeed = 0.25
	cam := New(m)

	// 1.0 -> 1.25 -> 1.5 -> 1.75 -> 2.0 -> 2.25 (exceeds max)
	for i := 0; i < 5; i++ {
		cam.Animate(0)
	}
	if cam.Zoom <= m.MaxZoom {
		t.Fatalf("expected zoom above max after 5 steps, got %f", cam.Zoom)
	}
	if cam.ZoomSpeed != -0.25 {
		t.Errorf("expected speed -0.25 after crossing, got %f", cam.ZoomSpeed)
	}
}

func TestReset(t *testing.T) {
	cam := New(DefaultMotion())
	for i := 0; i < 100; i++ {
		cam.Animate(float64(i) * 0.016)
	}
	cam.ZoomSpeed = -cam.ZoomSpeed
	cam.Reset()

	if cam.Zoom != 1 || cam.Rotation != 0 || cam.ZoomSpeed != 0.001 {
		t.Errorf("reset did not restore defaults: %+v", cam)
	}
}
