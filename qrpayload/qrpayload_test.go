package qrpayload_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/lvillar/attendance/qrpayload"
)

func testPayload() qrpayload.Payload {
	date := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	return qrpayload.New("A1B2C3D4", "Beginning Bridge", date, "Rick")
}

func TestPayloadWireFormat(t *testing.T) {
	data, err := testPayload().Marshal()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `{"app":"bridge-attendance","event_id":"A1B2C3D4",` +
		`"name":"Beginning Bridge","date":"2025-03-01","teacher":"Rick"}`
	if string(data) != want {
		t.Errorf("payload = %s, want %s", data, want)
	}
}

func TestPayloadStableSerialization(t *testing.T) {
	p := testPayload()

	first, err := p.Marshal()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	second, err := p.Marshal()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("re-encoding the same payload produced different bytes")
	}
}

func TestEncodeRaster(t *testing.T) {
	img, err := qrpayload.Encode(testPayload(), 256)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	b := img.Bounds()
	if b.Dx() != 256 || b.Dy() != 256 {
		t.Errorf("raster is %dx%d, want 256x256", b.Dx(), b.Dy())
	}
}

func TestEncodeOverCapacity(t *testing.T) {
	p := testPayload()
	p.Name = string(bytes.Repeat([]byte("x"), 8000))

	if _, err := qrpayload.Encode(p, 256); err == nil {
		t.Error("expected an encoding error for an oversized payload")
	}
}
