// Package qrpayload builds the scannable record embedded in a sheet's header
// QR code.
//
// The payload is serialized as compact JSON with a fixed key order, so the
// same configuration always produces byte-identical payload text and
// therefore an identical barcode.
package qrpayload

import (
	"encoding/json"
	"fmt"
	"image"
	"time"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
)

// App identifies this application inside scanned payloads.
const App = "bridge-attendance"

// Payload is the record encoded into the QR raster. Field order is the wire
// key order; do not reorder.
type Payload struct {
	App     string `json:"app"`
	EventID string `json:"event_id"`
	Name    string `json:"name"`
	Date    string `json:"date"` // ISO-8601 calendar date
	Teacher string `json:"teacher"`
}

// New builds the payload for one sheet.
func New(eventID, className string, date time.Time, teacher string) Payload {
	return Payload{
		App:     App,
		EventID: eventID,
		Name:    className,
		Date:    date.Format("2006-01-02"),
		Teacher: teacher,
	}
}

// Marshal serializes the payload to its stable wire form.
func (p Payload) Marshal() ([]byte, error) {
	return json.Marshal(p)
}

// Encode renders the payload as a sizePx-square binary raster. It fails only
// when the serialized payload exceeds the barcode's capacity.
func Encode(p Payload, sizePx int) (image.Image, error) {
	data, err := p.Marshal()
	if err != nil {
		return nil, fmt.Errorf("qrpayload: serializing: %w", err)
	}
	code, err := qr.Encode(string(data), qr.M, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("qrpayload: encoding: %w", err)
	}
	scaled, err := barcode.Scale(code, sizePx, sizePx)
	if err != nil {
		return nil, fmt.Errorf("qrpayload: scaling to %dpx: %w", sizePx, err)
	}
	return scaled, nil
}
