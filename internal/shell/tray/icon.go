// Copyright (c) 2025, Kamaran Layne <kamaran@layne.dev>
// See LICENSE for licensing information

package tray

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
)

const iconSize = 32

var (
	iconFill  = color.NRGBA{R: 0x24, G: 0x83, B: 0xc8, A: 0xff}
	iconDebug = color.NRGBA{R: 0xe0, G: 0x8a, B: 0x1e, A: 0xff}
)

// icon draws the tray icon: a filled disc, orange for debug builds. Windows
// wants ICO data, everything else PNG.
func icon(goos string, debug bool) ([]byte, error) {
	fill := iconFill
	if debug {
		fill = iconDebug
	}

	img := image.NewNRGBA(image.Rect(0, 0, iconSize, iconSize))
	const r = iconSize/2 - 1
	for y := 0; y < iconSize; y++ {
		for x := 0; x < iconSize; x++ {
			dx, dy := x-iconSize/2, y-iconSize/2
			if dx*dx+dy*dy <= r*r {
				img.SetNRGBA(x, y, fill)
			}
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	if goos == "windows" {
		return wrapICO(buf.Bytes(), iconSize), nil
	}
	return buf.Bytes(), nil
}

// wrapICO wraps a PNG image in a single-entry ICO container.
func wrapICO(pngData []byte, size int) []byte {
	const headerLen = 6 + 16

	var buf bytes.Buffer
	le := binary.LittleEndian
	_ = binary.Write(&buf, le, [3]uint16{0, 1, 1}) // reserved, type icon, count
	buf.WriteByte(byte(size))
	buf.WriteByte(byte(size))
	buf.WriteByte(0) // palette
	buf.WriteByte(0) // reserved
	_ = binary.Write(&buf, le, uint16(1))  // planes
	_ = binary.Write(&buf, le, uint16(32)) // bits per pixel
	_ = binary.Write(&buf, le, uint32(len(pngData)))
	_ = binary.Write(&buf, le, uint32(headerLen))
	buf.Write(pngData)
	return buf.Bytes()
}
