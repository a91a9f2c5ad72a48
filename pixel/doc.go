// Package pixel implements the text-mode hardware palette as Go colors and a
// compact palette-indexed image to render screens into.
//
// This package provides color models compatible with Go's native [color.Color]
// and [image.Image] / [draw.Image] interfaces.
package pixel
