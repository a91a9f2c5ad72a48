// Package draw contains the shape primitives used to paint text screens into
// images. Compositing itself is left to [image/draw].
package draw

import "image/draw"

// Image is the destination of every primitive in this package.
type Image = draw.Image
