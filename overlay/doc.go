// Package overlay paints selection highlights over rasterized page
// images.
//
// The document view shows a bitmap of the page with an invisible text
// layer on top; the visible counterpart of that trick is compositing
// translucent highlight rectangles onto the raster wherever the selection
// engine reports selected boxes. [Painter.Paint] does exactly that, and
// [Painter.ScalePage] rescales a page raster to the current viewport zoom
// so highlight geometry and bitmap stay in the same coordinate space.
package overlay
