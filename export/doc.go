// Package export turns a finished selection into clipboard payloads.
//
// Selected spans arrive as [host.Range] values in stream order. The
// package assembles a plain-text payload with gap-aware joining (spans on
// the same visual row are separated by a space, row changes by a
// newline) and an HTML payload suitable for rich-text clipboards, with
// one paragraph element per visual row.
//
// Writing to the system clipboard is a separate step from payload
// assembly, so payload code stays testable on headless machines.
package export
