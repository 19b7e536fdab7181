// Package plot is the drawing surface streams write into.
//
// [Axes] and [Line] are the only contract the stream engine relies on: a
// queryable horizontal range and a primitive that draws a y-series and hands
// back a replaceable line handle. [Figure], [Axes2D] and [Line2D] are the
// in-memory implementation shared by the terminal dashboard and the image
// exporters; neither of them draws pixels on their own.
package plot
