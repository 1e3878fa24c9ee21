// Package floatmgr implements the float manager: the layout subsystem that
// tracks floated boxes within a block formatting context and answers, for
// any block-axis band, the inline-axis region into which subsequent inline
// content may flow. It also implements shape-outside exclusion geometry
// (rounded rectangles, ellipses, polygons, and raster-image alpha shapes).
//
// The manager does not decide whether or where to float a box, does not
// perform reflow, and does not cache shape computations across queries —
// it answers pure geometric questions about the floats it has been told
// about. All coordinates are in the writing-mode-agnostic flow-logical
// frame defined by package layout.
package floatmgr
