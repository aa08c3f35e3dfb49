// Package iconcodec renders application icons into the platform icon
// container formats.
//
// The format packages ico and icns implement the containers themselves;
// this package layers the pipeline on top: scaling a source image down the
// standard size ladders, encoding the results, and packing the encoded
// containers for distribution.
package iconcodec
