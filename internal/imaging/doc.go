// Package imaging implements the image inventory and transform pipeline
// behind the imagedock server.
//
// The pipeline has three stages. A fractional crop request is first
// resolved into an exact pixel rectangle by the geometry normalizer
// (FractionalRect.Normalize), which guarantees the resulting rect fits
// inside the source image. The transform executor (Resize, Crop) then
// produces a new image from the decoded source; transforms never mutate
// their input. Finally, on the save-as path, the format constraint
// enforcer (Constrain) rescales the result when the destination format
// caps its dimensions, such as ICO's 256-pixel limit per side.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with (0,0) at the top-left corner.
// Fractional coordinates are proportions of the source dimensions in
// [0.0, 1.0], so a fractional rect is resolution-independent.
//
// # Resampling
//
// All scaling uses a triangle (bilinear) kernel. The kernel choice is
// part of the pipeline's contract because it determines output bytes,
// not just visual quality.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. The transform functions are
// stateless and may run concurrently on different images. The file
// operations in this package do not serialize writers to a single
// path; concurrent in-place transforms of one file race at the
// filesystem level and the last writer wins.
package imaging
