// Package imaging provides the image-facing collaborators of the component
// labeler: loading, binarization, and saving.
//
// The core labeling engine never touches an image file or a color model; it
// operates on the Bitmap type defined here, a plain foreground/background
// pixel grid. This package owns the boundary on both sides: decoding an
// input file into a Bitmap and encoding the colored result back to disk.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with the origin at the top-left corner:
// X increases rightward, Y increases downward. Bitmap coordinates always
// start at (0, 0) regardless of the source image's bounds.
//
// # Supported Formats
//
// Input: PNG, JPEG, GIF (standard library), BMP, TIFF, WebP
// (golang.org/x/image), and TGA (github.com/ftrvxmtrx/tga). Decoders are
// registered by blank imports in loader.go; the format is detected from the
// file contents, not the extension.
//
// Output: PNG, JPEG, GIF, TIFF, and BMP via github.com/disintegration/imaging
// (format chosen by extension), plus WebP via github.com/HugoSmits86/nativewebp.
//
// # Binarization
//
// Binarize applies a fixed grayscale threshold. Adaptive policies (Otsu,
// dithering) are deliberately out of scope; callers needing one should
// binarize upstream and feed the result through Load with a high-contrast
// format.
package imaging
