// Package render turns a completed labeling result into a color image.
//
// Each connected component is painted in a distinct color drawn from a
// deterministic sequence; background pixels are fixed to black. Colors are
// assigned in first-appearance order during a second raster pass, so the
// same input labeled the same way always produces a byte-identical image.
//
// The palette walks the HSV hue circle in golden-ratio-conjugate steps at
// fixed saturation and value, which keeps consecutive colors visually far
// apart without ever repeating.
package render
