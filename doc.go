// Package castly converts scalar values between seven semantic kinds
// (integer, float, complex, boolean, string, datetime, duration), rejecting
// conversions that would silently lose information. Narrowing passes a
// rounding/tolerance/force policy, free text is inferred through a fixed
// literal cascade, and every entry point is memoized process-wide.
package castly
