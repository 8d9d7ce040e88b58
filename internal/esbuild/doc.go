// Package esbuild hands a build descriptor to the esbuild engine.
//
// NewPlan translates what esbuild can express (named entry points, output
// naming, loaders, source maps, minification) and lists the rest as skipped.
// HTML page generation and directory copying stay with whatever consumes the
// descriptor.
package esbuild
