// Package descriptor turns a list of page modules into the build descriptor
// consumed by an external bundler.
//
// A Builder expands module names into named entry points (with the shared
// common chunk injected first) and one page descriptor per module. Assemble
// extends that into the complete descriptor: loader rules, plugins, output
// and development server settings.
//
// Everything in this package is pure. Nothing reads the filesystem and every
// returned value is freshly allocated, so a descriptor can be handed to the
// bundler without further copying.
package descriptor
