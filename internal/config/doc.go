// Package config defines the format-agnostic configuration model for a
// multi-page build, along with the Loader interface implemented by concrete
// configuration formats.
//
// The `config.Model` is the single input of the `descriptor` package.
// Concrete implementations of the Loader interface, such as the HCL one, are
// provided in separate packages.
package config
