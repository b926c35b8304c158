// Package config provides a method by which dependencies can be injected into
// dependency chains, via the use of SupplierFn functions. These functions
// return functions that can be used to chain the dependencies required to
// construct a transaction client into a single depinject.Config.
package config
