// Package mockclient holds mock implementations of the pkg/client interfaces,
// generated by mockgen from the go:generate directives in
// pkg/client/interface.go. Regenerate with `go generate ./pkg/client/...`
// after changing an interface.
package mockclient
