// Package tx assembles Cosmos SDK transactions and produces their
// SIGN_MODE_DIRECT sign bytes. The body and auth info encodings signed over
// are the same byte slices embedded in the broadcast encoding, so the bytes a
// node reconstructs for signature verification always match the bytes that
// were signed.
package tx
