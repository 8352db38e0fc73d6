// Package winapi holds the small helpers shared by the native Windows
// bindings: HRESULT handling, error wrapping and UTF-16 buffers. It is empty
// on other platforms.
package winapi
