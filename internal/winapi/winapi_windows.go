//go:build windows
// +build windows

package winapi

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/genricoloni/gpuprobe/internal/domain"
	"golang.org/x/sys/windows"
)

// HResult is a COM result code
type HResult uint32

const (
	SOK           HResult = 0
	ENoInterface  HResult = 0x80004002
	EAccessDenied HResult = 0x80070005

	DXGIErrorNotFound    HResult = 0x887A0002
	DXGIErrorUnsupported HResult = 0x887A0004
)

// Failed reports whether the severity bit is set
func (hr HResult) Failed() bool {
	return int32(hr) < 0
}

// HResultError is a failed COM call
type HResultError struct {
	Op   string
	Code HResult
}

func (e *HResultError) Error() string {
	return fmt.Sprintf("%s failed: 0x%08X: %s", e.Op, uint32(e.Code),
		strings.TrimSpace(windows.Errno(e.Code).Error()))
}

// Is maps well-known codes onto domain sentinels
func (e *HResultError) Is(target error) bool {
	switch target {
	case domain.ErrUnsupported:
		return e.Code == ENoInterface || e.Code == DXGIErrorUnsupported
	case domain.ErrNotFound:
		return e.Code == DXGIErrorNotFound
	case domain.ErrAccessDenied:
		return e.Code == EAccessDenied
	}
	return false
}

// CheckHResult returns nil on success and an *HResultError otherwise
func CheckHResult(op string, r uintptr) error {
	hr := HResult(r)
	if hr.Failed() {
		return &HResultError{Op: op, Code: hr}
	}
	return nil
}

// Win32Error wraps the last error of a failed Win32 call with the operation
// name. A zero errno still produces an error.
func Win32Error(op string, err error) error {
	var errno windows.Errno
	if errors.As(err, &errno) {
		if errno == 0 {
			return fmt.Errorf("%s failed", op)
		}
		if errno == windows.ERROR_ACCESS_DENIED {
			return fmt.Errorf("%s failed: %w: %w", op, domain.ErrAccessDenied, err)
		}
		if errno == windows.ERROR_INSUFFICIENT_BUFFER {
			return fmt.Errorf("%s failed: %w: %w", op, domain.ErrInsufficientBuffer, err)
		}
	}
	if err == nil {
		return fmt.Errorf("%s failed", op)
	}
	return fmt.Errorf("%s failed: %w", op, err)
}

// Win32Status converts a Win32 status code returned by value (LONG/DWORD)
func Win32Status(op string, r uintptr) error {
	if r == 0 {
		return nil
	}
	return Win32Error(op, windows.Errno(r))
}

// UTF16ToStringRaw decodes the whole buffer, keeping any NUL padding
func UTF16ToStringRaw(buf []uint16) string {
	return string(utf16.Decode(buf))
}
