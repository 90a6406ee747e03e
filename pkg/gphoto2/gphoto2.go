// Package gphoto2 provides Go bindings for libgphoto2, the camera control
// library behind gPhoto. It covers the library's four public header groups:
// camera control, context management, file transfer and the configuration
// widget tree.
//
// This package requires libgphoto2 headers and libraries to be built.
// Reference: http://www.gphoto.org/doc/api/
//
// The library's own protocol stacks (PTP over USB, serial, IP) are used
// as-is; nothing here talks to the hardware directly.
package gphoto2

// #cgo pkg-config: libgphoto2
// #include <gphoto2/gphoto2.h>
import "C"

// LibraryVersion reports the libgphoto2 version this binary is linked
// against.
func LibraryVersion() string {
	v := C.gp_library_version(C.GP_VERSION_SHORT)
	return C.GoString(*v)
}
