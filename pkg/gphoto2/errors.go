package gphoto2

// #include <gphoto2/gphoto2.h>
import "C"

// Error is a raw libgphoto2 result code. Codes pass through unchanged so
// callers see exactly what the library reported; the message text comes
// from gp_result_as_string.
type Error int

func (e Error) Error() string {
	return C.GoString(C.gp_result_as_string(C.int(e)))
}

// Code returns the numeric libgphoto2 result code.
func (e Error) Code() int { return int(e) }

// Sentinel values for the result codes callers commonly branch on. Compare
// with errors.Is.
var (
	ErrBadParameters     error = Error(C.GP_ERROR_BAD_PARAMETERS)
	ErrNotSupported      error = Error(C.GP_ERROR_NOT_SUPPORTED)
	ErrIO                error = Error(C.GP_ERROR_IO)
	ErrTimeout           error = Error(C.GP_ERROR_TIMEOUT)
	ErrCorruptedData     error = Error(C.GP_ERROR_CORRUPTED_DATA)
	ErrFileExists        error = Error(C.GP_ERROR_FILE_EXISTS)
	ErrModelNotFound     error = Error(C.GP_ERROR_MODEL_NOT_FOUND)
	ErrDirectoryNotFound error = Error(C.GP_ERROR_DIRECTORY_NOT_FOUND)
	ErrFileNotFound      error = Error(C.GP_ERROR_FILE_NOT_FOUND)
	ErrDirectoryExists   error = Error(C.GP_ERROR_DIRECTORY_EXISTS)
	ErrCameraBusy        error = Error(C.GP_ERROR_CAMERA_BUSY)
	ErrCancel            error = Error(C.GP_ERROR_CANCEL)
	ErrCameraError       error = Error(C.GP_ERROR_CAMERA_ERROR)
	ErrOSFailure         error = Error(C.GP_ERROR_OS_FAILURE)
	ErrNoSpace           error = Error(C.GP_ERROR_NO_SPACE)
)

// check maps a libgphoto2 return value to a Go error. Non-negative values
// are successes (some calls overload them as counts or indices).
func check(rc C.int) error {
	if rc >= C.GP_OK {
		return nil
	}
	return Error(rc)
}
