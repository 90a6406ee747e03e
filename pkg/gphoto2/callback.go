package gphoto2

// #include <gphoto2/gphoto2.h>
import "C"
import (
	"sync"
	"unsafe"
)

// libgphoto2 reports errors, status text, progress and cancellation through
// function pointers on the context. The C side only carries an opaque
// void* back to us, so each Context registers its callback set under a
// numeric handle and passes the handle across the boundary.

type handleID int

type callbacks struct {
	onError    func(msg string)
	onStatus   func(msg string)
	onProgress func(current, target float64)
	cancelled  func() bool

	target float64 // of the progress operation in flight
}

var (
	mu      sync.Mutex
	nextID  handleID
	handles = make(map[handleID]*callbacks)
)

func register(cb *callbacks) handleID {
	mu.Lock()
	defer mu.Unlock()

	nextID++
	for handles[nextID] != nil {
		nextID++
	}
	handles[nextID] = cb

	return nextID
}

func lookup(data unsafe.Pointer) (*callbacks, bool) {
	id := handleID(*(*C.int)(data))

	mu.Lock()
	defer mu.Unlock()

	cb, ok := handles[id]
	return cb, ok
}

func unregister(id handleID) {
	mu.Lock()
	defer mu.Unlock()

	delete(handles, id)
}

//export spiggotCtxError
func spiggotCtxError(_ *C.GPContext, text *C.char, data unsafe.Pointer) {
	if cb, ok := lookup(data); ok && cb.onError != nil {
		cb.onError(C.GoString(text))
	}
}

//export spiggotCtxStatus
func spiggotCtxStatus(_ *C.GPContext, text *C.char, data unsafe.Pointer) {
	if cb, ok := lookup(data); ok && cb.onStatus != nil {
		cb.onStatus(C.GoString(text))
	}
}

//export spiggotCtxCancel
func spiggotCtxCancel(_ *C.GPContext, data unsafe.Pointer) C.GPContextFeedback {
	if cb, ok := lookup(data); ok && cb.cancelled != nil && cb.cancelled() {
		return C.GP_CONTEXT_FEEDBACK_CANCEL
	}
	return C.GP_CONTEXT_FEEDBACK_OK
}

//export spiggotCtxProgressStart
func spiggotCtxProgressStart(_ *C.GPContext, target C.float, _ *C.char, data unsafe.Pointer) C.uint {
	if cb, ok := lookup(data); ok {
		cb.target = float64(target)
		if cb.onProgress != nil {
			cb.onProgress(0, cb.target)
		}
	}
	// We never run overlapping progress operations per context, so a
	// constant id is enough.
	return 1
}

//export spiggotCtxProgressUpdate
func spiggotCtxProgressUpdate(_ *C.GPContext, _ C.uint, current C.float, data unsafe.Pointer) {
	if cb, ok := lookup(data); ok && cb.onProgress != nil {
		cb.onProgress(float64(current), cb.target)
	}
}

//export spiggotCtxProgressStop
func spiggotCtxProgressStop(_ *C.GPContext, _ C.uint, data unsafe.Pointer) {
	if cb, ok := lookup(data); ok && cb.onProgress != nil {
		cb.onProgress(cb.target, cb.target)
	}
}
