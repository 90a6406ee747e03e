package gphoto2

// #include <stdlib.h>
// #include <gphoto2/gphoto2.h>
//
// extern void spiggotCtxError(GPContext *ctx, char *text, void *data);
// extern void spiggotCtxStatus(GPContext *ctx, char *text, void *data);
// extern GPContextFeedback spiggotCtxCancel(GPContext *ctx, void *data);
// extern unsigned int spiggotCtxProgressStart(GPContext *ctx, float target, char *text, void *data);
// extern void spiggotCtxProgressUpdate(GPContext *ctx, unsigned int id, float current, void *data);
// extern void spiggotCtxProgressStop(GPContext *ctx, unsigned int id, void *data);
//
// static void spiggot_ctx_hook(GPContext *ctx, void *data) {
//	gp_context_set_error_func(ctx, (GPContextErrorFunc)spiggotCtxError, data);
//	gp_context_set_status_func(ctx, (GPContextStatusFunc)spiggotCtxStatus, data);
//	gp_context_set_cancel_func(ctx, (GPContextCancelFunc)spiggotCtxCancel, data);
//	gp_context_set_progress_funcs(ctx,
//		(GPContextProgressStartFunc)spiggotCtxProgressStart,
//		(GPContextProgressUpdateFunc)spiggotCtxProgressUpdate,
//		(GPContextProgressStopFunc)spiggotCtxProgressStop,
//		data);
// }
import "C"
import (
	"context"
	"unsafe"
)

// Context is an operation context for libgphoto2 calls. The library reports
// errors, status text and transfer progress through it, and polls it for
// cancellation during long operations.
//
// A Context may be shared by multiple cameras, but calls through a single
// Context must not overlap.
type Context struct {
	ptr *C.GPContext
	cb  *callbacks
	id  handleID
	cid *C.int // C-owned copy of id, handed to the library as user data
}

// NewContext creates a context with no callbacks attached.
func NewContext() *Context {
	c := &Context{
		ptr: C.gp_context_new(),
		cb:  &callbacks{},
	}
	c.id = register(c.cb)
	c.cid = (*C.int)(C.malloc(C.size_t(unsafe.Sizeof(C.int(0)))))
	*c.cid = C.int(c.id)
	C.spiggot_ctx_hook(c.ptr, unsafe.Pointer(c.cid))
	return c
}

// OnError installs fn to receive the library's error messages.
func (c *Context) OnError(fn func(msg string)) {
	c.cb.onError = fn
}

// OnStatus installs fn to receive the library's status messages.
func (c *Context) OnStatus(fn func(msg string)) {
	c.cb.onStatus = fn
}

// OnProgress installs fn to receive transfer progress. target is the total
// reported by the library; its unit depends on the operation.
func (c *Context) OnProgress(fn func(current, target float64)) {
	c.cb.onProgress = fn
}

// Bind ties cancellation to ctx: once ctx is done, in-flight library
// operations fail with ErrCancel at their next cancellation poll.
func (c *Context) Bind(ctx context.Context) {
	c.cb.cancelled = func() bool { return ctx.Err() != nil }
}

// Close releases the context. It must not be used afterwards; cameras
// opened against it must be closed first.
func (c *Context) Close() {
	if c.ptr == nil {
		return
	}
	unregister(c.id)
	C.gp_context_unref(c.ptr)
	C.free(unsafe.Pointer(c.cid))
	c.ptr = nil
}
