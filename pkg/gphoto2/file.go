package gphoto2

// #include <stdlib.h>
// #include <gphoto2/gphoto2.h>
import "C"
import (
	"io"
	"time"
	"unsafe"
)

// FilePath locates a file on the camera's own storage. Folder is always
// absolute ("/store_00010001/DCIM/100CANON").
type FilePath struct {
	Folder string
	Name   string
}

func (p FilePath) String() string {
	if p.Folder == "" || p.Folder == "/" {
		return "/" + p.Name
	}
	return p.Folder + "/" + p.Name
}

// FileType selects which rendition of a camera file to transfer.
type FileType int

const (
	// FileTypeNormal is the file as stored on the camera.
	FileTypeNormal FileType = C.GP_FILE_TYPE_NORMAL
	// FileTypePreview is a scaled-down rendition, if the driver has one.
	FileTypePreview FileType = C.GP_FILE_TYPE_PREVIEW
	// FileTypeRaw is the unprocessed data behind a processed file.
	FileTypeRaw FileType = C.GP_FILE_TYPE_RAW
	// FileTypeExif is the EXIF block alone.
	FileTypeExif FileType = C.GP_FILE_TYPE_EXIF
	// FileTypeMetadata is driver-level metadata about the file.
	FileTypeMetadata FileType = C.GP_FILE_TYPE_METADATA
)

// File is a camera file transferred into process memory.
type File struct {
	Data    []byte
	MIME    string
	ModTime time.Time
}

// FileInfo is what the camera reports about a file without transferring it.
// Zero fields mean the driver did not report that attribute.
type FileInfo struct {
	Size    int64
	MIME    string
	ModTime time.Time
	Width   int
	Height  int
}

// ListFolders returns the names of the subfolders directly inside folder.
func (c *Camera) ListFolders(folder string) ([]string, error) {
	l, err := newCameraList()
	if err != nil {
		return nil, err
	}
	defer l.free()

	cFolder := C.CString(folder)
	defer C.free(unsafe.Pointer(cFolder))

	if err := check(C.gp_camera_folder_list_folders(c.ptr, cFolder, l.ptr, c.ctx.ptr)); err != nil {
		return nil, err
	}
	return l.names()
}

// ListFiles returns the names of the files directly inside folder.
func (c *Camera) ListFiles(folder string) ([]string, error) {
	l, err := newCameraList()
	if err != nil {
		return nil, err
	}
	defer l.free()

	cFolder := C.CString(folder)
	defer C.free(unsafe.Pointer(cFolder))

	if err := check(C.gp_camera_folder_list_files(c.ptr, cFolder, l.ptr, c.ctx.ptr)); err != nil {
		return nil, err
	}
	return l.names()
}

// ReadFile transfers one rendition of a file from the camera into memory.
func (c *Camera) ReadFile(folder, name string, t FileType) (*File, error) {
	cf, err := c.getFile(folder, name, t)
	if err != nil {
		return nil, err
	}
	defer C.gp_file_unref(cf)

	data, mime, err := fileContents(cf)
	if err != nil {
		return nil, err
	}

	var mtime C.time_t
	f := &File{Data: data, MIME: mime}
	if check(C.gp_file_get_mtime(cf, &mtime)) == nil && mtime != 0 {
		f.ModTime = time.Unix(int64(mtime), 0)
	}
	return f, nil
}

// DownloadFile transfers the normal rendition of a file and writes it to w,
// returning the number of bytes written.
func (c *Camera) DownloadFile(folder, name string, w io.Writer) (int64, error) {
	f, err := c.ReadFile(folder, name, FileTypeNormal)
	if err != nil {
		return 0, err
	}
	n, err := w.Write(f.Data)
	return int64(n), err
}

// DeleteFile removes a file from the camera's storage.
func (c *Camera) DeleteFile(folder, name string) error {
	cFolder := C.CString(folder)
	defer C.free(unsafe.Pointer(cFolder))
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	return check(C.gp_camera_file_delete(c.ptr, cFolder, cName, c.ctx.ptr))
}

// FileInfo asks the camera about a file without transferring its contents.
func (c *Camera) FileInfo(folder, name string) (FileInfo, error) {
	cFolder := C.CString(folder)
	defer C.free(unsafe.Pointer(cFolder))
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	var info C.CameraFileInfo
	if err := check(C.gp_camera_file_get_info(c.ptr, cFolder, cName, &info, c.ctx.ptr)); err != nil {
		return FileInfo{}, err
	}

	out := FileInfo{}
	fields := info.file.fields
	if fields&C.GP_FILE_INFO_SIZE != 0 {
		out.Size = int64(info.file.size)
	}
	if fields&C.GP_FILE_INFO_TYPE != 0 {
		out.MIME = C.GoString(&info.file._type[0])
	}
	if fields&C.GP_FILE_INFO_MTIME != 0 {
		out.ModTime = time.Unix(int64(info.file.mtime), 0)
	}
	if fields&C.GP_FILE_INFO_WIDTH != 0 {
		out.Width = int(info.file.width)
	}
	if fields&C.GP_FILE_INFO_HEIGHT != 0 {
		out.Height = int(info.file.height)
	}
	return out, nil
}

func (c *Camera) getFile(folder, name string, t FileType) (*C.CameraFile, error) {
	cFolder := C.CString(folder)
	defer C.free(unsafe.Pointer(cFolder))
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	var cf *C.CameraFile
	if err := check(C.gp_file_new(&cf)); err != nil {
		return nil, err
	}
	if err := check(C.gp_camera_file_get(c.ptr, cFolder, cName, C.CameraFileType(t), cf, c.ctx.ptr)); err != nil {
		C.gp_file_unref(cf)
		return nil, err
	}
	return cf, nil
}

// fileContents copies a CameraFile's data into Go-owned memory. The copy is
// deliberate: the C buffer dies with the CameraFile.
func fileContents(cf *C.CameraFile) ([]byte, string, error) {
	var data *C.char
	var size C.ulong
	if err := check(C.gp_file_get_data_and_size(cf, &data, &size)); err != nil {
		return nil, "", err
	}

	var mime *C.char
	if err := check(C.gp_file_get_mime_type(cf, &mime)); err != nil {
		return nil, "", err
	}

	return C.GoBytes(unsafe.Pointer(data), C.int(size)), C.GoString(mime), nil
}
