package frame

type Format string

const (
	// FormatJPEG is what virtually every liveview-capable driver emits.
	FormatJPEG Format = "JPEG"
	// FormatPNG shows up from a few drivers' thumbnail renditions.
	FormatPNG Format = "PNG"
)

// FromMIME maps the MIME type reported by the camera library to a Format.
func FromMIME(mime string) (Format, bool) {
	switch mime {
	case "image/jpeg", "image/jpg":
		return FormatJPEG, true
	case "image/png":
		return FormatPNG, true
	default:
		return "", false
	}
}
