package mime

type MIME = string

const (
	OctetStream MIME = "application/octet-stream"
	Plain       MIME = "text/plain"
	HTML        MIME = "text/html"
	CSS         MIME = "text/css"
	CSV         MIME = "text/csv"
	JavaScript  MIME = "application/javascript"
	JSON        MIME = "application/json"
	JSONLines   MIME = "application/jsonlines"
	XML         MIME = "application/xml"
	PDF         MIME = "application/pdf"
	ZIP         MIME = "application/zip"
	GZIP        MIME = "application/gzip"
	TAR         MIME = "application/x-tar"
	SevenZip    MIME = "application/x-7z-compressed"
	JPEG        MIME = "image/jpeg"
	PNG         MIME = "image/png"
	GIF         MIME = "image/gif"
	ICO         MIME = "image/x-icon"
	BMP         MIME = "image/bmp"
	TIFF        MIME = "image/tiff"
	SVG         MIME = "image/svg+xml"
	WEBP        MIME = "image/webp"
	MP3         MIME = "audio/mpeg"
	WAV         MIME = "audio/wav"
	OGG         MIME = "audio/ogg"
	MP4         MIME = "video/mp4"
	AVI         MIME = "video/x-msvideo"
	MOV         MIME = "video/quicktime"
	WMV         MIME = "video/x-ms-wmv"
	DOC         MIME = "application/msword"
	DOCX        MIME = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	XLS         MIME = "application/vnd.ms-excel"
	XLSX        MIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	PPT         MIME = "application/vnd.ms-powerpoint"
	PPTX        MIME = "application/vnd.openxmlformats-officedocument.presentationml.presentation"
)

// WithCharset appends the charset parameter to the MIME.
func WithCharset(mime MIME, charset string) string {
	return mime + "; charset=" + charset
}
