package mime

import (
	"path/filepath"
	"strings"
)

// Extension maps lower-cased file extensions (with the leading dot) onto their MIMEs.
var Extension = map[string]MIME{
	".html":  HTML,
	".htm":   HTML,
	".txt":   Plain,
	".css":   CSS,
	".js":    JavaScript,
	".json":  JSON,
	".jsonl": JSONLines,
	".xml":   XML,
	".pdf":   PDF,
	".jpg":   JPEG,
	".jpeg":  JPEG,
	".png":   PNG,
	".gif":   GIF,
	".ico":   ICO,
	".bmp":   BMP,
	".tiff":  TIFF,
	".svg":   SVG,
	".webp":  WEBP,
	".mp3":   MP3,
	".wav":   WAV,
	".ogg":   OGG,
	".mp4":   MP4,
	".avi":   AVI,
	".mov":   MOV,
	".wmv":   WMV,
	".zip":   ZIP,
	".tar":   TAR,
	".gz":    GZIP,
	".7z":    SevenZip,
	".csv":   CSV,
	".ppt":   PPT,
	".pptx":  PPTX,
	".doc":   DOC,
	".docx":  DOCX,
	".xls":   XLS,
	".xlsx":  XLSX,
	".bin":   OctetStream,
	".exe":   OctetStream,
}

// ByPath guesses the MIME by the file extension. The extension is matched
// case-insensitively. Unknown extensions result in OctetStream.
func ByPath(path string) MIME {
	mime, found := Extension[strings.ToLower(filepath.Ext(path))]
	if !found {
		return OctetStream
	}

	return mime
}
