package probe

import "strings"

// MIMEType represents the media type of content.
type MIMEType string

const (
	MIMEText     MIMEType = "text/plain"
	MIMEMarkdown MIMEType = "text/markdown"
	MIMEJSON     MIMEType = "application/json"

	MIMEImagePNG  MIMEType = "image/png"
	MIMEImageJPEG MIMEType = "image/jpeg"
	MIMEImageWEBP MIMEType = "image/webp"

	MIMEAudioWAV MIMEType = "audio/wav"
	MIMEAudioMP3 MIMEType = "audio/mpeg"
)

// Type returns the general type of the MIMEType: image, audio, video, text or file.
func (m MIMEType) Type() string {
	v := string(m)
	switch {
	case strings.HasPrefix(v, "image/"):
		return "image"
	case strings.HasPrefix(v, "audio/"):
		return "audio"
	case strings.HasPrefix(v, "video/"):
		return "video"
	case strings.HasPrefix(v, "text/"):
		return "text"
	default:
		return "file"
	}
}

// Format returns the subtype of the MIMEType without parameters.
func (m MIMEType) Format() string {
	v, _, _ := strings.Cut(string(m), ";")
	_, format, ok := strings.Cut(strings.TrimSpace(v), "/")
	if !ok || format == "" {
		return "octet-stream"
	}
	return format
}

// Extension returns the file extension, without the dot, used when
// inline data of this type is written to disk.
func (m MIMEType) Extension() string {
	switch format := m.Format(); format {
	case "plain":
		return "txt"
	case "jpeg":
		return "jpg"
	case "mpeg":
		if m.Type() == "audio" {
			return "mp3"
		}
		return "mpeg"
	case "markdown":
		return "md"
	case "svg+xml":
		return "svg"
	case "octet-stream":
		return "bin"
	default:
		return format
	}
}
