package probe

import "testing"

func TestMessageText(t *testing.T) {
	msg := &Message{
		Role: RoleAssistant,
		Parts: []Part{
			TextPart{Text: "Hello"},
			DataPart{Bytes: []byte{0x1}, MIMEType: MIMEImagePNG},
			TextPart{Text: ", world"},
		},
	}
	if got := msg.Text(); got != "Hello, world" {
		t.Errorf("expected %q, got %q", "Hello, world", got)
	}
	var empty *Message
	if got := empty.Text(); got != "" {
		t.Errorf("expected empty text from nil message, got %q", got)
	}
	if got := UserMessage("hi"); got.Role != RoleUser || got.Text() != "hi" {
		t.Errorf("unexpected user message %+v", got)
	}
	if got := SystemMessage("be brief"); got.Role != RoleSystem || got.Text() != "be brief" {
		t.Errorf("unexpected system message %+v", got)
	}
}

func TestMIMEType(t *testing.T) {
	tests := []struct {
		mime      MIMEType
		kind      string
		format    string
		extension string
	}{
		{MIMEImagePNG, "image", "png", "png"},
		{MIMEImageJPEG, "image", "jpeg", "jpg"},
		{MIMEAudioMP3, "audio", "mpeg", "mp3"},
		{"video/mpeg", "video", "mpeg", "mpeg"},
		{MIMEText, "text", "plain", "txt"},
		{"text/plain; charset=utf-8", "text", "plain", "txt"},
		{"image/svg+xml", "image", "svg+xml", "svg"},
		{"application/octet-stream", "file", "octet-stream", "bin"},
		{"garbage", "file", "octet-stream", "bin"},
	}
	for _, tt := range tests {
		if got := tt.mime.Type(); got != tt.kind {
			t.Errorf("%s: expected type %s, got %s", tt.mime, tt.kind, got)
		}
		if got := tt.mime.Format(); got != tt.format {
			t.Errorf("%s: expected format %s, got %s", tt.mime, tt.format, got)
		}
		if got := tt.mime.Extension(); got != tt.extension {
			t.Errorf("%s: expected extension %s, got %s", tt.mime, tt.extension, got)
		}
	}
}
