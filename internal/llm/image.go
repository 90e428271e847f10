package llm

import (
	"encoding/base64"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/joseph-ayodele/utility-bills/constants"
)

// ImageDataURL reads an image into a data URL for a vision request. Files
// larger than maxMB are refused; maxMB <= 0 uses the default limit.
func ImageDataURL(path string, maxMB int) (string, error) {
	if maxMB <= 0 {
		maxMB = constants.MaxVisionMBDefault
	}
	st, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if st.Size() > int64(maxMB)*1024*1024 {
		return "", fmt.Errorf("image %s is %d bytes, over the %d MB vision limit", filepath.Base(path), st.Size(), maxMB)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	ext := constants.NormalizeExt(filepath.Ext(path))
	mt := mime.TypeByExtension("." + ext)
	if mt == "" {
		switch ext {
		case "jpg", "jpeg":
			mt = "image/jpeg"
		case "png":
			mt = "image/png"
		default:
			mt = "application/octet-stream"
		}
	}
	return "data:" + mt + ";base64," + base64.StdEncoding.EncodeToString(b), nil
}
