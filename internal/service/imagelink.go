// File: internal/service/imagelink.go
package service

import (
	"fmt"
	"regexp"
	"strings"
)

// driveIDPattern 從各種 Google Drive 分享連結格式擷取 File ID
var driveIDPattern = regexp.MustCompile(`(?:id=|/d/|/file/d/)([a-zA-Z0-9_-]{25,})`)

// NormalizeDriveLink 將 Google Drive 分享連結轉為可直接嵌入 <img> 的連結
// 非 Drive 連結（含空字串）原樣回傳
func NormalizeDriveLink(url string) string {
	if url == "" || !strings.Contains(url, "drive.google.com") {
		return url
	}
	m := driveIDPattern.FindStringSubmatch(url)
	if m == nil {
		return url
	}
	return fmt.Sprintf("https://lh3.googleusercontent.com/u/0/d/%s", m[1])
}
