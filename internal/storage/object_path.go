package storage

import (
	"fmt"
	"mime"
	"path"
	"strings"
	"time"
)

var timeNow = time.Now

func sanitizePathSegment(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	builder := strings.Builder{}
	builder.Grow(len(value))
	for i := 0; i < len(value); i++ {
		ch := value[i]
		switch {
		case ch >= 'a' && ch <= 'z', ch >= '0' && ch <= '9':
			builder.WriteByte(ch)
		case ch >= 'A' && ch <= 'Z':
			builder.WriteByte(ch + 32)
		case ch == '-', ch == '_':
			builder.WriteByte(ch)
		}
	}
	return builder.String()
}

func normalizeExtension(ext string) string {
	trimmed := strings.TrimPrefix(strings.TrimSpace(ext), ".")
	if trimmed == "" {
		return "bin"
	}
	if cleaned := sanitizePathSegment(trimmed); cleaned != "" {
		return cleaned
	}
	return "bin"
}

// buildObjectPath 生成对象 key。
//
// 带 BaseName 时按前两个字符分片：product-images/ab/abcdef.png，
// 同一内容总落在同一个 key 上；否则退回到按日期分目录的时间戳文件名。
func buildObjectPath(category, baseName, ext string, now time.Time) string {
	category = sanitizePathSegment(category)
	if category == "" {
		category = "misc"
	}
	filenameExt := normalizeExtension(ext)

	base := sanitizeFileBase(baseName)
	if base != "" {
		shard := base
		if len(shard) > 2 {
			shard = shard[:2]
		}
		return path.Join(category, shard, fmt.Sprintf("%s.%s", base, filenameExt))
	}

	now = now.UTC()
	datedir := fmt.Sprintf("%04d/%02d/%02d", now.Year(), now.Month(), now.Day())
	return path.Join(category, datedir, fmt.Sprintf("%d.%s", now.UnixNano(), filenameExt))
}

// resolveContentType 优先使用调用方提供的类型。
func resolveContentType(opts SaveOptions) string {
	if ct := strings.TrimSpace(opts.ContentType); ct != "" {
		return ct
	}
	typeName := mime.TypeByExtension("." + normalizeExtension(opts.Extension))
	if typeName == "" {
		return "application/octet-stream"
	}
	return typeName
}

func joinPrefix(prefix, key string) string {
	cleanPrefix := trimPrefix(prefix)
	if cleanPrefix == "" {
		return strings.TrimLeft(key, "/")
	}
	return path.Join(cleanPrefix, strings.TrimLeft(key, "/"))
}

func trimPrefix(prefix string) string {
	return strings.Trim(strings.TrimSpace(prefix), "/")
}

func sanitizeFileBase(value string) string {
	replaced := strings.ReplaceAll(strings.TrimSpace(value), " ", "-")
	sanitized := sanitizePathSegment(replaced)
	return strings.Trim(sanitized, "-_")
}
