package common

import (
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
)

// SourceExt is the file extension of kolang source files.
const SourceExt = ".kol"

// FilePathClean is a combination of filepath.Clean and filepath.ToSlash
//
// Example:
//
//	C:\H\ -> C:/H
func FilePathClean(p string) string {
	cleaned := filepath.Clean(p)
	return filepath.ToSlash(cleaned)
}

func FilePathToURI(path string) string {
	if path == "" {
		return ""
	}
	if runtime.GOOS == "windows" {
		// file:///C:/path
		return "file:///" + (&url.URL{Path: path}).EscapedPath()
	}
	return "file://" + (&url.URL{Path: path}).EscapedPath()
}

// URIToFilePath undoes FilePathToURI. Non file URIs are returned unchanged.
func URIToFilePath(uri string) string {
	u, err := url.Parse(uri)
	if err != nil || u.Scheme != "file" {
		return uri
	}
	p := u.Path
	if runtime.GOOS == "windows" {
		p = strings.TrimPrefix(p, "/")
	}
	return FilePathClean(p)
}

func IsSourceFile(path string) bool {
	return strings.HasSuffix(path, SourceExt)
}
