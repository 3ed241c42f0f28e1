package models

import "io"

type File struct {
	Name        string
	Size        int64
	ContentType string
	Entry       io.ReadCloser
}
