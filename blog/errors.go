package blog

import "errors"

var (
	ErrInvalidPost     = errors.New("blog: invalid post")
	ErrUnknownPostType = errors.New("blog: unknown post type")
)
