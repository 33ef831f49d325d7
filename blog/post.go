package blog

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Post is an immutable blog post. Build one with [NewPost] or [MustPost].
type Post struct {
	title    string
	author   string
	kind     PostType
	readTime int
}

// Record is the exported, decodable shape of a [Post]. Catalog files and
// JSON output use it.
type Record struct {
	Title    string `json:"title" mapstructure:"title" validate:"required"`
	Author   string `json:"author" mapstructure:"author" validate:"required"`
	Type     string `json:"type" mapstructure:"type" validate:"required,post_type"`
	ReadTime int    `json:"read_time" mapstructure:"read_time" validate:"min=0"`
}

const postTypeTag = "post_type"

var (
	validate *validator.Validate
	once     sync.Once
)

// getValidator returns the singleton validator. It panics if the post type
// rule cannot be registered.
func getValidator() *validator.Validate {
	once.Do(func() {
		v, err := newValidator(postTypeTag)
		if err != nil {
			panic(fmt.Errorf("blog: register %s validation: %w", postTypeTag, err))
		}
		validate = v
	})
	return validate
}

func newValidator(tag string) (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		_, err := ParsePostType(fl.Field().String())
		return err == nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// NewPost returns a validated Post. Title and author must be non-empty, kind
// must be one of [PostTypes] and minutes must not be negative.
func NewPost(title, author string, kind PostType, minutes int) (Post, error) {
	return Record{Title: title, Author: author, Type: kind.String(), ReadTime: minutes}.Post()
}

// MustPost is like [NewPost] but panics on invalid input.
func MustPost(title, author string, kind PostType, minutes int) Post {
	p, err := NewPost(title, author, kind, minutes)
	if err != nil {
		panic(err)
	}
	return p
}

// Post validates r and converts it to a Post.
func (r Record) Post() (Post, error) {
	if err := getValidator().Struct(r); err != nil {
		return Post{}, validationError(err)
	}
	kind, err := ParsePostType(r.Type)
	if err != nil {
		return Post{}, fmt.Errorf("%w: %w", ErrInvalidPost, err)
	}
	return Post{title: r.Title, author: r.Author, kind: kind, readTime: r.ReadTime}, nil
}

func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", ErrInvalidPost, err)
	}
	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, fe.Field()+": "+formatValidationError(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidPost, strings.Join(messages, "; "))
}

func formatValidationError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param()
	case "post_type":
		return fmt.Sprintf("unknown post type %q", fe.Value())
	default:
		return "failed " + fe.Tag() + " validation"
	}
}

func (p Post) Title() string  { return p.title }
func (p Post) Author() string { return p.author }
func (p Post) Type() PostType { return p.kind }

// ReadTime returns the estimated reading time in minutes.
func (p Post) ReadTime() int { return p.readTime }

// Record returns the exported form of p.
func (p Post) Record() Record {
	return Record{Title: p.title, Author: p.author, Type: p.kind.String(), ReadTime: p.readTime}
}

func (p Post) String() string {
	return fmt.Sprintf("%s by %s (%s, %d min)", p.title, p.author, p.kind, p.readTime)
}

// MarshalJSON encodes p as its [Record].
func (p Post) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Record())
}

// UnmarshalJSON decodes and validates a [Record].
func (p *Post) UnmarshalJSON(data []byte) error {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	parsed, err := r.Post()
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
